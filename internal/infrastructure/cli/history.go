package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/radik097/ClipboardGPT/internal/app"
	"github.com/radik097/ClipboardGPT/internal/domain"
)

const defaultHistoryLimit = 20

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect stored exchanges",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryShowCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent exchanges, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := container.HistoryStore.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
				return nil
			}
			shown := 0
			for i := len(entries) - 1; i >= 0 && shown < limit; i-- {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", len(entries)-i, entries[i].Title())
				shown++
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Max entries to show")
	return cmd
}

func newHistoryShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <position>",
		Short: "Show one exchange in full (1 is the most recent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil || position < 1 {
				return fmt.Errorf("position must be a positive number, got %q", args[0])
			}
			entries := container.HistoryStore.Entries()
			if position > len(entries) {
				return fmt.Errorf("position %d out of range: %d entries stored", position, len(entries))
			}
			entry := entries[len(entries)-position]
			RenderHistoryEntry(cmd.OutOrStdout(), position, entry)
			return nil
		},
	}
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := container.HistoryStore.Entries()
			data, err := marshalHistory(entries, format)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func marshalHistory(entries []domain.HistoryEntry, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(entries, "", "  ")
	case "yaml":
		return yaml.Marshal(entries)
	default:
		return nil, fmt.Errorf("unsupported format %q (use json or yaml)", format)
	}
}
