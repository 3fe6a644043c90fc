package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radik097/ClipboardGPT/internal/app"
)

func newPromptsCommand(container *app.Container) *cobra.Command {
	promptsCmd := &cobra.Command{
		Use:   "prompts",
		Short: "Manage saved prompts",
	}

	promptsCmd.AddCommand(
		newPromptsListCommand(container),
		newPromptsSaveCommand(container),
		newPromptsDeleteCommand(container),
	)
	return promptsCmd
}

func newPromptsListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.ConfigStore.Load()
			if len(cfg.Prompts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved prompts.")
				return nil
			}
			for _, p := range cfg.Prompts {
				preview := p.Text
				if runes := []rune(preview); len(runes) > 60 {
					preview = string(runes[:60]) + "..."
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", p.Name, preview)
			}
			return nil
		},
	}
}

func newPromptsSaveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <text...>",
		Short: "Save a reusable prompt",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			text := strings.Join(args[1:], " ")

			cfg := container.ConfigStore.Load()
			cfg.AddPrompt(name, text)
			if err := container.ConfigStore.Save(cfg); err != nil {
				return fmt.Errorf("save prompt: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved prompt %q.\n", name)
			return nil
		},
	}
}

func newPromptsDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the first saved prompt with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.ConfigStore.Load()
			if !cfg.RemovePrompt(args[0]) {
				return fmt.Errorf("no saved prompt named %q", args[0])
			}
			if err := container.ConfigStore.Save(cfg); err != nil {
				return fmt.Errorf("delete prompt: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted prompt %q.\n", args[0])
			return nil
		},
	}
}
