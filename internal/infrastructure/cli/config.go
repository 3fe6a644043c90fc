package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/radik097/ClipboardGPT/internal/app"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the config document",
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigSetModelCommand(container),
		newConfigSetPriceCommand(container),
	)
	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.ConfigStore.Load()
			fmt.Fprintf(cmd.OutOrStdout(), "File:           %s\n", container.ConfigStore.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Model:          %s\n", cfg.Model)
			fmt.Fprintf(cmd.OutOrStdout(), "Price per 1K:   $%.4f\n", cfg.TokenPricePer1K)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved prompts:  %d\n", len(cfg.Prompts))
			return nil
		},
	}
}

func newConfigSetModelCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set-model <model>",
		Short: "Set the default model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.ConfigStore.Load()
			cfg.Model = args[0]
			if err := container.ConfigStore.Save(cfg); err != nil {
				return fmt.Errorf("set model: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Model set to %s.\n", args[0])
			return nil
		},
	}
}

func newConfigSetPriceCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <dollars-per-1k-tokens>",
		Short: "Set the token price used for cost estimates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[0], 64)
			if err != nil || price < 0 {
				return fmt.Errorf("price must be a non-negative number, got %q", args[0])
			}
			cfg := container.ConfigStore.Load()
			cfg.TokenPricePer1K = price
			if err := container.ConfigStore.Save(cfg); err != nil {
				return fmt.Errorf("set price: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token price set to $%.4f per 1K tokens.\n", price)
			return nil
		},
	}
}
