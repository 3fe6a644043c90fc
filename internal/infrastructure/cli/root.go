package cli

import (
	"github.com/spf13/cobra"

	"github.com/radik097/ClipboardGPT/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose      bool
	SettingsPath string
}

// NewRootCmd wires the cobra root command. Running the binary with a bare
// prompt (or nothing at all, to use the clipboard) is the same as running
// the send subcommand.
func NewRootCmd(opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(opts.SettingsPath, opts.Verbose)
	if err != nil {
		return nil, err
	}

	sendCmd := newSendCommand(container)

	root := &cobra.Command{
		Use:   "clipgpt [prompt]",
		Short: "ClipboardGPT - clipboard-first chat assistant",
		Long:  "ClipboardGPT sends a prompt (typed, or taken from the clipboard) to a chat-completion endpoint and copies the answer back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sendCmd.SetArgs(args)
			return sendCmd.ExecuteContext(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(sendCmd)
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newPromptsCommand(container))
	root.AddCommand(newConfigCommand(container))
	return root, nil
}
