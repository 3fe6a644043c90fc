package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radik097/ClipboardGPT/internal/app"
	"github.com/radik097/ClipboardGPT/internal/application/chat"
)

func newSendCommand(container *app.Container) *cobra.Command {
	var (
		model        string
		temperature  float32
		candidates   int
		timeout      int
		attachments  []string
		systemPrompt string
		usePrompt    string
		pick         bool
		copyAnswer   bool
		notify       bool
	)

	cmd := &cobra.Command{
		Use:   "send [prompt]",
		Short: "Send a prompt and print the candidate answers",
		Long:  "Send a prompt to the completion endpoint. With no prompt argument the clipboard content is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(strings.Join(args, " "))

			if usePrompt != "" {
				saved, ok := container.ConfigStore.Load().FindPrompt(usePrompt)
				if !ok {
					return fmt.Errorf("no saved prompt named %q", usePrompt)
				}
				if prompt == "" {
					prompt = saved.Text
				} else {
					prompt = saved.Text + "\n\n" + prompt
				}
			}

			if model == "" {
				model = container.Settings.Model
			}

			results, err := container.Session.Send(cmd.Context(), chat.SendRequest{
				Prompt:          prompt,
				AttachmentPaths: attachments,
				SystemPrompt:    systemPrompt,
				Model:           model,
				Temperature:     temperature,
				CandidateCount:  candidates,
				TimeoutSeconds:  timeout,
				Quiet:           !notify,
			})
			if err != nil {
				return err
			}

			spinner := NewSpinner(cmd.ErrOrStderr())
			spinner.Start("Waiting for completion")
			result := <-results
			spinner.Stop()

			RenderResult(cmd.OutOrStdout(), result)
			if result.Failure != nil {
				return errors.New(result.Failure.Summary())
			}

			if pick {
				return runPick(cmd, container)
			}

			if copyAnswer && len(result.Candidates) > 0 && result.Candidates[0] != "" {
				if err := container.Clipboard.Write(result.Candidates[0]); err != nil {
					return fmt.Errorf("copy answer: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "First answer copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Override model name (default from config)")
	cmd.Flags().Float32VarP(&temperature, "temperature", "t", 0, "Sampling temperature (default from settings)")
	cmd.Flags().IntVarP(&candidates, "candidates", "n", 1, "Number of candidate answers to request")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Request timeout in seconds (default from settings)")
	cmd.Flags().StringArrayVar(&attachments, "attach", nil, "Attach a text file to the prompt (repeatable)")
	cmd.Flags().StringVar(&systemPrompt, "system", "", "Override the system prompt")
	cmd.Flags().StringVar(&usePrompt, "use", "", "Prepend a saved prompt by name")
	cmd.Flags().BoolVar(&pick, "pick", false, "Ask the model to pick the best candidate and copy it")
	cmd.Flags().BoolVarP(&copyAnswer, "copy", "c", true, "Copy the first answer to the clipboard")
	cmd.Flags().BoolVar(&notify, "notify", true, "Show a desktop notification when the answer arrives")

	return cmd
}

func runPick(cmd *cobra.Command, container *app.Container) error {
	picks, err := container.Session.PickBest(cmd.Context())
	if err != nil {
		return fmt.Errorf("auto-pick: %w", err)
	}

	spinner := NewSpinner(cmd.ErrOrStderr())
	spinner.Start("Picking the best candidate")
	outcome := <-picks
	spinner.Stop()

	if outcome.Failure != nil {
		return errors.New(outcome.Failure.Summary())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Best candidate: (%d)\n%s\n", outcome.Index+1, outcome.Chosen)
	fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
	return nil
}
