package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-forminput/pkg/prompt"
)

func (a *app) promptCommand() *cobra.Command {
	var sanitize bool

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Answer a few questions and print the resulting input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			props, err := prompt.Collect(cmd.Context(), prompt.NewSurveyDriver())
			if errors.Is(err, prompt.ErrAborted) {
				a.logger.Warn("prompt aborted")
				return nil
			}
			if err != nil {
				return err
			}
			return writeFragment(cmd.OutOrStdout(), props, sanitize)
		},
	}
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "strip inline handlers and unknown attributes")
	return cmd
}
