package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-forminput/pkg/preview"
)

func (a *app) previewCommand() *cobra.Command {
	var (
		scenarios string
		output    string
		sanitize  bool
	)

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   "Render a scenario file into a standalone HTML page.",
		Example: `forminput preview --scenarios inputs.yaml --output preview.html`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := preview.LoadFile(scenarios)
			if err != nil {
				return err
			}

			page, err := preview.NewPage(preview.WithSanitize(sanitize))
			if err != nil {
				return err
			}
			out, err := page.Render(cmd.Context(), doc)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.logger.Info("preview written", "path", output, "scenarios", len(doc.Scenarios))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&scenarios, "scenarios", "", "scenario YAML file")
	f.StringVar(&output, "output", "", "output file (stdout if empty)")
	f.BoolVar(&sanitize, "sanitize", false, "strip inline handlers and unknown attributes")
	_ = cmd.MarkFlagRequired("scenarios")
	return cmd
}
