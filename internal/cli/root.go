package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type app struct {
	logger   *log.Logger
	logLevel string
	envFile  string
}

// Execute builds the command tree and runs it with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand returns the forminput command tree logging to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	a := &app{
		logger: log.NewWithOptions(logOut, log.Options{
			Prefix:          "forminput",
			ReportTimestamp: true,
		}),
	}

	root := &cobra.Command{
		Use:           "forminput",
		Short:         "Render labeled form inputs as HTML.",
		Long:          "forminput renders the labeled input component to HTML fragments, preview pages and a local preview server.",
		Version:       os.Getenv("VERSION"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.envFile != "" {
				if err := godotenv.Load(a.envFile); err != nil {
					return fmt.Errorf("load env file %s: %w", a.envFile, err)
				}
			}
			if !cmd.Flags().Changed("log-level") {
				if fromEnv := os.Getenv("FORMINPUT_LOG_LEVEL"); fromEnv != "" {
					a.logLevel = fromEnv
				}
			}
			level, err := log.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger.SetLevel(level)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error); $FORMINPUT_LOG_LEVEL")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file loaded before running the command")

	root.AddCommand(
		a.renderCommand(),
		a.previewCommand(),
		a.promptCommand(),
		a.serveCommand(),
	)
	return root
}
