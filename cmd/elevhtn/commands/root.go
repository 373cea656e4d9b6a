package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"elevhtn/internal/app"
)

var (
	home       string
	plannerURL string
	timeout    time.Duration
	verbose    bool
	logFormat  string

	wire *app.Wire
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "elevhtn",
		Short:        "Build HTN elevator transport problems and hand them to a planner",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".elevhtn")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			logger, err := app.NewLogger(cmd.ErrOrStderr(), logFormat, verbose)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(app.Config{
				Home:       home,
				PlannerURL: plannerURL,
				Timeout:    timeout,
				Logger:     logger,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.elevhtn)")
	root.PersistentFlags().StringVar(&plannerURL, "planner", os.Getenv("ELEVHTN_PLANNER"), "planner base URL (e.g. http://127.0.0.1:8090)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", app.DefaultTimeout, "planner deadline")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug events")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		buildCmd(),
		listCmd(),
		showCmd(),
		exportCmd(),
		fingerprintCmd(),
		methodsCmd(),
		solveCmd(),
		planCmd(),
	)
	return root
}
