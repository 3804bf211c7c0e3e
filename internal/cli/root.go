package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	analysisPath string
	configPath   string
	outputJSON   bool
	logDir       string
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beatcut",
		Short: "Beat-aligned slideshow timeline planner",
	}

	cmd.PersistentFlags().StringVar(&analysisPath, "analysis", "", "Path to the track analysis YAML file")
	cmd.PersistentFlags().StringVar(&configPath, "config", "beatcut.yaml", "Path to the beatcut config file")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for execution logs (disabled when empty)")

	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newNearestCmd())
	cmd.AddCommand(newIntensityCmd())
	cmd.AddCommand(newSnapCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
