package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"beatcut/internal/tui"
	"beatcut/pkg/beatplan"
)

var (
	inspectImages int
	inspectStyle  string
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Interactively scrub through a planned timeline",
		RunE:  runInspect,
	}

	cmd.Flags().IntVar(&inspectImages, "images", 0, "Number of images to place on the timeline")
	cmd.Flags().StringVar(&inspectStyle, "style", "", "Cut style: fast, medium, or slow (defaults from config)")
	return cmd
}

func runInspect(cmd *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("inspect requires an interactive terminal; use plan --json for scripted output")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadAnalysis()
	if err != nil {
		return err
	}

	images := inspectImages
	if images == 0 {
		images = cfg.Plan.Images
	}
	if images <= 0 {
		return fmt.Errorf("--images is required (or set plan.images in the config)")
	}

	styleToken := inspectStyle
	if styleToken == "" {
		styleToken = cfg.Plan.Style
	}
	style, err := beatplan.ParseCutStyle(styleToken)
	if err != nil {
		return err
	}

	duration := doc.Track.DurationSec
	grid := doc.BeatGrid()
	timeline, err := beatplan.CalculateCuts(grid, images, duration, style)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("beatcut · %s · %d images · %s", analysisPath, images, style)
	model := tui.NewInspectorModel(title, timeline, grid, doc.Envelope(), duration)
	return tui.Run(cmd.OutOrStdout(), model)
}
