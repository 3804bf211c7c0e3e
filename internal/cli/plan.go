package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"beatcut/pkg/beatplan"
)

var (
	planImages   int
	planDuration float64
	planStyle    string
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a beat-aligned display timeline for a set of images",
		RunE:  runPlan,
	}

	cmd.Flags().IntVar(&planImages, "images", 0, "Number of images to place on the timeline")
	cmd.Flags().Float64Var(&planDuration, "duration", 0, "Target duration in seconds (defaults to the track duration)")
	cmd.Flags().StringVar(&planStyle, "style", "", "Cut style: fast, medium, or slow (defaults from config)")
	return cmd
}

// planRow is the JSON shape for a single planned segment.
type planRow struct {
	Index       int     `json:"index"`
	StartSec    float64 `json:"start_s"`
	EndSec      float64 `json:"end_s"`
	DurationSec float64 `json:"duration_s"`
	OnBeat      bool    `json:"on_beat"`
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadAnalysis()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	images := planImages
	if images == 0 {
		images = cfg.Plan.Images
	}
	if images <= 0 {
		return fmt.Errorf("--images is required (or set plan.images in the config)")
	}

	duration := planDuration
	if duration == 0 {
		duration = doc.Track.DurationSec
	}

	styleToken := planStyle
	if styleToken == "" {
		styleToken = cfg.Plan.Style
	}
	style, err := beatplan.ParseCutStyle(styleToken)
	if err != nil {
		return err
	}

	grid := doc.BeatGrid()
	logger.Printf("plan: images=%d duration=%.3f style=%s beats=%d", images, duration, style, len(grid))

	timeline, err := beatplan.CalculateCuts(grid, images, duration, style)
	if err != nil {
		return err
	}

	rows := make([]planRow, len(timeline))
	for i, seg := range timeline {
		rows[i] = planRow{
			Index:       i + 1,
			StartSec:    seg.Start,
			EndSec:      seg.End,
			DurationSec: seg.Duration(),
			OnBeat:      boundaryOnBeat(grid, seg.End, duration),
		}
	}

	if outputJSON {
		return writeJSON(cmd, struct {
			Images   int       `json:"images"`
			Duration float64   `json:"duration_s"`
			Style    string    `json:"style"`
			Segments []planRow `json:"segments"`
		}{images, duration, string(style), rows})
	}

	tableRows := make([][]string, len(rows))
	for i, row := range rows {
		mark := ""
		if row.OnBeat {
			mark = "beat"
		}
		tableRows[i] = []string{
			fmt.Sprintf("%d", row.Index),
			formatSeconds(row.StartSec),
			formatSeconds(row.EndSec),
			formatSeconds(row.DurationSec),
			mark,
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"#", "START", "END", "DURATION", "CUT"},
		tableRows,
		0, 1, 2, 3,
	))
	return nil
}

// boundaryOnBeat reports whether a segment's end coincides with a detected
// beat. The final boundary is the track end, not a beat cut.
func boundaryOnBeat(grid beatplan.BeatGrid, end, duration float64) bool {
	if end == duration || len(grid) == 0 {
		return false
	}
	nearest, err := beatplan.FindNearestBeat(grid, end)
	if err != nil {
		return false
	}
	return math.Abs(nearest-end) < 1e-9
}
