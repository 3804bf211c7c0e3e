package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"beatcut/pkg/beatplan"
)

func newNearestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearest T...",
		Short: "Look up the nearest detected beat for each timestamp",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runNearest,
	}
}

type nearestRow struct {
	TimeSec     float64 `json:"time_s"`
	BeatSec     float64 `json:"beat_s"`
	DistanceSec float64 `json:"distance_s"`
}

func runNearest(cmd *cobra.Command, args []string) error {
	doc, err := loadAnalysis()
	if err != nil {
		return err
	}
	times, err := parseTimes(args)
	if err != nil {
		return err
	}

	grid := doc.BeatGrid()
	rows := make([]nearestRow, len(times))
	for i, t := range times {
		beat, err := beatplan.FindNearestBeat(grid, t)
		if err != nil {
			return err
		}
		dist := beat - t
		if dist < 0 {
			dist = -dist
		}
		rows[i] = nearestRow{TimeSec: t, BeatSec: beat, DistanceSec: dist}
	}

	if outputJSON {
		return writeJSON(cmd, rows)
	}

	tableRows := make([][]string, len(rows))
	for i, row := range rows {
		tableRows[i] = []string{
			formatSeconds(row.TimeSec),
			formatSeconds(row.BeatSec),
			formatSeconds(row.DistanceSec),
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"TIME", "NEAREST BEAT", "DISTANCE"},
		tableRows,
		0, 1, 2,
	))
	return nil
}
