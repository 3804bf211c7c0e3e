package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"beatcut/pkg/beatplan"
)

var snapTolerance float64

func newSnapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snap T...",
		Short: "Snap timestamps onto the beat grid within a tolerance window",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSnap,
	}

	cmd.Flags().Float64Var(&snapTolerance, "tolerance", -1, "Snap tolerance in seconds (defaults from config)")
	return cmd
}

type snapRow struct {
	InputSec  float64 `json:"input_s"`
	OutputSec float64 `json:"output_s"`
	Snapped   bool    `json:"snapped"`
}

func runSnap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadAnalysis()
	if err != nil {
		return err
	}
	times, err := parseTimes(args)
	if err != nil {
		return err
	}

	tolerance := snapTolerance
	if !cmd.Flags().Changed("tolerance") {
		tolerance = cfg.Snap.ToleranceSec
	}

	snapped, err := beatplan.SnapToBeats(times, doc.BeatGrid(), tolerance)
	if err != nil {
		return err
	}

	rows := make([]snapRow, len(times))
	for i := range times {
		rows[i] = snapRow{
			InputSec:  times[i],
			OutputSec: snapped[i],
			Snapped:   snapped[i] != times[i],
		}
	}

	if outputJSON {
		return writeJSON(cmd, rows)
	}

	tableRows := make([][]string, len(rows))
	for i, row := range rows {
		mark := ""
		if row.Snapped {
			mark = "snapped"
		}
		tableRows[i] = []string{
			formatSeconds(row.InputSec),
			formatSeconds(row.OutputSec),
			mark,
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"INPUT", "OUTPUT", "STATUS"},
		tableRows,
		0, 1,
	))
	return nil
}
