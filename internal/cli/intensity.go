package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"beatcut/pkg/beatplan"
)

func newIntensityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intensity T...",
		Short: "Interpolate the energy envelope at each timestamp",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runIntensity,
	}
}

type intensityRow struct {
	TimeSec   float64 `json:"time_s"`
	Intensity float64 `json:"intensity"`
}

func runIntensity(cmd *cobra.Command, args []string) error {
	doc, err := loadAnalysis()
	if err != nil {
		return err
	}
	times, err := parseTimes(args)
	if err != nil {
		return err
	}

	env := doc.Envelope()
	rows := make([]intensityRow, len(times))
	for i, t := range times {
		value, err := beatplan.BeatIntensity(env, t)
		if err != nil {
			return err
		}
		rows[i] = intensityRow{TimeSec: t, Intensity: value}
	}

	if outputJSON {
		return writeJSON(cmd, rows)
	}

	tableRows := make([][]string, len(rows))
	for i, row := range rows {
		tableRows[i] = []string{
			formatSeconds(row.TimeSec),
			fmt.Sprintf("%.4f", row.Intensity),
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"TIME", "INTENSITY"},
		tableRows,
		0, 1,
	))
	return nil
}
