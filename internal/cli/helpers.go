package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"beatcut/internal/analysis"
	"beatcut/internal/config"
	"beatcut/internal/logx"
)

// loadAnalysis resolves the --analysis flag and loads the validated document.
func loadAnalysis() (analysis.Document, error) {
	if analysisPath == "" {
		return analysis.Document{}, fmt.Errorf("--analysis is required")
	}
	return analysis.Load(analysisPath)
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// newLogger opens a file logger under --log-dir, or a discarding logger when
// the flag is unset. closeFn is always safe to call.
func newLogger() (*log.Logger, func(), error) {
	if logDir == "" {
		return logx.Discard(), func() {}, nil
	}
	logger, closer, err := logx.New(logDir)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

// parseTimes converts positional args to float timestamps.
func parseTimes(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one timestamp argument is required")
	}
	times := make([]float64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", arg, err)
		}
		times[i] = value
	}
	return times, nil
}

// writeJSON marshals v with indentation to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// formatSeconds renders a timestamp with millisecond precision for tables.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
