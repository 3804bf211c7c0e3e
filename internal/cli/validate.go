package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"beatcut/internal/analysis"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check an analysis document against the planner's preconditions",
		RunE:  runValidate,
	}
}

type validateFinding struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if analysisPath == "" {
		return fmt.Errorf("--analysis is required")
	}

	doc, err := analysis.Read(analysisPath)
	if err != nil {
		return err
	}

	var findings []validateFinding
	errorCount := 0

	if err := doc.Validate(); err != nil {
		var verrs analysis.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, issue := range verrs.Issues() {
			findings = append(findings, validateFinding{Level: "error", Message: issue.Error()})
			errorCount++
		}
	}
	for _, warning := range doc.Warnings() {
		findings = append(findings, validateFinding{Level: "warning", Message: warning})
	}

	if outputJSON {
		if err := writeJSON(cmd, struct {
			Path     string            `json:"path"`
			Findings []validateFinding `json:"findings"`
		}{analysisPath, findings}); err != nil {
			return err
		}
	} else if len(findings) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", analysisPath)
	} else {
		rows := make([][]string, len(findings))
		for i, f := range findings {
			rows[i] = []string{f.Level, f.Message}
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"LEVEL", "MESSAGE"}, rows))
	}

	if errorCount > 0 {
		return fmt.Errorf("analysis validation failed with %d error(s)", errorCount)
	}
	return nil
}
