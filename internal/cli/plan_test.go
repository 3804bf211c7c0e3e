package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"beatcut/pkg/beatplan"
)

const testAnalysis = `version: 1
track:
  duration_s: 10.0
beats: [1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0]
energy:
  - {time_s: 0.0, intensity: 0.1}
  - {time_s: 5.0, intensity: 0.9}
  - {time_s: 10.0, intensity: 0.3}
`

// resetFlags restores package-level flag state between executions; cobra
// binds flags to these vars, so values would otherwise leak across tests.
func resetFlags() {
	analysisPath = ""
	configPath = "beatcut.yaml"
	outputJSON = false
	logDir = ""
	planImages = 0
	planDuration = 0
	planStyle = ""
	snapTolerance = -1
	inspectImages = 0
	inspectStyle = ""
}

func writeAnalysisFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCommandJSON(t *testing.T) {
	path := writeAnalysisFile(t, testAnalysis)
	out, err := runCommand(t, "plan", "--analysis", path, "--images", "4", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}

	var result struct {
		Images   int     `json:"images"`
		Duration float64 `json:"duration_s"`
		Style    string  `json:"style"`
		Segments []struct {
			StartSec float64 `json:"start_s"`
			EndSec   float64 `json:"end_s"`
		} `json:"segments"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output not valid JSON: %v\n%s", err, out)
	}
	if result.Images != 4 || len(result.Segments) != 4 {
		t.Fatalf("segments = %d, want 4: %s", len(result.Segments), out)
	}
	if result.Style != "medium" {
		t.Errorf("style = %q, want config default medium", result.Style)
	}
	if result.Segments[0].StartSec != 0 {
		t.Errorf("first start = %v, want 0", result.Segments[0].StartSec)
	}
	if result.Segments[3].EndSec != 10.0 {
		t.Errorf("last end = %v, want 10.0", result.Segments[3].EndSec)
	}
}

func TestPlanCommandTable(t *testing.T) {
	path := writeAnalysisFile(t, testAnalysis)
	out, err := runCommand(t, "plan", "--analysis", path, "--images", "3", "--style", "fast")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	for _, header := range []string{"START", "END", "DURATION", "CUT"} {
		if !strings.Contains(out, header) {
			t.Errorf("output missing header %q:\n%s", header, out)
		}
	}
}

func TestPlanCommandRequiresImages(t *testing.T) {
	path := writeAnalysisFile(t, testAnalysis)
	_, err := runCommand(t, "plan", "--analysis", path)
	if err == nil || !strings.Contains(err.Error(), "--images") {
		t.Fatalf("expected --images error, got %v", err)
	}
}

func TestPlanCommandRequiresAnalysis(t *testing.T) {
	_, err := runCommand(t, "plan", "--images", "4")
	if err == nil || !strings.Contains(err.Error(), "--analysis") {
		t.Fatalf("expected --analysis error, got %v", err)
	}
}

func TestPlanCommandRejectsUnknownStyle(t *testing.T) {
	path := writeAnalysisFile(t, testAnalysis)
	_, err := runCommand(t, "plan", "--analysis", path, "--images", "4", "--style", "turbo")
	if err == nil || !strings.Contains(err.Error(), "turbo") {
		t.Fatalf("expected unknown-style error, got %v", err)
	}
}

func TestPlanCommandRejectsInvalidAnalysis(t *testing.T) {
	path := writeAnalysisFile(t, "version: 1\ntrack:\n  duration_s: 10\nbeats: [3.0, 1.0]\n")
	_, err := runCommand(t, "plan", "--analysis", path, "--images", "4")
	if err == nil || !strings.Contains(err.Error(), "decreases") {
		t.Fatalf("expected monotonicity error, got %v", err)
	}
}

func TestBoundaryOnBeat(t *testing.T) {
	grid := beatplan.BeatGrid{1.0, 2.0, 3.0}
	if !boundaryOnBeat(grid, 2.0, 10.0) {
		t.Error("end at beat not marked")
	}
	if boundaryOnBeat(grid, 2.5, 10.0) {
		t.Error("mid-gap end marked as beat")
	}
	if boundaryOnBeat(grid, 10.0, 10.0) {
		t.Error("track end must not count as a beat cut")
	}
	if boundaryOnBeat(nil, 2.0, 10.0) {
		t.Error("empty grid cannot mark beats")
	}
}
