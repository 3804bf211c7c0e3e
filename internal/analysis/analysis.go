package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"beatcut/pkg/beatplan"
)

// SupportedVersion is the analysis document schema version this build reads.
const SupportedVersion = 1

// Document is the file form of an externally-produced track analysis: the
// track duration, the detected beat grid, and the sampled energy envelope.
// The planner assumes monotonicity as a precondition, so this boundary layer
// is where malformed data is rejected.
type Document struct {
	Version int            `yaml:"version"`
	Track   TrackInfo      `yaml:"track"`
	Beats   []float64      `yaml:"beats"`
	Energy  []EnergySample `yaml:"energy"`
}

// TrackInfo carries track-level metadata.
type TrackInfo struct {
	DurationSec float64 `yaml:"duration_s"`
}

// EnergySample is one energy envelope control point as stored on disk.
type EnergySample struct {
	TimeSec   float64 `yaml:"time_s"`
	Intensity float64 `yaml:"intensity"`
}

// Read parses an analysis document from disk without validating it. Most
// callers want Load; Read exists so the validate command can report every
// finding instead of failing on the first.
func Read(path string) (Document, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read analysis file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal analysis file: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = SupportedVersion
	}
	return doc, nil
}

// Load reads and validates an analysis document from disk.
func Load(path string) (Document, error) {
	doc, err := Read(path)
	if err != nil {
		return Document{}, err
	}
	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the document against the planner's preconditions and
// returns every violation found as ValidationErrors.
func (d Document) Validate() error {
	var errs ValidationErrors

	if d.Version != SupportedVersion {
		errs = append(errs, ValidationError{
			Index:   -1,
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (want %d)", d.Version, SupportedVersion),
		})
	}
	if d.Track.DurationSec <= 0 {
		errs = append(errs, ValidationError{
			Index:   -1,
			Field:   "track.duration_s",
			Message: fmt.Sprintf("must be positive, got %g", d.Track.DurationSec),
		})
	}

	for i, beat := range d.Beats {
		if beat < 0 {
			errs = append(errs, ValidationError{
				Index:   i,
				Field:   "beats",
				Message: fmt.Sprintf("negative timestamp %g", beat),
			})
		}
		if i > 0 && beat < d.Beats[i-1] {
			errs = append(errs, ValidationError{
				Index:   i,
				Field:   "beats",
				Message: fmt.Sprintf("timestamp %g decreases from %g", beat, d.Beats[i-1]),
			})
		}
	}

	for i, sample := range d.Energy {
		if sample.Intensity < 0 || sample.Intensity > 1 {
			errs = append(errs, ValidationError{
				Index:   i,
				Field:   "energy",
				Message: fmt.Sprintf("intensity %g outside [0, 1]", sample.Intensity),
			})
		}
		if i > 0 && sample.TimeSec <= d.Energy[i-1].TimeSec {
			errs = append(errs, ValidationError{
				Index:   i,
				Field:   "energy",
				Message: fmt.Sprintf("time_s %g does not increase past %g", sample.TimeSec, d.Energy[i-1].TimeSec),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Warnings reports non-fatal oddities worth surfacing to the operator.
func (d Document) Warnings() []string {
	var warnings []string
	if len(d.Beats) == 0 {
		warnings = append(warnings, "no beats detected; planning will fall back to an even split")
	}
	if len(d.Energy) == 0 {
		warnings = append(warnings, "no energy envelope; intensity lookups will fail")
	}
	beyond := 0
	for _, beat := range d.Beats {
		if beat > d.Track.DurationSec {
			beyond++
		}
	}
	if beyond > 0 {
		warnings = append(warnings, fmt.Sprintf("%d beat(s) beyond track duration; they will be ignored when planning", beyond))
	}
	return warnings
}

// BeatGrid converts the stored beat list to the planner's grid type.
func (d Document) BeatGrid() beatplan.BeatGrid {
	return beatplan.BeatGrid(append([]float64(nil), d.Beats...))
}

// Envelope converts the stored energy samples to the planner's envelope type.
func (d Document) Envelope() beatplan.EnergyEnvelope {
	env := make(beatplan.EnergyEnvelope, len(d.Energy))
	for i, sample := range d.Energy {
		env[i] = beatplan.EnergyPoint{Time: sample.TimeSec, Intensity: sample.Intensity}
	}
	return env
}
