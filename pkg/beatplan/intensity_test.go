package beatplan

import (
	"errors"
	"testing"
)

func TestBeatIntensity(t *testing.T) {
	env := EnergyEnvelope{
		{Time: 0.0, Intensity: 0.2},
		{Time: 1.0, Intensity: 0.8},
		{Time: 2.0, Intensity: 0.5},
	}

	tests := []struct {
		name  string
		t     float64
		want  float64
		exact bool // exact control-point hits must not carry interpolation error
	}{
		{"first control point", 0.0, 0.2, true},
		{"interior control point", 1.0, 0.8, true},
		{"last control point", 2.0, 0.5, true},
		{"midpoint of rising span", 0.5, 0.5, false},
		{"quarter of rising span", 0.25, 0.35, false},
		{"midpoint of falling span", 1.5, 0.65, false},
		{"clamped before envelope", -3.0, 0.2, true},
		{"clamped after envelope", 10.0, 0.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BeatIntensity(env, tc.t)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.exact {
				if got != tc.want {
					t.Errorf("got %v, want exactly %v", got, tc.want)
				}
				return
			}
			if !almostEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBeatIntensitySinglePoint(t *testing.T) {
	env := EnergyEnvelope{{Time: 5.0, Intensity: 0.7}}
	for _, at := range []float64{0.0, 5.0, 20.0} {
		got, err := BeatIntensity(env, at)
		if err != nil {
			t.Fatalf("unexpected error at t=%v: %v", at, err)
		}
		if got != 0.7 {
			t.Errorf("at t=%v got %v, want 0.7", at, got)
		}
	}
}

func TestBeatIntensityEmptyEnvelope(t *testing.T) {
	_, err := BeatIntensity(nil, 1.0)
	if err == nil {
		t.Fatal("expected error for empty envelope")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error %v does not match ErrInvalidInput", err)
	}
}
