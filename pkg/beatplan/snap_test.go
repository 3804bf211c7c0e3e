package beatplan

import (
	"errors"
	"testing"
)

func TestSnapToBeats(t *testing.T) {
	grid := BeatGrid{0.0, 1.0, 2.0, 3.0}

	tests := []struct {
		name      string
		times     []float64
		tolerance float64
		want      []float64
	}{
		{
			name:      "mixed within and beyond tolerance",
			times:     []float64{0.05, 0.95, 1.5, 2.02},
			tolerance: 0.1,
			want:      []float64{0.0, 1.0, 1.5, 2.0},
		},
		{
			name:      "exactly at tolerance snaps",
			times:     []float64{1.25},
			tolerance: 0.25,
			want:      []float64{1.0},
		},
		{
			name:      "zero tolerance snaps only exact hits",
			times:     []float64{1.0, 1.01},
			tolerance: 0,
			want:      []float64{1.0, 1.01},
		},
		{
			name:      "empty input",
			times:     nil,
			tolerance: 0.1,
			want:      []float64{},
		},
		{
			name:      "order preserved for unsorted input",
			times:     []float64{2.98, 0.04, 1.6},
			tolerance: 0.1,
			want:      []float64{3.0, 0.0, 1.6},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SnapToBeats(tc.times, grid, tc.tolerance)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("[%d] got %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSnapToBeatsIdempotent(t *testing.T) {
	grid := BeatGrid{0.0, 1.0, 2.0, 3.0}
	once, err := SnapToBeats([]float64{0.05, 0.95, 1.5, 2.02}, grid, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := SnapToBeats(once, grid, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("[%d] re-snap changed %v to %v", i, once[i], twice[i])
		}
	}
}

func TestSnapToBeatsEmptyGridIsNoOp(t *testing.T) {
	times := []float64{0.4, 1.7, 2.2}
	got, err := SnapToBeats(times, nil, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range times {
		if got[i] != times[i] {
			t.Errorf("[%d] got %v, want input %v unchanged", i, got[i], times[i])
		}
	}
}

func TestSnapToBeatsDoesNotMutateInput(t *testing.T) {
	times := []float64{0.05}
	if _, err := SnapToBeats(times, BeatGrid{0.0}, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if times[0] != 0.05 {
		t.Errorf("input slice mutated: %v", times[0])
	}
}

func TestSnapToBeatsNegativeTolerance(t *testing.T) {
	_, err := SnapToBeats([]float64{1.0}, BeatGrid{0.0, 1.0}, -0.5)
	if err == nil {
		t.Fatal("expected error for negative tolerance")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error %v does not match ErrInvalidInput", err)
	}
}
