package beatplan

import "math"

// SnapToBeats quantizes each input time onto its nearest beat when the beat
// lies within tolerance; times farther than tolerance from any beat pass
// through unchanged. Output order and length match the input exactly. Snapping
// is best-effort alignment, so an empty grid is not an error: every output
// equals its input. A negative tolerance is an InvalidInput error.
func SnapToBeats(times []float64, grid BeatGrid, tolerance float64) ([]float64, error) {
	if tolerance < 0 {
		return nil, invalidf("tolerance", "must be non-negative, got %g", tolerance)
	}

	snapped := make([]float64, len(times))
	copy(snapped, times)
	if len(grid) == 0 {
		return snapped, nil
	}

	for i, t := range times {
		idx, err := nearestBeatIndex(grid, t)
		if err != nil {
			return nil, err
		}
		if beat := grid[idx]; math.Abs(beat-t) <= tolerance {
			snapped[i] = beat
		}
	}
	return snapped, nil
}
