package beatplan

import "sort"

// FindNearestBeat returns the grid timestamp closest to t by absolute
// difference. When t sits exactly halfway between two beats the earlier beat
// wins. An empty grid is an InvalidInput error.
func FindNearestBeat(grid BeatGrid, t float64) (float64, error) {
	idx, err := nearestBeatIndex(grid, t)
	if err != nil {
		return 0, err
	}
	return grid[idx], nil
}

// nearestBeatIndex locates the nearest beat with a binary search over the
// monotonic grid.
func nearestBeatIndex(grid BeatGrid, t float64) (int, error) {
	if len(grid) == 0 {
		return 0, invalidf("beat_grid", "empty grid has no nearest beat")
	}

	// First index with grid[i] >= t.
	i := sort.SearchFloat64s(grid, t)
	if i == 0 {
		return 0, nil
	}
	if i == len(grid) {
		return len(grid) - 1, nil
	}
	// Earlier beat wins on an exact tie.
	if t-grid[i-1] <= grid[i]-t {
		return i - 1, nil
	}
	return i, nil
}
