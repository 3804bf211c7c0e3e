package beatplan

// CalculateCuts partitions [0, targetDuration] into exactly imageCount
// contiguous segments whose boundaries prefer beat positions over arbitrary
// spacing. The segment count is guaranteed for any grid content, including an
// empty grid, which degrades to an even split. The first boundary is always
// exactly 0 and the last exactly targetDuration; both are assigned directly
// rather than accumulated, so they never drift.
func CalculateCuts(grid BeatGrid, imageCount int, targetDuration float64, style CutStyle) (Timeline, error) {
	if imageCount <= 0 {
		return nil, invalidf("image_count", "must be positive, got %d", imageCount)
	}
	if targetDuration <= 0 {
		return nil, invalidf("target_duration", "must be positive, got %g", targetDuration)
	}
	stride := style.Stride()
	if stride == 0 {
		return nil, invalidf("cut_style", "unrecognized style %q (want fast, medium, or slow)", string(style))
	}

	if len(grid) == 0 {
		return evenSplit(imageCount, targetDuration), nil
	}

	segments := candidateSegments(grid, stride, targetDuration)

	for len(segments) > imageCount {
		segments = mergeSmallestPair(segments)
	}
	for len(segments) < imageCount {
		segments = splitLongest(segments)
	}

	return segments, nil
}

// evenSplit divides the duration into count equal-width segments.
func evenSplit(count int, targetDuration float64) Timeline {
	width := targetDuration / float64(count)
	segments := make(Timeline, count)
	for i := range segments {
		segments[i] = Segment{
			Start: float64(i) * width,
			End:   float64(i+1) * width,
		}
	}
	segments[0].Start = 0
	segments[count-1].End = targetDuration
	return segments
}

// candidateSegments builds the beat-driven candidate partition: every
// stride-th beat strictly inside (0, targetDuration) becomes a boundary, with
// 0 prepended and targetDuration appended. Repeated beat timestamps collapse
// to a single boundary so no candidate has zero width.
func candidateSegments(grid BeatGrid, stride int, targetDuration float64) Timeline {
	boundaries := []float64{0}
	for i := 0; i < len(grid); i += stride {
		beat := grid[i]
		if beat <= 0 || beat >= targetDuration {
			continue
		}
		if beat == boundaries[len(boundaries)-1] {
			continue
		}
		boundaries = append(boundaries, beat)
	}
	boundaries = append(boundaries, targetDuration)

	segments := make(Timeline, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		segments = append(segments, Segment{Start: boundaries[i], End: boundaries[i+1]})
	}
	return segments
}

// mergeSmallestPair combines the adjacent pair with the smallest combined
// duration into one segment, keeping longer, musically significant segments
// intact. Ties resolve to the earliest pair.
func mergeSmallestPair(segments Timeline) Timeline {
	best := 0
	bestDur := segments[0].Duration() + segments[1].Duration()
	for i := 1; i+1 < len(segments); i++ {
		if dur := segments[i].Duration() + segments[i+1].Duration(); dur < bestDur {
			best = i
			bestDur = dur
		}
	}

	merged := make(Timeline, 0, len(segments)-1)
	merged = append(merged, segments[:best]...)
	merged = append(merged, Segment{Start: segments[best].Start, End: segments[best+1].End})
	merged = append(merged, segments[best+2:]...)
	return merged
}

// splitLongest halves the longest segment, spreading extra cuts into the
// least rhythmically constrained stretch. Ties resolve to the earliest
// segment.
func splitLongest(segments Timeline) Timeline {
	longest := 0
	for i := 1; i < len(segments); i++ {
		if segments[i].Duration() > segments[longest].Duration() {
			longest = i
		}
	}

	seg := segments[longest]
	mid := seg.Start + seg.Duration()/2

	split := make(Timeline, 0, len(segments)+1)
	split = append(split, segments[:longest]...)
	split = append(split, Segment{Start: seg.Start, End: mid}, Segment{Start: mid, End: seg.End})
	split = append(split, segments[longest+1:]...)
	return split
}
