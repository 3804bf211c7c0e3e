package beatplan

// BeatGrid is an ordered sequence of detected beat timestamps, in seconds from
// the start of the track. Timestamps are non-decreasing. A grid may be empty
// when no beats were detected.
type BeatGrid []float64

// EnergyPoint is a single control point of an energy envelope.
type EnergyPoint struct {
	Time      float64 // seconds from track start, strictly increasing across points
	Intensity float64 // perceived musical energy in [0, 1]
}

// EnergyEnvelope is a sparse, time-ordered sampling of musical energy meant to
// be linearly interpolated between control points.
type EnergyEnvelope []EnergyPoint

// Segment is one contiguous display window assigned to a single image.
type Segment struct {
	Start float64
	End   float64
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Timeline is the full ordered sequence of segments spanning a target
// duration: the first segment starts at 0, the last ends exactly at the
// target, and consecutive segments are contiguous.
type Timeline []Segment

// CutStyle names a policy controlling how many beats are grouped per candidate
// segment boundary.
type CutStyle string

const (
	StyleFast   CutStyle = "fast"
	StyleMedium CutStyle = "medium"
	StyleSlow   CutStyle = "slow"
)

// Stride returns the beats-per-cut stride for the style, or 0 when the style
// is not recognized.
func (s CutStyle) Stride() int {
	switch s {
	case StyleFast:
		return 1
	case StyleMedium:
		return 2
	case StyleSlow:
		return 4
	default:
		return 0
	}
}

// ParseCutStyle normalizes and validates a style token.
func ParseCutStyle(token string) (CutStyle, error) {
	style := CutStyle(normalizeToken(token))
	if style.Stride() == 0 {
		return "", invalidf("cut_style", "unrecognized style %q (want fast, medium, or slow)", token)
	}
	return style, nil
}
