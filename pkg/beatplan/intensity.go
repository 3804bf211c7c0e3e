package beatplan

import "sort"

// BeatIntensity evaluates the energy envelope at time t with piecewise-linear
// interpolation. A t that matches a control point's timestamp returns that
// point's intensity exactly; outside the envelope the nearest boundary value
// is returned unchanged. An empty envelope is an InvalidInput error.
func BeatIntensity(env EnergyEnvelope, t float64) (float64, error) {
	if len(env) == 0 {
		return 0, invalidf("energy_envelope", "empty envelope cannot be interpolated")
	}

	// First index with env[i].Time >= t.
	i := sort.Search(len(env), func(i int) bool { return env[i].Time >= t })

	if i == len(env) {
		return env[len(env)-1].Intensity, nil
	}
	if env[i].Time == t {
		// Exact control-point hit: return the stored intensity with no
		// interpolation error.
		return env[i].Intensity, nil
	}
	if i == 0 {
		return env[0].Intensity, nil
	}

	p0, p1 := env[i-1], env[i]
	frac := (t - p0.Time) / (p1.Time - p0.Time)
	return p0.Intensity + (p1.Intensity-p0.Intensity)*frac, nil
}
