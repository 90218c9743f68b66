package builder

// validateMin ensures n ≥ MinAgents.
// Returns "<method>: n=<n> < min=1: builder: too few agents" otherwise.
func validateMin(method string, n int) error {
	if n < MinAgents {
		return builderErrorf(method, ErrTooFewAgents, "n=%d < min=%d", n, MinAgents)
	}

	return nil
}

// validateRNG ensures the resolved configuration carries an RNG.
func validateRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}
