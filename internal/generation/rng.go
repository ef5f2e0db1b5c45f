package generation

// RNG is a simple seeded random number generator (LCG). The same seed always
// yields the same sequence, so a seeded sky looks the same on every run.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Span returns a pseudo-random float64 in [-extent, extent)
func (r *RNG) Span(extent float64) float64 {
	return (r.Float64() - 0.5) * 2 * extent
}
