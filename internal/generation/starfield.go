package generation

const (
	DefaultStarCount  = 6000
	DefaultStarExtent = 1000.0
)

// StarfieldConfig controls point cloud generation
type StarfieldConfig struct {
	Seed   uint64
	Count  int
	Extent float64
}

// GenerateStarfield returns a flat xyz buffer of Count points with every
// coordinate sampled independently and uniformly from [-Extent, Extent]
func GenerateStarfield(cfg StarfieldConfig) []float32 {
	if cfg.Count <= 0 {
		return []float32{}
	}
	rng := NewRNG(cfg.Seed)
	buf := make([]float32, 0, cfg.Count*3)
	for i := 0; i < cfg.Count; i++ {
		buf = append(buf,
			float32(rng.Span(cfg.Extent)),
			float32(rng.Span(cfg.Extent)),
			float32(rng.Span(cfg.Extent)),
		)
	}
	return buf
}
