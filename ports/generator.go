package ports

import (
	"gotrend/domain/trend"
)

// GeneratorPort produces synthetic grouped datasets for demos and tests
type GeneratorPort interface {
	// Generate builds a deterministic dataset for the given seed: k groups
	// of the configured size whose locations shift by Effect per position
	Generate(spec GeneratorSpec) []trend.Observation
}

// GeneratorSpec describes the synthetic dataset to build
type GeneratorSpec struct {
	Groups    int
	GroupSize int
	Effect    float64
	Noise     float64
	Seed      int64
}
