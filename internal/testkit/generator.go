// Package testkit provides synthetic datasets for demos and tests.
package testkit

import (
	"math/rand"

	"gotrend/domain/trend"
	"gotrend/ports"
)

// TrendDataGenerator produces grouped observations whose group means shift
// by a fixed step per position. Effect 0 gives a null dataset; larger
// values give a stronger monotone trend.
type TrendDataGenerator struct{}

// NewTrendDataGenerator creates a synthetic trend data generator
func NewTrendDataGenerator() *TrendDataGenerator {
	return &TrendDataGenerator{}
}

// DefaultGeneratorSpec returns sensible defaults for demo datasets
func DefaultGeneratorSpec() ports.GeneratorSpec {
	return ports.GeneratorSpec{
		Groups:    4,
		GroupSize: 12,
		Effect:    0.8,
		Noise:     1.0,
		Seed:      42,
	}
}

// Generate draws group g from N(Effect*(g-1), Noise^2). The same spec
// always produces the same observations. A spec below the minimum viable
// shape falls back to the defaults field by field.
func (g *TrendDataGenerator) Generate(spec ports.GeneratorSpec) []trend.Observation {
	spec = normalize(spec)
	rng := rand.New(rand.NewSource(spec.Seed))

	obs := make([]trend.Observation, 0, spec.Groups*spec.GroupSize)
	for label := 1; label <= spec.Groups; label++ {
		shift := spec.Effect * float64(label-1)
		for i := 0; i < spec.GroupSize; i++ {
			obs = append(obs, trend.Observation{
				Value: shift + rng.NormFloat64()*spec.Noise,
				Group: float64(label),
			})
		}
	}
	return obs
}

func normalize(spec ports.GeneratorSpec) ports.GeneratorSpec {
	defaults := DefaultGeneratorSpec()
	if spec.Groups < 2 {
		spec.Groups = defaults.Groups
	}
	if spec.GroupSize < 1 {
		spec.GroupSize = defaults.GroupSize
	}
	if spec.Noise <= 0 {
		spec.Noise = defaults.Noise
	}
	return spec
}
