package engine

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// upperTail returns the right-tail probability 1 - Phi(z) of the standard
// normal distribution. For the folded JT score z >= 0, so the result lies
// in (0, 0.5].
func upperTail(z float64) float64 {
	return 1 - stdNormal.CDF(z)
}
