package engine

import (
	"math"

	"gotrend/domain/trend"
)

// nullMoments returns the exact mean and variance of the U sum under the
// null hypothesis of no trend, from the group sizes alone:
//
//	mean = (N^2 - sum n_g^2) / 4
//	var  = (N^2 (2N+3) - sum n_g^2 (2 n_g + 3)) / 72
//
// Computed in float64 to stay exact for any realistic N (integers below
// 2^53 are representable).
func nullMoments(sizes []int) (mean, variance float64) {
	var n, sumSq, sumSqWeighted float64
	for _, size := range sizes {
		s := float64(size)
		n += s
		sumSq += s * s
		sumSqWeighted += s * s * (2*s + 3)
	}
	mean = (n*n - sumSq) / 4
	variance = (n*n*(2*n+3) - sumSqWeighted) / 72
	return mean, variance
}

// aggregate folds the pair statistics into the standardized trend score.
// Uxy values are summed in lexicographic pair order so repeated runs are
// bit-identical. The score keeps only the magnitude of the deviation; the
// right tail of the null is what gets reported.
func aggregate(pairs []trend.PairResult, sizes []int) (uSum, jt float64, err error) {
	for _, pair := range pairs {
		uSum += pair.Uxy
	}

	mean, variance := nullMoments(sizes)
	if variance <= 0 || math.IsNaN(variance) {
		return 0, 0, trend.NewDegenerateVarianceError(variance, len(sizes))
	}

	jt = math.Abs(uSum-mean) / math.Sqrt(variance)
	return uSum, jt, nil
}
