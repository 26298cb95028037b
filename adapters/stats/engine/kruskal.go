package engine

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"gotrend/domain/trend"
)

// KruskalWallis computes the tie-corrected omnibus H statistic over the
// partition. It asks whether any group differs in location, without the
// ordering assumption the trend statistic makes.
func (e *Engine) KruskalWallis(ctx context.Context, part *trend.Partition) (*trend.KruskalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := part.K()
	n := part.N()
	if k < 2 {
		return nil, fmt.Errorf("%w: need at least 2 groups, have %d", trend.ErrDegenerateVariance, k)
	}

	pooled := make([]float64, 0, n)
	owner := make([]int, 0, n)
	for p, group := range part.Groups {
		for _, v := range group {
			pooled = append(pooled, v)
			owner = append(owner, p)
		}
	}

	ranks := midranks(pooled)
	rankSums := make([]float64, k)
	for i, r := range ranks {
		rankSums[owner[i]] += r
	}

	nf := float64(n)
	h := 0.0
	for p, rs := range rankSums {
		h += rs * rs / float64(len(part.Groups[p]))
	}
	h = 12/(nf*(nf+1))*h - 3*(nf+1)

	correction := tieCorrection(pooled)
	if correction <= 0 {
		return nil, fmt.Errorf("%w: all pooled values identical", trend.ErrDegenerateVariance)
	}
	h /= correction

	chi := distuv.ChiSquared{K: float64(k - 1)}
	return &trend.KruskalResult{
		H:             h,
		DF:            k - 1,
		PValue:        1 - chi.CDF(h),
		TieCorrection: correction,
	}, nil
}
