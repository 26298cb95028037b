package engine

import "sort"

// midranks assigns 1-based ranks to data, averaging ranks across tied
// values. Input order is preserved in the output: ranks[i] is the rank of
// data[i].
func midranks(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return []float64{}
	}

	type pair struct {
		value float64
		index int
	}

	pairs := make([]pair, n)
	for i, val := range data {
		pairs[i] = pair{value: val, index: i}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i + 1
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}

		groupSize := j - i
		avgRank := float64(i+1) + float64(groupSize-1)/2.0
		for k := i; k < j; k++ {
			ranks[pairs[k].index] = avgRank
		}

		i = j
	}

	return ranks
}

// tieCorrection returns the Kruskal-Wallis tie factor 1 - sum(t^3-t) over
// (N^3-N), where t runs over the sizes of tied value groups. Zero means
// every value is identical.
func tieCorrection(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	tieSum := 0.0
	i := 0
	for i < n {
		j := i + 1
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		t := float64(j - i)
		tieSum += t*t*t - t
		i = j
	}

	nf := float64(n)
	return 1 - tieSum/(nf*nf*nf-nf)
}
