package app

import (
	"github.com/montanaflynn/stats"

	"gotrend/domain/trend"
)

// GroupSummaries computes descriptive statistics per ordered position.
// The stats library errors only on empty input, which the partition rules out.
func GroupSummaries(part *trend.Partition) []trend.GroupSummary {
	summaries := make([]trend.GroupSummary, part.K())
	for p, group := range part.Groups {
		mean, _ := stats.Mean(group)
		median, _ := stats.Median(group)
		stdDev, _ := stats.StandardDeviation(group)
		minValue, _ := stats.Min(group)
		maxValue, _ := stats.Max(group)
		summaries[p] = trend.GroupSummary{
			Position: p + 1,
			Label:    part.Labels[p],
			N:        len(group),
			Mean:     mean,
			Median:   median,
			StdDev:   stdDev,
			Min:      minValue,
			Max:      maxValue,
		}
	}
	return summaries
}
