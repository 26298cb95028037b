// Package report renders analysis results for terminals and documents.
package report

import (
	"fmt"
	"strings"

	"gotrend/app"
	"gotrend/domain/trend"
)

// Text renders the full console report for an analysis.
func Text(analysis *app.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== TREND TEST RESULTS ===\n")
	fmt.Fprintf(&b, "Analysis: %s\n", analysis.AnalysisID)
	fmt.Fprintf(&b, "Created:  %s\n", analysis.CreatedAt)
	fmt.Fprintf(&b, "Dataset:  %d observations in %d ordered groups\n", analysis.N, len(analysis.GroupSizes))
	fmt.Fprintf(&b, "Hash:     %s\n", shortHash(analysis.DatasetHash.String()))
	fmt.Fprintf(&b, "Ordering: %s\n", orderingString(analysis.Ordering))

	fmt.Fprintf(&b, "\nPair      Nx    Ny         Uxy         Max\n")
	for _, pair := range analysis.Trend.Pairs {
		maxU := float64(pair.Nx * pair.Ny)
		fmt.Fprintf(&b, "%-8s %3d   %3d   %9.2f   %9.2f\n", pair.Label, pair.Nx, pair.Ny, pair.Uxy, maxU)
	}

	fmt.Fprintf(&b, "\nSum of pairwise U: %.2f\n", analysis.Trend.UxySum)
	fmt.Fprintf(&b, "JT score:          %.4f (standardized, %s tail)\n", analysis.Trend.JT, analysis.Trend.Tail)
	fmt.Fprintf(&b, "p-value:           %.4f\n", analysis.Trend.PValue)
	fmt.Fprintf(&b, "\n%s\n", Interpretation(analysis))

	fmt.Fprintf(&b, "\n=== GROUP SUMMARIES ===\n")
	b.WriteString(SummaryTable(analysis.Summaries))

	if analysis.Kruskal != nil {
		fmt.Fprintf(&b, "\n=== OMNIBUS CHECK ===\n")
		fmt.Fprintf(&b, "Kruskal-Wallis H = %.4f (df=%d, tie correction %.4f), p = %.4f\n",
			analysis.Kruskal.H, analysis.Kruskal.DF, analysis.Kruskal.TieCorrection, analysis.Kruskal.PValue)
	}

	fmt.Fprintf(&b, "\n%s\n", Citation())
	fmt.Fprintf(&b, "\nRuntime: %dms\n", analysis.RuntimeMs)

	return b.String()
}

// SummaryTable formats per-group descriptive statistics, one row per
// ordered position.
func SummaryTable(summaries []trend.GroupSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pos  Label    N       Mean     Median     StdDev        Min        Max\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%3d  %5d  %3d  %9.3f  %9.3f  %9.3f  %9.3f  %9.3f\n",
			s.Position, s.Label, s.N, s.Mean, s.Median, s.StdDev, s.Min, s.Max)
	}
	return b.String()
}

// Interpretation gives a one-line reading of the trend statistic. The score
// is an absolute deviation, so no direction is claimed; the evidence is for
// a monotone trend along the supplied ordering.
func Interpretation(analysis *app.Analysis) string {
	jt := analysis.Trend.JT
	p := analysis.Trend.PValue
	switch {
	case p < 0.001:
		return fmt.Sprintf("Very strong evidence of a monotone trend across ordered groups (JT=%.3f, p=%.4f)", jt, p)
	case p < 0.01:
		return fmt.Sprintf("Strong evidence of a monotone trend across ordered groups (JT=%.3f, p=%.3f)", jt, p)
	case p < 0.05:
		return fmt.Sprintf("Evidence of a monotone trend across ordered groups (JT=%.3f, p=%.3f)", jt, p)
	default:
		return fmt.Sprintf("No statistically significant trend across ordered groups (JT=%.3f, p=%.3f)", jt, p)
	}
}

// Citation returns the reference block printed under every report.
func Citation() string {
	return strings.Join([]string{
		"References:",
		"  Jonckheere, A. R. (1954). A distribution-free k-sample test against",
		"  ordered alternatives. Biometrika 41(1/2), 133-145.",
		"  Terpstra, T. J. (1952). The asymptotic normality and consistency of",
		"  Kendall's test against trend, when ties are present in one ranking.",
		"  Indagationes Mathematicae 14(3), 327-333.",
	}, "\n")
}

func shortHash(h string) string {
	if len(h) > 16 {
		return h[:16]
	}
	return h
}

func orderingString(ord []int) string {
	parts := make([]string, len(ord))
	for i, g := range ord {
		parts[i] = fmt.Sprintf("%d", g)
	}
	return strings.Join(parts, " < ")
}
