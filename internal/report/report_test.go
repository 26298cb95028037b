package report

import (
	"context"
	"strings"
	"testing"

	"gotrend/adapters/stats/engine"
	"gotrend/app"
	"gotrend/domain/trend"
)

func sampleAnalysis(t *testing.T, groups [][]float64) *app.Analysis {
	t.Helper()
	var obs []trend.Observation
	for g, values := range groups {
		for _, v := range values {
			obs = append(obs, trend.Observation{Value: v, Group: float64(g + 1)})
		}
	}
	service := app.NewTrendService(engine.NewEngine())
	analysis, err := service.Run(context.Background(), app.AnalysisRequest{Observations: obs})
	if err != nil {
		t.Fatalf("sample analysis failed: %v", err)
	}
	return analysis
}

func TestTextContainsCoreSections(t *testing.T) {
	analysis := sampleAnalysis(t, [][]float64{
		{1, 2, 3},
		{2, 4, 5},
		{5, 6, 8},
	})
	text := Text(analysis)

	for _, want := range []string{
		"=== TREND TEST RESULTS ===",
		"=== GROUP SUMMARIES ===",
		"=== OMNIBUS CHECK ===",
		"References:",
		"Jonckheere, A. R. (1954)",
		"Terpstra, T. J. (1952)",
		"1-2",
		"2-3",
		"JT score:",
		"p-value:",
		"Ordering: 1 < 2 < 3",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}

func TestTextOmitsOmnibusWhenDropped(t *testing.T) {
	analysis := sampleAnalysis(t, [][]float64{
		{4, 4, 4},
		{4, 4, 4},
	})
	if analysis.Kruskal != nil {
		t.Fatalf("expected dropped omnibus for identical values")
	}
	text := Text(analysis)
	if strings.Contains(text, "OMNIBUS") {
		t.Errorf("report should omit the omnibus section when it was dropped\n%s", text)
	}
	if !strings.Contains(text, "No statistically significant trend") {
		t.Errorf("flat data should read as no trend\n%s", text)
	}
}

func TestInterpretationThresholds(t *testing.T) {
	tests := []struct {
		name   string
		pvalue float64
		want   string
	}{
		{"very strong", 0.0005, "Very strong evidence"},
		{"strong", 0.005, "Strong evidence"},
		{"plain", 0.03, "Evidence of"},
		{"none", 0.2, "No statistically significant trend"},
	}

	for _, test := range tests {
		analysis := &app.Analysis{Trend: &trend.TestResult{JT: 1.5, PValue: test.pvalue}}
		got := Interpretation(analysis)
		if !strings.HasPrefix(got, test.want) {
			t.Errorf("%s: got %q, want prefix %q", test.name, got, test.want)
		}
	}
}

func TestMethodsMarkdown(t *testing.T) {
	doc := string(MethodsMarkdown())
	for _, want := range []string{
		"# Jonckheere-Terpstra Trend Test",
		"## Tie handling",
		"## References",
		"1 - Phi(JT)",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("methods document missing %q", want)
		}
	}
}

func TestCitationNamesBothSources(t *testing.T) {
	citation := Citation()
	if !strings.Contains(citation, "Jonckheere") || !strings.Contains(citation, "Terpstra") {
		t.Errorf("citation incomplete: %s", citation)
	}
}
