package engine

import (
	"context"
	"errors"
	"testing"

	"gotrend/domain/trend"
)

func TestKruskalWallisNoTies(t *testing.T) {
	obs := obsWithLabels(t, [][]float64{{1, 2}, {3, 4}})
	part := mustPartition(t, obs, nil)

	result, err := NewEngine().KruskalWallis(context.Background(), part)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(result.H, 2.4, 1e-9) {
		t.Errorf("expected H=2.4, got %v", result.H)
	}
	if result.DF != 1 {
		t.Errorf("expected 1 degree of freedom, got %d", result.DF)
	}
	if result.TieCorrection != 1 {
		t.Errorf("expected tie correction 1, got %v", result.TieCorrection)
	}
	if !almostEqual(result.PValue, 0.1213353, 1e-6) {
		t.Errorf("expected p approx 0.1213353, got %v", result.PValue)
	}
}

func TestKruskalWallisWithTies(t *testing.T) {
	obs := obsWithLabels(t, [][]float64{{1, 1}, {2, 2}})
	part := mustPartition(t, obs, nil)

	result, err := NewEngine().KruskalWallis(context.Background(), part)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(result.H, 3.0, 1e-9) {
		t.Errorf("expected H=3.0, got %v", result.H)
	}
	if !almostEqual(result.TieCorrection, 0.8, 1e-12) {
		t.Errorf("expected tie correction 0.8, got %v", result.TieCorrection)
	}
	if !almostEqual(result.PValue, 0.0832645, 1e-6) {
		t.Errorf("expected p approx 0.0832645, got %v", result.PValue)
	}
}

func TestKruskalWallisReferenceDataset(t *testing.T) {
	part := mustPartition(t, referenceObservations(), nil)

	result, err := NewEngine().KruskalWallis(context.Background(), part)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DF != 4 {
		t.Errorf("expected 4 degrees of freedom, got %d", result.DF)
	}
	if !almostEqual(result.H, 10.1033475, 1e-6) {
		t.Errorf("expected H approx 10.1033475, got %v", result.H)
	}
	if !almostEqual(result.TieCorrection, 0.9793808, 1e-6) {
		t.Errorf("expected tie correction approx 0.9793808, got %v", result.TieCorrection)
	}
	if !almostEqual(result.PValue, 0.0387223, 1e-6) {
		t.Errorf("expected p approx 0.0387223, got %v", result.PValue)
	}
}

func TestKruskalWallisDegenerateInput(t *testing.T) {
	single := mustPartition(t, obsWithLabels(t, [][]float64{{1, 2, 3}}), nil)
	if _, err := NewEngine().KruskalWallis(context.Background(), single); !errors.Is(err, trend.ErrDegenerateVariance) {
		t.Errorf("single group: expected degenerate variance error, got %v", err)
	}

	identical := mustPartition(t, obsWithLabels(t, [][]float64{{5, 5}, {5, 5}}), nil)
	if _, err := NewEngine().KruskalWallis(context.Background(), identical); !errors.Is(err, trend.ErrDegenerateVariance) {
		t.Errorf("identical values: expected degenerate variance error, got %v", err)
	}
}

func obsWithLabels(t *testing.T, groups [][]float64) []trend.Observation {
	t.Helper()
	var obs []trend.Observation
	for g, values := range groups {
		for _, v := range values {
			obs = append(obs, trend.Observation{Value: v, Group: float64(g + 1)})
		}
	}
	return obs
}
