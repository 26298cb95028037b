package engine

import (
	"context"
	"math/rand"
	"testing"

	"gotrend/domain/trend"
)

func TestPairwiseU(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{name: "complete separation", x: []float64{1, 2}, y: []float64{3, 4}, want: 4},
		{name: "complete reversal", x: []float64{3, 4}, y: []float64{1, 2}, want: 0},
		{name: "single tie", x: []float64{1}, y: []float64{1}, want: 0.5},
		{name: "mixed wins and ties", x: []float64{1, 2, 2}, y: []float64{2, 3}, want: 5},
		{name: "identical multisets", x: []float64{1, 2, 2, 5}, y: []float64{2, 5, 1, 2}, want: 8},
		{name: "empty y", x: []float64{1, 2}, y: nil, want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := pairwiseU(test.x, test.y)
			if got != test.want {
				t.Errorf("expected U=%v, got %v", test.want, got)
			}
		})
	}
}

// Identical multisets must split every comparison evenly: U = Nx*Ny/2.
func TestPairwiseUSelfComparison(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2.5, 6, 5.5, 3}
	want := float64(len(data)*len(data)) / 2
	if got := pairwiseU(data, data); got != want {
		t.Errorf("expected U=%v for self comparison, got %v", want, got)
	}
}

func TestPairwiseUBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		nx := 1 + rng.Intn(20)
		ny := 1 + rng.Intn(20)
		x := make([]float64, nx)
		y := make([]float64, ny)
		for i := range x {
			// Coarse grid to force ties.
			x[i] = float64(rng.Intn(6))
		}
		for i := range y {
			y[i] = float64(rng.Intn(6))
		}

		u := pairwiseU(x, y)
		if u < 0 || u > float64(nx*ny) {
			t.Fatalf("trial %d: U=%v outside [0, %d]", trial, u, nx*ny)
		}
	}
}

func TestPairwiseUAgainstDirectRecount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	x := make([]float64, 30)
	y := make([]float64, 25)
	for i := range x {
		x[i] = float64(rng.Intn(10)) / 2
	}
	for i := range y {
		y[i] = float64(rng.Intn(10)) / 2
	}

	direct := 0.0
	for _, xv := range x {
		for _, yv := range y {
			switch {
			case yv > xv:
				direct++
			case yv == xv:
				direct += 0.5
			}
		}
	}

	if got := pairwiseU(x, y); got != direct {
		t.Errorf("expected U=%v from direct recount, got %v", direct, got)
	}
}

// Shuffling observations within their groups must not change any result.
func TestWithinGroupShuffleInvariance(t *testing.T) {
	obs := referenceObservations()
	baseline, err := NewEngine().JonckheereTerpstra(context.Background(), mustPartition(t, obs, nil))
	if err != nil {
		t.Fatalf("baseline run failed: %v", err)
	}

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]trend.Observation(nil), obs...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		result, err := NewEngine().JonckheereTerpstra(context.Background(), mustPartition(t, shuffled, nil))
		if err != nil {
			t.Fatalf("trial %d failed: %v", trial, err)
		}

		if result.UxySum != baseline.UxySum || result.JT != baseline.JT || result.PValue != baseline.PValue {
			t.Errorf("trial %d: result changed after shuffle: %+v vs %+v", trial, result, baseline)
		}
		for i, pair := range result.Pairs {
			if pair != baseline.Pairs[i] {
				t.Errorf("trial %d: pair %d changed: %+v vs %+v", trial, i, pair, baseline.Pairs[i])
			}
		}
	}
}

func TestAggregateBounds(t *testing.T) {
	part := mustPartition(t, referenceObservations(), nil)
	result, err := NewEngine().JonckheereTerpstra(context.Background(), part)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	capacity := 0.0
	for _, pair := range result.Pairs {
		max := float64(pair.Nx) * float64(pair.Ny)
		if pair.Uxy < 0 || pair.Uxy > max {
			t.Errorf("pair %s: Uxy=%v outside [0, %v]", pair.Label, pair.Uxy, max)
		}
		capacity += max
	}
	if result.UxySum < 0 || result.UxySum > capacity {
		t.Errorf("Uxy sum %v outside [0, %v]", result.UxySum, capacity)
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("p-value %v outside [0, 1]", result.PValue)
	}
}
