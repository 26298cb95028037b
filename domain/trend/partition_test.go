package trend

import (
	"errors"
	"testing"
)

func TestNewPartitionIdentity(t *testing.T) {
	obs := obsFrom(
		[]float64{10, 20, 11, 21, 12, 30},
		[]float64{1, 2, 1, 2, 1, 3},
	)

	part, err := NewPartition(obs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if part.K() != 3 {
		t.Fatalf("expected 3 groups, got %d", part.K())
	}
	if part.N() != 6 {
		t.Errorf("expected 6 observations, got %d", part.N())
	}

	wantSizes := []int{3, 2, 1}
	for i, size := range part.Sizes() {
		if size != wantSizes[i] {
			t.Errorf("position %d: expected size %d, got %d", i+1, wantSizes[i], size)
		}
	}

	// Within-group input order must be preserved.
	wantFirst := []float64{10, 11, 12}
	for i, v := range part.Groups[0] {
		if v != wantFirst[i] {
			t.Errorf("group 1 element %d: expected %v, got %v", i, wantFirst[i], v)
		}
	}

	if part.PairCount() != 3 {
		t.Errorf("expected 3 position pairs, got %d", part.PairCount())
	}
}

func TestNewPartitionAppliesOrdering(t *testing.T) {
	obs := obsFrom(
		[]float64{1, 2, 3},
		[]float64{1, 2, 3},
	)

	part, err := NewPartition(obs, Ordering{3, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLabels := []int{3, 1, 2}
	for i, label := range part.Labels {
		if label != wantLabels[i] {
			t.Errorf("position %d: expected label %d, got %d", i+1, wantLabels[i], label)
		}
	}

	// Position 1 now holds group 3's data.
	if len(part.Groups[0]) != 1 || part.Groups[0][0] != 3 {
		t.Errorf("expected position 1 to hold [3], got %v", part.Groups[0])
	}
	if len(part.Groups[1]) != 1 || part.Groups[1][0] != 1 {
		t.Errorf("expected position 2 to hold [1], got %v", part.Groups[1])
	}
}

func TestNewPartitionRejectsBadInput(t *testing.T) {
	valid := obsFrom([]float64{1, 2, 3}, []float64{1, 2, 3})

	if _, err := NewPartition(obsFrom([]float64{1, 2}, []float64{1, 3}), nil); !errors.Is(err, ErrNonConsecutiveGroups) {
		t.Errorf("expected non-consecutive groups error, got %v", err)
	}
	if _, err := NewPartition(valid, Ordering{1, 2}); !errors.Is(err, ErrInvalidOrderingLength) {
		t.Errorf("expected ordering length error, got %v", err)
	}
	if _, err := NewPartition(valid, Ordering{1, 2, 2}); !errors.Is(err, ErrOrderingNotPermutation) {
		t.Errorf("expected permutation error, got %v", err)
	}
}
