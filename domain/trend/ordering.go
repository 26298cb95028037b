package trend

import (
	"fmt"
	"strconv"
	"strings"
)

// Ordering maps positions to group labels: position p (1-based) holds the
// group labeled Ordering[p-1]. The hypothesized trend runs from position 1
// upward, so an ordering of [3 1 2] tests whether group 3 tends lowest and
// group 2 highest. It must be a permutation of 1..k.
type Ordering []int

// DefaultOrdering returns the identity ordering 1..k.
func DefaultOrdering(k int) Ordering {
	ord := make(Ordering, k)
	for i := range ord {
		ord[i] = i + 1
	}
	return ord
}

// ParseOrdering reads a comma-separated ordering such as "3,1,2". An empty
// or blank string means the natural label order and parses to nil.
func ParseOrdering(s string) (Ordering, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ordering := make(Ordering, 0, len(parts))
	for _, part := range parts {
		label, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid ordering entry %q: %w", part, err)
		}
		ordering = append(ordering, label)
	}
	return ordering, nil
}

// Validate checks that the ordering is a permutation of 1..k.
func (o Ordering) Validate(k int) error {
	if len(o) != k {
		return fmt.Errorf("%w: got %d entries for %d groups", ErrInvalidOrderingLength, len(o), k)
	}
	seen := make([]bool, k)
	for i, label := range o {
		if label < 1 || label > k {
			return fmt.Errorf("%w: entry %d is %d", ErrInvalidOrderingValues, i, label)
		}
		if seen[label-1] {
			return fmt.Errorf("%w: label %d repeats", ErrOrderingNotPermutation, label)
		}
		seen[label-1] = true
	}
	return nil
}

// IsIdentity reports whether the ordering leaves labels in place.
func (o Ordering) IsIdentity() bool {
	for i, label := range o {
		if label != i+1 {
			return false
		}
	}
	return true
}
