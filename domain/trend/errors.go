package trend

import (
	"errors"
	"fmt"
)

// Validation and computation errors. Input is rejected before any statistic
// is computed; a caller sees either a complete TestResult or one of these.
var (
	ErrInvalidGroupLabels     = errors.New("group labels must be whole numbers")
	ErrNonConsecutiveGroups   = errors.New("group labels must be consecutive integers starting at 1")
	ErrNonFiniteValue         = errors.New("observation values must be finite")
	ErrInvalidOrderingLength  = errors.New("ordering length must equal the number of groups")
	ErrInvalidOrderingValues  = errors.New("ordering entries must be group labels between 1 and k")
	ErrOrderingNotPermutation = errors.New("ordering must use each group label exactly once")
	ErrDegenerateVariance     = errors.New("null variance is not positive")
)

// Error constructors with context
func NewLabelError(index int, label float64) error {
	return fmt.Errorf("%w: observation %d has label %v", ErrInvalidGroupLabels, index, label)
}

func NewValueError(index int, value float64) error {
	return fmt.Errorf("%w: observation %d has value %v", ErrNonFiniteValue, index, value)
}

func NewGroupGapError(missing int, k int) error {
	return fmt.Errorf("%w: label %d absent from 1..%d", ErrNonConsecutiveGroups, missing, k)
}

func NewDegenerateVarianceError(variance float64, k int) error {
	return fmt.Errorf("%w: var=%v for k=%d groups", ErrDegenerateVariance, variance, k)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidGroupLabels) ||
		errors.Is(err, ErrNonConsecutiveGroups) ||
		errors.Is(err, ErrNonFiniteValue) ||
		IsOrderingError(err)
}

func IsOrderingError(err error) bool {
	return errors.Is(err, ErrInvalidOrderingLength) ||
		errors.Is(err, ErrInvalidOrderingValues) ||
		errors.Is(err, ErrOrderingNotPermutation)
}
