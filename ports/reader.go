package ports

import (
	"gotrend/domain/trend"
)

// ReaderPort loads grouped observations from external data files
// This keeps file parsing out of the statistical core
type ReaderPort interface {
	// ReadObservations parses the configured source into raw
	// (value, group label) pairs in file order, without validating labels
	ReadObservations() ([]trend.Observation, error)
}
