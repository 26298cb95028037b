package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized definitions shared across adapters
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrDatasetNotFound = fmt.Errorf("%w: dataset file", ErrNotFound)

	// Ingestion errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumn     = errors.New("required column missing")
	ErrEmptyDataset      = errors.New("dataset contains no data rows")
	ErrBadCell           = errors.New("cell value is not numeric")
)

// Error constructors with context
func NewNotFoundError(resource string, path string) error {
	return fmt.Errorf("%w: %s at %s", ErrNotFound, resource, path)
}

func NewMissingColumnError(column string, headers []string) error {
	return fmt.Errorf("%w: %q (available: %v)", ErrMissingColumn, column, headers)
}

func NewBadCellError(column string, row int, raw string) error {
	return fmt.Errorf("%w: column %q row %d value %q", ErrBadCell, column, row, raw)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsIngestionError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrBadCell)
}
