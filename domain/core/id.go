package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// AnalysisID identifies one analysis run. Datasets are identified by their
// content hash instead, so they carry no separate ID type.
type AnalysisID ID

// String returns the string representation
func (id AnalysisID) String() string { return ID(id).String() }

// IsEmpty checks if the ID is empty
func (id AnalysisID) IsEmpty() bool { return id == "" }

// NewAnalysisID creates a fresh analysis identifier
func NewAnalysisID() AnalysisID {
	return AnalysisID(NewID())
}

// ParseAnalysisID parses a string into AnalysisID
func ParseAnalysisID(s string) (AnalysisID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("analysis ID cannot be empty")
	}
	return AnalysisID(s), nil
}
