package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseAnalysisID tests analysis ID parsing
func TestParseAnalysisID(t *testing.T) {
	tests := []struct {
		input    string
		expected AnalysisID
		hasError bool
	}{
		{"valid-id", AnalysisID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseAnalysisID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestComputeDatasetHashOrderSensitive tests that presentation order changes the fingerprint
func TestComputeDatasetHashOrderSensitive(t *testing.T) {
	a := ComputeDatasetHash([]float64{1, 2, 3}, []float64{1, 1, 2})
	b := ComputeDatasetHash([]float64{3, 2, 1}, []float64{2, 1, 1})
	if a.String() == "" || b.String() == "" {
		t.Fatal("Expected non-empty hashes")
	}
	if a == b {
		t.Error("Expected different fingerprints for reordered streams")
	}

	c := ComputeDatasetHash([]float64{1, 2, 3}, []float64{1, 1, 2})
	if a != c {
		t.Error("Expected identical fingerprints for identical streams")
	}
}
