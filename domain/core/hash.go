package core

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strconv"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// DatasetHash fingerprints an observation stream so two runs over the same
// input can be recognized as comparable.
type DatasetHash Hash

// NewDatasetHash creates a dataset hash from raw bytes
func NewDatasetHash(data []byte) DatasetHash { return DatasetHash(NewHash(data)) }

func (h DatasetHash) String() string { return Hash(h).String() }

// IsEmpty checks if the hash is empty
func (h DatasetHash) IsEmpty() bool { return Hash(h).IsEmpty() }

// ComputeDatasetHash hashes (value, label) pairs in presentation order.
// The fingerprint is order-sensitive: the same multiset presented in a
// different order hashes differently.
func ComputeDatasetHash(values, labels []float64) DatasetHash {
	buf := make([]byte, 0, len(values)*36)
	for i := range values {
		buf = strconv.AppendUint(buf, math.Float64bits(values[i]), 16)
		buf = append(buf, ':')
		label := math.NaN()
		if i < len(labels) {
			label = labels[i]
		}
		buf = strconv.AppendUint(buf, math.Float64bits(label), 16)
		buf = append(buf, ';')
	}
	return NewDatasetHash(buf)
}
