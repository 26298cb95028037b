package ports

import (
	"context"

	"gotrend/domain/trend"
)

// EnginePort runs rank-based statistics over a partitioned dataset
type EnginePort interface {
	// JonckheereTerpstra computes per-pair U statistics, the standardized
	// trend score, and its right-tail p-value for the partition's ordering
	JonckheereTerpstra(ctx context.Context, part *trend.Partition) (*trend.TestResult, error)

	// KruskalWallis computes the tie-corrected omnibus H statistic over
	// the same partition
	KruskalWallis(ctx context.Context, part *trend.Partition) (*trend.KruskalResult, error)
}
