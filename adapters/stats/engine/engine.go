package engine

import (
	"context"

	"gotrend/domain/trend"
)

// Engine computes rank-based trend statistics over a partitioned dataset.
// The zero value is not usable; construct with NewEngine.
type Engine struct {
	maxParallel int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallelism bounds how many pair computations may run concurrently.
// Values below 2 keep the engine serial.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxParallel = int64(n)
		}
	}
}

// NewEngine creates a new statistical engine. Pairs are computed serially
// unless WithParallelism raises the bound.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{maxParallel: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// JonckheereTerpstra runs the full trend computation over the partition:
// per-pair U statistics, the standardized JT score, and its right-tail
// p-value. The partition's group data is never mutated.
func (e *Engine) JonckheereTerpstra(ctx context.Context, part *trend.Partition) (*trend.TestResult, error) {
	pairs, err := e.computePairs(ctx, part)
	if err != nil {
		return nil, err
	}

	uSum, jt, err := aggregate(pairs, part.Sizes())
	if err != nil {
		return nil, err
	}

	return &trend.TestResult{
		Pairs:  pairs,
		UxySum: uSum,
		JT:     jt,
		PValue: upperTail(jt),
		Tail:   trend.TailRight,
	}, nil
}
