package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"gotrend/domain/trend"
)

// pairwiseU computes the directional Mann-Whitney count of y over x: each
// of the Nx*Ny comparisons contributes 1 when y > x and 0.5 when y == x.
// Win and tie counts are accumulated as integers and combined once, so the
// result is exact (always a multiple of 0.5).
func pairwiseU(x, y []float64) float64 {
	wins := 0
	ties := 0
	for _, xv := range x {
		for _, yv := range y {
			if yv > xv {
				wins++
			} else if yv == xv {
				ties++
			}
		}
	}
	return float64(wins) + 0.5*float64(ties)
}

type pairJob struct {
	slot int
	i, j int // 0-based positions, i < j
}

// computePairs evaluates every position pair I < J in lexicographic order.
// The parallel path assigns each pair its own result slot, so the returned
// slice is identical to a serial run regardless of completion order.
func (e *Engine) computePairs(ctx context.Context, part *trend.Partition) ([]trend.PairResult, error) {
	jobs := make([]pairJob, 0, part.PairCount())
	slot := 0
	for i := 0; i < part.K()-1; i++ {
		for j := i + 1; j < part.K(); j++ {
			jobs = append(jobs, pairJob{slot: slot, i: i, j: j})
			slot++
		}
	}

	if e.maxParallel > 1 && len(jobs) > 1 {
		return e.runPairsParallel(ctx, part, jobs)
	}
	return e.runPairsSerial(ctx, part, jobs)
}

func (e *Engine) runPairsSerial(ctx context.Context, part *trend.Partition, jobs []pairJob) ([]trend.PairResult, error) {
	results := make([]trend.PairResult, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results[job.slot] = evaluatePair(part, job)
	}
	return results, nil
}

func (e *Engine) runPairsParallel(ctx context.Context, part *trend.Partition, jobs []pairJob) ([]trend.PairResult, error) {
	results := make([]trend.PairResult, len(jobs))
	sem := semaphore.NewWeighted(e.maxParallel)

	var wg sync.WaitGroup
	var acquireErr error
	for _, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			acquireErr = err
			break
		}
		wg.Add(1)
		go func(job pairJob) {
			defer wg.Done()
			defer sem.Release(1)
			results[job.slot] = evaluatePair(part, job)
		}(job)
	}
	wg.Wait()

	if acquireErr != nil {
		return nil, acquireErr
	}
	return results, nil
}

func evaluatePair(part *trend.Partition, job pairJob) trend.PairResult {
	x := part.Groups[job.i]
	y := part.Groups[job.j]
	return trend.PairResult{
		Label: trend.PairLabel(job.i+1, job.j+1),
		Nx:    len(x),
		Ny:    len(y),
		Uxy:   pairwiseU(x, y),
	}
}
