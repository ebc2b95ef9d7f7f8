package sim

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// BatchJob is one independent simulation: a process set under one policy.
type BatchJob struct {
	Name      string
	Processes []Process
	Policy    Policy
	// Trace, when non-nil, receives this job's decisions. Never share a trace across jobs.
	Trace *trace.SimulationTrace
}

// BatchResult is the outcome of a BatchJob. Exactly one of Result and Err is set.
type BatchResult struct {
	Name   string
	Policy string
	Result *Result
	Err    error
}

// RunBatch simulates jobs concurrently on at most workers goroutines and
// returns results in job order. Each simulation is sequential and owns its
// state, so jobs may share Process slices. Once ctx is done, jobs that have
// not started report ctx.Err().
func RunBatch(ctx context.Context, jobs []BatchJob, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(jobs))
	indices := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = runJob(ctx, jobs[i])
			}
		}()
	}

	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	logrus.Infof("batch: %d jobs on %d workers", len(jobs), workers)
	return results
}

func runJob(ctx context.Context, job BatchJob) BatchResult {
	br := BatchResult{Name: job.Name, Policy: job.Policy.Name()}
	if err := ctx.Err(); err != nil {
		br.Err = err
		return br
	}
	br.Result, br.Err = job.Policy.Schedule(job.Processes, job.Trace)
	return br
}
