package executor

import (
	"context"
	"sync"

	"github.com/vk/formulago/internal/ctxlog"
	"github.com/vk/formulago/internal/formula"
)

// Result pairs one formula path with the outcome of its extraction. Exactly
// one of Record and Err is set.
type Result struct {
	Path   string
	Record *formula.Record
	Err    error
}

// Executor fans formula paths out to a fixed number of workers. Parsing is
// safe to parallelize because every parse owns its own capture state.
type Executor struct {
	workers int
}

// New returns an executor with the given worker count. Counts below one are
// clamped to one.
func New(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers}
}

// Run parses every path and returns one result per path, in input order. A
// failed parse is recorded in its result and the batch continues; only a
// cancelled context stops work early, in which case the unprocessed results
// carry the context error.
func (e *Executor) Run(ctx context.Context, paths []string) []Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting.", "paths", len(paths), "workers", e.workers)

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for workerID := 0; workerID < e.workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			e.worker(ctx, workerID, paths, results, jobs)
		}(workerID)
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Debug("Executor finished.")
	return results
}
