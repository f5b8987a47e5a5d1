package executor

import (
	"context"

	"github.com/vk/formulago/internal/ctxlog"
	"github.com/vk/formulago/internal/formula"
)

// worker is the processing loop for a single concurrent worker. Workers
// share nothing mutable beyond the jobs channel and their disjoint result
// slots, so no locking is needed around the results slice.
func (e *Executor) worker(ctx context.Context, workerID int, paths []string, results []Result, jobs <-chan int) {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for i := range jobs {
		path := paths[i]
		if err := ctx.Err(); err != nil {
			results[i] = Result{Path: path, Err: err}
			continue
		}

		record, err := formula.Parse(path)
		if err != nil {
			logger.Debug("Formula parse failed.", "path", path, "error", err)
			results[i] = Result{Path: path, Err: err}
			continue
		}

		logger.Debug("Formula parsed.", "path", path, "name", record.Name)
		results[i] = Result{Path: path, Record: record}
	}

	logger.Debug("Worker finished.")
}
