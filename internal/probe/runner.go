package probe

import (
	"context"
	"fmt"
	"sync"

	"github.com/ppiankov/s3reach/internal/address"
)

// ProgressCallback is called as probes complete.
type ProgressCallback func(current, total int, message string)

// Task is one unit of work for the runner: a valid address tagged with the
// caller's identity for re-joining results.
type Task struct {
	ID      int
	Address address.Address
}

// Result pairs a completed outcome with its task ID. Results arrive in
// completion order; callers needing input order re-sort by ID.
type Result struct {
	ID      int
	Outcome Outcome
}

// Runner fans probes out over a fixed-size worker pool. Every submitted
// task yields exactly one result, even when its probe panics.
type Runner struct {
	client           StorageClient
	concurrency      int
	progressCallback ProgressCallback
}

// NewRunner creates a runner with the given worker count.
func NewRunner(client StorageClient, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Runner{
		client:      client,
		concurrency: concurrency,
	}
}

// SetProgressCallback sets the progress callback function.
func (r *Runner) SetProgressCallback(callback ProgressCallback) {
	r.progressCallback = callback
}

// Run probes all tasks and returns one result per task. A failure inside
// any single probe is converted to a TransportError outcome and never
// aborts the batch or other in-flight probes.
func (r *Runner) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, 0, len(tasks))

	var wg sync.WaitGroup
	var mu sync.Mutex
	semaphore := make(chan struct{}, r.concurrency)

	total := len(tasks)
	current := 0

	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			outcome := r.probeSafely(ctx, task)

			mu.Lock()
			current++
			results = append(results, Result{ID: task.ID, Outcome: outcome})
			if r.progressCallback != nil {
				r.progressCallback(current, total, fmt.Sprintf("Checked %s", task.Address.URL()))
			}
			mu.Unlock()
		}(task)
	}

	wg.Wait()

	return results
}

// probeSafely is the per-task failure boundary: a panic inside the probe
// becomes a TransportError outcome instead of unwinding across the pool.
func (r *Runner) probeSafely(ctx context.Context, task Task) (outcome Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = Outcome{
				Address:        task.Address,
				Classification: TransportError,
				Detail:         fmt.Sprintf("Unexpected error: %v", rec),
			}
		}
	}()

	return Probe(ctx, r.client, task.Address)
}
