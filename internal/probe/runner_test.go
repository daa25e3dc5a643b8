package probe

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/s3reach/internal/address"
)

// panickyClient panics for designated buckets and tracks peak concurrency.
type panickyClient struct {
	panicBuckets map[string]bool

	mu      sync.Mutex
	active  int
	peak    int
	started chan struct{}
}

func (c *panickyClient) enter() {
	c.mu.Lock()
	c.active++
	if c.active > c.peak {
		c.peak = c.active
	}
	c.mu.Unlock()
}

func (c *panickyClient) exit() {
	c.mu.Lock()
	c.active--
	c.mu.Unlock()
}

func (c *panickyClient) LocateBucket(ctx context.Context, bucket string) error {
	c.enter()
	defer c.exit()
	if c.panicBuckets[bucket] {
		panic("probe exploded for " + bucket)
	}
	return nil
}

func (c *panickyClient) StatObject(ctx context.Context, bucket, key string) error {
	c.enter()
	defer c.exit()
	return nil
}

func TestRunner_OneResultPerTask(t *testing.T) {
	client := &panickyClient{
		panicBuckets: map[string]bool{"boom-3": true, "boom-7": true},
	}

	var tasks []Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, Task{ID: i, Address: address.Address{Bucket: fmt.Sprintf("boom-%d", i)}})
	}
	// Only 3 and 7 actually panic; rename the rest.
	for i := range tasks {
		if i != 3 && i != 7 {
			tasks[i].Address.Bucket = fmt.Sprintf("bucket-%d", i)
		}
	}

	results := NewRunner(client, 4).Run(context.Background(), tasks)
	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(results))
	}

	seen := make(map[int]Outcome)
	for _, res := range results {
		if _, dup := seen[res.ID]; dup {
			t.Fatalf("duplicate result for task %d", res.ID)
		}
		seen[res.ID] = res.Outcome
	}

	for _, id := range []int{3, 7} {
		out, ok := seen[id]
		if !ok {
			t.Fatalf("missing result for panicking task %d", id)
		}
		if out.Classification != TransportError {
			t.Fatalf("task %d: expected TransportError, got %v", id, out.Classification)
		}
		if out.Reachable {
			t.Fatalf("task %d: panicked probe must not be reachable", id)
		}
	}
	if seen[0].Classification != BucketOK {
		t.Fatalf("task 0: expected BucketOK, got %v", seen[0].Classification)
	}
}

func TestRunner_ConcurrencyBound(t *testing.T) {
	client := &panickyClient{}

	var tasks []Task
	for i := 0; i < 50; i++ {
		tasks = append(tasks, Task{ID: i, Address: address.Address{Bucket: fmt.Sprintf("bucket-%d", i)}})
	}

	NewRunner(client, 3).Run(context.Background(), tasks)

	if client.peak > 3 {
		t.Fatalf("expected at most 3 concurrent probes, observed %d", client.peak)
	}
}

func TestRunner_DefaultConcurrency(t *testing.T) {
	r := NewRunner(&panickyClient{}, 0)
	if r.concurrency != 5 {
		t.Fatalf("expected default concurrency 5, got %d", r.concurrency)
	}
}

func TestRunner_Progress(t *testing.T) {
	client := &panickyClient{}
	runner := NewRunner(client, 2)

	var calls atomic.Int64
	runner.SetProgressCallback(func(current, total int, message string) {
		calls.Add(1)
		if total != 5 {
			t.Errorf("expected total 5, got %d", total)
		}
	})

	var tasks []Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, Task{ID: i, Address: address.Address{Bucket: fmt.Sprintf("bucket-%d", i)}})
	}
	runner.Run(context.Background(), tasks)

	if calls.Load() != 5 {
		t.Fatalf("expected 5 progress calls, got %d", calls.Load())
	}
}

func TestRunner_EmptyBatch(t *testing.T) {
	results := NewRunner(&panickyClient{}, 2).Run(context.Background(), nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
