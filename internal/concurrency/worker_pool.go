package concurrency

import (
	"context"
	"sync"
)

// WorkerFn handles task index. Each index in [0, tasks) is handed to
// exactly one call.
type WorkerFn func(ctx context.Context, index int)

// SimpleWorkerPool runs fn over tasks indexes on at most concurrency
// goroutines and waits for them. Indexes not yet handed out when ctx is
// cancelled are skipped.
func SimpleWorkerPool(ctx context.Context, concurrency int, tasks int, fn WorkerFn) {
	if tasks <= 0 {
		return
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > tasks {
		concurrency = tasks
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				fn(ctx, idx)
			}
		}()
	}

feed:
	for i := 0; i < tasks; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
}
