// Package parallel provides a small fixed-size worker pool used to fan
// independent tasks out over goroutines.
package parallel

import (
	"fmt"
	"os"
	"sync"
)

// WorkerPool manages a pool of worker goroutines draining a shared
// task queue. Tasks are plain closures; a panicking task is recovered
// so it cannot take the worker down with it.
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // protects taskQueue from concurrent close during send
	closed    bool         // protected by mu
}

// NewWorkerPool creates a pool with the given number of workers.
// Non-positive counts are clamped to one worker.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
	}
	pool.start()
	return pool
}

func (wp *WorkerPool) start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "worker panic recovered: %v\n", r)
				}
			}()
			task()
		}()
	}
}

// Submit adds a task to the pool.
// Returns false if the pool is closed, true if the task was queued.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}

	// Safe to send while holding the read lock: Close takes the write
	// lock before closing the channel.
	wp.taskQueue <- task
	return true
}

// Close shuts the pool down and blocks until queued tasks finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// Wait waits for all submitted tasks to complete. The pool cannot be
// reused afterwards.
func (wp *WorkerPool) Wait() {
	wp.Close()
}
