package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ExecutesAllTasks(t *testing.T) {
	pool := NewWorkerPool(5)

	numTasks := 50
	executed := make([]bool, numTasks)
	var mu sync.Mutex

	for i := 0; i < numTasks; i++ {
		taskID := i
		if !pool.Submit(func() {
			mu.Lock()
			executed[taskID] = true
			mu.Unlock()
		}) {
			t.Fatalf("Submit of task %d failed", taskID)
		}
	}

	pool.Wait()

	for i, done := range executed {
		if !done {
			t.Errorf("Task %d was not executed", i)
		}
	}
}

func TestWorkerPool_ClampsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(-3)
	defer pool.Close()

	if !pool.Submit(func() {}) {
		t.Errorf("Pool with clamped worker count must accept tasks")
	}
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.Submit(func() { t.Error("Task after close must never run") }) {
		t.Errorf("Submit after close must return false")
	}
}

func TestWorkerPool_MultipleCloseSafe(t *testing.T) {
	pool := NewWorkerPool(2)
	for i := 0; i < 10; i++ {
		pool.Submit(func() {})
	}

	pool.Close()
	pool.Close()
	pool.Close()
}

func TestWorkerPool_CloseRacesWithSubmit(t *testing.T) {
	for iteration := 0; iteration < 50; iteration++ {
		pool := NewWorkerPool(4)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					// May legitimately fail once the pool closes
					pool.Submit(func() {})
				}
			}()
		}

		pool.Close()
		wg.Wait()
	}
}

func TestWorkerPool_RecoversTaskPanic(t *testing.T) {
	pool := NewWorkerPool(2)

	var counter int64
	for i := 0; i < 5; i++ {
		pool.Submit(func() {
			panic("intentional panic")
		})
	}
	for i := 0; i < 10; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}

	pool.Wait()

	if counter != 10 {
		t.Errorf("Expected 10 tasks to run after panics, got %d", counter)
	}
}
