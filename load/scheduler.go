package load

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

var (
	poolOnce sync.Once
	pool     worker.DynamicWorkerPool
)

// workerPool returns the pool shared by all loaders, creating it on first
// use. The pool lives for the rest of the process.
func workerPool() worker.DynamicWorkerPool {
	poolOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		pool = worker.NewDynamicWorkerPool(n, 4*n, time.Second)
	})
	return pool
}

// fanOut runs fn for each i in [0, n) on the shared worker pool, and blocks
// until all calls have returned. At most l.Workers calls run at once when
// Workers is positive. Calls must not submit further tasks to the pool.
// Returns the error of the lowest i that failed.
func (l *Loader) fanOut(n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	p := workerPool()
	var slots chan struct{}
	if l.Workers > 0 {
		slots = make(chan struct{}, l.Workers)
	}
	errs := make([]error, n)
	// pool.Wait returns before running tasks complete, and would also wait
	// on tasks of other loaders, so each stage joins on its own barrier.
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		if slots != nil {
			slots <- struct{}{}
		}
		p.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if slots != nil {
					defer func() { <-slots }()
				}
				defer func() {
					if r := recover(); r != nil {
						errs[i] = fmt.Errorf("panic in load task %d: %v", i, r)
					}
				}()
				errs[i] = fn(i)
				return nil, errs[i]
			},
		})
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
