package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a fixed-size worker pool. Do blocks until the task has
// run, which makes the pool usable as a concurrency limiter for
// CPU-heavy work such as password hashing.
type Pool interface {
	Submit(Task)
	Do(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Do(t Task) {
	done := make(chan struct{})
	p.jobs <- func() {
		defer close(done)
		if t != nil {
			t()
		}
	}
	<-done
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
