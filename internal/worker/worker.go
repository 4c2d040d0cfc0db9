package worker

import (
	"log"
	"sync"
)

// Task is a unit of background work, used for best-effort blob deletes and
// compensating cleanups that must not block or fail the request.
type Task func()

type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool starts a pool with n workers. n<=0 defaults to 1.
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
				run(job)
			}
		}()
	}
	return p
}

func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker: task panic: %v", r)
		}
	}()
	job()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// FakePool runs every task inline, so tests observe side effects synchronously.
type FakePool struct {
	StopFn func()
}

func (f *FakePool) Submit(t Task) {
	if t != nil {
		t()
	}
}

func (f *FakePool) Stop() {
	if f.StopFn != nil {
		f.StopFn()
	}
}
