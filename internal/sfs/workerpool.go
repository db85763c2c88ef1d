package sfs

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Wait()
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines. Wait blocks until
// every accepted task has finished.
type WorkerPool struct {
	pool    chan Task
	pending sync.WaitGroup
	once    sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{pool: make(chan Task, size)}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("sfs task failed", zap.Error(err))
		}
		wp.pending.Done()
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.pending.Add(1)
	select {
	case <-ctx.Done():
		wp.pending.Done()
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Wait() {
	wp.pending.Wait()
}

func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.pool) })
}
