package workerpool

import (
	"sync"
)

// WorkerPool processes submitted tasks with a fixed number of goroutines.
type WorkerPool struct {
	workerFnc func(Task)
	options   *Options

	calls     chan Task
	terminate chan struct{}

	running bool
	mutex   sync.RWMutex
	wait    sync.WaitGroup
}

// New creates a WorkerPool calling workerFnc for every submitted task.
func New(workerFnc func(Task), optionalOptions ...Option) *WorkerPool {
	return &WorkerPool{
		workerFnc: workerFnc,
		options:   DefaultOptions.Override(optionalOptions...),
		calls:     make(chan Task),
		terminate: make(chan struct{}),
	}
}

// Submit queues a task. The returned channel is closed without a value if the pool is not running
// or is stopped before the task is processed.
func (wp *WorkerPool) Submit(params ...interface{}) chan interface{} {
	result := make(chan interface{}, 1)

	wp.mutex.RLock()
	defer wp.mutex.RUnlock()

	if !wp.running {
		close(result)
		return result
	}

	wp.calls <- Task{
		params:     params,
		resultChan: result,
	}
	return result
}

// Start launches the workers. A stopped pool can be started again.
func (wp *WorkerPool) Start() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if wp.running {
		return
	}
	wp.running = true

	wp.calls = make(chan Task, wp.options.QueueSize)
	wp.terminate = make(chan struct{})
	for i := 0; i < wp.options.WorkerCount; i++ {
		wp.wait.Add(1)
		go wp.work(wp.calls, wp.terminate)
	}
}

// StopAndWait stops the workers and waits for them to finish their current task. Queued tasks
// that were not processed are answered by closing their result channel.
func (wp *WorkerPool) StopAndWait() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if !wp.running {
		return
	}
	wp.running = false

	close(wp.terminate)
	wp.wait.Wait()

	for len(wp.calls) > 0 {
		task := <-wp.calls
		close(task.resultChan)
	}
}

func (wp *WorkerPool) work(calls <-chan Task, terminate <-chan struct{}) {
	defer wp.wait.Done()

	for {
		select {
		case <-terminate:
			return

		case task := <-calls:
			wp.workerFnc(task)
		}
	}
}
