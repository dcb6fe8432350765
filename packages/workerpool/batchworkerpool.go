package workerpool

import (
	"sync"
	"time"
)

// BatchWorkerPool collects submitted calls into batches of up to MaxBatchSize calls and hands
// every batch to one of its workers.
type BatchWorkerPool struct {
	workerFnc        func([]Call)
	options          *Options
	callsChan        chan Call
	batchedCallsChan chan []Call

	running   bool
	stopped   bool
	terminate chan struct{}
	mutex     sync.RWMutex
	wait      sync.WaitGroup
}

// NewBatchWorkerPool creates a BatchWorkerPool calling workerFnc for every batch.
func NewBatchWorkerPool(workerFnc func([]Call), optionalOptions ...Option) *BatchWorkerPool {
	options := DefaultOptions.Override(optionalOptions...)

	return &BatchWorkerPool{
		workerFnc: workerFnc,
		options:   options,

		callsChan:        make(chan Call, options.QueueSize),
		batchedCallsChan: make(chan []Call, 2*options.WorkerCount),
		terminate:        make(chan struct{}),
	}
}

// Submit queues a call. The returned channel is closed without a value if the pool is not running.
func (wp *BatchWorkerPool) Submit(params ...interface{}) (result chan interface{}) {
	result = make(chan interface{}, 1)

	wp.mutex.RLock()
	defer wp.mutex.RUnlock()

	if !wp.running {
		close(result)
		return
	}

	wp.callsChan <- Call{
		params:     params,
		resultChan: result,
	}

	return
}

// Start launches the batch dispatcher and the workers. A stopped pool can not be restarted.
func (wp *BatchWorkerPool) Start() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if wp.running || wp.stopped {
		return
	}
	wp.running = true

	wp.startBatchDispatcher()
	wp.startBatchWorkers()
}

// StopAndWait stops accepting calls, processes the queued ones and waits for the workers to exit.
func (wp *BatchWorkerPool) StopAndWait() {
	wp.mutex.Lock()
	if !wp.running {
		wp.mutex.Unlock()
		return
	}
	wp.running = false
	wp.stopped = true
	close(wp.terminate)
	wp.mutex.Unlock()

	wp.wait.Wait()
}

func (wp *BatchWorkerPool) startBatchDispatcher() {
	wp.wait.Add(1)

	go func() {
		defer wp.wait.Done()
		defer close(wp.batchedCallsChan)

		for {
			var batchTask []Call

			// wait for first request to start processing at all
			select {
			case call := <-wp.callsChan:
				batchTask = append(make([]Call, 0, wp.options.MaxBatchSize), call)
			case <-wp.terminate:
				wp.drain()
				return
			}

			collectionTimeout := time.After(wp.options.BatchCollectionTimeout)

			// collect additional requests that arrive within the timeout
		CollectAdditionalCalls:
			for len(batchTask) < wp.options.MaxBatchSize {
				select {
				case <-collectionTimeout:
					break CollectAdditionalCalls
				case call := <-wp.callsChan:
					batchTask = append(batchTask, call)
				}
			}

			wp.batchedCallsChan <- batchTask
		}
	}()
}

// drain dispatches the calls that were queued before the pool was stopped.
func (wp *BatchWorkerPool) drain() {
	for {
		batchTask := make([]Call, 0, wp.options.MaxBatchSize)
	CollectQueuedCalls:
		for len(batchTask) < wp.options.MaxBatchSize {
			select {
			case call := <-wp.callsChan:
				batchTask = append(batchTask, call)
			default:
				break CollectQueuedCalls
			}
		}

		if len(batchTask) == 0 {
			return
		}
		wp.batchedCallsChan <- batchTask
	}
}

func (wp *BatchWorkerPool) startBatchWorkers() {
	for i := 0; i < wp.options.WorkerCount; i++ {
		wp.wait.Add(1)

		go func() {
			defer wp.wait.Done()

			for batchTask := range wp.batchedCallsChan {
				wp.workerFnc(batchTask)
			}
		}()
	}
}
