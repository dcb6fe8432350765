package workerpool

import (
	"runtime"
	"time"
)

// DefaultOptions are used when a pool is created without overrides.
var DefaultOptions = &Options{
	WorkerCount:            2 * runtime.NumCPU(),
	QueueSize:              500,
	MaxBatchSize:           64,
	BatchCollectionTimeout: 10 * time.Millisecond,
}

// Options configures a WorkerPool or BatchWorkerPool.
type Options struct {
	WorkerCount            int
	QueueSize              int
	MaxBatchSize           int
	BatchCollectionTimeout time.Duration
}

// Option is a function setting a single pool option.
type Option func(*Options)

// Override returns a copy of the options with the given options applied.
func (options Options) Override(optionalOptions ...Option) *Options {
	result := &options
	for _, option := range optionalOptions {
		option(result)
	}
	return result
}

// WorkerCount sets the number of worker goroutines.
func WorkerCount(workerCount int) Option {
	return func(args *Options) {
		args.WorkerCount = workerCount
	}
}

// QueueSize sets the capacity of the call queue.
func QueueSize(queueSize int) Option {
	return func(args *Options) {
		args.QueueSize = queueSize
	}
}

// MaxBatchSize sets the maximum number of calls handed to a batch worker at once.
func MaxBatchSize(maxBatchSize int) Option {
	return func(args *Options) {
		args.MaxBatchSize = maxBatchSize
	}
}

// BatchCollectionTimeout sets how long a batch waits for additional calls after the first one arrived.
func BatchCollectionTimeout(batchCollectionTimeout time.Duration) Option {
	return func(args *Options) {
		args.BatchCollectionTimeout = batchCollectionTimeout
	}
}
