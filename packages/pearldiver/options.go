package pearldiver

import (
	"github.com/iotaledger/hive.go/logger"
)

// Option configures a PearlDiver.
type Option func(*PearlDiver)

// WithLogger sets the logger used to report worker failures.
func WithLogger(log *logger.Logger) Option {
	return func(p *PearlDiver) {
		p.log = log
	}
}

// WithMaxWorkers sets the initial capacity of the worker pool. The pool grows if a search asks for
// more threads.
func WithMaxWorkers(maxWorkers int) Option {
	return func(p *PearlDiver) {
		if maxWorkers > 0 {
			p.maxWorkers = maxWorkers
		}
	}
}
