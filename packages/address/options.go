package address

import (
	"runtime"
	"time"
)

var defaultOptions = &Options{
	CacheTTL:    10 * time.Minute,
	CacheSize:   1000,
	WorkerCount: runtime.NumCPU(),
}

// Options contains the settings of a Generator.
type Options struct {
	CacheTTL    time.Duration
	CacheSize   int
	WorkerCount int
}

func (o Options) override(opts ...Option) *Options {
	result := &o
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Option changes a setting of a Generator.
type Option func(*Options)

// CacheTTL sets how long a derived address is kept.
func CacheTTL(ttl time.Duration) Option {
	return func(o *Options) {
		o.CacheTTL = ttl
	}
}

// CacheSize limits the number of cached addresses.
func CacheSize(size int) Option {
	return func(o *Options) {
		o.CacheSize = size
	}
}

// WorkerCount sets the number of goroutines deriving addresses in Addresses.
func WorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}
