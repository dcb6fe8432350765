// Package address derives and caches the addresses of a seed.
package address

import (
	"strconv"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"

	"github.com/iotaledger/tritium/packages/iss"
	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
	"github.com/iotaledger/tritium/packages/workerpool"
)

// ErrGeneratorClosed is returned when addresses are requested from a closed Generator.
var ErrGeneratorClosed = errors.New("address generator closed")

// Generator derives the addresses of a single seed. Derived addresses are cached by index.
type Generator struct {
	seed          trinary.Trits
	securityLevel iss.SecurityLevel
	mode          sponge.Mode
	options       *Options

	cache      *ttlcache.Cache
	workerPool *workerpool.WorkerPool
	// number of addresses derived by the cache loader
	derivations atomic.Uint64
}

// NewGenerator creates a Generator for the given seed.
func NewGenerator(seed trinary.Trits, securityLevel iss.SecurityLevel, mode sponge.Mode, opts ...Option) (*Generator, error) {
	if len(seed) != iss.HashSize {
		return nil, errors.Wrapf(iss.ErrInvalidSeedLength, "%d", len(seed))
	}
	if err := trinary.ValidTrits(seed); err != nil {
		return nil, err
	}
	if err := securityLevel.Validate(); err != nil {
		return nil, err
	}
	if _, err := sponge.New(mode); err != nil {
		return nil, err
	}

	g := &Generator{
		seed:          append(trinary.Trits{}, seed...),
		securityLevel: securityLevel,
		mode:          mode,
		options:       defaultOptions.override(opts...),
	}

	g.cache = ttlcache.NewCache()
	g.cache.SetCacheSizeLimit(g.options.CacheSize)
	g.cache.SetLoaderFunction(g.load)
	if err := g.cache.SetTTL(g.options.CacheTTL); err != nil {
		return nil, errors.WithStack(err)
	}

	g.workerPool = workerpool.New(func(task workerpool.Task) {
		address, err := g.Address(task.Param(0).(int))
		task.Return(&result{address: address, err: err})
	}, workerpool.WorkerCount(g.options.WorkerCount), workerpool.QueueSize(g.options.WorkerCount))
	g.workerPool.Start()

	return g, nil
}

// Address returns the address with the given key index as trytes.
func (g *Generator) Address(index int) (trinary.Trytes, error) {
	if index < 0 {
		return "", errors.Wrapf(iss.ErrInvalidIndex, "%d", index)
	}

	cached, err := g.cache.Get(strconv.Itoa(index))
	if err != nil {
		if errors.Is(err, ttlcache.ErrClosed) {
			return "", ErrGeneratorClosed
		}
		return "", errors.Wrapf(err, "failed to derive address %d", index)
	}
	return cached.(trinary.Trytes), nil
}

// Addresses returns count consecutive addresses starting at index start. The addresses are derived
// in parallel.
func (g *Generator) Addresses(start, count int) ([]trinary.Trytes, error) {
	if start < 0 {
		return nil, errors.Wrapf(iss.ErrInvalidIndex, "%d", start)
	}
	if count <= 0 {
		return nil, nil
	}

	results := make([]chan interface{}, count)
	for i := range results {
		results[i] = g.workerPool.Submit(start + i)
	}

	addresses := make([]trinary.Trytes, count)
	for i, resultChan := range results {
		r, ok := <-resultChan
		if !ok {
			return nil, ErrGeneratorClosed
		}
		if err := r.(*result).err; err != nil {
			return nil, err
		}
		addresses[i] = r.(*result).address
	}
	return addresses, nil
}

// CacheMetrics returns the counters of the address cache. Retrievals counts the lookups served from
// the cache, Misses the ones that derived the address.
func (g *Generator) CacheMetrics() ttlcache.Metrics {
	return g.cache.GetMetrics()
}

// Close stops the workers and purges the cache.
func (g *Generator) Close() error {
	g.workerPool.StopAndWait()
	return errors.WithStack(g.cache.Close())
}

func (g *Generator) load(key string) (data interface{}, ttl time.Duration, err error) {
	index, err := strconv.Atoi(key)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	address, err := Derive(g.mode, g.seed, index, g.securityLevel)
	if err != nil {
		return nil, 0, err
	}
	g.derivations.Inc()

	return trinary.MustTritsToTrytes(address), ttlcache.ItemExpireWithGlobalTTL, nil
}

// Derive computes the address of the given key index without caching.
func Derive(mode sponge.Mode, seed trinary.Trits, index int, securityLevel iss.SecurityLevel) (trinary.Trits, error) {
	if err := securityLevel.Validate(); err != nil {
		return nil, err
	}

	subseed, err := iss.Subseed(mode, seed, index)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive subseed")
	}
	key, err := iss.Key(mode, subseed, int(securityLevel))
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	digests, err := iss.Digests(mode, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute digests")
	}
	return iss.Address(mode, digests)
}

type result struct {
	address trinary.Trytes
	err     error
}
