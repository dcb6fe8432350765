// Package pearldiver implements the multithreaded proof-of-work search for Curl-P81 transaction
// hashes with a minimum number of trailing zero trits.
//
// The search runs the bit-sliced Curl permutation, so every transform tests 64 nonce candidates.
package pearldiver

import (
	"context"
	"math/bits"
	"runtime"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/iotaledger/tritium/packages/curl"
	"github.com/iotaledger/tritium/packages/ternary"
	"github.com/iotaledger/tritium/packages/trinary"
)

const (
	// TransactionTrinarySize is the length of a transaction in trits.
	TransactionTrinarySize = 8019
	// HashSize is the length of the transaction hash in trits.
	HashSize = curl.HashSize
	// StateSize is the length of the Curl state in trits.
	StateSize = curl.StateSize
	// NonceTrinaryOffset is the offset of the nonce within the last block of the transaction.
	NonceTrinaryOffset = HashSize - NonceTrinarySize
	// NonceTrinarySize is the length of the nonce in trits.
	NonceTrinarySize = 81

	// the nonce is split into the lane pattern, the per-thread segment and the incremented segment
	threadSegmentStart    = NonceTrinaryOffset + HashSize/9
	incrementSegmentStart = NonceTrinaryOffset + (HashSize/9)*2
)

var (
	// ErrInvalidTransactionLength is returned when the transaction does not have TransactionTrinarySize trits.
	ErrInvalidTransactionLength = errors.New("invalid transaction trits length")
	// ErrInvalidMinWeightMagnitude is returned when the min weight magnitude is outside of [0, 243].
	ErrInvalidMinWeightMagnitude = errors.New("invalid min weight magnitude")
)

// Status is the state of the current search.
type Status int32

const (
	// Running means the search is in progress.
	Running Status = iota
	// Completed means a nonce was found.
	Completed
	// Cancelled means the search was stopped before a nonce was found.
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// PearlDiver searches nonces for transactions. Concurrent searches on the same instance are serialized.
type PearlDiver struct {
	Events *Events

	maxWorkers int
	log        *logger.Logger
	workerPool *ants.Pool

	status      atomic.Int32
	statusMutex sync.Mutex
	searchMutex sync.Mutex
}

// New creates a new PearlDiver.
func New(opts ...Option) (*PearlDiver, error) {
	p := &PearlDiver{
		Events:     newEvents(),
		maxWorkers: defaultNumberOfThreads(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.status.Store(int32(Cancelled))

	workerPool, err := ants.NewPool(p.maxWorkers, ants.WithPanicHandler(p.handlePanic))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create worker pool")
	}
	p.workerPool = workerPool

	return p, nil
}

// Search looks for a nonce, so that the Curl-P81 hash of the transaction ends in at least
// minWeightMagnitude zero trits. If numberOfThreads is not positive, 80% of the available CPUs are
// used. On success the nonce is written into the last 243 trits of the transaction and true is
// returned. If the search is cancelled, false is returned and the transaction is not modified.
func (p *PearlDiver) Search(transactionTrits trinary.Trits, minWeightMagnitude int, numberOfThreads int) (bool, error) {
	return p.search(context.Background(), transactionTrits, minWeightMagnitude, numberOfThreads)
}

// SearchWithContext is like Search but cancels the search when the context is done.
func (p *PearlDiver) SearchWithContext(ctx context.Context, transactionTrits trinary.Trits, minWeightMagnitude int, numberOfThreads int) (bool, error) {
	return p.search(ctx, transactionTrits, minWeightMagnitude, numberOfThreads)
}

// Cancel stops the running search. It is safe to call from any goroutine and has no effect if no
// search is running.
func (p *PearlDiver) Cancel() {
	p.statusMutex.Lock()
	defer p.statusMutex.Unlock()

	if Status(p.status.Load()) == Running {
		p.status.Store(int32(Cancelled))
	}
}

// Status returns the status of the current or last search.
func (p *PearlDiver) Status() Status {
	return Status(p.status.Load())
}

// WorkerPoolStatus returns the name and the number of busy goroutines of the worker pool.
func (p *PearlDiver) WorkerPoolStatus() (name string, load int) {
	return "PearlDiver", p.workerPool.Running()
}

// Shutdown releases the worker goroutines.
func (p *PearlDiver) Shutdown() {
	p.workerPool.Release()
}

func (p *PearlDiver) search(ctx context.Context, transactionTrits trinary.Trits, minWeightMagnitude int, numberOfThreads int) (bool, error) {
	if err := validateParameters(transactionTrits, minWeightMagnitude); err != nil {
		return false, err
	}
	if numberOfThreads <= 0 {
		numberOfThreads = defaultNumberOfThreads()
	}

	p.searchMutex.Lock()
	defer p.searchMutex.Unlock()

	if ctx.Err() != nil {
		return false, nil
	}

	p.statusMutex.Lock()
	p.status.Store(int32(Running))
	p.statusMutex.Unlock()

	stopWatching := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			p.Cancel()
		case <-stopWatching:
		}
	}()
	defer func() {
		close(stopWatching)
		<-watcherDone
	}()

	midStateLo, midStateHi := initializeMidCurlStates(transactionTrits)

	if numberOfThreads > p.workerPool.Cap() {
		p.workerPool.Tune(numberOfThreads)
	}

	p.Events.SearchStarted.Trigger(&SearchStartedEvent{
		MinWeightMagnitude: minWeightMagnitude,
		NumberOfThreads:    numberOfThreads,
	})
	start := time.Now()

	var transforms atomic.Uint64
	var wg sync.WaitGroup
	for threadIndex := 0; threadIndex < numberOfThreads; threadIndex++ {
		worker := &worker{
			pearlDiver:         p,
			threadIndex:        threadIndex,
			minWeightMagnitude: minWeightMagnitude,
			midStateLo:         midStateLo,
			midStateHi:         midStateHi,
			transactionTrits:   transactionTrits,
			transforms:         &transforms,
		}

		wg.Add(1)
		if err := p.workerPool.Submit(func() {
			defer wg.Done()
			worker.dive()
		}); err != nil {
			wg.Done()
			p.Cancel()
			wg.Wait()
			return false, errors.Wrap(err, "failed to start worker")
		}
	}
	wg.Wait()

	stoppedEvent := &SearchStoppedEvent{
		MinWeightMagnitude: minWeightMagnitude,
		NumberOfThreads:    numberOfThreads,
		Duration:           time.Since(start),
		Transforms:         transforms.Load(),
	}
	if p.Status() != Completed {
		p.Events.SearchCancelled.Trigger(stoppedEvent)
		return false, nil
	}
	p.Events.SearchCompleted.Trigger(stoppedEvent)

	return true, nil
}

// complete writes the nonce found in the lane of the given mask into the transaction, unless
// another worker completed or the search was cancelled before.
func (p *PearlDiver) complete(transactionTrits trinary.Trits, mask uint64, midStateLo, midStateHi *[StateSize]uint64) {
	p.statusMutex.Lock()
	defer p.statusMutex.Unlock()

	if Status(p.status.Load()) != Running {
		return
	}
	p.status.Store(int32(Completed))

	lane := uint(bits.TrailingZeros64(mask))
	nonceTrits := transactionTrits[TransactionTrinarySize-HashSize:]
	for i := range nonceTrits {
		nonceTrits[i] = ternary.TritAt(midStateLo[i], midStateHi[i], lane)
	}
}

func (p *PearlDiver) handlePanic(err interface{}) {
	if p.log != nil {
		p.log.Errorf("PoW worker panicked: %v", err)
	}
	p.Cancel()
}

func validateParameters(transactionTrits trinary.Trits, minWeightMagnitude int) error {
	if len(transactionTrits) != TransactionTrinarySize {
		return errors.Wrapf(ErrInvalidTransactionLength, "%d", len(transactionTrits))
	}
	if minWeightMagnitude < 0 || minWeightMagnitude > HashSize {
		return errors.Wrapf(ErrInvalidMinWeightMagnitude, "%d", minWeightMagnitude)
	}
	return trinary.ValidTrits(transactionTrits)
}

func defaultNumberOfThreads() int {
	numberOfThreads := runtime.NumCPU() * 8 / 10
	if numberOfThreads < 1 {
		return 1
	}
	return numberOfThreads
}
