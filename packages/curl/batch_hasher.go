package curl

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"

	"github.com/iotaledger/tritium/packages/ternary"
	"github.com/iotaledger/tritium/packages/trinary"
	"github.com/iotaledger/tritium/packages/workerpool"
)

// ErrBatchHasherShutdown is returned when a hash is requested from a stopped BatchHasher.
var ErrBatchHasherShutdown = errors.New("batch hasher is shut down")

// BatchHasher hashes concurrent requests of a fixed input length by running up to 64 of them
// through one bit-sliced Curl permutation.
type BatchHasher struct {
	inputLength int
	rounds      Rounds
	workerPool  *workerpool.BatchWorkerPool

	hashes  atomic.Uint64
	batches atomic.Uint64
}

// NewBatchHasher creates and starts a BatchHasher for inputs of inputLength trits.
func NewBatchHasher(inputLength int, rounds Rounds, optionalOptions ...workerpool.Option) (*BatchHasher, error) {
	if err := validateLength(inputLength); err != nil {
		return nil, err
	}
	if !rounds.Valid() {
		return nil, errors.Wrapf(ErrInvalidRounds, "%d", rounds)
	}

	b := &BatchHasher{
		inputLength: inputLength,
		rounds:      rounds,
	}
	// a batch never exceeds the number of lanes
	options := append(optionalOptions, workerpool.MaxBatchSize(ternary.NumberOfLanes))
	b.workerPool = workerpool.NewBatchWorkerPool(b.processHashes, options...)
	b.workerPool.Start()

	return b, nil
}

// Hash returns the 243 trit Curl hash of the given trits. It blocks until the batch containing the
// request has been processed.
func (b *BatchHasher) Hash(trits trinary.Trits) (trinary.Trits, error) {
	if len(trits) != b.inputLength {
		return nil, errors.Wrapf(trinary.ErrInvalidTritsLength, "expected %d trits, got %d", b.inputLength, len(trits))
	}
	if err := trinary.ValidTrits(trits); err != nil {
		return nil, err
	}

	result, ok := <-b.workerPool.Submit(trits)
	if !ok {
		return nil, ErrBatchHasherShutdown
	}
	return result.(trinary.Trits), nil
}

// Stats returns the number of hashes computed and the number of batches they were computed in.
func (b *BatchHasher) Stats() (hashes uint64, batches uint64) {
	return b.hashes.Load(), b.batches.Load()
}

// Shutdown processes the pending requests and stops the workers.
func (b *BatchHasher) Shutdown() {
	b.workerPool.StopAndWait()
}

func (b *BatchHasher) processHashes(calls []workerpool.Call) {
	b.batches.Inc()
	b.hashes.Add(uint64(len(calls)))

	if len(calls) == 1 {
		b.processSingle(&calls[0])
		return
	}

	multiplexer := ternary.NewBCTernaryMultiplexer()
	for i := range calls {
		// lengths were checked in Hash and the batch never exceeds the number of lanes
		if _, err := multiplexer.Add(calls[i].Param(0).(trinary.Trits)); err != nil {
			panic(err)
		}
	}
	bcTrits, err := multiplexer.Extract()
	if err != nil {
		panic(err)
	}

	var lo, hi [StateSize]uint64
	for i := range lo {
		lo[i], hi[i] = ternary.HighBits, ternary.HighBits
	}
	for offset := 0; offset < b.inputLength; offset += HashSize {
		copy(lo[:HashSize], bcTrits.Lo[offset:offset+HashSize])
		copy(hi[:HashSize], bcTrits.Hi[offset:offset+HashSize])
		TransformBCT(&lo, &hi, b.rounds)
	}

	demultiplexer := ternary.NewBCTernaryDemultiplexer(ternary.BCTrits{Lo: lo[:HashSize], Hi: hi[:HashSize]})
	for i := range calls {
		calls[i].Return(demultiplexer.Get(i))
	}
}

func (b *BatchHasher) processSingle(call *workerpool.Call) {
	c := &Curl{rounds: b.rounds}
	hash := make(trinary.Trits, HashSize)
	if err := c.Absorb(call.Param(0).(trinary.Trits)); err != nil {
		panic(err)
	}
	if err := c.Squeeze(hash); err != nil {
		panic(err)
	}
	call.Return(hash)
}
