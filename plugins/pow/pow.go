package pow

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"

	"github.com/iotaledger/tritium/packages/pearldiver"
	"github.com/iotaledger/tritium/packages/shutdown"
	"github.com/iotaledger/tritium/packages/trinary"
	"github.com/iotaledger/tritium/plugins/config"
)

// PluginName is the name of the PoW plugin.
const PluginName = "PoW"

var (
	// ErrInvalidPOWDifficulty is returned when the transaction hash does not fulfill the PoW difficulty.
	ErrInvalidPOWDifficulty = errors.New("invalid PoW")
	// ErrPOWCancelled is returned when no nonce was found before the timeout.
	ErrPOWCancelled = errors.New("PoW cancelled")
)

// parameters
var (
	// configured via parameters
	difficulty int
	numThreads int
	timeout    time.Duration
)

var (
	log *logger.Logger

	workerOnce sync.Once
	worker     *pearldiver.PearlDiver
)

// Worker returns the PoW worker instance of the PoW plugin.
func Worker() *pearldiver.PearlDiver {
	workerOnce.Do(func() {
		if log == nil {
			log = logger.NewLogger(PluginName)
		}
		// load the parameters
		difficulty = config.Node.GetInt(CfgPOWDifficulty)
		numThreads = config.Node.GetInt(CfgPOWNumThreads)
		timeout = config.Node.GetDuration(CfgPOWTimeout)

		// create the worker
		var err error
		if worker, err = pearldiver.New(pearldiver.WithLogger(log), pearldiver.WithMaxWorkers(numThreads)); err != nil {
			log.Panicf("failed to create PoW worker: %s", err)
		}
		attachEvents(worker)

		// a shutdown of the daemon cancels the running search
		if err := daemon.BackgroundWorker("PoW", func(ctx context.Context) {
			<-ctx.Done()
			worker.Cancel()
		}, shutdown.PriorityPoW); err != nil {
			log.Panicf("failed to start PoW background worker: %s", err)
		}
	})
	return worker
}

// Difficulty returns the configured PoW difficulty.
func Difficulty() int {
	Worker()
	return difficulty
}

// DoPOW searches a nonce for the transaction with the configured difficulty, threads and timeout.
// On success the nonce is written into the transaction and returned as trytes.
func DoPOW(transactionTrits trinary.Trits) (trinary.Trytes, error) {
	// get the PoW worker
	worker := Worker()

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	found, err := worker.SearchWithContext(ctx, transactionTrits, difficulty, numThreads)
	if err != nil {
		return "", errors.Wrap(err, "PoW failed")
	}
	if !found {
		return "", errors.Wrapf(ErrPOWCancelled, "no nonce found within %s", timeout)
	}

	return trinary.MustTritsToTrytes(transactionTrits[pearldiver.TransactionTrinarySize-pearldiver.NonceTrinarySize:]), nil
}

// ValidatePOW returns an error when the hash of the transaction does not fulfill the configured difficulty.
func ValidatePOW(transactionTrits trinary.Trits) error {
	Worker()

	weight, err := pearldiver.WeightMagnitude(transactionTrits)
	if err != nil {
		return err
	}
	if weight < difficulty {
		return errors.Wrapf(ErrInvalidPOWDifficulty, "trailing zeros %d for difficulty %d", weight, difficulty)
	}
	return nil
}

func attachEvents(worker *pearldiver.PearlDiver) {
	worker.Events.SearchStarted.Hook(event.NewClosure(func(e *pearldiver.SearchStartedEvent) {
		log.Debugw("start PoW", "difficulty", e.MinWeightMagnitude, "numThreads", e.NumberOfThreads)
	}))
	worker.Events.SearchCompleted.Hook(event.NewClosure(func(e *pearldiver.SearchStoppedEvent) {
		log.Debugw("PoW done", "difficulty", e.MinWeightMagnitude, "duration", e.Duration, "transforms", e.Transforms)
	}))
	worker.Events.SearchCancelled.Hook(event.NewClosure(func(e *pearldiver.SearchStoppedEvent) {
		log.Infow("PoW cancelled", "difficulty", e.MinWeightMagnitude, "duration", e.Duration, "transforms", e.Transforms)
	}))
}
