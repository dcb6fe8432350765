package main

import (
	"fmt"
	"sync"

	"github.com/iotaledger/hive.go/logger"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/curl"
	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

func execHashCommand(command *flag.FlagSet) {
	trytesPtr := command.StringSlice("trytes", nil, "the trytes to hash, a multiple of 81 trytes (repeatable)")

	parseCommand(command)

	if len(*trytesPtr) == 0 {
		printUsage(command, "trytes has to be set")
	}

	inputs := make([]trinary.Trits, len(*trytesPtr))
	for i, trytes := range *trytesPtr {
		inputs[i] = trytesToTrits(command, "trytes", trytes, 0)
		if len(inputs[i]) == 0 || len(inputs[i])%trinary.HashTrinarySize != 0 {
			printUsage(command, "trytes must be a multiple of 81 trytes")
		}
	}

	mode := spongeMode(command)

	var hashes []trinary.Trits
	var err error
	if rounds, ok := curlRounds(mode); ok && len(inputs) > 1 && sameLength(inputs) {
		hashes, err = batchHash(inputs, rounds)
	} else {
		hashes, err = sequentialHash(inputs, mode)
	}
	if err != nil {
		printUsage(command, err.Error())
	}

	for _, hash := range hashes {
		fmt.Println(trinary.MustTritsToTrytes(hash))
	}
}

func sequentialHash(inputs []trinary.Trits, mode sponge.Mode) ([]trinary.Trits, error) {
	hashes := make([]trinary.Trits, len(inputs))
	for i, input := range inputs {
		hash, err := sponge.Hash(mode, input)
		if err != nil {
			return nil, err
		}
		hashes[i] = hash
	}
	return hashes, nil
}

// batchHash hashes inputs of the same length concurrently, so that the Curl transforms of up to 64
// inputs are computed at once.
func batchHash(inputs []trinary.Trits, rounds curl.Rounds) ([]trinary.Trits, error) {
	batchHasher, err := curl.NewBatchHasher(len(inputs[0]), rounds)
	if err != nil {
		return nil, err
	}
	defer batchHasher.Shutdown()

	hashes := make([]trinary.Trits, len(inputs))
	errs := make([]error, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hashes[i], errs[i] = batchHasher.Hash(inputs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	hashCount, batchCount := batchHasher.Stats()
	logger.NewLogger("Hash").Debugw("batch hashing done", "hashes", hashCount, "batches", batchCount)

	return hashes, nil
}

func curlRounds(mode sponge.Mode) (curl.Rounds, bool) {
	switch mode {
	case sponge.CurlP27:
		return curl.CurlP27, true
	case sponge.CurlP81:
		return curl.CurlP81, true
	default:
		return 0, false
	}
}

func sameLength(inputs []trinary.Trits) bool {
	for _, input := range inputs[1:] {
		if len(input) != len(inputs[0]) {
			return false
		}
	}
	return true
}
