package main

import (
	"crypto/rand"
	"fmt"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/tritium/packages/trinary"
)

func execSeedCommand(command *flag.FlagSet) {
	parseCommand(command)

	seed, err := randomTrytes(trinary.HashTrytesSize)
	if err != nil {
		printUsage(command, err.Error())
	}

	fmt.Println(seed)
}

// randomTrytes returns uniformly distributed trytes read from the cryptographic random source.
func randomTrytes(length int) (trinary.Trytes, error) {
	result := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(result) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		for _, b := range buffer {
			// 243 is the largest multiple of 27 below 256
			if b >= 243 || len(result) == length {
				continue
			}
			result = append(result, trinary.TryteAlphabet[b%trinary.TryteRadix])
		}
	}
	return string(result), nil
}
