package pearldiver

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/curl"
	"github.com/iotaledger/tritium/packages/trinary"
)

// TrailingZeros returns the number of zero trits at the end of the given hash.
func TrailingZeros(hash trinary.Trits) int {
	zeros := 0
	for i := len(hash) - 1; i >= 0 && hash[i] == 0; i-- {
		zeros++
	}
	return zeros
}

// TransactionHash returns the Curl-P81 hash of the transaction.
func TransactionHash(transactionTrits trinary.Trits) (trinary.Trits, error) {
	if len(transactionTrits) != TransactionTrinarySize {
		return nil, errors.Wrapf(ErrInvalidTransactionLength, "%d", len(transactionTrits))
	}

	c := curl.NewCurlP81()
	if err := c.Absorb(transactionTrits); err != nil {
		return nil, errors.Wrap(err, "failed to absorb transaction")
	}
	hash := make(trinary.Trits, HashSize)
	if err := c.Squeeze(hash); err != nil {
		return nil, errors.Wrap(err, "failed to squeeze transaction hash")
	}
	return hash, nil
}

// WeightMagnitude returns the number of trailing zero trits of the transaction hash.
func WeightMagnitude(transactionTrits trinary.Trits) (int, error) {
	hash, err := TransactionHash(transactionTrits)
	if err != nil {
		return 0, err
	}
	return TrailingZeros(hash), nil
}
