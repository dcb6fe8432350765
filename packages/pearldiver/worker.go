package pearldiver

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/tritium/packages/curl"
	"github.com/iotaledger/tritium/packages/ternary"
	"github.com/iotaledger/tritium/packages/trinary"
)

// lane patterns of the first four nonce trits, so that each of the 64 lanes starts with a different nonce
var (
	laneSeedLo = [4]uint64{0xdb6db6db6db6db6d, 0xf1f8fc7e3f1f8fc7, 0x7fffe00ffffc01ff, 0xffc0000007ffffff}
	laneSeedHi = [4]uint64{0xb6db6db6db6db6db, 0x8fc7e3f1f8fc7e3f, 0xffc01ffff803ffff, 0x003fffffffffffff}
)

type worker struct {
	pearlDiver         *PearlDiver
	threadIndex        int
	minWeightMagnitude int
	midStateLo         [StateSize]uint64
	midStateHi         [StateSize]uint64
	transactionTrits   trinary.Trits
	transforms         *atomic.Uint64
}

func (w *worker) dive() {
	for i := 0; i < w.threadIndex; i++ {
		increment(&w.midStateLo, &w.midStateHi, threadSegmentStart, incrementSegmentStart)
	}

	var stateLo, stateHi [StateSize]uint64
	for Status(w.pearlDiver.status.Load()) == Running {
		increment(&w.midStateLo, &w.midStateHi, incrementSegmentStart, HashSize)

		stateLo, stateHi = w.midStateLo, w.midStateHi
		curl.TransformBCT(&stateLo, &stateHi, curl.CurlP81)
		w.transforms.Inc()

		mask := ternary.HighBits
		for i := HashSize - w.minWeightMagnitude; i < HashSize; i++ {
			mask &= ^(stateLo[i] ^ stateHi[i])
			if mask == 0 {
				break
			}
		}
		if mask == 0 {
			continue
		}

		w.pearlDiver.complete(w.transactionTrits, mask, &w.midStateLo, &w.midStateHi)
		return
	}
}

// initializeMidCurlStates absorbs all but the last block of the transaction and prepares the last
// block with the lane patterns at the start of the nonce.
func initializeMidCurlStates(transactionTrits trinary.Trits) (stateLo, stateHi [StateSize]uint64) {
	for i := range stateLo {
		stateLo[i] = ternary.HighBits
		stateHi[i] = ternary.HighBits
	}

	offset := 0
	for block := 0; block < TransactionTrinarySize/HashSize-1; block++ {
		for i := 0; i < HashSize; i++ {
			setTrit(&stateLo, &stateHi, i, transactionTrits[offset])
			offset++
		}
		curl.TransformBCT(&stateLo, &stateHi, curl.CurlP81)
	}

	for i := 0; i < NonceTrinaryOffset; i++ {
		setTrit(&stateLo, &stateHi, i, transactionTrits[offset])
		offset++
	}

	for i := range laneSeedLo {
		stateLo[NonceTrinaryOffset+i] = laneSeedLo[i]
		stateHi[NonceTrinaryOffset+i] = laneSeedHi[i]
	}

	return stateLo, stateHi
}

func setTrit(stateLo, stateHi *[StateSize]uint64, index int, t int8) {
	switch t {
	case 1:
		stateLo[index], stateHi[index] = ternary.LowBits, ternary.HighBits
	case -1:
		stateLo[index], stateHi[index] = ternary.HighBits, ternary.LowBits
	default:
		stateLo[index], stateHi[index] = ternary.HighBits, ternary.HighBits
	}
}

// increment adds one to the bit-sliced number in [from, to) in all lanes at once.
func increment(stateLo, stateHi *[StateSize]uint64, from, to int) {
	for i := from; i < to; i++ {
		switch {
		case stateLo[i] == ternary.LowBits:
			// 1 + 1 = -1 with carry
			stateLo[i] = ternary.HighBits
			stateHi[i] = ternary.LowBits
		case stateHi[i] == ternary.LowBits:
			stateHi[i] = ternary.HighBits
			return
		default:
			stateLo[i] = ternary.LowBits
			return
		}
	}
}
