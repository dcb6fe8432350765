// Package ternary contains the binary coded (bit-sliced) representation of trits, which packs the
// same trit position of up to 64 independent trit vectors into a pair of machine words.
package ternary

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/trinary"
)

const (
	// NumberOfLanes is the number of trit vectors a binary coded trit can carry.
	NumberOfLanes = 64

	// HighBits has all lanes set.
	HighBits uint64 = 0xFFFFFFFFFFFFFFFF
	// LowBits has all lanes cleared.
	LowBits uint64 = 0
)

// BCTrit encodes a trit in 2 bits with -1 => (Lo 1, Hi 0), 0 => (1, 1) and 1 => (0, 1).
type BCTrit struct {
	Lo uint64
	Hi uint64
}

// BCTrits is a vector of binary coded trits.
type BCTrits struct {
	Lo []uint64
	Hi []uint64
}

// NewBCTrits allocates binary coded trits of the given length with all lanes set to zero trits.
func NewBCTrits(length int) BCTrits {
	result := BCTrits{
		Lo: make([]uint64, length),
		Hi: make([]uint64, length),
	}
	for i := 0; i < length; i++ {
		result.Lo[i] = HighBits
		result.Hi[i] = HighBits
	}
	return result
}

// BCTritFromTrit returns the binary coded trit carrying t in every lane.
func BCTritFromTrit(t int8) (BCTrit, error) {
	switch t {
	case -1:
		return BCTrit{Lo: HighBits, Hi: LowBits}, nil
	case 0:
		return BCTrit{Lo: HighBits, Hi: HighBits}, nil
	case 1:
		return BCTrit{Lo: LowBits, Hi: HighBits}, nil
	default:
		return BCTrit{}, errors.Wrapf(trinary.ErrInvalidTrit, "value %d", t)
	}
}

// TritAt decodes the trit stored in the given lane.
func TritAt(lo, hi uint64, lane uint) int8 {
	mask := uint64(1) << lane
	switch {
	case lo&mask == 0:
		return 1
	case hi&mask == 0:
		return -1
	default:
		return 0
	}
}

// Set stores t at the given lane.
func (b *BCTrit) Set(lane uint, t int8) {
	mask := uint64(1) << lane
	switch t {
	case -1:
		b.Lo |= mask
		b.Hi &^= mask
	case 1:
		b.Lo &^= mask
		b.Hi |= mask
	default:
		b.Lo |= mask
		b.Hi |= mask
	}
}
