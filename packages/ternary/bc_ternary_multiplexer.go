package ternary

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/trinary"
)

var (
	// ErrTooManyTrinaries is returned when more trit vectors than lanes are added to a multiplexer.
	ErrTooManyTrinaries = errors.New("too many trinaries")
	// ErrLengthMismatch is returned when the multiplexed trit vectors differ in length.
	ErrLengthMismatch = errors.New("trinaries differ in length")
)

// BCTernaryMultiplexer packs up to 64 trit vectors of equal length into binary coded trits.
type BCTernaryMultiplexer struct {
	trinaries []trinary.Trits
}

// NewBCTernaryMultiplexer creates an empty multiplexer.
func NewBCTernaryMultiplexer() *BCTernaryMultiplexer {
	return &BCTernaryMultiplexer{make([]trinary.Trits, 0, NumberOfLanes)}
}

// Add appends the trits as the next lane and returns its index.
func (m *BCTernaryMultiplexer) Add(trits trinary.Trits) (int, error) {
	if len(m.trinaries) == NumberOfLanes {
		return -1, ErrTooManyTrinaries
	}
	if len(m.trinaries) > 0 && len(trits) != len(m.trinaries[0]) {
		return -1, errors.Wrapf(ErrLengthMismatch, "expected %d trits, got %d", len(m.trinaries[0]), len(trits))
	}

	m.trinaries = append(m.trinaries, trits)

	return len(m.trinaries) - 1, nil
}

// Get returns the trits of the lane with the given index.
func (m *BCTernaryMultiplexer) Get(index int) trinary.Trits {
	return m.trinaries[index]
}

// Len returns the number of lanes in use.
func (m *BCTernaryMultiplexer) Len() int {
	return len(m.trinaries)
}

// Extract returns the binary coded representation of all added trit vectors. Unused lanes carry zero trits.
func (m *BCTernaryMultiplexer) Extract() (BCTrits, error) {
	if len(m.trinaries) == 0 {
		return BCTrits{}, nil
	}

	tritsCount := len(m.trinaries[0])
	result := BCTrits{
		Lo: make([]uint64, tritsCount),
		Hi: make([]uint64, tritsCount),
	}

	for i := 0; i < tritsCount; i++ {
		bcTrit := &BCTrit{HighBits, HighBits}

		for j, trits := range m.trinaries {
			switch trits[i] {
			case -1:
				bcTrit.Hi &^= 1 << uint(j)

			case 1:
				bcTrit.Lo &^= 1 << uint(j)

			case 0:

			default:
				return result, errors.Wrapf(trinary.ErrInvalidTrit, "trit #%d in trits #%d", i, j)
			}
		}

		result.Lo[i] = bcTrit.Lo
		result.Hi[i] = bcTrit.Hi
	}

	return result, nil
}

// BCTernaryDemultiplexer extracts single trit vectors from binary coded trits.
type BCTernaryDemultiplexer struct {
	bcTrits BCTrits
}

// NewBCTernaryDemultiplexer creates a demultiplexer for the given binary coded trits.
func NewBCTernaryDemultiplexer(bcTrits BCTrits) *BCTernaryDemultiplexer {
	return &BCTernaryDemultiplexer{bcTrits: bcTrits}
}

// Get returns the trits stored in the lane with the given index.
func (d *BCTernaryDemultiplexer) Get(index int) trinary.Trits {
	result := make(trinary.Trits, len(d.bcTrits.Lo))
	for i := range result {
		result[i] = TritAt(d.bcTrits.Lo[i], d.bcTrits.Hi[i], uint(index))
	}
	return result
}
