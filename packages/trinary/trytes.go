package trinary

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// TrytesToTrits converts a tryte string into trits, 3 trits per character.
func TrytesToTrits(trytes Trytes) (Trits, error) {
	trits := make(Trits, len(trytes)*TritsPerTryte)
	for i := 0; i < len(trytes); i++ {
		index := strings.IndexByte(TryteAlphabet, trytes[i])
		if index < 0 {
			return nil, errors.Wrapf(ErrInvalidTrytes, "character %q at index %d", trytes[i], i)
		}
		copy(trits[i*TritsPerTryte:], trytesToTritsMappings[index][:])
	}
	return trits, nil
}

// MustTrytesToTrits converts trytes to trits and panics if the trytes are invalid.
func MustTrytesToTrits(trytes Trytes) Trits {
	trits, err := TrytesToTrits(trytes)
	if err != nil {
		panic(err)
	}
	return trits
}

// TritsToTrytes converts trits into a tryte string. The length must be a multiple of 3.
func TritsToTrytes(trits Trits) (Trytes, error) {
	if len(trits)%TritsPerTryte != 0 {
		return "", errors.Wrapf(ErrInvalidTritsLength, "length %d is not a multiple of %d", len(trits), TritsPerTryte)
	}
	if err := ValidTrits(trits); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(trits) / TritsPerTryte)
	for i := 0; i < len(trits); i += TritsPerTryte {
		value := int(trits[i]) + int(trits[i+1])*3 + int(trits[i+2])*9
		if value < 0 {
			value += TryteRadix
		}
		sb.WriteByte(TryteAlphabet[value])
	}
	return sb.String(), nil
}

// MustTritsToTrytes converts trits to trytes and panics on invalid input.
func MustTritsToTrytes(trits Trits) Trytes {
	trytes, err := TritsToTrytes(trits)
	if err != nil {
		panic(err)
	}
	return trytes
}

// TryteValue returns the balanced value of the tryte made of the 3 given trits.
func TryteValue(trits Trits) int8 {
	return trits[0] + trits[1]*3 + trits[2]*9
}

// Pad right-pads the trytes with '9' up to the given size.
func Pad(trytes Trytes, size int) Trytes {
	if len(trytes) >= size {
		return trytes
	}
	return trytes + strings.Repeat("9", size-len(trytes))
}
