// Package trinary implements the conversions between bytes, balanced ternary trits and trytes.
package trinary

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// TritRadix is the base of the balanced ternary number system.
	TritRadix = 3
	// MinTritValue is the smallest value a trit can hold.
	MinTritValue = -1
	// MaxTritValue is the largest value a trit can hold.
	MaxTritValue = 1

	// TritsPerByte defines how many trits are packed into a single byte.
	TritsPerByte = 5
	// TritsPerTryte defines how many trits make up a tryte.
	TritsPerTryte = 3
	// ByteRadix is the number of distinct 5-trit combinations.
	ByteRadix = 243
	// TryteRadix is the number of distinct trytes.
	TryteRadix = 27

	// MinTryteValue is the smallest value of a tryte.
	MinTryteValue = -13
	// MaxTryteValue is the largest value of a tryte.
	MaxTryteValue = 13

	// HashTrinarySize is the length of every hash in trits.
	HashTrinarySize = 243
	// HashTrytesSize is the length of every hash in trytes.
	HashTrytesSize = HashTrinarySize / TritsPerTryte

	// TryteAlphabet contains the characters used to encode trytes, '9' being zero.
	TryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	// ErrInvalidTrit is returned when a value outside of {-1, 0, 1} is used as a trit.
	ErrInvalidTrit = errors.New("invalid trit")
	// ErrInvalidTrytes is returned when a string contains characters outside of the tryte alphabet.
	ErrInvalidTrytes = errors.New("invalid trytes")
	// ErrInvalidTritsLength is returned when a trit sequence does not have the required length.
	ErrInvalidTritsLength = errors.New("invalid trits length")
)

// Trit is a single balanced ternary digit.
type Trit = int8

// Trits is a sequence of balanced ternary digits, least significant first.
type Trits []int8

// Trytes is the human-readable base-27 representation of a trit sequence.
type Trytes = string

var (
	bytesToTritsMappings  [ByteRadix][TritsPerByte]int8
	trytesToTritsMappings [TryteRadix][TritsPerTryte]int8
)

func init() {
	trits := make(Trits, TritsPerByte)
	for i := 0; i < ByteRadix; i++ {
		copy(bytesToTritsMappings[i][:], trits)
		IncrementTrits(trits)
	}

	trits = make(Trits, TritsPerTryte)
	for i := 0; i < TryteRadix; i++ {
		copy(trytesToTritsMappings[i][:], trits)
		IncrementTrits(trits)
	}
}

// ValidTrit returns true if the given value is a valid trit.
func ValidTrit(t int8) bool {
	return t >= MinTritValue && t <= MaxTritValue
}

// ValidTrits returns an error if any of the given trits is invalid.
func ValidTrits(trits Trits) error {
	for i, t := range trits {
		if !ValidTrit(t) {
			return errors.Wrapf(ErrInvalidTrit, "value %d at index %d", t, i)
		}
	}
	return nil
}

// ValidTrytes returns an error if the given string contains characters outside of the tryte alphabet.
func ValidTrytes(trytes Trytes) error {
	for i, c := range trytes {
		if !strings.ContainsRune(TryteAlphabet, c) {
			return errors.Wrapf(ErrInvalidTrytes, "character %q at index %d", c, i)
		}
	}
	return nil
}

// IncrementTrits adds one to the little-endian balanced ternary number in place. An overflow wraps around.
func IncrementTrits(trits Trits) {
	for i := range trits {
		trits[i]++
		if trits[i] <= MaxTritValue {
			return
		}
		trits[i] = MinTritValue
	}
}

// AddInt adds the non-negative value to the little-endian balanced ternary number in place.
// The result is the same as calling IncrementTrits value times.
func AddInt(trits Trits, value uint64) {
	var carry int8
	for i := range trits {
		if value == 0 && carry == 0 {
			return
		}

		digit := int8(value % TritRadix)
		value /= TritRadix
		if digit > MaxTritValue {
			digit -= TritRadix
			value++
		}

		sum := trits[i] + digit + carry
		switch {
		case sum > MaxTritValue:
			trits[i] = sum - TritRadix
			carry = 1
		case sum < MinTritValue:
			trits[i] = sum + TritRadix
			carry = -1
		default:
			trits[i] = sum
			carry = 0
		}
	}
}

// IsZero returns true if all trits are zero.
func IsZero(trits Trits) bool {
	for _, t := range trits {
		if t != 0 {
			return false
		}
	}
	return true
}
