package trinary

import (
	"math/big"
)

var (
	bigRadix = big.NewInt(TritRadix)
	bigOne   = big.NewInt(1)
)

// TritsToBigInt interprets the trits as a little-endian balanced ternary number.
func TritsToBigInt(trits Trits) (*big.Int, error) {
	if err := ValidTrits(trits); err != nil {
		return nil, err
	}

	value := new(big.Int)
	digit := new(big.Int)
	for i := len(trits) - 1; i >= 0; i-- {
		value.Mul(value, bigRadix)
		value.Add(value, digit.SetInt64(int64(trits[i])))
	}
	return value, nil
}

// BigIntToTrits encodes the value into size balanced ternary trits. Remainders above 1 are
// rounded down by 3 and carried into the next digit.
func BigIntToTrits(value *big.Int, size int) Trits {
	trits := make(Trits, size)
	negative := value.Sign() < 0

	absoluteValue := new(big.Int).Abs(value)
	remainder := new(big.Int)
	for i := 0; i < size; i++ {
		absoluteValue.QuoRem(absoluteValue, bigRadix, remainder)

		digit := int8(remainder.Int64())
		if digit > MaxTritValue {
			digit = MinTritValue
			absoluteValue.Add(absoluteValue, bigOne)
		}

		if negative {
			trits[i] = -digit
		} else {
			trits[i] = digit
		}
	}
	return trits
}

// BigIntToBytes returns the two's complement big-endian representation of value, sign-extended
// (or truncated) to size bytes.
func BigIntToBytes(value *big.Int, size int) []byte {
	bytes := make([]byte, size)
	modulus := new(big.Int).Lsh(bigOne, uint(size*8))
	new(big.Int).Mod(value, modulus).FillBytes(bytes)
	return bytes
}

// BytesToBigInt interprets bytes as a two's complement big-endian signed integer.
func BytesToBigInt(bytes []byte) *big.Int {
	value := new(big.Int).SetBytes(bytes)
	if len(bytes) > 0 && bytes[0]&0x80 != 0 {
		value.Sub(value, new(big.Int).Lsh(bigOne, uint(len(bytes)*8)))
	}
	return value
}
