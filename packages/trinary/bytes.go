package trinary

import (
	"github.com/cockroachdb/errors"
)

// BytesToTrits converts every byte into 5 trits. Negative bytes are looked up at b+243, so the
// conversion is the inverse of TritsToBytes for values in [-121, 121] and agrees with it modulo 243
// for all other bytes.
func BytesToTrits(bytes []byte) Trits {
	trits := make(Trits, len(bytes)*TritsPerByte)
	for i, b := range bytes {
		index := int(int8(b))
		if index < 0 {
			index += ByteRadix
		}
		copy(trits[i*TritsPerByte:], bytesToTritsMappings[index][:])
	}
	return trits
}

// TritsToBytes packs groups of 5 trits into signed bytes. A trailing group shorter than 5 trits is
// packed as if it was padded with zeros.
func TritsToBytes(trits Trits) ([]byte, error) {
	if err := ValidTrits(trits); err != nil {
		return nil, err
	}

	bytes := make([]byte, (len(trits)+TritsPerByte-1)/TritsPerByte)
	for i := range bytes {
		end := (i + 1) * TritsPerByte
		if end > len(trits) {
			end = len(trits)
		}

		var value int
		for j := end - 1; j >= i*TritsPerByte; j-- {
			value = value*TritRadix + int(trits[j])
		}
		bytes[i] = byte(int8(value))
	}
	return bytes, nil
}

// MustTritsToBytes converts trits to bytes and panics if the trits are invalid.
func MustTritsToBytes(trits Trits) []byte {
	bytes, err := TritsToBytes(trits)
	if err != nil {
		panic(errors.Wrap(err, "failed to convert trits to bytes"))
	}
	return bytes
}
