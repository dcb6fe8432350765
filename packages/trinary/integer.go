package trinary

// IntToTrits encodes the value into size balanced ternary trits, least significant first.
// Digits that do not fit into size trits are dropped.
func IntToTrits(value int64, size int) Trits {
	trits := make(Trits, size)
	PutInt(trits, value)
	return trits
}

// PutInt writes the balanced ternary representation of value into dst.
func PutInt(dst Trits, value int64) {
	absoluteValue := uint64(value)
	if value < 0 {
		absoluteValue = -absoluteValue
	}

	for i := range dst {
		remainder := int8(absoluteValue % TritRadix)
		absoluteValue /= TritRadix
		if remainder > MaxTritValue {
			remainder = MinTritValue
			absoluteValue++
		}

		if value < 0 {
			dst[i] = -remainder
		} else {
			dst[i] = remainder
		}
	}
}

// TritsToInt decodes the little-endian balanced ternary number.
func TritsToInt(trits Trits) (int64, error) {
	if err := ValidTrits(trits); err != nil {
		return 0, err
	}

	var value int64
	for i := len(trits) - 1; i >= 0; i-- {
		value = value*TritRadix + int64(trits[i])
	}
	return value, nil
}
