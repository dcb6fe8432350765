// Package kerl implements the Kerl sponge, which maps 243 trit blocks onto the 384 bit blocks of
// Keccak-384.
//
// Kerl is only designed to squeeze a single 243 trit block after absorbing; squeezing more blocks
// chains the digest with its complement, which is not cryptographically analysed.
package kerl

import (
	"hash"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/kerl/sha3"

	"github.com/iotaledger/tritium/packages/trinary"
)

const (
	// HashSize is the number of trits absorbed or squeezed per block.
	HashSize = trinary.HashTrinarySize
	// ByteHashSize is the number of bytes of a Keccak-384 digest.
	ByteHashSize = 48
)

// ErrComputation is returned when the underlying Keccak digest fails.
var ErrComputation = errors.New("kerl computation failed")

// Kerl is the Keccak-384 based ternary sponge.
type Kerl struct {
	keccak hash.Hash
	buffer [ByteHashSize]byte
}

// NewKerl returns a new Kerl sponge.
func NewKerl() *Kerl {
	return &Kerl{
		keccak: sha3.NewLegacyKeccak384(),
	}
}

// Absorb absorbs the given trits block by block. The length must be a positive multiple of 243.
// The last trit of every block is set to zero in the given slice before it is absorbed.
func (k *Kerl) Absorb(in trinary.Trits) error {
	if err := validateLength(len(in)); err != nil {
		return err
	}
	if err := trinary.ValidTrits(in); err != nil {
		return err
	}

	for ; len(in) > 0; in = in[HashSize:] {
		in[HashSize-1] = 0

		bytes, err := tritsToBytes(in[:HashSize])
		if err != nil {
			return err
		}
		if _, err := k.keccak.Write(bytes); err != nil {
			return errors.Wrapf(ErrComputation, "failed to absorb: %s", err)
		}
	}
	return nil
}

// Squeeze fills out with hash trits. The last trit of every block is always zero.
// The length must be a positive multiple of 243. Every further block is derived from the previous
// one only, so callers needing more than one block of output should absorb in between.
func (k *Kerl) Squeeze(out trinary.Trits) error {
	if err := validateLength(len(out)); err != nil {
		return err
	}

	for ; len(out) > 0; out = out[HashSize:] {
		digest := k.keccak.Sum(k.buffer[:0])
		copy(out, bytesToTrits(digest))

		// re-seed the digest with the complement of the emitted block
		for i := range digest {
			digest[i] = ^digest[i]
		}
		k.keccak.Reset()
		if _, err := k.keccak.Write(digest); err != nil {
			return errors.Wrapf(ErrComputation, "failed to squeeze: %s", err)
		}
	}
	return nil
}

// Reset resets the underlying digest to its initial state.
func (k *Kerl) Reset() {
	k.keccak.Reset()
}

func validateLength(length int) error {
	if length == 0 || length%HashSize != 0 {
		return errors.Wrapf(trinary.ErrInvalidTritsLength, "length %d is not a positive multiple of %d", length, HashSize)
	}
	return nil
}

func tritsToBytes(trits trinary.Trits) ([]byte, error) {
	value, err := trinary.TritsToBigInt(trits)
	if err != nil {
		return nil, err
	}
	return trinary.BigIntToBytes(value, ByteHashSize), nil
}

func bytesToTrits(bytes []byte) trinary.Trits {
	trits := trinary.BigIntToTrits(trinary.BytesToBigInt(bytes), HashSize)
	trits[HashSize-1] = 0
	return trits
}
