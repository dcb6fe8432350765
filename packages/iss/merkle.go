package iss

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

// MerkleRoot combines the leaf hash with depth sibling hashes into the root of a Merkle tree. The
// bits of index select at every level whether the leaf is the left (0) or the right (1) child.
// If index has bits set beyond depth the all-zero hash is returned, which never matches a root.
func MerkleRoot(mode sponge.Mode, leaf trinary.Trits, siblings trinary.Trits, index uint64, depth int) (trinary.Trits, error) {
	if len(leaf) != HashSize {
		return nil, errors.Wrapf(trinary.ErrInvalidTritsLength, "leaf of length %d", len(leaf))
	}
	if depth < 0 || len(siblings) < depth*HashSize {
		return nil, errors.Wrapf(ErrInvalidSiblingsLength, "%d trits for depth %d", len(siblings), depth)
	}
	if err := trinary.ValidTrits(siblings[:depth*HashSize]); err != nil {
		return nil, err
	}

	s, err := sponge.New(mode)
	if err != nil {
		return nil, err
	}

	hash := append(make(trinary.Trits, 0, HashSize), leaf...)
	sibling := make(trinary.Trits, HashSize)
	for i := 0; i < depth; i++ {
		copy(sibling, siblings[i*HashSize:(i+1)*HashSize])

		first, second := hash, sibling
		if index&1 != 0 {
			first, second = sibling, hash
		}

		s.Reset()
		if err := s.Absorb(first); err != nil {
			return nil, err
		}
		if err := s.Absorb(second); err != nil {
			return nil, err
		}
		if err := s.Squeeze(hash); err != nil {
			return nil, err
		}

		index >>= 1
	}

	if index != 0 {
		return make(trinary.Trits, HashSize), nil
	}
	return hash, nil
}
