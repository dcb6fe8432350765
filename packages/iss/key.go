package iss

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

// Subseed derives the subseed of the given key index from the seed.
func Subseed(mode sponge.Mode, seed trinary.Trits, index int) (trinary.Trits, error) {
	if index < 0 {
		return nil, errors.Wrapf(ErrInvalidIndex, "%d", index)
	}
	if len(seed) != HashSize {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "%d", len(seed))
	}
	if err := trinary.ValidTrits(seed); err != nil {
		return nil, err
	}

	preimage := append(make(trinary.Trits, 0, HashSize), seed...)
	trinary.AddInt(preimage, uint64(index))

	return sponge.Hash(mode, preimage)
}

// Key derives a private key of numberOfFragments key fragments from the subseed.
func Key(mode sponge.Mode, subseed trinary.Trits, numberOfFragments int) (trinary.Trits, error) {
	if len(subseed) != HashSize {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "subseed of length %d", len(subseed))
	}
	if numberOfFragments <= 0 {
		return nil, errors.Wrapf(ErrInvalidFragmentCount, "%d", numberOfFragments)
	}

	s, err := sponge.New(mode)
	if err != nil {
		return nil, err
	}

	key := make(trinary.Trits, KeyFragmentLength*numberOfFragments)
	if err := s.Absorb(append(trinary.Trits{}, subseed...)); err != nil {
		return nil, err
	}
	if err := s.Squeeze(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Digests returns the concatenated public digests of all key fragments of the key.
func Digests(mode sponge.Mode, key trinary.Trits) (trinary.Trits, error) {
	if len(key) == 0 || len(key)%KeyFragmentLength != 0 {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "%d", len(key))
	}
	if err := trinary.ValidTrits(key); err != nil {
		return nil, err
	}

	s, err := sponge.New(mode)
	if err != nil {
		return nil, err
	}

	numberOfFragments := len(key) / KeyFragmentLength
	digests := make(trinary.Trits, numberOfFragments*HashSize)
	buffer := make(trinary.Trits, KeyFragmentLength)
	for i := 0; i < numberOfFragments; i++ {
		copy(buffer, key[i*KeyFragmentLength:(i+1)*KeyFragmentLength])

		for j := 0; j < FragmentChunks; j++ {
			if err := hashChain(s, buffer[j*HashSize:(j+1)*HashSize], maxChainLength); err != nil {
				return nil, err
			}
		}

		s.Reset()
		if err := s.Absorb(buffer); err != nil {
			return nil, err
		}
		if err := s.Squeeze(digests[i*HashSize : (i+1)*HashSize]); err != nil {
			return nil, err
		}
	}
	return digests, nil
}

// Address returns the address belonging to the given digests.
func Address(mode sponge.Mode, digests trinary.Trits) (trinary.Trits, error) {
	if len(digests) == 0 || len(digests)%HashSize != 0 {
		return nil, errors.Wrapf(ErrInvalidDigestsLength, "%d", len(digests))
	}
	return sponge.Hash(mode, append(trinary.Trits{}, digests...))
}
