// Package iss implements the Winternitz one-time signature scheme on top of the ternary sponges.
//
// A private key consists of 27 chunks of 243 trits per security level. Its public digest is
// obtained by hashing every chunk 26 times; a signature hashes chunk j 13-n_j times, where n_j is
// the j-th tryte of the normalized bundle hash, and the verifier applies the remaining 13+n_j.
package iss

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

const (
	// HashSize is the length of seeds, subseeds, digests and addresses.
	HashSize = trinary.HashTrinarySize
	// FragmentChunks is the number of chunks of a key fragment.
	FragmentChunks = 27
	// KeyFragmentLength is the length of a key fragment per security level.
	KeyFragmentLength = FragmentChunks * HashSize
	// NormalizedFragmentLength is the number of normalized trytes signed by one key fragment.
	NormalizedFragmentLength = FragmentChunks
	// NumberOfSecurityLevels is the number of normalized bundle fragments.
	NumberOfSecurityLevels = 3
	// NormalizedBundleLength is the length of a normalized bundle hash.
	NormalizedBundleLength = NumberOfSecurityLevels * NormalizedFragmentLength

	maxChainLength = trinary.MaxTryteValue - trinary.MinTryteValue
)

var (
	// ErrInvalidIndex is returned for negative key indices.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidSeedLength is returned when a seed or subseed is not 243 trits long.
	ErrInvalidSeedLength = errors.New("invalid seed length")
	// ErrInvalidFragmentCount is returned when a non-positive number of key fragments is requested.
	ErrInvalidFragmentCount = errors.New("invalid number of fragments")
	// ErrInvalidKeyLength is returned when a key or key fragment has an invalid length.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidDigestsLength is returned when digests are not a positive multiple of 243 trits.
	ErrInvalidDigestsLength = errors.New("invalid digests length")
	// ErrInvalidBundleLength is returned when a bundle hash is not 243 trits long.
	ErrInvalidBundleLength = errors.New("invalid bundle hash length")
	// ErrInvalidNormalizedFragment is returned for normalized fragments of wrong length or with values outside [-13, 13].
	ErrInvalidNormalizedFragment = errors.New("invalid normalized fragment")
	// ErrInvalidSignatureLength is returned when a signature fragment is not 6561 trits long.
	ErrInvalidSignatureLength = errors.New("invalid signature fragment length")
	// ErrInvalidSiblingsLength is returned when the Merkle path is shorter than the requested depth.
	ErrInvalidSiblingsLength = errors.New("invalid siblings length")
	// ErrInvalidSecurityLevel is returned for security levels outside of 1 to 3.
	ErrInvalidSecurityLevel = errors.New("invalid security level")
)

// SecurityLevel is the number of key fragments used for an address.
type SecurityLevel int

const (
	// SecurityLevelLow uses one key fragment.
	SecurityLevelLow SecurityLevel = 1
	// SecurityLevelMedium uses two key fragments.
	SecurityLevelMedium SecurityLevel = 2
	// SecurityLevelHigh uses three key fragments.
	SecurityLevelHigh SecurityLevel = 3
)

// Validate returns an error if the security level is not supported.
func (s SecurityLevel) Validate() error {
	if s < SecurityLevelLow || s > SecurityLevelHigh {
		return errors.Wrapf(ErrInvalidSecurityLevel, "%d", s)
	}
	return nil
}

// hashChain replaces the chunk with its hash, length times.
func hashChain(s sponge.Sponge, chunk trinary.Trits, length int) error {
	for i := 0; i < length; i++ {
		s.Reset()
		if err := s.Absorb(chunk); err != nil {
			return err
		}
		if err := s.Squeeze(chunk); err != nil {
			return err
		}
	}
	return nil
}

func validateNormalizedFragment(normalizedFragment []int8) error {
	if len(normalizedFragment) != NormalizedFragmentLength {
		return errors.Wrapf(ErrInvalidNormalizedFragment, "length %d", len(normalizedFragment))
	}
	for i, value := range normalizedFragment {
		if value < trinary.MinTryteValue || value > trinary.MaxTryteValue {
			return errors.Wrapf(ErrInvalidNormalizedFragment, "value %d at index %d", value, i)
		}
	}
	return nil
}
