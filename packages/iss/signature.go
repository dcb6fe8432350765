package iss

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

// NormalizedBundle converts the bundle hash into 81 tryte values and balances every third of them
// to a sum of zero.
func NormalizedBundle(bundle trinary.Trits) ([]int8, error) {
	if len(bundle) != HashSize {
		return nil, errors.Wrapf(ErrInvalidBundleLength, "%d", len(bundle))
	}
	if err := trinary.ValidTrits(bundle); err != nil {
		return nil, err
	}

	normalizedBundle := make([]int8, NormalizedBundleLength)
	for i := 0; i < NumberOfSecurityLevels; i++ {
		fragment := normalizedBundle[i*NormalizedFragmentLength : (i+1)*NormalizedFragmentLength]

		sum := 0
		for j := range fragment {
			offset := (i*NormalizedFragmentLength + j) * trinary.TritsPerTryte
			fragment[j] = trinary.TryteValue(bundle[offset : offset+trinary.TritsPerTryte])
			sum += int(fragment[j])
		}

		for ; sum > 0; sum-- {
			for j := range fragment {
				if fragment[j] > trinary.MinTryteValue {
					fragment[j]--
					break
				}
			}
		}
		for ; sum < 0; sum++ {
			for j := range fragment {
				if fragment[j] < trinary.MaxTryteValue {
					fragment[j]++
					break
				}
			}
		}
	}
	return normalizedBundle, nil
}

// SignatureFragment signs the 27 normalized trytes with the 6561 trit key fragment.
func SignatureFragment(mode sponge.Mode, normalizedFragment []int8, keyFragment trinary.Trits) (trinary.Trits, error) {
	if err := validateNormalizedFragment(normalizedFragment); err != nil {
		return nil, err
	}
	if len(keyFragment) != KeyFragmentLength {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "key fragment of length %d", len(keyFragment))
	}
	if err := trinary.ValidTrits(keyFragment); err != nil {
		return nil, err
	}

	s, err := sponge.New(mode)
	if err != nil {
		return nil, err
	}

	signatureFragment := append(make(trinary.Trits, 0, KeyFragmentLength), keyFragment...)
	for j := 0; j < FragmentChunks; j++ {
		chunk := signatureFragment[j*HashSize : (j+1)*HashSize]
		if err := hashChain(s, chunk, trinary.MaxTryteValue-int(normalizedFragment[j])); err != nil {
			return nil, err
		}
	}
	return signatureFragment, nil
}

// Digest recomputes the public digest of the key fragment that produced the signature fragment.
func Digest(mode sponge.Mode, normalizedFragment []int8, signatureFragment trinary.Trits) (trinary.Trits, error) {
	if err := validateNormalizedFragment(normalizedFragment); err != nil {
		return nil, err
	}
	if len(signatureFragment) != KeyFragmentLength {
		return nil, errors.Wrapf(ErrInvalidSignatureLength, "%d", len(signatureFragment))
	}
	if err := trinary.ValidTrits(signatureFragment); err != nil {
		return nil, err
	}

	chainHash, err := sponge.New(mode)
	if err != nil {
		return nil, err
	}
	digestHash, err := sponge.New(mode)
	if err != nil {
		return nil, err
	}

	buffer := append(make(trinary.Trits, 0, KeyFragmentLength), signatureFragment...)
	for j := 0; j < FragmentChunks; j++ {
		chunk := buffer[j*HashSize : (j+1)*HashSize]
		if err := hashChain(chainHash, chunk, int(normalizedFragment[j])-trinary.MinTryteValue); err != nil {
			return nil, err
		}
		if err := digestHash.Absorb(chunk); err != nil {
			return nil, err
		}
	}

	digest := make(trinary.Trits, HashSize)
	if err := digestHash.Squeeze(digest); err != nil {
		return nil, err
	}
	return digest, nil
}

// Sign creates one signature fragment per security level for the bundle hash, using the key with
// the given index derived from the seed.
func Sign(mode sponge.Mode, seed trinary.Trits, index int, securityLevel SecurityLevel, bundleHash trinary.Trits) ([]trinary.Trits, error) {
	if err := securityLevel.Validate(); err != nil {
		return nil, err
	}
	normalizedBundle, err := NormalizedBundle(bundleHash)
	if err != nil {
		return nil, err
	}

	subseed, err := Subseed(mode, seed, index)
	if err != nil {
		return nil, err
	}
	key, err := Key(mode, subseed, int(securityLevel))
	if err != nil {
		return nil, err
	}

	signatureFragments := make([]trinary.Trits, securityLevel)
	for i := range signatureFragments {
		// each security level signs one third of the normalized bundle hash
		signatureFragments[i], err = SignatureFragment(mode,
			normalizedBundle[i*NormalizedFragmentLength:(i+1)*NormalizedFragmentLength],
			key[i*KeyFragmentLength:(i+1)*KeyFragmentLength],
		)
		if err != nil {
			return nil, err
		}
	}
	return signatureFragments, nil
}

// ValidateSignatures returns true if the signature fragments sign the bundle hash for the address.
func ValidateSignatures(mode sponge.Mode, expectedAddress trinary.Trits, signatureFragments []trinary.Trits, bundleHash trinary.Trits) (bool, error) {
	if len(signatureFragments) == 0 {
		return false, errors.Wrap(ErrInvalidSignatureLength, "no signature fragments")
	}
	normalizedBundle, err := NormalizedBundle(bundleHash)
	if err != nil {
		return false, err
	}

	digests := make(trinary.Trits, len(signatureFragments)*HashSize)
	for i, signatureFragment := range signatureFragments {
		fragmentIndex := i % NumberOfSecurityLevels
		digest, err := Digest(mode,
			normalizedBundle[fragmentIndex*NormalizedFragmentLength:(fragmentIndex+1)*NormalizedFragmentLength],
			signatureFragment,
		)
		if err != nil {
			return false, err
		}
		copy(digests[i*HashSize:], digest)
	}

	address, err := Address(mode, digests)
	if err != nil {
		return false, err
	}
	return tritsEqual(address, expectedAddress), nil
}

func tritsEqual(a, b trinary.Trits) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
