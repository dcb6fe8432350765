package iss

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

var modes = []sponge.Mode{sponge.CurlP27, sponge.CurlP81, sponge.Kerl}

func randomTrits(length int) trinary.Trits {
	trits := make(trinary.Trits, length)
	for i := range trits {
		trits[i] = int8(rand.Intn(3) - 1)
	}
	return trits
}

func TestSignatureScheme(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			seed := randomTrits(HashSize)
			index := rand.Intn(100)
			messageHash := randomTrits(HashSize)

			subseed, err := Subseed(mode, seed, index)
			require.NoError(t, err)
			key, err := Key(mode, subseed, 2)
			require.NoError(t, err)
			require.Len(t, key, 2*KeyFragmentLength)

			digests, err := Digests(mode, key)
			require.NoError(t, err)
			require.Len(t, digests, 2*HashSize)
			address, err := Address(mode, digests)
			require.NoError(t, err)

			normalizedBundle, err := NormalizedBundle(messageHash)
			require.NoError(t, err)

			recomputed := make(trinary.Trits, 0, 2*HashSize)
			for i := 0; i < 2; i++ {
				normalizedFragment := normalizedBundle[i*NormalizedFragmentLength : (i+1)*NormalizedFragmentLength]
				signatureFragment, err := SignatureFragment(mode, normalizedFragment, key[i*KeyFragmentLength:(i+1)*KeyFragmentLength])
				require.NoError(t, err)

				digest, err := Digest(mode, normalizedFragment, signatureFragment)
				require.NoError(t, err)
				assert.Equal(t, digests[i*HashSize:(i+1)*HashSize], digest)

				recomputed = append(recomputed, digest...)
			}

			recomputedAddress, err := Address(mode, recomputed)
			require.NoError(t, err)
			assert.Equal(t, address, recomputedAddress)
		})
	}
}

func TestSignAndValidate(t *testing.T) {
	const mode = sponge.Kerl

	seed := randomTrits(HashSize)
	bundleHash := randomTrits(HashSize)

	subseed, err := Subseed(mode, seed, 7)
	require.NoError(t, err)
	key, err := Key(mode, subseed, int(SecurityLevelHigh))
	require.NoError(t, err)
	digests, err := Digests(mode, key)
	require.NoError(t, err)
	address, err := Address(mode, digests)
	require.NoError(t, err)

	signatureFragments, err := Sign(mode, seed, 7, SecurityLevelHigh, bundleHash)
	require.NoError(t, err)
	require.Len(t, signatureFragments, 3)

	valid, err := ValidateSignatures(mode, address, signatureFragments, bundleHash)
	require.NoError(t, err)
	assert.True(t, valid)

	t.Run("other bundle", func(t *testing.T) {
		valid, err := ValidateSignatures(mode, address, signatureFragments, randomTrits(HashSize))
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("other index", func(t *testing.T) {
		otherFragments, err := Sign(mode, seed, 8, SecurityLevelHigh, bundleHash)
		require.NoError(t, err)

		valid, err := ValidateSignatures(mode, address, otherFragments, bundleHash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := Sign(mode, seed, 7, 4, bundleHash)
		assert.True(t, errors.Is(err, ErrInvalidSecurityLevel))

		_, err = ValidateSignatures(mode, address, nil, bundleHash)
		assert.True(t, errors.Is(err, ErrInvalidSignatureLength))

		_, err = ValidateSignatures(mode, address, []trinary.Trits{make(trinary.Trits, HashSize)}, bundleHash)
		assert.True(t, errors.Is(err, ErrInvalidSignatureLength))
	})
}

func TestNormalizedBundle(t *testing.T) {
	check := func(t *testing.T, bundle trinary.Trits) {
		normalizedBundle, err := NormalizedBundle(bundle)
		require.NoError(t, err)
		require.Len(t, normalizedBundle, NormalizedBundleLength)

		for i := 0; i < NumberOfSecurityLevels; i++ {
			sum := 0
			for _, value := range normalizedBundle[i*NormalizedFragmentLength : (i+1)*NormalizedFragmentLength] {
				assert.GreaterOrEqual(t, value, int8(trinary.MinTryteValue))
				assert.LessOrEqual(t, value, int8(trinary.MaxTryteValue))
				sum += int(value)
			}
			assert.Zero(t, sum)
		}
	}

	t.Run("random", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			check(t, randomTrits(HashSize))
		}
	})

	t.Run("extreme values", func(t *testing.T) {
		for _, tryte := range []string{"M", "N", "9"} {
			check(t, trinary.MustTrytesToTrits(repeat(tryte, trinary.HashTrytesSize)))
		}
	})

	t.Run("first adjustable position is decremented", func(t *testing.T) {
		// tryte A (1) followed by 26 zeros in every third
		bundle := trinary.MustTrytesToTrits(repeat("A"+repeat("9", 26), NumberOfSecurityLevels))
		normalizedBundle, err := NormalizedBundle(bundle)
		require.NoError(t, err)
		for i := 0; i < NumberOfSecurityLevels; i++ {
			assert.Zero(t, normalizedBundle[i*NormalizedFragmentLength])
		}

		// tryte N (-13) can not be decremented, so the next position takes the adjustment
		bundle = trinary.MustTrytesToTrits(repeat("NMA"+repeat("9", 24), NumberOfSecurityLevels))
		normalizedBundle, err = NormalizedBundle(bundle)
		require.NoError(t, err)
		assert.Equal(t, []int8{-13, 12, 1}, normalizedBundle[:3])
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := NormalizedBundle(make(trinary.Trits, 81))
		assert.True(t, errors.Is(err, ErrInvalidBundleLength))
	})
}

func TestSubseed(t *testing.T) {
	seed := randomTrits(HashSize)

	subseed, err := Subseed(sponge.CurlP27, seed, 0)
	require.NoError(t, err)
	expected, err := sponge.Hash(sponge.CurlP27, seed)
	require.NoError(t, err)
	assert.Equal(t, expected, subseed)

	incremented := append(trinary.Trits{}, seed...)
	for i := 0; i < 5; i++ {
		trinary.IncrementTrits(incremented)
	}
	subseed, err = Subseed(sponge.CurlP27, seed, 5)
	require.NoError(t, err)
	expected, err = sponge.Hash(sponge.CurlP27, incremented)
	require.NoError(t, err)
	assert.Equal(t, expected, subseed)

	_, err = Subseed(sponge.CurlP27, seed, -1)
	assert.True(t, errors.Is(err, ErrInvalidIndex))
	_, err = Subseed(sponge.CurlP27, seed[:81], 1)
	assert.True(t, errors.Is(err, ErrInvalidSeedLength))
	_, err = Subseed(sponge.Mode(9), seed, 1)
	assert.True(t, errors.Is(err, sponge.ErrUnsupportedMode))
}

func TestKeyAndDigestsValidation(t *testing.T) {
	_, err := Key(sponge.CurlP27, make(trinary.Trits, HashSize), 0)
	assert.True(t, errors.Is(err, ErrInvalidFragmentCount))
	_, err = Key(sponge.CurlP27, make(trinary.Trits, 2*HashSize), 1)
	assert.True(t, errors.Is(err, ErrInvalidSeedLength))

	_, err = Digests(sponge.CurlP27, make(trinary.Trits, KeyFragmentLength-1))
	assert.True(t, errors.Is(err, ErrInvalidKeyLength))
	_, err = Digests(sponge.CurlP27, nil)
	assert.True(t, errors.Is(err, ErrInvalidKeyLength))

	_, err = Address(sponge.CurlP27, make(trinary.Trits, 100))
	assert.True(t, errors.Is(err, ErrInvalidDigestsLength))

	normalizedFragment := make([]int8, NormalizedFragmentLength)
	normalizedFragment[3] = 14
	_, err = SignatureFragment(sponge.CurlP27, normalizedFragment, make(trinary.Trits, KeyFragmentLength))
	assert.True(t, errors.Is(err, ErrInvalidNormalizedFragment))
	_, err = Digest(sponge.CurlP27, normalizedFragment[:26], make(trinary.Trits, KeyFragmentLength))
	assert.True(t, errors.Is(err, ErrInvalidNormalizedFragment))
	_, err = SignatureFragment(sponge.CurlP27, make([]int8, NormalizedFragmentLength), make(trinary.Trits, HashSize))
	assert.True(t, errors.Is(err, ErrInvalidKeyLength))

	assert.NoError(t, SecurityLevelMedium.Validate())
	assert.True(t, errors.Is(SecurityLevel(0).Validate(), ErrInvalidSecurityLevel))
}

func TestMerkleRoot(t *testing.T) {
	const mode = sponge.CurlP81

	leaves := make([]trinary.Trits, 4)
	for i := range leaves {
		leaves[i] = randomTrits(HashSize)
	}
	node := func(left, right trinary.Trits) trinary.Trits {
		hash, err := sponge.Hash(mode, append(append(trinary.Trits{}, left...), right...))
		require.NoError(t, err)
		return hash
	}
	left, right := node(leaves[0], leaves[1]), node(leaves[2], leaves[3])
	root := node(left, right)

	paths := []trinary.Trits{
		append(append(trinary.Trits{}, leaves[1]...), right...),
		append(append(trinary.Trits{}, leaves[0]...), right...),
		append(append(trinary.Trits{}, leaves[3]...), left...),
		append(append(trinary.Trits{}, leaves[2]...), left...),
	}
	for i, path := range paths {
		result, err := MerkleRoot(mode, leaves[i], path, uint64(i), 2)
		require.NoError(t, err)
		assert.Equal(t, root, result, "leaf %d", i)
	}

	t.Run("residual index bits", func(t *testing.T) {
		result, err := MerkleRoot(mode, leaves[0], paths[0], 4, 2)
		require.NoError(t, err)
		assert.True(t, trinary.IsZero(result))
		assert.Len(t, result, HashSize)
	})

	t.Run("zero depth", func(t *testing.T) {
		result, err := MerkleRoot(mode, leaves[0], nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, leaves[0], result)
	})

	t.Run("short path", func(t *testing.T) {
		_, err := MerkleRoot(mode, leaves[0], paths[0][:HashSize], 0, 2)
		assert.True(t, errors.Is(err, ErrInvalidSiblingsLength))
	})
}

func repeat(s string, count int) string {
	result := ""
	for i := 0; i < count; i++ {
		result += s
	}
	return result
}
