package address

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	legacy "github.com/iotaledger/iota.go/address"
	"github.com/iotaledger/iota.go/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/tritium/packages/iss"
	"github.com/iotaledger/tritium/packages/sponge"
	"github.com/iotaledger/tritium/packages/trinary"
)

func randomSeed() trinary.Trits {
	seed := make(trinary.Trits, iss.HashSize)
	for i := range seed {
		seed[i] = int8(rand.Intn(3) - 1)
	}
	return seed
}

func newGenerator(t *testing.T, seed trinary.Trits, securityLevel iss.SecurityLevel, opts ...Option) *Generator {
	g, err := NewGenerator(seed, securityLevel, sponge.Kerl, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestGenerator_Address(t *testing.T) {
	seed := randomSeed()

	for _, securityLevel := range []iss.SecurityLevel{1, 2, 3} {
		g := newGenerator(t, seed, securityLevel)

		for _, index := range []int{0, 1, 7} {
			address, err := g.Address(index)
			require.NoError(t, err)
			require.Len(t, address, trinary.HashTrytesSize)

			expected, err := legacy.GenerateAddress(trinary.MustTritsToTrytes(seed), uint64(index), consts.SecurityLevel(securityLevel))
			require.NoError(t, err)
			assert.Equal(t, expected, address)
		}
	}
}

func TestGenerator_Cache(t *testing.T) {
	g := newGenerator(t, randomSeed(), 1)

	first, err := g.Address(3)
	require.NoError(t, err)
	second, err := g.Address(3)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := g.Address(4)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	assert.EqualValues(t, 1, g.CacheMetrics().Retrievals)
	assert.EqualValues(t, 2, g.derivations.Load())
}

func TestGenerator_Expiry(t *testing.T) {
	g := newGenerator(t, randomSeed(), 1, CacheTTL(20*time.Millisecond))

	first, err := g.Address(0)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	second, err := g.Address(0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 0, g.CacheMetrics().Retrievals)
	assert.EqualValues(t, 2, g.derivations.Load())
}

func TestGenerator_Addresses(t *testing.T) {
	seed := randomSeed()
	g := newGenerator(t, seed, 2, WorkerCount(3))

	addresses, err := g.Addresses(5, 6)
	require.NoError(t, err)
	require.Len(t, addresses, 6)

	for i, address := range addresses {
		expected, err := Derive(sponge.Kerl, seed, 5+i, 2)
		require.NoError(t, err)
		assert.Equal(t, trinary.MustTritsToTrytes(expected), address)
	}

	empty, err := g.Addresses(0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerator_ConcurrentAccess(t *testing.T) {
	g := newGenerator(t, randomSeed(), 1)

	expected, err := g.Address(11)
	require.NoError(t, err)

	results := make([]trinary.Trytes, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = g.Address(11)
		}(i)
	}
	wg.Wait()

	for _, address := range results {
		assert.Equal(t, expected, address)
	}
}

func TestGenerator_Validation(t *testing.T) {
	_, err := NewGenerator(make(trinary.Trits, 10), 1, sponge.Kerl)
	assert.ErrorIs(t, err, iss.ErrInvalidSeedLength)

	_, err = NewGenerator(randomSeed(), 4, sponge.Kerl)
	assert.ErrorIs(t, err, iss.ErrInvalidSecurityLevel)

	_, err = NewGenerator(randomSeed(), 1, sponge.Mode(42))
	assert.ErrorIs(t, err, sponge.ErrUnsupportedMode)

	g := newGenerator(t, randomSeed(), 1)
	_, err = g.Address(-1)
	assert.ErrorIs(t, err, iss.ErrInvalidIndex)
	_, err = g.Addresses(-1, 2)
	assert.ErrorIs(t, err, iss.ErrInvalidIndex)
}

func TestGenerator_Close(t *testing.T) {
	g, err := NewGenerator(randomSeed(), 1, sponge.CurlP81)
	require.NoError(t, err)
	require.NoError(t, g.Close())

	_, err = g.Address(0)
	assert.ErrorIs(t, err, ErrGeneratorClosed)

	_, err = g.Addresses(0, 2)
	assert.ErrorIs(t, err, ErrGeneratorClosed)
}
