package curl

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	legacy "github.com/iotaledger/iota.go/curl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/tritium/packages/ternary"
	"github.com/iotaledger/tritium/packages/trinary"
)

func randomTrits(length int) trinary.Trits {
	trits := make(trinary.Trits, length)
	for i := range trits {
		trits[i] = int8(rand.Intn(3) - 1)
	}
	return trits
}

func hash(t testing.TB, c *Curl, in trinary.Trits) trinary.Trits {
	out := make(trinary.Trits, HashSize)
	require.NoError(t, c.Absorb(in))
	require.NoError(t, c.Squeeze(out))
	return out
}

func TestCurlP27_ZeroVector(t *testing.T) {
	// the zero state cycles through 0 -> -1 -> 1 -> 0 and 27 rounds are a multiple of 3
	out := hash(t, NewCurlP27(), make(trinary.Trits, HashSize))
	assert.True(t, trinary.IsZero(out))

	reference := legacy.NewCurlP27()
	require.NoError(t, reference.Absorb(make([]int8, HashSize)))
	expected, err := reference.Squeeze(HashSize)
	require.NoError(t, err)
	assert.EqualValues(t, expected, out)
}

func TestCurl_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		curl     func() *Curl
		in       trinary.Trytes
		expected trinary.Trytes
	}{
		{
			"CurlP27 zero",
			NewCurlP27,
			"",
			"999999999999999999999999999999999999999999999999999999999999999999999999999999999",
		},
		{
			"CurlP81 zero",
			NewCurlP81,
			"",
			"999999999999999999999999999999999999999999999999999999999999999999999999999999999",
		},
		{
			"CurlP27",
			NewCurlP27,
			"TWENTYSEVEN",
			"RQPYXJPRXEEPLYLAHWTTFRXXUZTV9SZPEVOQ9FZATCXJOZLZ9A9BFXTUBSHGXN9OOA9GWIPGAAWEDVNPN",
		},
		{
			"CurlP81",
			NewCurlP81,
			"A",
			"TJVKPMTAMIZVBVHIVQUPTKEMPROEKV9SB9COEDQYRHYPTYSKQIAN9PQKMZHCPO9TS9BHCORFKW9CQXZEE",
		},
		{
			"CurlP81 alphabet",
			NewCurlP81,
			"ABCDEFGHIJ",
			"JKSGOZW9WFTALAYESGNJYRGCKIMZSVBMFIIHYBFCUCSLWDI9EEPTZBLGWNPJOMW9HZWNOFGBR9RNHKCYI",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := trinary.MustTrytesToTrits(trinary.Pad(test.in, trinary.HashTrytesSize))
			out := hash(t, test.curl(), in)
			assert.Equal(t, test.expected, trinary.MustTritsToTrytes(out))
		})
	}
}

func TestCurl_MatchesReference(t *testing.T) {
	tests := []struct {
		name string
		curl func() *Curl
	}{
		{"CurlP27", NewCurlP27},
		{"CurlP81", NewCurlP81},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				in := randomTrits(HashSize * (1 + rand.Intn(33)))

				c := test.curl()
				out := make(trinary.Trits, 2*HashSize)
				require.NoError(t, c.Absorb(in))
				require.NoError(t, c.Squeeze(out))

				reference := legacy.NewCurl(legacy.CurlRounds(c.Rounds()))
				require.NoError(t, reference.Absorb(in))
				expected, err := reference.Squeeze(2 * HashSize)
				require.NoError(t, err)
				assert.EqualValues(t, expected, out)
			}
		})
	}
}

func TestCurl_Determinism(t *testing.T) {
	in := randomTrits(3 * HashSize)
	c := NewCurlP81()

	first := hash(t, c, in)
	c.Reset()
	second := hash(t, c, in)
	assert.Equal(t, first, second)

	assert.Equal(t, first, hash(t, NewCurlP81(), in))
	assert.NotEqual(t, first, hash(t, NewCurlP27(), in))
}

func TestCurl_SqueezeIsNotIdempotent(t *testing.T) {
	c := NewCurlP27()
	require.NoError(t, c.Absorb(randomTrits(HashSize)))

	first := make(trinary.Trits, HashSize)
	second := make(trinary.Trits, HashSize)
	require.NoError(t, c.Squeeze(first))
	require.NoError(t, c.Squeeze(second))
	assert.NotEqual(t, first, second)
}

func TestCurl_Clone(t *testing.T) {
	c := NewCurlP81()
	require.NoError(t, c.Absorb(randomTrits(HashSize)))

	clone := c.Clone()
	in := randomTrits(HashSize)
	assert.Equal(t, hash(t, c, in), hash(t, clone, in))
}

func TestCurl_InvalidInput(t *testing.T) {
	_, err := NewCurl(42)
	assert.True(t, errors.Is(err, ErrInvalidRounds))

	c := NewCurlP27()
	assert.True(t, errors.Is(c.Absorb(make(trinary.Trits, 242)), trinary.ErrInvalidTritsLength))
	assert.True(t, errors.Is(c.Absorb(nil), trinary.ErrInvalidTritsLength))
	assert.True(t, errors.Is(c.Squeeze(make(trinary.Trits, 244)), trinary.ErrInvalidTritsLength))

	invalid := make(trinary.Trits, HashSize)
	invalid[17] = -3
	assert.True(t, errors.Is(c.Absorb(invalid), trinary.ErrInvalidTrit))

	// failed calls leave the state untouched
	assert.Equal(t, hash(t, NewCurlP27(), make(trinary.Trits, HashSize)), hash(t, c, make(trinary.Trits, HashSize)))
}

func TestTransformBCT(t *testing.T) {
	states := make([]trinary.Trits, ternary.NumberOfLanes)
	multiplexer := ternary.NewBCTernaryMultiplexer()
	for i := range states {
		states[i] = randomTrits(StateSize)
		_, err := multiplexer.Add(states[i])
		require.NoError(t, err)
	}
	bcTrits, err := multiplexer.Extract()
	require.NoError(t, err)

	var lo, hi [StateSize]uint64
	copy(lo[:], bcTrits.Lo)
	copy(hi[:], bcTrits.Hi)
	TransformBCT(&lo, &hi, CurlP27)

	demultiplexer := ternary.NewBCTernaryDemultiplexer(ternary.BCTrits{Lo: lo[:], Hi: hi[:]})
	for i, state := range states {
		var expected [StateSize]int8
		copy(expected[:], state)
		transform(&expected, CurlP27)

		assert.EqualValues(t, expected[:], demultiplexer.Get(i), "lane %d", i)
	}
}

func BenchmarkCurlP81(b *testing.B) {
	in := randomTrits(33 * HashSize)
	out := make(trinary.Trits, HashSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewCurlP81()
		_ = c.Absorb(in)
		_ = c.Squeeze(out)
	}
}

func BenchmarkTransformBCT(b *testing.B) {
	var lo, hi [StateSize]uint64
	for i := range lo {
		lo[i], hi[i] = ternary.HighBits, ternary.HighBits
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TransformBCT(&lo, &hi, CurlP81)
	}
}
