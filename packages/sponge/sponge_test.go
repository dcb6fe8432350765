package sponge

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/tritium/packages/trinary"
)

func TestNew(t *testing.T) {
	for _, mode := range []Mode{CurlP27, CurlP81, Kerl} {
		t.Run(mode.String(), func(t *testing.T) {
			s, err := New(mode)
			require.NoError(t, err)

			in := trinary.MustTrytesToTrits(trinary.Pad("TRITIUM", trinary.HashTrytesSize))
			first := make(trinary.Trits, trinary.HashTrinarySize)
			require.NoError(t, s.Absorb(in))
			require.NoError(t, s.Squeeze(first))

			s.Reset()
			second := make(trinary.Trits, trinary.HashTrinarySize)
			require.NoError(t, s.Absorb(in))
			require.NoError(t, s.Squeeze(second))
			assert.Equal(t, first, second)

			hash, err := Hash(mode, in)
			require.NoError(t, err)
			assert.Equal(t, first, hash)
		})
	}

	_, err := New(Mode(42))
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
	_, err = Hash(0, make(trinary.Trits, trinary.HashTrinarySize))
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestModesDiffer(t *testing.T) {
	in := make(trinary.Trits, trinary.HashTrinarySize)
	in[0] = 1

	hashes := make(map[string]struct{})
	for _, mode := range []Mode{CurlP27, CurlP81, Kerl} {
		hash, err := Hash(mode, append(trinary.Trits{}, in...))
		require.NoError(t, err)
		hashes[trinary.MustTritsToTrytes(hash)] = struct{}{}
	}
	assert.Len(t, hashes, 3)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("kerl")
	require.NoError(t, err)
	assert.Equal(t, Kerl, mode)

	mode, err = ParseMode("CurlP81")
	require.NoError(t, err)
	assert.Equal(t, CurlP81, mode)

	_, err = ParseMode("sha256")
	assert.True(t, errors.Is(err, ErrUnsupportedMode))

	assert.Equal(t, "Mode(7)", Mode(7).String())
}
