// Package curl implements the Curl-P sponge over balanced ternary trits, with 27 or 81 rounds of
// its permutation, as well as the bit-sliced variant of the permutation used for batched hashing
// and proof-of-work.
package curl

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/trinary"
)

// Rounds is the number of rounds of the Curl permutation.
type Rounds int

const (
	// CurlP27 is the fast variant of Curl.
	CurlP27 Rounds = 27
	// CurlP81 is the secure variant of Curl.
	CurlP81 Rounds = 81

	// HashSize is the length of the rate part of the state.
	HashSize = trinary.HashTrinarySize
	// StateSize is the length of the whole Curl state.
	StateSize = HashSize * 3
)

// ErrInvalidRounds is returned when a Curl instance is requested with an unsupported number of rounds.
var ErrInvalidRounds = errors.New("invalid number of rounds")

// Valid returns true if the rounds are one of the supported variants.
func (r Rounds) Valid() bool {
	return r == CurlP27 || r == CurlP81
}

// Curl is the ternary Curl-P sponge.
type Curl struct {
	state  [StateSize]int8
	rounds Rounds
}

// NewCurl returns a new Curl sponge using the given number of rounds.
func NewCurl(rounds Rounds) (*Curl, error) {
	if !rounds.Valid() {
		return nil, errors.Wrapf(ErrInvalidRounds, "%d", rounds)
	}
	return &Curl{rounds: rounds}, nil
}

// NewCurlP27 returns a new Curl-P27 sponge.
func NewCurlP27() *Curl {
	return &Curl{rounds: CurlP27}
}

// NewCurlP81 returns a new Curl-P81 sponge.
func NewCurlP81() *Curl {
	return &Curl{rounds: CurlP81}
}

// Rounds returns the number of rounds of the permutation.
func (c *Curl) Rounds() Rounds {
	return c.rounds
}

// Absorb absorbs the given trits block by block. The length must be a positive multiple of 243.
func (c *Curl) Absorb(in trinary.Trits) error {
	if err := validateLength(len(in)); err != nil {
		return err
	}
	if err := trinary.ValidTrits(in); err != nil {
		return err
	}

	for len(in) > 0 {
		copy(c.state[:HashSize], in[:HashSize])
		transform(&c.state, c.rounds)
		in = in[HashSize:]
	}
	return nil
}

// Squeeze fills out with trits of the state, running the permutation after every block.
// The length must be a positive multiple of 243.
func (c *Curl) Squeeze(out trinary.Trits) error {
	if err := validateLength(len(out)); err != nil {
		return err
	}

	for len(out) > 0 {
		copy(out[:HashSize], c.state[:HashSize])
		transform(&c.state, c.rounds)
		out = out[HashSize:]
	}
	return nil
}

// Reset sets all trits of the state to zero.
func (c *Curl) Reset() {
	c.state = [StateSize]int8{}
}

// Clone returns a copy of the sponge including its state.
func (c *Curl) Clone() *Curl {
	clone := *c
	return &clone
}

func validateLength(length int) error {
	if length == 0 || length%HashSize != 0 {
		return errors.Wrapf(trinary.ErrInvalidTritsLength, "length %d is not a positive multiple of %d", length, HashSize)
	}
	return nil
}
