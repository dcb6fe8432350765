// Package sponge defines the common contract of the ternary sponges and creates them by mode.
package sponge

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tritium/packages/curl"
	"github.com/iotaledger/tritium/packages/kerl"
	"github.com/iotaledger/tritium/packages/trinary"
)

// ErrUnsupportedMode is returned when a sponge is requested for an unknown mode.
var ErrUnsupportedMode = errors.New("unsupported sponge mode")

// Sponge absorbs and squeezes trits in blocks of 243.
type Sponge interface {
	// Absorb absorbs the given trits. The length must be a positive multiple of 243.
	Absorb(in trinary.Trits) error
	// Squeeze fills out with trits. The length must be a positive multiple of 243.
	Squeeze(out trinary.Trits) error
	// Reset returns the sponge to its initial state.
	Reset()
}

// Mode selects one of the sponge implementations.
type Mode int

const (
	// CurlP27 is Curl with 27 rounds.
	CurlP27 Mode = iota + 1
	// CurlP81 is Curl with 81 rounds.
	CurlP81
	// Kerl is the Keccak-384 based sponge.
	Kerl
)

var modeNames = map[Mode]string{
	CurlP27: "CurlP27",
	CurlP81: "CurlP81",
	Kerl:    "Kerl",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode returns the mode with the given case-insensitive name.
func ParseMode(name string) (Mode, error) {
	for mode, modeName := range modeNames {
		if strings.EqualFold(name, modeName) {
			return mode, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedMode, "%q", name)
}

// New creates a new sponge for the given mode.
func New(mode Mode) (Sponge, error) {
	switch mode {
	case CurlP27:
		return curl.NewCurlP27(), nil
	case CurlP81:
		return curl.NewCurlP81(), nil
	case Kerl:
		return kerl.NewKerl(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedMode, "%d", mode)
	}
}

// Hash returns the 243 trit hash of the given trits using a fresh sponge of the given mode.
// Kerl clears the last trit of every absorbed block in the input.
func Hash(mode Mode, in trinary.Trits) (trinary.Trits, error) {
	s, err := New(mode)
	if err != nil {
		return nil, err
	}

	out := make(trinary.Trits, trinary.HashTrinarySize)
	if err := s.Absorb(in); err != nil {
		return nil, err
	}
	if err := s.Squeeze(out); err != nil {
		return nil, err
	}
	return out, nil
}
