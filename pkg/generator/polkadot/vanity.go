package polkadot

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	// MaxVanity is the longest text WithVanity accepts, in characters.
	MaxVanity = 20

	// bodyLen is the number of characters after PrefixGlyph in a candidate.
	bodyLen = 46
)

// ErrInputTooLong is returned when the vanity text exceeds MaxVanity.
var ErrInputTooLong = errors.Errorf("vanity text longer than %d characters", MaxVanity)

// WithVanity builds an address whose text form reads as PrefixGlyph, then
// the sanitized text, then the sanitized fill repeated, with a valid
// checksum in the last bytes. The MaxVanity limit counts characters, so
// multibyte input is accepted up to 20 runes (each becomes Marker).
//
// The candidate text is decoded as if it were an address, so the text and
// fill also cover the bytes in checksum position. Those bytes are then
// replaced with the checksum computed over prefix and key, which changes
// the last few characters of the rendering.
func WithVanity(text string, fill rune) (Address, error) {
	if n := utf8.RuneCountInString(text); n > MaxVanity {
		return Address{}, errors.Wrapf(ErrInputTooLong, "got %d", n)
	}

	fill = Sanitize(fill)

	var candidate strings.Builder
	candidate.Grow(1 + bodyLen)
	candidate.WriteRune(PrefixGlyph)

	rest := text
	for i := 0; i < bodyLen; i++ {
		c := fill
		if rest != "" {
			r, size := utf8.DecodeRuneInString(rest)
			rest = rest[size:]
			c = Sanitize(r)
		}
		candidate.WriteRune(c)
	}

	a, err := decodeCandidate(candidate.String())
	if err != nil {
		panic(fmt.Sprintf("polkadot: vanity candidate %q: %v", candidate.String(), err))
	}

	a.sum = Checksum(a.prefix, a.key)
	return a, nil
}

// decodeCandidate lays a candidate out at the fixed address width.
//
// Base58 turns each leading zero digit into its own zero byte, so a body
// that starts with low digits decodes to fewer or more than AddressLen
// bytes. The numeric value of PrefixGlyph plus 46 digits is below 58^46,
// which always fits in AddressLen-1 bytes, so it is decoded as a number
// and left padded.
func decodeCandidate(candidate string) (Address, error) {
	decoded, err := base58.Decode(candidate)
	if err != nil {
		return Address{}, errors.Wrap(ErrBadAlphabet, err.Error())
	}

	value := bytes.TrimLeft(decoded, "\x00")
	if len(value) > AddressLen-1 {
		return Address{}, errors.Wrapf(ErrWrongLength, "candidate value is %d bytes", len(value))
	}

	layout := make([]byte, AddressLen)
	copy(layout[AddressLen-len(value):], value)

	return FromBytes(layout)
}
