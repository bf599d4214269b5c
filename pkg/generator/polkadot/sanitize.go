package polkadot

import (
	"strings"
)

// base58Alphabet is the Bitcoin alphabet used by the codec (no 0, O, I, l).
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	// PrefixGlyph is the leading character of every generated address.
	// It is the zero digit of the alphabet and encodes NetworkPrefix (0).
	PrefixGlyph = '1'

	// Marker replaces characters the alphabet cannot show and is the
	// default fill. It is the same glyph as PrefixGlyph.
	Marker = '1'
)

// Sanitize maps a character to the form it will take in a vanity address.
// Ambiguous glyphs are normalised to one spelling (O->o, I->i, l->L) and
// anything that is not ASCII alphanumeric, as well as the digit 0, becomes
// Marker.
func Sanitize(c rune) rune {
	switch {
	case c == 'O':
		return 'o'
	case c == 'I':
		return 'i'
	case c == 'l':
		return 'L'
	case !isASCIIAlphanumeric(c) || c == '0':
		return Marker
	default:
		return c
	}
}

// SanitizeString applies Sanitize to every character of s.
func SanitizeString(s string) string {
	return strings.Map(Sanitize, s)
}

func isASCIIAlphanumeric(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsBase58 reports whether c is in the address alphabet. The alphabet is
// exactly the set of characters Sanitize leaves unchanged.
func IsBase58(c rune) bool {
	return Sanitize(c) == c
}

// IsValidBase58 reports whether s would appear in an address as typed.
func IsValidBase58(s string) bool {
	return len(InvalidBase58Chars(s)) == 0
}

// InvalidBase58Chars returns the characters of s that Sanitize would
// replace. The UI uses it to tell the user what will be substituted.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !IsBase58(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
