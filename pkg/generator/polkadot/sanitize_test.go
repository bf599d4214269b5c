package polkadot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'O', 'o'},
		{'I', 'i'},
		{'l', 'L'},
		{'0', Marker},
		{' ', Marker},
		{'-', Marker},
		{'é', Marker},
		{'€', Marker},
		{utf8.RuneError, Marker},
		{'o', 'o'},
		{'i', 'i'},
		{'L', 'L'},
		{'1', '1'},
		{'9', '9'},
		{'A', 'A'},
		{'z', 'z'},
	}

	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(Sanitize(tt.in)), "Sanitize(%q)", tt.in)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	for c := rune(0); c < 0x3000; c++ {
		once := Sanitize(c)
		require.Equal(t, once, Sanitize(once), "Sanitize(%q)", c)
	}
}

func TestSanitizeStaysInAlphabet(t *testing.T) {
	for c := rune(0); c < 0x3000; c++ {
		s := Sanitize(c)
		require.True(t, strings.ContainsRune(base58Alphabet, s), "Sanitize(%q) = %q", c, s)
	}
}

// Marker doubles as the prefix glyph. Pin that it is the alphabet's zero
// digit, so a marker anywhere in a candidate decodes to zero value and never
// changes the network prefix.
func TestMarkerRoundTrips(t *testing.T) {
	assert.Equal(t, PrefixGlyph, Marker)
	assert.True(t, IsValidBase58(string(Marker)))
	assert.Equal(t, byte(Marker), base58Alphabet[0])

	decoded, err := base58.Decode(strings.Repeat(string(Marker), 3))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0}, decoded)
	assert.Equal(t, strings.Repeat(string(Marker), 3), base58.Encode(decoded))

	a, err := WithVanity("", Marker)
	require.NoError(t, err)
	assert.Equal(t, byte(NetworkPrefix), a.Prefix())
	assert.Equal(t, make([]byte, KeyLen), a.Key())

	decodedAddr, err := Decode(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, decodedAddr)
}

func TestIsBase58MatchesCodecAlphabet(t *testing.T) {
	for c := rune(0); c < 0x3000; c++ {
		require.Equal(t, strings.ContainsRune(base58Alphabet, c), IsBase58(c), "IsBase58(%q)", c)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "HeLLoWorLd", SanitizeString("HelloWorld"))
	assert.Equal(t, "oiL1", SanitizeString("OIl0"))
	assert.Equal(t, "a1b", SanitizeString("a b"))
}

func TestInvalidBase58Chars(t *testing.T) {
	assert.True(t, IsValidBase58("HeLLo"))
	assert.False(t, IsValidBase58("Hello"))
	assert.Equal(t, []rune{'l', 'l', '0'}, InvalidBase58Chars("Hell0"))
	assert.Nil(t, InvalidBase58Chars("abc"))
}
