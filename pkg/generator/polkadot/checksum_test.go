package polkadot

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	var alice [KeyLen]byte
	raw, err := hex.DecodeString(aliceKeyHex)
	require.NoError(t, err)
	copy(alice[:], raw)

	tests := []struct {
		name   string
		prefix byte
		key    [KeyLen]byte
		want   [ChecksumLen]byte
	}{
		{"alice polkadot", 0, alice, [ChecksumLen]byte{0x7f, 0x46}},
		{"alice substrate", 42, alice, [ChecksumLen]byte{0x1d, 0x21}},
		{"zero key polkadot", 0, [KeyLen]byte{}, [ChecksumLen]byte{0xd4, 0xbe}},
		{"zero key substrate", 42, [KeyLen]byte{}, [ChecksumLen]byte{0xa6, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.prefix, tt.key))
		})
	}
}

func TestChecksumBindsPrefix(t *testing.T) {
	a, err := WithVanity("Prefix", 'x')
	require.NoError(t, err)

	assert.Equal(t, a.Sum(), Checksum(NetworkPrefix, a.key))
	assert.NotEqual(t, a.Sum(), Checksum(42, a.key))
}
