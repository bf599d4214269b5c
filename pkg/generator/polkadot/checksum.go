package polkadot

import (
	"golang.org/x/crypto/blake2b"
)

// checksumTag is the SS58 domain separation prefix mixed into the hash.
const checksumTag = "SS58PRE"

// ChecksumLen is the number of hash bytes kept as the address checksum.
const ChecksumLen = 2

// Checksum computes the SS58 checksum of a prefix and key.
// checksum = first 2 bytes of Blake2b-512("SS58PRE" || prefix || key)
func Checksum(prefix byte, key [KeyLen]byte) [ChecksumLen]byte {
	data := make([]byte, 0, len(checksumTag)+1+KeyLen)
	data = append(data, checksumTag...)
	data = append(data, prefix)
	data = append(data, key[:]...)

	hash := blake2b.Sum512(data)

	var sum [ChecksumLen]byte
	copy(sum[:], hash[:ChecksumLen])
	return sum
}
