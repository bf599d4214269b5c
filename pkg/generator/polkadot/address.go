// Package polkadot builds keyless SS58 vanity addresses for the Polkadot
// network. An address is prefix || key || checksum, Base58 encoded, where the
// key bytes come from the requested text rather than from a key pair.
package polkadot

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// SS58 layout for a 32-byte account on a single-byte network prefix.
const (
	NetworkPrefix = 0x00 // Polkadot relay chain
	KeyLen        = 32
	AddressLen    = 1 + KeyLen + ChecksumLen // 35 bytes
)

var (
	// ErrMalformedAddress is the root of every Decode failure.
	ErrMalformedAddress = errors.New("malformed address")
	// ErrBadAlphabet means the text holds a character outside Base58.
	ErrBadAlphabet = &decodeError{"invalid base58 character"}
	// ErrWrongLength means the text does not decode to AddressLen bytes.
	ErrWrongLength = &decodeError{"wrong address length"}
	// ErrChecksumMismatch means the trailing checksum does not match the key.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

type decodeError struct{ msg string }

func (e *decodeError) Error() string { return e.msg }

// Is lets callers match any decode failure against ErrMalformedAddress.
func (e *decodeError) Is(target error) bool {
	return target == ErrMalformedAddress
}

// Address is an SS58 address. It is a value type and is never mutated
// once returned.
type Address struct {
	prefix byte
	key    [KeyLen]byte
	sum    [ChecksumLen]byte
}

// FromBytes splits a 35-byte layout into prefix, key and checksum.
func FromBytes(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return Address{}, errors.Wrapf(ErrWrongLength, "got %d bytes, want %d", len(b), AddressLen)
	}

	var a Address
	a.prefix = b[0]
	copy(a.key[:], b[1:1+KeyLen])
	copy(a.sum[:], b[1+KeyLen:])
	return a, nil
}

// Decode parses the Base58 text form of an address. The checksum is not
// verified; use Verify for that.
func Decode(text string) (Address, error) {
	if text == "" {
		return Address{}, errors.Wrap(ErrWrongLength, "empty address")
	}

	decoded, err := base58.Decode(text)
	if err != nil {
		return Address{}, errors.Wrapf(ErrBadAlphabet, "%q: %v", text, err)
	}
	return FromBytes(decoded)
}

// Verify decodes text and checks its checksum.
func Verify(text string) (Address, error) {
	a, err := Decode(text)
	if err != nil {
		return Address{}, err
	}
	if err := a.Validate(); err != nil {
		return Address{}, errors.Wrapf(err, "%q", text)
	}
	return a, nil
}

// Validate reports whether the stored checksum matches prefix and key.
func (a Address) Validate() error {
	if Checksum(a.prefix, a.key) != a.sum {
		return ErrChecksumMismatch
	}
	return nil
}

// Bytes returns the 35-byte layout prefix || key || checksum.
func (a Address) Bytes() []byte {
	b := make([]byte, 0, AddressLen)
	b = append(b, a.prefix)
	b = append(b, a.key[:]...)
	b = append(b, a.sum[:]...)
	return b
}

// Prefix returns the network prefix byte.
func (a Address) Prefix() byte {
	return a.prefix
}

// Key returns a copy of the 32 key bytes.
func (a Address) Key() []byte {
	key := make([]byte, KeyLen)
	copy(key, a.key[:])
	return key
}

// Sum returns the 2-byte checksum.
func (a Address) Sum() [ChecksumLen]byte {
	return a.sum
}

// Encode returns the Base58 text form of the address.
func (a Address) Encode() string {
	return base58.Encode(a.Bytes())
}

func (a Address) String() string {
	return a.Encode()
}
