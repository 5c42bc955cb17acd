// Package hash160 provides the 20 byte RIPEMD-160(SHA-256(x)) digest used to
// identify public keys in pay-to-public-key-hash scripts and addresses.
package hash160

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/zeebo/errs"
)

// Size is the length of a Hash160 in bytes.
const Size = 20

// Error is the error class for this package.
var Error = errs.Class("hash160")

// Hash160 is an immutable 20 byte digest. The content is not interpreted.
type Hash160 [Size]byte

// Sum returns RIPEMD-160(SHA-256(data)).
func Sum(data []byte) (h Hash160) {
	copy(h[:], btcutil.Hash160(data))

	return h
}

// FromData wraps an already computed digest.
func FromData(data []byte) (h Hash160, err error) {
	if len(data) != Size {
		return h, Error.New("invalid length: got %d bytes, want %d", len(data), Size)
	}

	copy(h[:], data)

	return h, nil
}

// FromSlice wraps digest bytes arriving from an external buffer. The bytes
// are copied so later changes to the buffer are not observed.
func FromSlice(b []byte) (h Hash160, err error) {
	return FromData(b)
}

// FromHex decodes a hex encoded digest.
func FromHex(s string) (h Hash160, err error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return h, Error.Wrap(err)
	}

	return FromData(data)
}

// Bytes returns a copy of the digest.
func (h Hash160) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, h[:])

	return b
}

// Len returns the digest length which is always Size.
func (h Hash160) Len() int {
	return Size
}

// At returns the byte at offset i. It panics if i is out of range.
func (h Hash160) At(i int) byte {
	return h[i]
}

// String returns the hex encoding of the digest.
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash160) MarshalText() (text []byte, err error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash160) UnmarshalText(text []byte) (err error) {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}

	*h = v

	return nil
}
