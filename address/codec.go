package address

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// PayloadSize is the length of a decoded address payload: one version byte
// followed by the hash.
const PayloadSize = 21

// Codec is a checksummed text encoding for byte payloads.
type Codec interface {
	// EncodeCheck appends a checksum to payload and encodes the result.
	EncodeCheck(payload []byte) string

	// DecodeCheck reverses EncodeCheck, verifying the checksum. The
	// returned payload does not include the checksum.
	DecodeCheck(text string) (payload []byte, err error)
}

// Base58Check is the Codec used by Bitcoin addresses: the first four bytes of
// the double SHA-256 of the payload are appended and the result is encoded
// with the Base58 alphabet.
//
// Decoding errors are the base58 package errors (base58.ErrChecksum and
// base58.ErrInvalidFormat) returned as is.
type Base58Check struct{}

var _ Codec = Base58Check{}

// EncodeCheck implements Codec.
func (Base58Check) EncodeCheck(payload []byte) string {
	if len(payload) == 0 {
		return base58.Encode(chainhash.DoubleHashB(nil)[:4])
	}

	return base58.CheckEncode(payload[1:], payload[0])
}

// DecodeCheck implements Codec.
func (Base58Check) DecodeCheck(text string) (payload []byte, err error) {
	// A bare checksum carries an empty payload, which base58.CheckDecode
	// rejects for lacking a version byte.
	if raw := base58.Decode(text); len(raw) == 4 {
		if !bytes.Equal(raw, chainhash.DoubleHashB(nil)[:4]) {
			return nil, base58.ErrChecksum
		}

		return []byte{}, nil
	}

	result, version, err := base58.CheckDecode(text)
	if err != nil {
		return nil, err
	}

	payload = make([]byte, 0, 1+len(result))
	payload = append(payload, version)
	payload = append(payload, result...)

	return payload, nil
}

// Encoder renders addresses as text.
type Encoder struct {
	codec Codec
}

// NewEncoder returns a new encoder.
func NewEncoder(codec Codec) *Encoder {
	return &Encoder{
		codec: codec,
	}
}

// Encode returns the text form of a.
func (e *Encoder) Encode(a Address) string {
	return e.codec.EncodeCheck(a.payload())
}

// Decoder parses addresses from text.
type Decoder struct {
	codec Codec
}

// NewDecoder returns a new decoder.
func NewDecoder(codec Codec) *Decoder {
	return &Decoder{
		codec: codec,
	}
}

// Decode parses text into an address.
//
// Codec errors are returned unchanged. A payload that is not PayloadSize
// bytes yields *InvalidLengthError and an unknown version byte yields
// *InvalidVersionError.
func (d *Decoder) Decode(text string) (a Address, err error) {
	payload, err := d.codec.DecodeCheck(text)
	if err != nil {
		log.Debugf("Rejecting address %q: %v", text, err)

		return a, err
	}

	if len(payload) != PayloadSize {
		log.Debugf("Rejecting address %q: payload length %d", text, len(payload))

		return a, &InvalidLengthError{Length: len(payload)}
	}

	net, ok := networkFromVersion(payload[0])
	if !ok {
		log.Debugf("Rejecting address %q: version %d", text, payload[0])

		return a, &InvalidVersionError{Version: payload[0]}
	}

	a.network = net
	copy(a.hash[:], payload[1:])

	return a, nil
}

var (
	defaultEncoder = NewEncoder(Base58Check{})
	defaultDecoder = NewDecoder(Base58Check{})
)
