package address

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/calebcase/p2pkh/hash160"
	"github.com/calebcase/p2pkh/script"
)

// Address is a pay-to-public-key-hash address. The zero value is the mainnet
// address of the all zero hash.
type Address struct {
	network Network
	hash    hash160.Hash160
}

// New returns the address of h on net.
func New(net Network, h hash160.Hash160) Address {
	return Address{
		network: net,
		hash:    h,
	}
}

// FromKey returns the address of the compressed serialization of pk.
func FromKey(net Network, pk *btcec.PublicKey) Address {
	return FromKeyBytes(net, pk.SerializeCompressed())
}

// FromUncompressedKey returns the address of the uncompressed serialization
// of pk.
func FromUncompressedKey(net Network, pk *btcec.PublicKey) Address {
	return FromKeyBytes(net, pk.SerializeUncompressed())
}

// FromKeyBytes returns the address of an already serialized public key.
func FromKeyBytes(net Network, serialized []byte) Address {
	return New(net, hash160.Sum(serialized))
}

// FromBytes wraps raw as the hash of an address without digesting it. Use it
// when the hash is already known.
func FromBytes(raw []byte, net Network) (a Address, err error) {
	defer Error.WrapP(&err)

	h, err := hash160.FromSlice(raw)
	if err != nil {
		return a, err
	}

	return New(net, h), nil
}

// FromScript returns the address locked by a P2PKH output script.
func FromScript(net Network, s script.Script) (a Address, err error) {
	defer Error.WrapP(&err)

	h, err := script.ExtractPubKeyHash(s)
	if err != nil {
		return a, err
	}

	return New(net, h), nil
}

// FromBase58Check parses the Base58Check text of an address.
func FromBase58Check(text string) (a Address, err error) {
	return defaultDecoder.Decode(text)
}

// Network returns the network the address is usable on.
func (a Address) Network() Network {
	return a.network
}

// Hash returns the public key hash.
func (a Address) Hash() hash160.Hash160 {
	return a.hash
}

// Bytes returns a copy of the public key hash.
func (a Address) Bytes() []byte {
	return a.hash.Bytes()
}

// Len returns the length of the public key hash.
func (a Address) Len() int {
	return a.hash.Len()
}

// At returns the hash byte at offset i.
func (a Address) At(i int) byte {
	return a.hash.At(i)
}

// ScriptPubKey returns the output script paying to this address.
func (a Address) ScriptPubKey() script.Script {
	return script.PayToPubKeyHash(a.hash)
}

// ToBase58Check returns the Base58Check text of the address.
func (a Address) ToBase58Check() string {
	return defaultEncoder.Encode(a)
}

// String returns the Base58Check text of the address.
func (a Address) String() string {
	return a.ToBase58Check()
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() (text []byte, err error) {
	return []byte(a.ToBase58Check()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) (err error) {
	v, err := FromBase58Check(string(text))
	if err != nil {
		return err
	}

	*a = v

	return nil
}

func (a Address) payload() []byte {
	payload := make([]byte, 0, PayloadSize)
	payload = append(payload, a.network.PubKeyHashAddrID())
	payload = append(payload, a.hash[:]...)

	return payload
}
