package address

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network identifies the chain an address is usable on.
type Network uint8

// Networks.
const (
	Mainnet Network = iota
	Testnet
)

// Networks lists every known network.
var Networks = []Network{Mainnet, Testnet}

// Params returns the chain parameters of the network. It panics for an
// unknown network.
func (n Network) Params() *chaincfg.Params {
	switch n {
	case Mainnet:
		return &chaincfg.MainNetParams
	case Testnet:
		return &chaincfg.TestNet3Params
	}

	panic(Error.New("unknown network: %d", uint8(n)))
}

// PubKeyHashAddrID returns the Base58Check version byte of the network.
func (n Network) PubKeyHashAddrID() byte {
	return n.Params().PubKeyHashAddrID
}

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	}

	return "unknown"
}

// ParseNetwork returns the network with the given name.
func ParseNetwork(name string) (n Network, err error) {
	switch strings.ToLower(name) {
	case "mainnet", "main", "bitcoin":
		return Mainnet, nil
	case "testnet", "test", "testnet3":
		return Testnet, nil
	}

	return n, Error.New("unknown network: %q", name)
}

// networkFromVersion is the inverse of PubKeyHashAddrID.
func networkFromVersion(version byte) (n Network, ok bool) {
	for _, n := range Networks {
		if n.PubKeyHashAddrID() == version {
			return n, true
		}
	}

	return n, false
}
