// Package address implements pay-to-public-key-hash addresses.
//
// An Address pairs a Network with the Hash160 of a public key. It has two
// protocol facing forms: the output script returned by ScriptPubKey and the
// Base58Check text produced by an Encoder.
//
// Payload
//
// The Base58Check payload is 21 bytes, the network version byte followed by
// the hash:
//
//  | 0       | 1 .. 20 |
//  |---------|---------|
//  | version | hash160 |
//
// Version 0 is mainnet and version 111 is testnet. The checksum and alphabet
// are handled by a Codec; Base58Check is the default.
package address
