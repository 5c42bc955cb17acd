// Package script encodes and decodes the standard pay-to-public-key-hash
// (P2PKH) output script.
//
// The script is a fixed sequence of five elements:
//
//  | # | Element        | Byte(s)           |
//  |---|----------------|-------------------|
//  | 0 | OP_DUP         | 0x76              |
//  | 1 | OP_HASH160     | 0xa9              |
//  | 2 | OP_DATA_20     | 0x14 + 20 bytes   |
//  | 3 | OP_EQUALVERIFY | 0x88              |
//  | 4 | OP_CHECKSIG    | 0xac              |
//
// The encoded script is always 25 bytes. Opcode values and the tokenizer come
// from github.com/btcsuite/btcd/txscript; this package only knows the
// template.
package script
