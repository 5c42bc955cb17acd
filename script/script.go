package script

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/zeebo/errs"

	"github.com/calebcase/p2pkh/hash160"
)

// Error is the error class for this package.
var Error = errs.Class("script")

// Script is a serialized output script.
type Script []byte

// String returns the disassembly of the script. Scripts that fail to parse
// end with "[error]".
func (s Script) String() string {
	disasm, _ := txscript.DisasmString(s)

	return disasm
}

// PayToPubKeyHash returns the standard script locking funds to h:
//
//  OP_DUP OP_HASH160 <h> OP_EQUALVERIFY OP_CHECKSIG
func PayToPubKeyHash(h hash160.Hash160) Script {
	s, err := txscript.NewScriptBuilder().
		AddOp(Dup.Opcode).
		AddOp(Hash160.Opcode).
		AddData(h[:]).
		AddOp(EqualVerify.Opcode).
		AddOp(CheckSig.Opcode).
		Script()
	if err != nil {
		// A 25 byte script cannot exceed the builder limits.
		panic(err)
	}

	return s
}

// ExtractPubKeyHash returns the hash locked by a P2PKH script.
func ExtractPubKeyHash(s Script) (h hash160.Hash160, err error) {
	defer Error.WrapP(&err)

	d := NewDecoder(s)

	for i, want := range Template {
		if !d.Next() {
			if d.Err() != nil {
				return h, d.Err()
			}

			return h, errs.New("not p2pkh: truncated after %d elements", i)
		}

		if d.Type() != want {
			return h, errs.New(
				"not p2pkh: element %d is %s, want %s",
				i,
				d.Type(),
				want,
			)
		}

		if d.Type() == Push20 {
			h, err = hash160.FromSlice(d.Data())
			if err != nil {
				return h, err
			}
		}
	}

	if d.Next() {
		return hash160.Hash160{}, errs.New("not p2pkh: trailing data at byte %d", d.Consumed())
	}

	if d.Err() != nil {
		return hash160.Hash160{}, d.Err()
	}

	return h, nil
}

// IsPayToPubKeyHash reports whether s is a standard P2PKH script.
func IsPayToPubKeyHash(s Script) bool {
	return txscript.IsPayToPubKeyHash(s)
}
