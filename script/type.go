package script

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/calebcase/p2pkh/hash160"
)

// Type is a template element.
type Type struct {
	Opcode byte
	Size   int
	Abbr   string
}

// Match returns true if this element matches the given opcode and push data.
func (t Type) Match(op byte, data []byte) bool {
	return op == t.Opcode && len(data) == t.Size
}

func (t Type) String() string {
	if t.Abbr == "" {
		return "unknown"
	}

	return t.Abbr
}

type types []Type

func (ts types) Match(op byte, data []byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(op, data) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown     = Type{}
	Dup         = Type{txscript.OP_DUP, 0, "OP_DUP"}
	Hash160     = Type{txscript.OP_HASH160, 0, "OP_HASH160"}
	Push20      = Type{txscript.OP_DATA_20, hash160.Size, "OP_DATA_20"}
	EqualVerify = Type{txscript.OP_EQUALVERIFY, 0, "OP_EQUALVERIFY"}
	CheckSig    = Type{txscript.OP_CHECKSIG, 0, "OP_CHECKSIG"}

	// Template is the P2PKH element sequence in order.
	Template = types{
		Dup,
		Hash160,
		Push20,
		EqualVerify,
		CheckSig,
	}
)

// Size is the length in bytes of an encoded P2PKH script.
const Size = 1 + 1 + 1 + hash160.Size + 1 + 1
