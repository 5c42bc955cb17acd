package script

import (
	"github.com/btcsuite/btcd/txscript"
)

// Decoder iterates over the elements of a script.
type Decoder struct {
	tok txscript.ScriptTokenizer

	t    Type
	data []byte
}

// NewDecoder returns a decoder over s.
func NewDecoder(s Script) *Decoder {
	return &Decoder{
		tok: txscript.MakeScriptTokenizer(0, s),
	}
}

// Next advances to the next element. It returns false when the script is
// exhausted or a parse error occurred (see Err).
func (d *Decoder) Next() (ok bool) {
	if !d.tok.Next() {
		d.t = Unknown
		d.data = nil

		return false
	}

	d.data = d.tok.Data()
	d.t, _ = Template.Match(d.tok.Opcode(), d.data)

	return true
}

// Err returns the first parse error encountered, if any.
func (d *Decoder) Err() (err error) {
	if d.tok.Err() != nil {
		return Error.Wrap(d.tok.Err())
	}

	return nil
}

// Type returns the template element of the current position. Elements that
// are not part of the P2PKH template report Unknown.
func (d *Decoder) Type() Type {
	return d.t
}

// Opcode returns the raw opcode at the current position.
func (d *Decoder) Opcode() byte {
	return d.tok.Opcode()
}

// Data returns the push data at the current position, if any.
func (d *Decoder) Data() []byte {
	return d.data
}

// Consumed returns the number of script bytes read so far.
func (d *Decoder) Consumed() int32 {
	return d.tok.ByteIndex()
}
