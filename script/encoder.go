package script

import (
	"io"

	"github.com/calebcase/p2pkh/hash160"
)

// Encoder writes P2PKH scripts to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes the script for h.
func (e *Encoder) Encode(h hash160.Hash160) (err error) {
	defer Error.WrapP(&err)

	_, err = e.w.Write(PayToPubKeyHash(h))
	if err != nil {
		return err
	}

	return nil
}
