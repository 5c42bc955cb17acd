// Package weight provides the transaction weight unit value type.
//
// One virtual byte (vB) is WitnessScaleFactor weight units (wu).
package weight

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/btcsuite/btcd/blockchain"
)

// WitnessScaleFactor is the number of weight units in one virtual byte.
const WitnessScaleFactor = blockchain.WitnessScaleFactor

// Weight is a transaction size in weight units.
type Weight uint64

// Well known weights.
const (
	Zero     Weight = 0
	Min      Weight = Zero
	Max      Weight = math.MaxUint64
	MaxBlock Weight = blockchain.MaxBlockWeight
)

// FromWU returns a weight of wu weight units.
func FromWU(wu uint64) Weight {
	return Weight(wu)
}

// FromVB returns the weight of vb virtual bytes. It returns false on
// overflow.
func FromVB(vb uint64) (w Weight, ok bool) {
	hi, lo := bits.Mul64(vb, WitnessScaleFactor)
	if hi != 0 {
		return 0, false
	}

	return Weight(lo), true
}

// MustFromVB is like FromVB but panics on overflow.
func MustFromVB(vb uint64) Weight {
	w, ok := FromVB(vb)
	if !ok {
		panic(fmt.Sprintf("weight: %d vB overflows", vb))
	}

	return w
}

// ToWU returns the weight in weight units.
func (w Weight) ToWU() uint64 {
	return uint64(w)
}

// ToVBFloor returns the weight in virtual bytes rounded down.
func (w Weight) ToVBFloor() uint64 {
	return uint64(w) / WitnessScaleFactor
}

// ToVBCeil returns the weight in virtual bytes rounded up.
func (w Weight) ToVBCeil() uint64 {
	vb := uint64(w) / WitnessScaleFactor
	if uint64(w)%WitnessScaleFactor != 0 {
		vb++
	}

	return vb
}

// CheckedAdd returns w + rhs or false on overflow.
func (w Weight) CheckedAdd(rhs Weight) (Weight, bool) {
	sum, carry := bits.Add64(uint64(w), uint64(rhs), 0)
	if carry != 0 {
		return 0, false
	}

	return Weight(sum), true
}

// CheckedSub returns w - rhs or false on underflow.
func (w Weight) CheckedSub(rhs Weight) (Weight, bool) {
	if rhs > w {
		return 0, false
	}

	return w - rhs, true
}

// CheckedMul returns w * rhs or false on overflow.
func (w Weight) CheckedMul(rhs uint64) (Weight, bool) {
	hi, lo := bits.Mul64(uint64(w), rhs)
	if hi != 0 {
		return 0, false
	}

	return Weight(lo), true
}

// CheckedDiv returns w / rhs or false if rhs is zero.
func (w Weight) CheckedDiv(rhs uint64) (Weight, bool) {
	if rhs == 0 {
		return 0, false
	}

	return w / Weight(rhs), true
}

func (w Weight) String() string {
	return fmt.Sprintf("%d wu", uint64(w))
}
