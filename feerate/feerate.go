package feerate

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/p2pkh/amount"
	"github.com/calebcase/p2pkh/weight"
)

// Error is the error class for this package.
var Error = errs.Class("feerate")

// satPerVB is the number of sat/kwu in one sat/vB.
const satPerVB = 1000 / weight.WitnessScaleFactor

// FeeRate is a fee rate in satoshis per 1000 weight units.
type FeeRate uint64

const (
	// Zero is 0 sat/kwu.
	Zero FeeRate = 0

	// Min is the smallest fee rate. It is the same as Zero.
	Min = Zero

	// Max is the largest representable fee rate.
	Max FeeRate = math.MaxUint64

	// BroadcastMin is the minimum fee rate required to broadcast a
	// transaction under default Bitcoin Core policy (1 sat/vB).
	BroadcastMin FeeRate = 1 * satPerVB

	// Dust is the fee rate used to compute the dust limit (3 sat/vB).
	Dust FeeRate = 3 * satPerVB
)

// FromSatPerKWU returns a fee rate of n sat/kwu.
func FromSatPerKWU(n uint64) FeeRate {
	return FeeRate(n)
}

// FromSatPerVB returns a fee rate of n sat/vB. It returns false on overflow.
func FromSatPerVB(n uint64) (FeeRate, bool) {
	hi, lo := bits.Mul64(n, satPerVB)
	if hi != 0 {
		return 0, false
	}

	return FeeRate(lo), true
}

// MustFromSatPerVB is like FromSatPerVB but panics on overflow.
func MustFromSatPerVB(n uint64) FeeRate {
	r, ok := FromSatPerVB(n)
	if !ok {
		panic(fmt.Sprintf("feerate: %d sat/vB overflows", n))
	}

	return r
}

// FromSatPerKVB returns a fee rate of n sat/kvB. The conversion truncates
// rather than failing, so up to 3/4 sat/kwu is lost.
func FromSatPerKVB(n uint64) FeeRate {
	r := FeeRate(n / weight.WitnessScaleFactor)
	if n%weight.WitnessScaleFactor != 0 {
		log.Tracef("Truncated %d sat/kvB to %d sat/kwu", n, uint64(r))
	}

	return r
}

// ToSatPerKWU returns the fee rate in sat/kwu.
func (r FeeRate) ToSatPerKWU() uint64 {
	return uint64(r)
}

// ToSatPerVBFloor returns the fee rate in sat/vB rounded down.
func (r FeeRate) ToSatPerVBFloor() uint64 {
	return uint64(r) / satPerVB
}

// ToSatPerVBCeil returns the fee rate in sat/vB rounded up. It is exact for
// every rate including Max.
func (r FeeRate) ToSatPerVBCeil() uint64 {
	vb := uint64(r) / satPerVB
	if uint64(r)%satPerVB != 0 {
		vb++
	}

	return vb
}

// CheckedMul returns r * rhs or false on overflow.
func (r FeeRate) CheckedMul(rhs uint64) (FeeRate, bool) {
	hi, lo := bits.Mul64(uint64(r), rhs)
	if hi != 0 {
		return 0, false
	}

	return FeeRate(lo), true
}

// CheckedDiv returns r / rhs or false if rhs is zero.
func (r FeeRate) CheckedDiv(rhs uint64) (FeeRate, bool) {
	if rhs == 0 {
		return 0, false
	}

	return r / FeeRate(rhs), true
}

// CheckedAdd returns r + rhs or false on overflow.
func (r FeeRate) CheckedAdd(rhs uint64) (FeeRate, bool) {
	sum, carry := bits.Add64(uint64(r), rhs, 0)
	if carry != 0 {
		return 0, false
	}

	return FeeRate(sum), true
}

// CheckedSub returns r - rhs or false on underflow.
func (r FeeRate) CheckedSub(rhs uint64) (FeeRate, bool) {
	if rhs > uint64(r) {
		return 0, false
	}

	return r - FeeRate(rhs), true
}

// CheckedMulByWeight returns the fee for a transaction of weight w at this
// rate, rounded up to the next satoshi:
//
//  fee = (rate * wu + 999) / 1000
//
// It returns false if either step overflows.
func (r FeeRate) CheckedMulByWeight(w weight.Weight) (amount.Amount, bool) {
	hi, lo := bits.Mul64(uint64(r), w.ToWU())
	if hi != 0 {
		return 0, false
	}

	sum, carry := bits.Add64(lo, 999, 0)
	if carry != 0 {
		return 0, false
	}

	return amount.FromSat(sum / 1000), true
}

// FeeWU is the same as CheckedMulByWeight.
func (r FeeRate) FeeWU(w weight.Weight) (amount.Amount, bool) {
	return r.CheckedMulByWeight(w)
}

// FeeVB returns the fee for a transaction of vb virtual bytes, rounded up. It
// returns false on overflow.
func (r FeeRate) FeeVB(vb uint64) (amount.Amount, bool) {
	w, ok := weight.FromVB(vb)
	if !ok {
		return 0, false
	}

	return r.FeeWU(w)
}

// MulByWeight is like CheckedMulByWeight but panics on overflow.
func (r FeeRate) MulByWeight(w weight.Weight) amount.Amount {
	fee, ok := r.CheckedMulByWeight(w)
	if !ok {
		panic(fmt.Sprintf("feerate: %d sat/kwu * %s overflows", uint64(r), w))
	}

	return fee
}

// MulWeight is MulByWeight with the operands in weight-first order.
func MulWeight(w weight.Weight, r FeeRate) amount.Amount {
	return r.MulByWeight(w)
}

// CheckedDivAmountByWeight returns the rate paid by a fee of a for a
// transaction of weight w, truncated. It returns false on overflow or a zero
// weight.
func CheckedDivAmountByWeight(a amount.Amount, w weight.Weight) (FeeRate, bool) {
	if w == 0 {
		return 0, false
	}

	hi, lo := bits.Mul64(a.ToSat(), 1000)
	if hi != 0 {
		return 0, false
	}

	return FeeRate(lo / w.ToWU()), true
}

// DivAmountByWeight is like CheckedDivAmountByWeight but panics on overflow or
// a zero weight.
//
// The result is truncated, so the returned rate is usually lower than the
// rate actually paid. Prefer computing fees with CheckedMulByWeight; use this
// only when an estimate of the effective rate is acceptable.
func DivAmountByWeight(a amount.Amount, w weight.Weight) FeeRate {
	r, ok := CheckedDivAmountByWeight(a, w)
	if !ok {
		panic(fmt.Sprintf("feerate: %s / %s is undefined or overflows", a, w))
	}

	return r
}

// Add returns r + rhs. It panics on overflow.
func (r FeeRate) Add(rhs FeeRate) FeeRate {
	sum, ok := r.CheckedAdd(uint64(rhs))
	if !ok {
		panic(fmt.Sprintf("feerate: %d + %d overflows", uint64(r), uint64(rhs)))
	}

	return sum
}

// Sub returns r - rhs. It panics on underflow.
func (r FeeRate) Sub(rhs FeeRate) FeeRate {
	diff, ok := r.CheckedSub(uint64(rhs))
	if !ok {
		panic(fmt.Sprintf("feerate: %d - %d underflows", uint64(r), uint64(rhs)))
	}

	return diff
}

// Sum returns the sum of rates. It panics on overflow.
func Sum(rates ...FeeRate) FeeRate {
	total := Zero
	for _, r := range rates {
		total = total.Add(r)
	}

	return total
}

// String returns the rate in sat/kwu as a bare integer.
func (r FeeRate) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// Verbose returns the rate rounded up to sat/vB with its unit, e.g.
// "3.00 sat/vbyte". The fractional digits are always zero.
func (r FeeRate) Verbose() string {
	return fmt.Sprintf("%d.00 sat/vbyte", r.ToSatPerVBCeil())
}

// Format implements fmt.Formatter. The '#' flag with the v or s verb selects
// the Verbose form; q quotes String; everything else formats the sat/kwu
// integer. Width and alignment flags are honored.
func (r FeeRate) Format(f fmt.State, verb rune) {
	switch {
	case f.Flag('#') && (verb == 'v' || verb == 's'):
		fmt.Fprintf(f, padded(f, 's'), r.Verbose())
	case verb == 'v' || verb == 's':
		fmt.Fprintf(f, fmt.FormatString(f, 'd'), uint64(r))
	case verb == 'q':
		fmt.Fprintf(f, fmt.FormatString(f, 'q'), r.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), uint64(r))
	}
}

// padded returns a directive for verb carrying only the width and alignment
// of f.
func padded(f fmt.State, verb rune) string {
	format := "%"
	if f.Flag('-') {
		format += "-"
	}
	if w, ok := f.Width(); ok {
		format += strconv.Itoa(w)
	}

	return format + string(verb)
}

// Parse reads a base 10 sat/kwu integer.
func Parse(s string) (r FeeRate, err error) {
	defer Error.WrapP(&err)

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return FromSatPerKWU(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (r FeeRate) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *FeeRate) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*r = v

	return nil
}
