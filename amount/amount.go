package amount

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("amount")

// Scale is the base 10 exponent relating satoshis to bitcoin.
const Scale = -8

// Amount is a quantity of satoshis.
type Amount uint64

// Well known amounts.
const (
	Zero         Amount = 0
	Max          Amount = math.MaxUint64
	OneSat       Amount = 1
	OneBTC       Amount = btcutil.SatoshiPerBitcoin
	MaxMoney     Amount = btcutil.MaxSatoshi
	satPerBTC           = uint64(btcutil.SatoshiPerBitcoin)
	fractionSize        = -Scale
)

// FromSat returns an amount of sat satoshis.
func FromSat(sat uint64) Amount {
	return Amount(sat)
}

// FromBTCUtil converts a btcutil amount. It returns false for negative
// amounts.
func FromBTCUtil(a btcutil.Amount) (Amount, bool) {
	if a < 0 {
		return 0, false
	}

	return Amount(a), true
}

// ToSat returns the amount in satoshis.
func (a Amount) ToSat() uint64 {
	return uint64(a)
}

// ToBTCUtil converts to a btcutil amount. It returns false when the amount
// does not fit in an int64.
func (a Amount) ToBTCUtil() (btcutil.Amount, bool) {
	if a > math.MaxInt64 {
		return 0, false
	}

	return btcutil.Amount(a), true
}

// CheckedAdd returns a + rhs or false on overflow.
func (a Amount) CheckedAdd(rhs Amount) (Amount, bool) {
	sum, carry := bits.Add64(uint64(a), uint64(rhs), 0)
	if carry != 0 {
		return 0, false
	}

	return Amount(sum), true
}

// CheckedSub returns a - rhs or false on underflow.
func (a Amount) CheckedSub(rhs Amount) (Amount, bool) {
	if rhs > a {
		return 0, false
	}

	return a - rhs, true
}

// String renders the amount in bitcoin with eight fractional digits.
func (a Amount) String() string {
	return fmt.Sprintf(
		"%d.%0*d BTC",
		uint64(a)/satPerBTC,
		fractionSize,
		uint64(a)%satPerBTC,
	)
}

// ParseBTC parses a decimal bitcoin value such as "0.00000330". A trailing
// " BTC" unit is accepted.
func ParseBTC(s string) (a Amount, err error) {
	defer Error.WrapP(&err)

	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "BTC"))
	if s == "" {
		return 0, errs.New("empty")
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, errs.New("%q: no digits", s)
	}

	if len(frac) > fractionSize {
		return 0, errs.New("%q: more than %d fractional digits", s, fractionSize)
	}

	var w uint64
	if whole != "" {
		w, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return 0, err
		}
	}

	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac+strings.Repeat("0", fractionSize-len(frac)), 10, 64)
		if err != nil {
			return 0, err
		}
	}

	hi, lo := bits.Mul64(w, satPerBTC)
	if hi != 0 {
		return 0, errs.New("%q: overflow", s)
	}

	sum, carry := bits.Add64(lo, f, 0)
	if carry != 0 {
		return 0, errs.New("%q: overflow", s)
	}

	return Amount(sum), nil
}
