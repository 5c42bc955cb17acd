// Package feerate provides an integer fee rate in satoshis per 1000 weight
// units (sat/kwu).
//
// Units
//
// One virtual byte is four weight units, so one sat/vB is 1000 / 4 = 250
// sat/kwu and one sat/kvB is 1 / 4 sat/kwu:
//
//  | From    | To sat/kwu | Exact |
//  |---------|------------|-------|
//  | sat/kwu | n          | yes   |
//  | sat/vB  | n * 250    | yes, fails on overflow |
//  | sat/kvB | n / 4      | no, truncates |
//
// Converting back to sat/vB is lossy and offers both a floor and a ceiling.
//
// Overflow
//
// Every operation that can overflow has a Checked form returning (value,
// false) instead of failing. The unchecked forms (MustFromSatPerVB,
// MulByWeight, Add, Sub, Sum, DivAmountByWeight) panic on overflow,
// underflow or division by zero in every build; they never wrap.
//
// Fees
//
// Multiplying a rate by a weight rounds the fee up to the next satoshi so
// that a fee computed from a rate is never below that rate. Dividing an
// amount by a weight truncates, which under-reports the rate actually paid.
package feerate
