// Package amount provides the satoshi amount value type.
//
// Amounts render as a fixed point base 10 number of bitcoin:
//
//  bitcoin = satoshis * 10^-8
//
// The scale is fixed at -8 so the text form always carries eight fractional
// digits (e.g. 330 satoshis is "0.00000330 BTC"). Parsing accepts up to eight
// fractional digits; anything finer than a satoshi is rejected rather than
// rounded.
package amount
