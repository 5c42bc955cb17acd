package main

import (
	"github.com/urfave/cli"

	"github.com/calebcase/p2pkh/amount"
	"github.com/calebcase/p2pkh/feerate"
	"github.com/calebcase/p2pkh/weight"
)

var feeCommand = cli.Command{
	Name:  "fee",
	Usage: "Fee rate conversions and fee computation.",
	Subcommands: []cli.Command{
		{
			Name:  "convert",
			Usage: "Convert a fee rate between units.",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "satperkwu",
					Usage: "fee rate in sat/kwu",
				},
				cli.Uint64Flag{
					Name:  "satpervbyte",
					Usage: "fee rate in sat/vB",
				},
				cli.Uint64Flag{
					Name:  "satperkvb",
					Usage: "fee rate in sat/kvB (truncated to sat/kwu)",
				},
			},
			Action: convertFeeRate,
		},
		{
			Name:  "calc",
			Usage: "Compute the fee for a transaction weight, rounded up.",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "rate",
					Usage: "fee rate in sat/kwu",
				},
				cli.Uint64Flag{
					Name:  "weight",
					Usage: "transaction weight in weight units",
				},
				cli.Uint64Flag{
					Name:  "vbytes",
					Usage: "transaction size in virtual bytes (instead of --weight)",
				},
			},
			Action: calcFee,
		},
		{
			Name:  "rate",
			Usage: "Estimate the fee rate paid by a fee, rounded down.",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount",
					Usage: "fee paid in satoshis",
				},
				cli.StringFlag{
					Name:  "btc",
					Usage: "fee paid in BTC (instead of --amount)",
				},
				cli.Uint64Flag{
					Name:  "weight",
					Usage: "transaction weight in weight units",
				},
			},
			Action: effectiveFeeRate,
		},
	},
}

type feeRateResp struct {
	SatPerKWU        uint64 `json:"sat_per_kwu"`
	SatPerVByteFloor uint64 `json:"sat_per_vbyte_floor"`
	SatPerVByteCeil  uint64 `json:"sat_per_vbyte_ceil"`
	Display          string `json:"display"`
}

func newFeeRateResp(r feerate.FeeRate) feeRateResp {
	return feeRateResp{
		SatPerKWU:        r.ToSatPerKWU(),
		SatPerVByteFloor: r.ToSatPerVBFloor(),
		SatPerVByteCeil:  r.ToSatPerVBCeil(),
		Display:          r.Verbose(),
	}
}

func convertFeeRate(ctx *cli.Context) error {
	var set []string
	for _, name := range []string{"satperkwu", "satpervbyte", "satperkvb"} {
		if ctx.IsSet(name) {
			set = append(set, name)
		}
	}

	if len(set) != 1 {
		return Error.New("exactly one of --satperkwu, --satpervbyte, --satperkvb is required")
	}

	var r feerate.FeeRate

	switch set[0] {
	case "satperkwu":
		r = feerate.FromSatPerKWU(ctx.Uint64("satperkwu"))
	case "satpervbyte":
		var ok bool
		r, ok = feerate.FromSatPerVB(ctx.Uint64("satpervbyte"))
		if !ok {
			return Error.New("fee rate overflows: %d sat/vB", ctx.Uint64("satpervbyte"))
		}
	case "satperkvb":
		r = feerate.FromSatPerKVB(ctx.Uint64("satperkvb"))
	}

	return printJSON(ctx.App.Writer, newFeeRateResp(r))
}

type feeResp struct {
	FeeRate uint64 `json:"sat_per_kwu"`
	Weight  uint64 `json:"weight"`
	FeeSat  uint64 `json:"fee_sat"`
	Fee     string `json:"fee"`
}

func calcFee(ctx *cli.Context) error {
	if !ctx.IsSet("rate") {
		return Error.New("--rate is required")
	}

	if ctx.IsSet("weight") == ctx.IsSet("vbytes") {
		return Error.New("exactly one of --weight, --vbytes is required")
	}

	r := feerate.FromSatPerKWU(ctx.Uint64("rate"))

	w := weight.FromWU(ctx.Uint64("weight"))
	if ctx.IsSet("vbytes") {
		var ok bool
		w, ok = weight.FromVB(ctx.Uint64("vbytes"))
		if !ok {
			return Error.New("weight overflows: %d vB", ctx.Uint64("vbytes"))
		}
	}

	fee, ok := r.CheckedMulByWeight(w)
	if !ok {
		return Error.New("fee overflows: %s sat/kwu * %s", r, w)
	}

	return printJSON(ctx.App.Writer, feeResp{
		FeeRate: r.ToSatPerKWU(),
		Weight:  w.ToWU(),
		FeeSat:  fee.ToSat(),
		Fee:     fee.String(),
	})
}

func effectiveFeeRate(ctx *cli.Context) error {
	if ctx.IsSet("amount") == ctx.IsSet("btc") {
		return Error.New("exactly one of --amount, --btc is required")
	}

	if !ctx.IsSet("weight") {
		return Error.New("--weight is required")
	}

	a := amount.FromSat(ctx.Uint64("amount"))
	if ctx.IsSet("btc") {
		var err error
		a, err = amount.ParseBTC(ctx.String("btc"))
		if err != nil {
			return err
		}
	}

	w := weight.FromWU(ctx.Uint64("weight"))

	r, ok := feerate.CheckedDivAmountByWeight(a, w)
	if !ok {
		return Error.New("fee rate undefined: %s / %s", a, w)
	}

	return printJSON(ctx.App.Writer, newFeeRateResp(r))
}
