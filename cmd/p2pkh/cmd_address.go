package main

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/urfave/cli"

	"github.com/calebcase/p2pkh/address"
	"github.com/calebcase/p2pkh/hash160"
)

var addressCommand = cli.Command{
	Name:  "address",
	Usage: "Encode, decode and derive pay-to-public-key-hash addresses.",
	Subcommands: []cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode a public key hash as an address.",
			ArgsUsage: "hash",
			Action:    encodeAddress,
		},
		{
			Name:      "decode",
			Usage:     "Decode an address.",
			ArgsUsage: "address",
			Action:    decodeAddress,
		},
		{
			Name:      "fromkey",
			Usage:     "Derive the address of a serialized public key.",
			ArgsUsage: "pubkey",
			Action:    addressFromKey,
		},
		{
			Name:      "script",
			Usage:     "Recover the address paid to by an output script.",
			ArgsUsage: "script",
			Action:    addressFromScript,
		},
	},
}

type addressResp struct {
	Address string `json:"address"`
	Network string `json:"network"`
	Hash    string `json:"hash160"`
	Script  string `json:"script_pubkey"`
	Asm     string `json:"script_asm"`
}

func newAddressResp(a address.Address) addressResp {
	s := a.ScriptPubKey()

	return addressResp{
		Address: a.ToBase58Check(),
		Network: a.Network().String(),
		Hash:    a.Hash().String(),
		Script:  hex.EncodeToString(s),
		Asm:     s.String(),
	}
}

func oneArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", Error.New("%s: expected exactly one argument", ctx.Command.Name)
	}

	return ctx.Args().First(), nil
}

func encodeAddress(ctx *cli.Context) error {
	arg, err := oneArg(ctx)
	if err != nil {
		return err
	}

	net, err := network(ctx)
	if err != nil {
		return err
	}

	h, err := hash160.FromHex(arg)
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, newAddressResp(address.New(net, h)))
}

func decodeAddress(ctx *cli.Context) error {
	arg, err := oneArg(ctx)
	if err != nil {
		return err
	}

	a, err := address.FromBase58Check(arg)
	if err != nil {
		return Error.Wrap(err)
	}

	return printJSON(ctx.App.Writer, newAddressResp(a))
}

func addressFromKey(ctx *cli.Context) error {
	arg, err := oneArg(ctx)
	if err != nil {
		return err
	}

	net, err := network(ctx)
	if err != nil {
		return err
	}

	serialized, err := hex.DecodeString(arg)
	if err != nil {
		return Error.Wrap(err)
	}

	// Parse only to validate; the address commits to the serialization as
	// given (compressed or not).
	_, err = btcec.ParsePubKey(serialized)
	if err != nil {
		return Error.Wrap(err)
	}

	return printJSON(ctx.App.Writer, newAddressResp(address.FromKeyBytes(net, serialized)))
}

func addressFromScript(ctx *cli.Context) error {
	arg, err := oneArg(ctx)
	if err != nil {
		return err
	}

	net, err := network(ctx)
	if err != nil {
		return err
	}

	s, err := hex.DecodeString(arg)
	if err != nil {
		return Error.Wrap(err)
	}

	a, err := address.FromScript(net, s)
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, newAddressResp(a))
}
