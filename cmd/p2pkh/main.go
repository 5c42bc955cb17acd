// Command p2pkh encodes and decodes pay-to-public-key-hash addresses and does
// fee rate arithmetic.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"github.com/zeebo/errs"

	"github.com/calebcase/p2pkh/address"
)

// Error is the error class for this command.
var Error = errs.Class("p2pkh")

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[p2pkh] %v\n", err)
	os.Exit(1)
}

func printJSON(w io.Writer, resp interface{}) error {
	b, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		return Error.Wrap(err)
	}

	_, err = fmt.Fprintf(w, "%s\n", b)

	return err
}

func network(ctx *cli.Context) (address.Network, error) {
	return address.ParseNetwork(ctx.GlobalString("network"))
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "p2pkh"
	app.Usage = "pay-to-public-key-hash addresses and fee rates"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Value: "mainnet",
			Usage: "the network addresses are encoded for (mainnet, testnet)",
		},
		cli.StringFlag{
			Name:  "debuglevel",
			Value: "off",
			Usage: "logging level (trace, debug, info, warn, error, critical, off)",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setLogLevel(os.Stderr, ctx.GlobalString("debuglevel"))
	}
	app.Commands = []cli.Command{
		addressCommand,
		feeCommand,
	}

	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fatal(err)
	}
}
