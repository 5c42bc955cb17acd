package main

import (
	"io"

	"github.com/btcsuite/btclog"

	"github.com/calebcase/p2pkh/address"
	"github.com/calebcase/p2pkh/feerate"
)

// setLogLevel routes the library loggers to w at the named level.
func setLogLevel(w io.Writer, level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return Error.New("invalid debuglevel: %q", level)
	}

	backend := btclog.NewBackend(w)

	addrLog := backend.Logger("ADDR")
	addrLog.SetLevel(lvl)
	address.UseLogger(addrLog)

	feerLog := backend.Logger("FEER")
	feerLog.SetLevel(lvl)
	feerate.UseLogger(feerLog)

	return nil
}
