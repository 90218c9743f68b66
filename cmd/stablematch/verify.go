package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/stablematch/prefio"
	"github.com/katalvlaran/stablematch/verify"
)

var VerifyCmd = cli.Command{
	Action:    doVerify,
	Name:      "verify",
	Usage:     "check that a matching is a valid, stable bijection",
	ArgsUsage: "<instance> <matching>",
}

func doVerify(c *cli.Context) error {
	if err := wantArgs(c, 2); err != nil {
		return err
	}
	e := appEnv(c)

	inst, err := prefio.ReadInstanceFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	m, err := prefio.ReadMatchingFile(c.Args().Get(1), inst.N())
	if err != nil {
		return err
	}

	err = verify.Verify(inst, m)
	switch {
	case err == nil:
		fmt.Fprintln(c.App.Writer, "VALID STABLE")
		return nil
	case errors.Is(err, verify.ErrUnstableMatching):
		fmt.Fprintln(c.App.Writer, err)
		e.log.Debug().Err(err).Msg("blocking pair")
		return cli.Exit("", exitUnstable)
	case errors.Is(err, verify.ErrInvalidMatching):
		fmt.Fprintln(c.App.Writer, err)
		return cli.Exit("", exitInvalid)
	default:
		return err
	}
}
