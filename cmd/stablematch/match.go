package main

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/prefio"
)

var (
	studentsProposeFlag = cli.BoolFlag{
		Name:  "students-propose",
		Usage: "let students propose (student-optimal matching)",
	}
	orderFlag = cli.StringFlag{
		Name:  "order",
		Usage: "free-proposer order: fifo, lifo or lowest",
		Value: galeshapley.FIFO.String(),
	}
	statsFlag = cli.BoolFlag{
		Name:  "stats",
		Usage: "log the number of proposals",
	}
)

var MatchCmd = cli.Command{
	Action:    doMatch,
	Name:      "match",
	Usage:     "compute the stable matching of an instance",
	ArgsUsage: "<instance>",
	Flags: []cli.Flag{
		&studentsProposeFlag,
		&orderFlag,
		&statsFlag,
	},
}

func doMatch(c *cli.Context) error {
	if err := wantArgs(c, 1); err != nil {
		return err
	}
	e := appEnv(c)

	order, err := galeshapley.ParseOrder(c.String(orderFlag.Name))
	if err != nil {
		return err
	}
	proposer := core.Hospitals
	if c.Bool(studentsProposeFlag.Name) {
		proposer = core.Students
	}

	inst, err := prefio.ReadInstanceFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	res, err := galeshapley.Match(inst, galeshapley.WithProposer(proposer), galeshapley.WithOrder(order))
	if err != nil {
		return err
	}
	if c.Bool(statsFlag.Name) {
		e.log.Info().
			Int("n", inst.N()).
			Stringer("proposer", res.Proposer).
			Stringer("order", order).
			Int("proposals", res.Proposals).
			Msg("matched")
	}

	return prefio.WriteMatching(c.App.Writer, res.Matching)
}
