package main

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/prefio"
)

var (
	sizeFlag = cli.IntFlag{
		Name:     "n",
		Usage:    "number of hospitals (and students)",
		Required: true,
	}
	kindFlag = cli.StringFlag{
		Name:  "kind",
		Usage: "instance family: random, identical, mutual or latin",
		Value: string(builder.KindRandom),
	}
	genSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for the random family",
		Value: 1,
	}
)

var GenerateCmd = cli.Command{
	Action:    doGenerate,
	Name:      "generate",
	Usage:     "write a generated instance; '-' writes to stdout, a .sz path compresses",
	ArgsUsage: "<out>",
	Flags: []cli.Flag{
		&sizeFlag,
		&kindFlag,
		&genSeedFlag,
	},
}

func doGenerate(c *cli.Context) error {
	if err := wantArgs(c, 1); err != nil {
		return err
	}
	e := appEnv(c)

	kind, err := builder.ParseKind(c.String(kindFlag.Name))
	if err != nil {
		return err
	}
	inst, err := builder.Build(kind, c.Int(sizeFlag.Name), builder.WithSeed(c.Int64(genSeedFlag.Name)))
	if err != nil {
		return err
	}

	out := c.Args().Get(0)
	if out == "-" {
		return prefio.WriteInstance(c.App.Writer, inst)
	}
	if err := prefio.WriteInstanceFile(out, inst); err != nil {
		return err
	}
	e.log.Info().Str("kind", string(kind)).Int("n", inst.N()).Str("path", out).Msg("instance written")

	return nil
}
