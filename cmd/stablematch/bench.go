package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/stablematch/bench"
)

var (
	sizesFlag = cli.StringFlag{
		Name:  "sizes",
		Usage: "comma separated instance sizes (default 1,2,4,...,512)",
	}
	repeatsFlag = cli.IntFlag{
		Name:  "repeats",
		Usage: "samples per size",
	}
	benchSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "base seed of the random instances",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "concurrent measurements (default: number of CPUs)",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "CSV output file, stdout if empty",
	}
)

var BenchCmd = cli.Command{
	Action: doBench,
	Name:   "bench",
	Usage:  "measure matcher and verifier running time over growing random instances",
	Flags: []cli.Flag{
		&sizesFlag,
		&repeatsFlag,
		&benchSeedFlag,
		&workersFlag,
		&outFlag,
	},
}

func doBench(c *cli.Context) (err error) {
	e := appEnv(c)
	if c.IsSet(sizesFlag.Name) {
		sizes, err := parseSizes(c.String(sizesFlag.Name))
		if err != nil {
			return err
		}
		e.cfg.Set("bench.sizes", sizes)
	}
	if c.IsSet(repeatsFlag.Name) {
		e.cfg.Set("bench.repeats", c.Int(repeatsFlag.Name))
	}
	if c.IsSet(benchSeedFlag.Name) {
		e.cfg.Set("bench.seed", c.Int64(benchSeedFlag.Name))
	}
	if c.IsSet(workersFlag.Name) {
		e.cfg.Set("bench.workers", c.Int(workersFlag.Name))
	}

	var w io.Writer = c.App.Writer
	if path := c.String(outFlag.Name); path != "" {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	sink, err := bench.NewCSVSink(w)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()
	rep, err := bench.Run(ctx, e.cfg.Bench(), sink, e.log)
	if err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return err
	}
	for _, s := range rep.Summaries {
		e.log.Info().
			Int("n", s.N).
			Float64("matcher_ms", s.MatcherMeanMS).
			Float64("matcher_std_ms", s.MatcherStdMS).
			Float64("verifier_ms", s.VerifierMeanMS).
			Float64("verifier_std_ms", s.VerifierStdMS).
			Int("max_proposals", s.MaxProposals).
			Msg("size")
	}

	return nil
}

// parseSizes reads "1,2,4" into ints.
func parseSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("--%s: invalid size %q", sizesFlag.Name, f)
		}
		out = append(out, n)
	}

	return out, nil
}
