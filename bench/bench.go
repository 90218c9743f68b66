package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/verify"
)

// match is the engine under measurement.
var match = galeshapley.Match

// Run executes the sweep described by cfg. Samples go to sink (which may be
// nil) in (n, repeat) order after every measurement finished. Cancelling ctx
// stops scheduling new measurements and returns ctx.Err().
func Run(ctx context.Context, cfg Config, sink Sink, logger zerolog.Logger) (*Report, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	samples := make([]Sample, len(cfg.Sizes)*cfg.Repeats)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	logger.Info().
		Ints("sizes", cfg.Sizes).
		Int("repeats", cfg.Repeats).
		Int("workers", cfg.Workers).
		Int64("seed", cfg.Seed).
		Msg("sweep started")

	for i, n := range cfg.Sizes {
		for rep := 0; rep < cfg.Repeats; rep++ {
			idx := i*cfg.Repeats + rep
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := measure(n, rep, sampleSeed(cfg.Seed, n, rep))
				if err != nil {
					return err
				}
				samples[idx] = s

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("sweep aborted")
		return nil, err
	}

	for _, s := range samples {
		logger.Debug().
			Int("n", s.N).
			Int("repeat", s.Repeat).
			Float64("matcher_ms", ms(s.MatcherTime)).
			Float64("verifier_ms", ms(s.VerifierTime)).
			Int("proposals", s.Proposals).
			Msg("sample")
		if sink == nil {
			continue
		}
		if err := sink.Record(s); err != nil {
			return nil, fmt.Errorf("bench: record n=%d repeat=%d: %w", s.N, s.Repeat, err)
		}
	}

	rep := summarize(cfg, samples)
	logger.Info().
		Float64("matcher_exponent", rep.MatcherExponent).
		Float64("verifier_exponent", rep.VerifierExponent).
		Msg("sweep finished")

	return rep, nil
}

func validate(cfg Config) error {
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrBadConfig)
	}
	for _, n := range cfg.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d < 1", ErrBadConfig, n)
		}
	}
	if cfg.Repeats < 1 {
		return fmt.Errorf("%w: repeats %d < 1", ErrBadConfig, cfg.Repeats)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrBadConfig, cfg.Workers)
	}

	return nil
}

// sampleSeed spreads (n, repeat) over distinct seeds.
func sampleSeed(base int64, n, rep int) int64 {
	return base + int64(n)*1_000_003 + int64(rep)*7_919
}

// measure builds one random instance and times both phases.
func measure(n, rep int, seed int64) (Sample, error) {
	inst, err := builder.Random(n, builder.WithSeed(seed))
	if err != nil {
		return Sample{}, fmt.Errorf("bench: n=%d repeat=%d: %w", n, rep, err)
	}

	start := time.Now()
	res, err := match(inst)
	matcherTime := time.Since(start)
	if err != nil {
		return Sample{}, fmt.Errorf("bench: n=%d repeat=%d: %w", n, rep, err)
	}

	start = time.Now()
	err = checkBoth(inst, res.Matching)
	verifierTime := time.Since(start)
	if err != nil {
		return Sample{}, fmt.Errorf("bench: n=%d repeat=%d: %w", n, rep, err)
	}

	return Sample{
		N:            n,
		Repeat:       rep,
		MatcherTime:  matcherTime,
		VerifierTime: verifierTime,
		Proposals:    res.Proposals,
	}, nil
}

func checkBoth(inst *core.Instance, m core.Matching) error {
	if err := verify.CheckValidity(inst.N(), m); err != nil {
		return err
	}

	return verify.CheckStability(inst, m)
}

// summarize groups samples per size and fits the growth exponents.
func summarize(cfg Config, samples []Sample) *Report {
	rep := &Report{Samples: samples, Summaries: make([]Summary, len(cfg.Sizes))}
	mt := make([]float64, cfg.Repeats)
	vt := make([]float64, cfg.Repeats)
	for i, n := range cfg.Sizes {
		sum := Summary{N: n}
		for r, s := range samples[i*cfg.Repeats : (i+1)*cfg.Repeats] {
			mt[r], vt[r] = ms(s.MatcherTime), ms(s.VerifierTime)
			if s.Proposals > sum.MaxProposals {
				sum.MaxProposals = s.Proposals
			}
		}
		sum.MatcherMeanMS, sum.MatcherStdMS = meanStd(mt)
		sum.VerifierMeanMS, sum.VerifierStdMS = meanStd(vt)
		rep.Summaries[i] = sum
	}
	rep.MatcherExponent = exponent(rep.Summaries, func(s Summary) float64 { return s.MatcherMeanMS })
	rep.VerifierExponent = exponent(rep.Summaries, func(s Summary) float64 { return s.VerifierMeanMS })

	return rep
}

func meanStd(x []float64) (mean, std float64) {
	if len(x) < 2 {
		return x[0], 0
	}

	return stat.MeanStdDev(x, nil)
}

// exponent fits log(y) against log(n) by least squares and returns the slope.
func exponent(sums []Summary, y func(Summary) float64) float64 {
	var xs, ys []float64
	for _, s := range sums {
		if v := y(s); s.N >= 2 && v > 0 {
			xs = append(xs, math.Log(float64(s.N)))
			ys = append(ys, math.Log(v))
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)

	return beta
}
