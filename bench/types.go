package bench

//go:generate mockgen -source types.go -destination sink_mocks.go -package bench

import (
	"errors"
	"runtime"
	"time"
)

// ErrBadConfig is returned by Run for an unusable Config.
var ErrBadConfig = errors.New("bench: invalid config")

// DefaultSizes are the powers of two 1..512.
var DefaultSizes = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512}

// Config describes a sweep.
type Config struct {
	Sizes   []int // instance sizes, each ≥ 1
	Repeats int   // samples per size, ≥ 1
	Seed    int64 // base seed; each (n, repeat) derives its own
	Workers int   // concurrent measurements, ≥ 1
}

// DefaultConfig returns DefaultSizes, one repeat, seed 1 and one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Sizes:   append([]int(nil), DefaultSizes...),
		Repeats: 1,
		Seed:    1,
		Workers: runtime.NumCPU(),
	}
}

// Sample is one measurement.
type Sample struct {
	N            int
	Repeat       int
	MatcherTime  time.Duration
	VerifierTime time.Duration
	Proposals    int
}

// Summary aggregates the samples of one size. Times are in milliseconds;
// standard deviations are 0 for a single repeat.
type Summary struct {
	N              int
	MatcherMeanMS  float64
	MatcherStdMS   float64
	VerifierMeanMS float64
	VerifierStdMS  float64
	MaxProposals   int
}

// Report is the outcome of Run.
type Report struct {
	Samples   []Sample  // (n, repeat) order
	Summaries []Summary // Config.Sizes order

	// Fitted log-log slopes; NaN when fewer than two sizes ≥ 2 have a
	// positive mean time.
	MatcherExponent  float64
	VerifierExponent float64
}

// Sink receives samples in (n, repeat) order.
type Sink interface {
	Record(s Sample) error
}

// ms converts d to fractional milliseconds.
func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
