// Package bench measures how the deferred-acceptance engine and the
// verifier scale with instance size.
//
// For every size n in Config.Sizes and every repeat r, Run builds a seeded
// uniform random instance, times galeshapley.Match, then times
// verify.CheckValidity followed by verify.CheckStability on the result.
// Measurements fan out over a bounded errgroup; the resulting samples are
// handed to a Sink in (n, repeat) order once the sweep is complete, so the
// output does not depend on scheduling.
//
// The Report aggregates samples per size (mean and standard deviation via
// gonum/stat) and fits log(time) = a + k·log(n) over sizes n ≥ 2, giving an
// empirical growth exponent k for each phase. Both phases are O(n²) in the
// worst case; on random instances the matcher usually fits well below 2.
//
// Any sample whose matching fails verification aborts the sweep.
//
// CSVSink writes the samples as
//
//	n,repeat,matcher_time_ms,verifier_time_ms,proposals
//
// which is the interface for plotting tools.
package bench
