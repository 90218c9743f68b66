// Package builder generates preference instances for tests, examples and
// scalability sweeps, configured through functional options.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG (nil = no randomness).
//   - Instance constructors (all return a validated *core.Instance):
//     – Random(n):      uniform random permutations on both sides (needs RNG).
//     – Identical(n):   every agent ranks the other side 1..n.
//     – MutualFirst(n): hospital i and student i rank each other first.
//     – Latin(n):       cyclic Latin-square lists; for n ≥ 2 the hospital- and
//     student-optimal stable matchings differ.
//   - Kind + Build:     name-based dispatch used by the CLI.
//
// Guarantees:
//
//   - Determinism: the same n, kind and seed always produce the same instance.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (ErrTooFewAgents, ErrNeedRandSource,
//     ErrUnknownKind) wrapped with the constructor name.
//
// Known proposal counts under hospital-proposing deferred acceptance:
//
//	Identical(n)    n(n+1)/2
//	MutualFirst(n)  n
//	Latin(n)        n
package builder
