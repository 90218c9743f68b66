// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (method prefix + %w).
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewAgents indicates that n is smaller than MinAgents.
var ErrTooFewAgents = errors.New("builder: too few agents")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownKind indicates a Kind name that Build does not know.
var ErrUnknownKind = errors.New("builder: unknown instance kind")

// builderErrorf returns "<method>: <formatted message>: <sentinel>" keeping
// sentinel reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
