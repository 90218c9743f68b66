package bench

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/verify"
)

// A broken engine must abort the sweep with the verifier's error.
func TestRun_VerificationFailure(t *testing.T) {
	defer func(orig func(*core.Instance, ...galeshapley.Option) (*galeshapley.Result, error)) {
		match = orig
	}(match)

	match = func(inst *core.Instance, opts ...galeshapley.Option) (*galeshapley.Result, error) {
		res, err := galeshapley.Match(inst, opts...)
		if err != nil {
			return nil, err
		}
		// Everyone gets student 1.
		for h := range res.Matching {
			res.Matching[h] = 1
		}
		return res, nil
	}

	_, err := Run(context.Background(), Config{Sizes: []int{1, 3}, Repeats: 1, Seed: 1, Workers: 1}, nil, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrInvalidMatching)
	assert.Contains(t, err.Error(), "n=3")
}

func TestSampleSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for _, n := range DefaultSizes {
		for r := 0; r < 10; r++ {
			s := sampleSeed(1, n, r)
			assert.False(t, seen[s], "n=%d r=%d", n, r)
			seen[s] = true
		}
	}
}
