package bench_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/stablematch/bench"
)

// sampleAt matches a Sample by its (n, repeat) coordinates.
type sampleAt struct{ n, rep int }

func (m sampleAt) Matches(x any) bool {
	s, ok := x.(bench.Sample)
	return ok && s.N == m.n && s.Repeat == m.rep
}

func (m sampleAt) String() string { return fmt.Sprintf("sample n=%d repeat=%d", m.n, m.rep) }

func TestRun_SinkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := bench.NewMockSink(ctrl)

	cfg := bench.Config{Sizes: []int{4, 1, 8}, Repeats: 2, Seed: 5, Workers: 4}
	var calls []*gomock.Call
	for _, n := range cfg.Sizes {
		for r := 0; r < cfg.Repeats; r++ {
			calls = append(calls, sink.EXPECT().Record(sampleAt{n, r}).Return(nil))
		}
	}
	gomock.InOrder(calls...)

	rep, err := bench.Run(context.Background(), cfg, sink, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, rep.Samples, 6)
	require.Len(t, rep.Summaries, 3)
	for i, n := range cfg.Sizes {
		sum := rep.Summaries[i]
		assert.Equal(t, n, sum.N)
		assert.GreaterOrEqual(t, sum.MaxProposals, n)
		assert.LessOrEqual(t, sum.MaxProposals, n*n)
		assert.GreaterOrEqual(t, sum.MatcherStdMS, 0.0)
	}
	assert.Equal(t, 1, rep.Summaries[1].MaxProposals)
}

func TestRun_Deterministic(t *testing.T) {
	cfg := bench.Config{Sizes: []int{3, 17, 40}, Repeats: 3, Seed: 42, Workers: 3}
	a, err := bench.Run(context.Background(), cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	cfg.Workers = 1
	b, err := bench.Run(context.Background(), cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	for i := range a.Samples {
		assert.Equal(t, a.Samples[i].N, b.Samples[i].N)
		assert.Equal(t, a.Samples[i].Repeat, b.Samples[i].Repeat)
		assert.Equal(t, a.Samples[i].Proposals, b.Samples[i].Proposals)
	}
}

func TestRun_SinkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := bench.NewMockSink(ctrl)
	boom := errors.New("disk full")
	sink.EXPECT().Record(sampleAt{2, 0}).Return(boom)

	cfg := bench.Config{Sizes: []int{2, 4}, Repeats: 1, Seed: 1, Workers: 2}
	_, err := bench.Run(context.Background(), cfg, sink, zerolog.Nop())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "n=2 repeat=0")
}

func TestRun_BadConfig(t *testing.T) {
	cases := map[string]bench.Config{
		"NoSizes":   {Repeats: 1, Workers: 1},
		"ZeroSize":  {Sizes: []int{0}, Repeats: 1, Workers: 1},
		"NoRepeats": {Sizes: []int{1}, Workers: 1},
		"NoWorkers": {Sizes: []int{1}, Repeats: 1},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bench.Run(context.Background(), cfg, nil, zerolog.Nop())
			assert.ErrorIs(t, err, bench.ErrBadConfig)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, bench.Config{Sizes: []int{8}, Repeats: 4, Seed: 1, Workers: 1}, nil, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ExponentNaN(t *testing.T) {
	rep, err := bench.Run(context.Background(), bench.Config{Sizes: []int{1}, Repeats: 1, Seed: 1, Workers: 1}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rep.MatcherExponent))
	assert.True(t, math.IsNaN(rep.VerifierExponent))
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	_, err := bench.Run(context.Background(), bench.Config{Sizes: []int{2}, Repeats: 1, Seed: 1, Workers: 1}, nil, logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"sweep started"`)
	assert.Contains(t, buf.String(), `"message":"sweep finished"`)
}

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := bench.NewCSVSink(&buf)
	require.NoError(t, err)

	cfg := bench.Config{Sizes: []int{1, 2}, Repeats: 2, Seed: 9, Workers: 2}
	_, err = bench.Run(context.Background(), cfg, sink, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, sink.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "n,repeat,matcher_time_ms,verifier_time_ms,proposals", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,0,"))
	assert.True(t, strings.HasSuffix(lines[1], ",1"))
	assert.True(t, strings.HasPrefix(lines[4], "2,1,"))
	assert.Len(t, strings.Split(lines[3], ","), 5)
}
