package prefio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stablematch/core"
)

// maxLineBytes bounds a single line; n=100 000 needs ~600 KB per line.
const maxLineBytes = 64 << 20

// ReadInstance parses an instance and validates it through core.New.
//
// Errors (all wrap core.ErrMalformedInput):
//   - read failures, including lines longer than 64 MiB,
//   - empty input, non-integer tokens, n < 1,
//   - a line count other than 2n+1,
//   - any list that is not a permutation of 1..n (from core.New).
func ReadInstance(r io.Reader) (*core.Instance, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedInput, err)
	}
	if len(lines) == 0 {
		return nil, malformedInput("empty input")
	}

	n, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, malformedInput("line 1: invalid size %q", lines[0])
	}
	if n < 1 {
		return nil, malformedInput("n must be at least 1, got %d", n)
	}
	if len(lines) != 2*n+1 {
		return nil, malformedInput("expected %d lines, got %d", 2*n+1, len(lines))
	}

	hospitals := make([][]int, n)
	students := make([][]int, n)
	var i int
	for i = 0; i < n; i++ {
		if hospitals[i], err = parseInts(lines[1+i], 2+i); err != nil {
			return nil, malformedInput("%v", err)
		}
		if students[i], err = parseInts(lines[1+n+i], 2+n+i); err != nil {
			return nil, malformedInput("%v", err)
		}
	}

	return core.New(hospitals, students)
}

// ReadMatching parses exactly n "<hospital> <student>" lines.
//
// Errors (all wrap ErrMalformedMatching): wrong line count, a line without
// exactly two integer tokens, an id outside 1..n, a repeated hospital.
// Repeated students are NOT rejected here; that is the verifier's job.
func ReadMatching(r io.Reader, n int) (core.Matching, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMatching, err)
	}
	if len(lines) != n {
		return nil, malformedMatching("expected exactly %d non-empty lines, got %d", n, len(lines))
	}

	m := make(core.Matching, n)
	for idx, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, malformedMatching("line %d: invalid format %q, expected 'hospital student'", idx+1, line)
		}
		h, errH := strconv.Atoi(fields[0])
		s, errS := strconv.Atoi(fields[1])
		if errH != nil || errS != nil {
			return nil, malformedMatching("line %d: invalid format %q, expected 'hospital student'", idx+1, line)
		}
		if h < 1 || h > n {
			return nil, malformedMatching("line %d: invalid hospital ID: %d", idx+1, h)
		}
		if s < 1 || s > n {
			return nil, malformedMatching("line %d: invalid student ID: %d", idx+1, s)
		}
		if _, dup := m[h]; dup {
			return nil, malformedMatching("duplicate hospital %d in matching file", h)
		}
		m[h] = s
	}

	return m, nil
}

// nonEmptyLines returns the trimmed, non-blank lines of r.
func nonEmptyLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out []string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// parseInts splits line into integers; lineNo is 1-based for messages.
func parseInts(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	var err error
	for i, f := range fields {
		if out[i], err = strconv.Atoi(f); err != nil {
			return nil, &lineError{line: lineNo, token: f}
		}
	}

	return out, nil
}

// lineError reports a non-integer token.
type lineError struct {
	line  int
	token string
}

func (e *lineError) Error() string {
	return "line " + strconv.Itoa(e.line) + ": invalid integer " + strconv.Quote(e.token)
}
