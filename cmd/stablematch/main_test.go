package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conflict is the 2×2 instance where both hospitals want student 1 and
// student 1 prefers hospital 2.
const conflict = "2\n1 2\n1 2\n2 1\n1 2\n"

// runApp invokes the application with args and returns status and output.
func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"stablematch"}, args...), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestAllCommands_Help(t *testing.T) {
	for _, cmd := range commands {
		t.Run(cmd.Name, func(t *testing.T) {
			code, _, _ := runApp(t, cmd.Name, "--help")
			assert.Equal(t, exitOK, code)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runApp(t, "frobnicate")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)
}

func TestMatch(t *testing.T) {
	inst := writeFile(t, "in.txt", conflict)

	code, stdout, _ := runApp(t, "match", inst)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1 2\n2 1\n", stdout)

	code, stdout, _ = runApp(t, "match", "--students-propose", "--order", "lowest", inst)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1 2\n2 1\n", stdout)

	code, _, stderr := runApp(t, "--log-level", "info", "match", "--stats", inst)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "matched")
	assert.Contains(t, stderr, "proposals")
}

func TestMatch_Errors(t *testing.T) {
	bad := writeFile(t, "bad.txt", "2\n1 1\n1 2\n2 1\n1 2\n")

	code, stdout, stderr := runApp(t, "match", bad)
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "hospital 1 preferences are not a valid permutation of 1..2")

	code, _, stderr = runApp(t, "match", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "Error:")

	code, _, stderr = runApp(t, "match")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "Usage: stablematch match <instance>")

	code, _, _ = runApp(t, "match", "--order", "random", writeFile(t, "in.txt", conflict))
	assert.Equal(t, exitFailure, code)
}

func TestVerify(t *testing.T) {
	inst := writeFile(t, "in.txt", conflict)
	cases := []struct {
		name     string
		matching string
		code     int
		out      string
	}{
		{"Stable", "1 2\n2 1\n", exitOK, "VALID STABLE"},
		{"Unstable", "1 1\n2 2\n", exitUnstable, "Unstable: Blocking pair (Hospital 2, Student 1)."},
		{"Duplicate", "1 1\n2 1\n", exitInvalid, "Invalid: Unmatched students: [2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, _ := runApp(t, "verify", inst, writeFile(t, "m.txt", tc.matching))
			assert.Equal(t, tc.code, code)
			assert.True(t, strings.HasPrefix(stdout, tc.out), stdout)
		})
	}

	code, _, stderr := runApp(t, "verify", inst, writeFile(t, "m.txt", "1 1\n"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "expected exactly 2 non-empty lines, got 1")
}

// TestGenerateMatchVerify pipes the three commands through files.
func TestGenerateMatchVerify(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"latin.txt", "latin.txt.sz"} {
		inst := filepath.Join(dir, name)
		code, _, stderr := runApp(t, "generate", "--n", "6", "--kind", "latin", inst)
		require.Equal(t, exitOK, code, stderr)

		code, stdout, _ := runApp(t, "match", inst)
		require.Equal(t, exitOK, code)
		m := filepath.Join(dir, name+".match")
		require.NoError(t, os.WriteFile(m, []byte(stdout), 0o644))

		code, stdout, _ = runApp(t, "verify", inst, m)
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "VALID STABLE\n", stdout)
	}
}

func TestGenerate(t *testing.T) {
	code, stdout, _ := runApp(t, "generate", "--n", "2", "--kind", "identical", "-")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "2\n1 2\n1 2\n1 2\n1 2\n", stdout)

	_, a, _ := runApp(t, "generate", "--n", "5", "--seed", "9", "-")
	_, b, _ := runApp(t, "generate", "--n", "5", "--seed", "9", "-")
	assert.Equal(t, a, b)

	code, _, _ = runApp(t, "generate", "--n", "3", "--kind", "spiral", "-")
	assert.Equal(t, exitFailure, code)
	code, _, _ = runApp(t, "generate", "--n", "0", "-")
	assert.Equal(t, exitFailure, code)
	code, _, _ = runApp(t, "generate", "-")
	assert.Equal(t, exitFailure, code)
}

func TestBench(t *testing.T) {
	code, stdout, _ := runApp(t, "bench", "--sizes", "1,4", "--repeats", "2", "--workers", "2")
	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "n,repeat,matcher_time_ms,verifier_time_ms,proposals", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "4,0,"))

	out := filepath.Join(t.TempDir(), "bench.csv")
	code, stdout, _ = runApp(t, "bench", "--sizes", "2", "--out", out)
	require.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))

	code, _, stderr := runApp(t, "bench", "--sizes", "1,x")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, `invalid size "x"`)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "stablematch.yaml", "bench:\n  sizes: [3]\n  repeats: 1\n  workers: 1\n")
	code, stdout, _ := runApp(t, "--config", cfg, "bench")
	require.Equal(t, exitOK, code)
	assert.Equal(t, 2, strings.Count(stdout, "\n"))
	assert.Contains(t, stdout, "\n3,0,")

	code, _, _ = runApp(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "bench")
	assert.Equal(t, exitFailure, code)
}
