package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skewff/skew"
)

const (
	scenarioA = "[[0,1],[1]]"
	scenarioM = "[[3],[3,1],[0,1],[1]]"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithLogs(t, args...)
	return out, err
}

func runWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	app := newApp(&out, &logs)
	err := app.Run(append([]string{"skewcalc"}, args...))
	return out.String(), logs.String(), err
}

func TestPowCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"leftpow", "--a", scenarioA, "--exp", "10", "--mod", scenarioM},
			"(4*t^2 + 2*t + 3)*x^2 + (3*t^2 + 1)*x + 2*t + 3"},
		{[]string{"rightpow", "--a", scenarioA, "--exp", "10", "--mod", scenarioM},
			"(t^2 + t)*x^2 + (3*t^2 + 1)*x + t^2 + t"},
		{[]string{"--log-level", "debug", "rightpow", "--a", scenarioA, "--exp", "100", "--mod", scenarioM, "--no-bound"},
			"(2*t^2 + 3)*x^2 + (t^2 + 4*t + 2)*x + t^2 + 2*t + 1"},
		{[]string{"leftpow", "--a", scenarioA, "--exp", "2"},
			"x^2 + (2*t^2 + 4)*x + t^2"},
	}
	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, strings.TrimSpace(out), tt.args)
	}
}

func TestPowCommandExponentForms(t *testing.T) {
	want, err := run(t, "rightpow", "--a", scenarioA, "--exp", "10", "--mod", scenarioM)
	require.NoError(t, err)
	for _, exp := range []string{"0xa", "1e1", "10.0"} {
		out, err := run(t, "rightpow", "--a", scenarioA, "--exp", exp, "--mod", scenarioM)
		require.NoError(t, err, exp)
		assert.Equal(t, want, out, exp)
	}
}

func TestPowCommandLogsTiming(t *testing.T) {
	_, logs, err := runWithLogs(t, "--log-level", "debug", "leftpow", "--a", scenarioA, "--exp", "10", "--mod", scenarioM)
	require.NoError(t, err)
	assert.Contains(t, logs, "pow done")
	assert.Contains(t, logs, "leftpow")

	// The process-wide recorder is drained after every command.
	_, logs, err = runWithLogs(t, "--log-level", "debug", "rightpow", "--a", scenarioA, "--exp", "3")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs, "pow done"))
	assert.NotContains(t, logs, "leftpow")

	_, logs, err = runWithLogs(t, "leftpow", "--a", scenarioA, "--exp", "3")
	require.NoError(t, err)
	assert.NotContains(t, logs, "pow done")
}

func TestPowCommandErrors(t *testing.T) {
	_, err := run(t, "leftpow", "--a", scenarioA, "--exp", "1.5")
	assert.ErrorIs(t, err, skew.ErrNonIntegralExponent)

	_, err = run(t, "leftpow", "--a", scenarioA, "--exp", "-1")
	assert.ErrorIs(t, err, skew.ErrNotInvertible)

	_, err = run(t, "leftpow", "--exp", "3")
	assert.Error(t, err)
}

func TestDivideCommand(t *testing.T) {
	out, err := run(t, "divide", "--side", "left", "--a", scenarioM, "--b", scenarioM)
	require.NoError(t, err)
	assert.Equal(t, "q = 1\nr = 0\n", out)

	_, err = run(t, "divide", "--a", scenarioM, "--b", "[]")
	assert.ErrorIs(t, err, skew.ErrDivisionByZero)

	_, err = run(t, "divide", "--side", "up", "--a", scenarioM, "--b", scenarioA)
	assert.Error(t, err)
}

func TestGCDCommand(t *testing.T) {
	out, err := run(t, "gcd", "--a", "[[],[1]]", "--b", "[[1],[1]]")
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	out, err = run(t, "gcd", "--side", "left", "--a", scenarioM, "--b", scenarioM)
	require.NoError(t, err)
	assert.Equal(t, "x^3 + t*x^2 + (t + 3)*x + 3", strings.TrimSpace(out))

	out, err = run(t, "gcd", "--side", "left", "--a", "[[2],[],[],[2]]", "--b", "[]")
	require.NoError(t, err)
	assert.Equal(t, "x^3 + 1", strings.TrimSpace(out))
}

func TestBoundAndMatrixCommands(t *testing.T) {
	out, err := run(t, "bound", "--a", "[[],[1]]")
	require.NoError(t, err)
	assert.Equal(t, "x^3", strings.TrimSpace(out))

	out, err = run(t, "matrix", "--a", "[[],[1]]")
	require.NoError(t, err)
	assert.Contains(t, out, "x^0·p")
	assert.Contains(t, out, "det = (x^3)")

	_, err = run(t, "matrix", "--a", "[]")
	assert.ErrorIs(t, err, skew.ErrDivisionByZero)
}

func TestRandomCommandIsReproducible(t *testing.T) {
	a, err := run(t, "random", "--degree", "4", "--seed", "s")
	require.NoError(t, err)
	b, err := run(t, "random", "--degree", "4", "--seed", "s")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 2)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: {characteristic: 3, degree: 4, modulus: [2, 0, 0, 2, 1]}\ntwist: 2\nvariable: y\n"), 0o600))
	out, err := run(t, "--config", path, "bound", "--a", "[[],[1]]")
	require.NoError(t, err)
	assert.Equal(t, "y^2", strings.TrimSpace(out))

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "bound", "--a", "[[1]]")
	assert.Error(t, err)
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]skew.Side{"left": skew.Left, "R": skew.Right, "": skew.Right, " l ": skew.Left} {
		s, err := parseSide(in)
		require.NoError(t, err)
		assert.Equal(t, want, s)
	}
	_, err := parseSide("middle")
	assert.Error(t, err)
}
