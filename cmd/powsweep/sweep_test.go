package main

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skewff/internal/config"
	"skewff/internal/sample"
)

func TestBitSizes(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8, 16, 24}, bitSizes(30, 8))
	assert.Equal(t, []int{1, 2}, bitSizes(2, 16))
	assert.Equal(t, []int{1, 2, 3}, bitSizes(3, 1))
}

func TestExponentHasExactSize(t *testing.T) {
	rd, err := sample.NewStream("exp")
	require.NoError(t, err)
	for _, bits := range []int{1, 7, 8, 9, 64, 130} {
		e, err := exponent(rd, bits)
		require.NoError(t, err)
		assert.Equal(t, bits, e.BitLen())
	}
}

func TestRunSweep(t *testing.T) {
	params := sweepParams{Degree: 2, MaxBits: 16, Step: 8, Reps: 2, Seed: "test", NoBoundMaxBits: 4}
	rows, err := runSweep(config.Default(), params, zerolog.New(io.Discard))
	require.NoError(t, err)

	// Sizes 1, 2, 4, 8, 16: bound series at all five, plain series at the first three.
	count := map[string]int{}
	for _, r := range rows {
		count[r.Series]++
		assert.Equal(t, 2, r.Count)
		assert.LessOrEqual(t, r.Min, r.Max)
	}
	assert.Equal(t, map[string]int{"left/bound": 5, "right/bound": 5, "left/plain": 3, "right/plain": 3}, count)

	var html bytes.Buffer
	require.NoError(t, renderChart(&html, rows))
	assert.Contains(t, html.String(), "left/plain")

	var out bytes.Buffer
	require.NoError(t, writeCSV(&out, rows))
	recs, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, len(rows)+1)
	assert.Equal(t, "series", recs[0][0])
}

func TestRunSweepRejectsBadParams(t *testing.T) {
	_, err := runSweep(config.Default(), sweepParams{Degree: 0, Step: 1, Reps: 1}, zerolog.Nop())
	assert.Error(t, err)
}

func TestWriteOutputs(t *testing.T) {
	rows := []row{{Series: "left/bound", Bits: 8, Count: 1}}
	dir := t.TempDir()
	chart, table := filepath.Join(dir, "sweep.html"), filepath.Join(dir, "sweep.csv")
	require.NoError(t, writeOutputs(rows, chart, table))

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(html), "left/bound")
	data, err := os.ReadFile(table)
	require.NoError(t, err)
	assert.Equal(t, "series,bits,count,mean_us,min_us,max_us\nleft/bound,8,1,0,0,0\n", string(data))

	require.NoError(t, writeOutputs(rows, filepath.Join(dir, "only.html"), ""))
	_, err = os.Stat(filepath.Join(dir, "only.csv"))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, writeOutputs(rows, filepath.Join(dir, "missing", "sweep.html"), ""))
}
