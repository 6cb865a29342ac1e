package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog"

	"skewff/internal/config"
	"skewff/internal/sample"
	"skewff/prof"
	"skewff/skew"
)

type sweepParams struct {
	Degree         int
	MaxBits        int
	Step           int
	Reps           int
	Seed           string
	NoBoundMaxBits int
}

// row is the timing of one series at one exponent size.
type row struct {
	Series string
	Bits   int
	Count  int
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
}

// bitSizes returns 1, 2, 4, ... below step, then the multiples of step up to limit.
func bitSizes(limit, step int) []int {
	var out []int
	for b := 1; b < step && b <= limit; b *= 2 {
		out = append(out, b)
	}
	for b := step; b <= limit; b += step {
		out = append(out, b)
	}
	return out
}

// exponent draws an integer of exactly bits bits.
func exponent(rd io.Reader, bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	e := new(big.Int).SetBytes(buf)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	e.Mod(e, mask)
	return e.SetBit(e, bits-1, 1), nil
}

type series struct {
	name    string
	side    skew.Side
	a, m    *skew.Poly
	maxBits int
}

func runSweep(cfg *config.Config, p sweepParams, log zerolog.Logger) ([]row, error) {
	if p.Degree < 1 || p.Step < 1 || p.Reps < 1 {
		return nil, fmt.Errorf("powsweep: degree, step and reps must be positive")
	}
	bounded, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	plain, err := cfg.Build(skew.WithBoundFinder(skew.NoBound))
	if err != nil {
		return nil, err
	}
	rd, err := sample.NewStream(p.Seed)
	if err != nil {
		return nil, err
	}
	f := bounded.Field()
	mc, err := sample.Coeffs(f, p.Degree, true, rd)
	if err != nil {
		return nil, err
	}
	ac, err := sample.Coeffs(f, max(1, p.Degree-1), false, rd)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("modulus", bounded.NewPoly(mc).String()).
		Str("base", bounded.NewPoly(ac).String()).
		Int("order", bounded.Order()).
		Msg("sweep inputs")

	var all []series
	for _, s := range []skew.Side{skew.Left, skew.Right} {
		all = append(all,
			series{name: s.String() + "/bound", side: s, a: bounded.NewPoly(ac), m: bounded.NewPoly(mc), maxBits: p.MaxBits},
			series{name: s.String() + "/plain", side: s, a: plain.NewPoly(ac), m: plain.NewPoly(mc), maxBits: p.NoBoundMaxBits},
		)
	}

	var rec prof.Recorder
	for _, bits := range bitSizes(p.MaxBits, p.Step) {
		e, err := exponent(rd, bits)
		if err != nil {
			return nil, err
		}
		for _, s := range all {
			if bits > s.maxBits {
				continue
			}
			label := s.name + "@" + strconv.Itoa(bits)
			for i := 0; i < p.Reps; i++ {
				start := time.Now()
				if _, err := s.a.PowMod(s.side, e, s.m); err != nil {
					return nil, fmt.Errorf("powsweep: %s: %w", label, err)
				}
				rec.Track(start, label)
			}
		}
		log.Debug().Int("bits", bits).Msg("point done")
	}
	return rowsFrom(prof.Summarize(rec.Snapshot())), nil
}

func rowsFrom(sums []prof.Summary) []row {
	out := make([]row, 0, len(sums))
	for _, s := range sums {
		var name string
		var bits int
		for i := len(s.Label) - 1; i >= 0; i-- {
			if s.Label[i] == '@' {
				name = s.Label[:i]
				bits, _ = strconv.Atoi(s.Label[i+1:])
				break
			}
		}
		out = append(out, row{Series: name, Bits: bits, Count: s.Count, Mean: s.Mean(), Min: s.Min, Max: s.Max})
	}
	return out
}

func renderChart(w io.Writer, rows []row) error {
	var sizes []int
	seen := make(map[int]bool)
	bySeries := make(map[string]map[int]row)
	var order []string
	for _, r := range rows {
		if !seen[r.Bits] {
			seen[r.Bits] = true
			sizes = append(sizes, r.Bits)
		}
		if bySeries[r.Series] == nil {
			bySeries[r.Series] = make(map[int]row)
			order = append(order, r.Series)
		}
		bySeries[r.Series][r.Bits] = r
	}

	page := components.NewPage().SetPageTitle("Skew pow-mod timings")
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Pow-mod time vs. exponent size"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "exponent bits"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "mean time (ms)",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)
	labels := make([]string, len(sizes))
	for i, b := range sizes {
		labels[i] = strconv.Itoa(b)
	}
	line.SetXAxis(labels)
	for _, name := range order {
		items := make([]opts.LineData, len(sizes))
		for i, b := range sizes {
			if r, ok := bySeries[name][b]; ok {
				items[i] = opts.LineData{Value: float64(r.Mean.Microseconds()) / 1000}
			} else {
				items[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(name, items)
	}
	page.AddCharts(line)
	return page.Render(w)
}

func writeCSV(w io.Writer, rows []row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "bits", "count", "mean_us", "min_us", "max_us"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Series,
			strconv.Itoa(r.Bits),
			strconv.Itoa(r.Count),
			strconv.FormatInt(r.Mean.Microseconds(), 10),
			strconv.FormatInt(r.Min.Microseconds(), 10),
			strconv.FormatInt(r.Max.Microseconds(), 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
