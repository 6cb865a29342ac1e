// Command powsweep times LeftPow and RightPow against the exponent size and renders the
// result as an HTML line chart, optionally with a CSV of the raw means.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"

	"skewff/internal/config"
)

func main() {
	var (
		cfgPath   = flag.String("config", "", "ring description (YAML)")
		degree    = flag.Int("degree", 3, "degree of the random modulus")
		maxBits   = flag.Int("maxbits", 256, "largest exponent size in bits")
		step      = flag.Int("step", 16, "exponent size increment in bits")
		reps      = flag.Int("reps", 5, "repetitions per point")
		seed      = flag.String("seed", "powsweep", "sample stream label")
		noBoundTo = flag.Int("nobound-maxbits", 10, "largest exponent size timed without a bound")
		outPath   = flag.String("out", "powsweep.html", "chart output")
		csvPath   = flag.String("csv", "", "optional CSV output")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorable(os.Stderr), TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	params := sweepParams{
		Degree:         *degree,
		MaxBits:        *maxBits,
		Step:           *step,
		Reps:           *reps,
		Seed:           *seed,
		NoBoundMaxBits: *noBoundTo,
	}
	rows, err := runSweep(cfg, params, log)
	if err != nil {
		log.Fatal().Err(err).Msg("sweep")
	}

	if err := writeOutputs(rows, *outPath, *csvPath); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
	log.Info().Str("chart", *outPath).Str("csv", *csvPath).Int("points", len(rows)).Msg("sweep written")
}

// writeOutputs writes the chart to chartPath and, when csvPath is set, the CSV beside it.
func writeOutputs(rows []row, chartPath, csvPath string) error {
	if err := writeFile(chartPath, func(w io.Writer) error { return renderChart(w, rows) }); err != nil {
		return err
	}
	if csvPath == "" {
		return nil
	}
	return writeFile(csvPath, func(w io.Writer) error { return writeCSV(w, rows) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("powsweep: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("powsweep: %s: %w", path, err)
	}
	return f.Close()
}
