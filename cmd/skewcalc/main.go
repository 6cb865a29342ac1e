// Command skewcalc evaluates skew polynomial operations from the command line.
//
//	skewcalc [--config ring.yaml] leftpow --a '[[0,1],[1]]' --exp 100 --mod '[[3],[3,1],[0,1],[1]]'
//
// Polynomials are YAML lists of coefficient coordinates, lowest degree first.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"skewff/internal/config"
	"skewff/internal/sample"
	"skewff/prof"
	"skewff/skew"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
)

func main() {
	app := newApp(os.Stdout, colorable.NewColorable(os.Stderr))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "skewcalc:", err)
		os.Exit(1)
	}
}

func newApp(out, logOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "skewcalc",
		Usage:     "arithmetic in k[x, Frob^s] over a finite field",
		Writer:    out,
		ErrWriter: logOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagConfig, Usage: "ring description (YAML); GF(5^3) with Frobenius when unset"},
			&cli.StringFlag{Name: flagLogLevel, Value: "info", Usage: "zerolog level"},
		},
		Commands: []*cli.Command{
			powCommand(skew.Left),
			powCommand(skew.Right),
			divideCommand(),
			gcdCommand(),
			boundCommand(),
			matrixCommand(),
			randomCommand(),
		},
	}
}

func createLogger(c *cli.Context) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.String(flagLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: c.App.ErrWriter, TimeFormat: time.RFC3339}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

func loadRing(c *cli.Context, opts ...skew.Option) (*skew.Ring, error) {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	return cfg.Build(opts...)
}

func parseSide(s string) (skew.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return skew.Left, nil
	case "right", "r", "":
		return skew.Right, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}

func polyFlag(c *cli.Context, r *skew.Ring, name string) (*skew.Poly, error) {
	p, err := config.ParsePoly(r, c.String(name))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return p, nil
}

func powCommand(s skew.Side) *cli.Command {
	name := s.String() + "pow"
	return &cli.Command{
		Name:  name,
		Usage: fmt.Sprintf("remainder of a^exp in the %s division by mod", s),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Required: true},
			&cli.StringFlag{Name: "exp", Required: true},
			&cli.StringFlag{Name: "mod"},
			&cli.BoolFlag{Name: "no-bound", Usage: "square without reducing modulo a central multiple"},
		},
		Action: func(c *cli.Context) error {
			log := createLogger(c)
			var opts []skew.Option
			if c.Bool("no-bound") {
				opts = append(opts, skew.WithBoundFinder(skew.NoBound))
			}
			r, err := loadRing(c, opts...)
			if err != nil {
				return err
			}
			a, err := polyFlag(c, r, "a")
			if err != nil {
				return err
			}
			var m *skew.Poly
			if c.IsSet("mod") {
				if m, err = polyFlag(c, r, "mod"); err != nil {
					return err
				}
			}
			exp, err := config.ParseExponent(c.String("exp"))
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := a.PowMod(s, exp, m)
			prof.Track(start, name)
			if err != nil {
				return err
			}
			for _, sum := range prof.Summarize(prof.SnapshotAndReset()) {
				log.Debug().Str("op", sum.Label).Str("exp", exp.String()).Int("calls", sum.Count).Dur("elapsed", sum.Total).Msg("pow done")
			}
			fmt.Fprintln(c.App.Writer, res)
			return nil
		},
	}
}

func divideCommand() *cli.Command {
	return &cli.Command{
		Name:  "divide",
		Usage: "quotient and remainder of a by b",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "side", Value: "right", Usage: "left (a = b·q + r) or right (a = q·b + r)"},
			&cli.StringFlag{Name: "a", Required: true},
			&cli.StringFlag{Name: "b", Required: true},
		},
		Action: func(c *cli.Context) error {
			s, err := parseSide(c.String("side"))
			if err != nil {
				return err
			}
			r, err := loadRing(c)
			if err != nil {
				return err
			}
			a, err := polyFlag(c, r, "a")
			if err != nil {
				return err
			}
			b, err := polyFlag(c, r, "b")
			if err != nil {
				return err
			}
			q, rem, err := s.QuoRem(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "q = %s\nr = %s\n", q, rem)
			return nil
		},
	}
}

func gcdCommand() *cli.Command {
	return &cli.Command{
		Name:  "gcd",
		Usage: "monic gcd of a and b",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "side", Value: "right"},
			&cli.StringFlag{Name: "a", Required: true},
			&cli.StringFlag{Name: "b", Required: true},
		},
		Action: func(c *cli.Context) error {
			s, err := parseSide(c.String("side"))
			if err != nil {
				return err
			}
			r, err := loadRing(c)
			if err != nil {
				return err
			}
			a, err := polyFlag(c, r, "a")
			if err != nil {
				return err
			}
			b, err := polyFlag(c, r, "b")
			if err != nil {
				return err
			}
			gcd := skew.RightMonicGCD
			if s == skew.Left {
				gcd = skew.LeftMonicGCD
			}
			g, err := gcd(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, g)
			return nil
		},
	}
}

func boundCommand() *cli.Command {
	return &cli.Command{
		Name:  "bound",
		Usage: "central multiple of a",
		Flags: []cli.Flag{&cli.StringFlag{Name: "a", Required: true}},
		Action: func(c *cli.Context) error {
			r, err := loadRing(c)
			if err != nil {
				return err
			}
			a, err := polyFlag(c, r, "a")
			if err != nil {
				return err
			}
			n, ok := a.Bound()
			if !ok {
				return fmt.Errorf("no bound for %s", a)
			}
			fmt.Fprintln(c.App.Writer, n)
			return nil
		},
	}
}

func matrixCommand() *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "multiplication matrix of the right-monic a over the center, and its determinant",
		Flags: []cli.Flag{&cli.StringFlag{Name: "a", Required: true}},
		Action: func(c *cli.Context) error {
			r, err := loadRing(c)
			if err != nil {
				return err
			}
			a, err := polyFlag(c, r, "a")
			if err != nil {
				return err
			}
			if a.IsZero() {
				return skew.ErrDivisionByZero
			}
			writeMatrix(c.App.Writer, r, a.RightMonic())
			norm, err := a.ReducedNorm()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "det = %s\n", r.Center().Format(norm, r.Generator()))
			return nil
		},
	}
}

func writeMatrix(w io.Writer, r *skew.Ring, p *skew.Poly) {
	M := p.MulMatrix()
	table := tablewriter.NewWriter(w)
	header := make([]string, M.Cols+1)
	for j := 0; j < M.Cols; j++ {
		header[j+1] = fmt.Sprintf("%s^%d·p", r.Variable(), j)
	}
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	for i := 0; i < M.Rows; i++ {
		row := make([]string, M.Cols+1)
		row[0] = fmt.Sprintf("%s^%d", r.Variable(), i)
		for j := 0; j < M.Cols; j++ {
			row[j+1] = r.Center().Format(M.At(i, j), r.Generator())
		}
		table.Append(row)
	}
	table.Render()
}

func randomCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "reproducible random polynomial of the given degree",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "degree", Value: 3},
			&cli.StringFlag{Name: "seed", Value: "skewcalc"},
			&cli.BoolFlag{Name: "monic"},
		},
		Action: func(c *cli.Context) error {
			r, err := loadRing(c)
			if err != nil {
				return err
			}
			rd, err := sample.NewStream(c.String("seed"))
			if err != nil {
				return err
			}
			coeffs, err := sample.Coeffs(r.Field(), c.Int("degree"), c.Bool("monic"), rd)
			if err != nil {
				return err
			}
			p := r.NewPoly(coeffs)
			fmt.Fprintf(c.App.Writer, "%s\n%s\n", config.FormatPoly(p), p)
			return nil
		},
	}
}
