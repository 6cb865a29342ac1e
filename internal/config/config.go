// Package config reads the YAML description of a skew polynomial ring and builds it.
package config

import (
	"bytes"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"skewff/internal/kfield"
	"skewff/internal/sample"
	"skewff/skew"
)

// ErrNoConfigFile is returned by Load when the file does not exist.
var ErrNoConfigFile = errors.New("config: file not found")

// Field describes k = F_p[t]/(chi).
type Field struct {
	Characteristic uint64   `yaml:"characteristic"`
	Degree         int      `yaml:"degree"`
	Modulus        []uint64 `yaml:"modulus,omitempty"`
	Seed           string   `yaml:"seed,omitempty"`
	Generator      string   `yaml:"generator,omitempty"`
}

// Config describes k[x, Frob^twist].
type Config struct {
	Field          Field  `yaml:"field"`
	Twist          int    `yaml:"twist"`
	Variable       string `yaml:"variable,omitempty"`
	MaxBoundDegree int    `yaml:"max_bound_degree,omitempty"`
	MaxDirectPower int64  `yaml:"max_direct_power,omitempty"`
}

// Default is GF(5^3) with the Conway modulus t^3 + 3t + 3 and σ = Frobenius.
func Default() *Config {
	return &Config{
		Field: Field{
			Characteristic: 5,
			Degree:         3,
			Modulus:        []uint64{3, 3, 0, 1},
			Seed:           "skewff",
			Generator:      "t",
		},
		Twist:    1,
		Variable: "x",
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNoConfigFile, path)
		}
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Parse decodes data on top of Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	def := cfg.Field
	// The default modulus only applies to the default field.
	cfg.Field.Modulus = nil
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "config: parsing yaml")
	}
	f := &cfg.Field
	if f.Modulus == nil && f.Characteristic == def.Characteristic && f.Degree == def.Degree {
		f.Modulus = def.Modulus
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that can be checked without building the field.
func (c *Config) Validate() error {
	f := c.Field
	if f.Characteristic < 2 {
		return errors.Errorf("config: characteristic %d", f.Characteristic)
	}
	if f.Degree < 1 {
		return errors.Errorf("config: degree %d", f.Degree)
	}
	if f.Modulus != nil && len(f.Modulus) != f.Degree+1 {
		return errors.Errorf("config: modulus has %d coefficients, degree %d needs %d",
			len(f.Modulus), f.Degree, f.Degree+1)
	}
	if c.MaxBoundDegree < 0 {
		return errors.Errorf("config: max_bound_degree %d", c.MaxBoundDegree)
	}
	if c.MaxDirectPower < 0 {
		return errors.Errorf("config: max_direct_power %d", c.MaxDirectPower)
	}
	return nil
}

// Build constructs the field and the ring. Without an explicit modulus an irreducible one
// is drawn from the stream labelled by Field.Seed. extra is applied after the options
// derived from c.
func (c *Config) Build(extra ...skew.Option) (*skew.Ring, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	chi := c.Field.Modulus
	if chi == nil {
		s, err := sample.NewStream(c.Field.Seed)
		if err != nil {
			return nil, errors.Wrap(err, "config: modulus stream")
		}
		if chi, err = kfield.FindIrreducible(c.Field.Characteristic, c.Field.Degree, s); err != nil {
			return nil, errors.Wrap(err, "config: modulus search")
		}
	}
	f, err := kfield.New(c.Field.Characteristic, c.Field.Degree, chi)
	if err != nil {
		return nil, errors.Wrap(err, "config: field")
	}
	opts := []skew.Option{skew.WithMaxBoundDegree(c.MaxBoundDegree)}
	if c.Variable != "" {
		opts = append(opts, skew.WithVariable(c.Variable))
	}
	if c.Field.Generator != "" {
		opts = append(opts, skew.WithGenerator(c.Field.Generator))
	}
	if c.MaxDirectPower > 0 {
		opts = append(opts, skew.WithMaxDirectPower(c.MaxDirectPower))
	}
	opts = append(opts, extra...)
	r, err := skew.NewRing(f, c.Twist, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "config: ring")
	}
	return r, nil
}

// ParsePoly reads a polynomial written as a YAML list of coefficient coordinate lists,
// lowest degree first: "[[3, 2], [1]]" is x + 2t + 3. A bare list of integers is read as
// coefficients in F_p.
func ParsePoly(r *skew.Ring, text string) (*skew.Poly, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("config: empty polynomial")
	}
	var coords [][]uint64
	if err := yaml.Unmarshal([]byte(text), &coords); err != nil {
		var flat []uint64
		if ferr := yaml.Unmarshal([]byte(text), &flat); ferr != nil {
			return nil, errors.Wrapf(err, "config: polynomial %q", text)
		}
		coords = make([][]uint64, len(flat))
		for i, x := range flat {
			coords[i] = []uint64{x}
		}
	}
	theta := r.Field().Theta
	for i, c := range coords {
		if len(c) > theta {
			return nil, errors.Errorf("config: coefficient %d has %d coordinates, field degree %d", i, len(c), theta)
		}
	}
	return r.NewPolyCoords(coords), nil
}

// ParseExponent reads an exponent. Integers of any size (decimal or 0x/0o/0b prefixed) are
// read exactly; any other YAML scalar, such as 1e3, must coerce to an integer.
func ParseExponent(text string) (*big.Int, error) {
	if e, err := skew.ParseExponent(text); err == nil {
		return e, nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil || v == nil {
		return skew.ParseExponent(text)
	}
	return skew.ExponentOf(v)
}

// FormatPoly writes p in the notation read by ParsePoly, trailing zero coordinates dropped.
func FormatPoly(p *skew.Poly) string {
	f := p.Ring().Field()
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p.Coeffs() {
		if i > 0 {
			b.WriteString(", ")
		}
		coords := f.PhiInv(c)
		n := len(coords)
		for n > 0 && coords[n-1] == 0 {
			n--
		}
		b.WriteByte('[')
		for j, x := range coords[:n] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatUint(x, 10))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
