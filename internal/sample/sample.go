// Package sample draws reproducible field elements and coefficient vectors. Streams are
// lattigo keyed PRNGs whose keys are derived from a label with SHAKE-256, so a label names
// a sample set across tests, benchmarks and the sweep tool.
package sample

import (
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"

	"skewff/internal/kfield"
)

const keyLen = 32

// Key derives the PRNG key for label.
func Key(label string) []byte {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte("skewff/sample:" + label)); err != nil {
		panic(fmt.Errorf("sample: write label: %w", err))
	}
	key := make([]byte, keyLen)
	if _, err := h.Read(key); err != nil {
		panic(fmt.Errorf("sample: read key: %w", err))
	}
	return key
}

// NewStream returns a deterministic byte stream for label.
func NewStream(label string) (io.Reader, error) {
	prng, err := utils.NewKeyedPRNG(Key(label))
	if err != nil {
		return nil, fmt.Errorf("sample: keyed prng: %w", err)
	}
	return prng, nil
}

// NewRandomStream returns a stream keyed from the system source.
func NewRandomStream() (io.Reader, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("sample: prng: %w", err)
	}
	return prng, nil
}

// Elems draws n field elements.
func Elems(f *kfield.Field, n int, r io.Reader) ([]kfield.Elem, error) {
	out := make([]kfield.Elem, n)
	for i := range out {
		e, err := f.RandomElement(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// NonZero draws a non-zero field element.
func NonZero(f *kfield.Field, r io.Reader) (kfield.Elem, error) {
	for {
		e, err := f.RandomElement(r)
		if err != nil {
			return kfield.Elem{}, err
		}
		if !f.IsZero(e) {
			return e, nil
		}
	}
}

// Coeffs draws the coefficient vector of a polynomial of exact degree deg (deg >= 0).
// With monic set the leading coefficient is 1.
func Coeffs(f *kfield.Field, deg int, monic bool, r io.Reader) ([]kfield.Elem, error) {
	if deg < 0 {
		return nil, nil
	}
	out, err := Elems(f, deg, r)
	if err != nil {
		return nil, err
	}
	lead := f.One()
	if !monic {
		if lead, err = NonZero(f, r); err != nil {
			return nil, err
		}
	}
	return append(out, lead), nil
}
