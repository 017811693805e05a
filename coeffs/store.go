// SPDX-License-Identifier: MIT
// Package coeffs: Store is a dense lower-triangular container for
// spherical-harmonic coefficient pairs, stored in two flat slices for
// performance and cache friendliness.
package coeffs

import (
	"errors"
	"fmt"
)

// ErrBadDegree indicates that a requested maximum degree is negative.
var ErrBadDegree = errors.New("coeffs: max degree must be non-negative")

// ErrOutOfRange indicates that a (degree, order) pair is outside the
// triangle 0 ≤ m ≤ l ≤ MaxDegree.
var ErrOutOfRange = errors.New("coeffs: degree/order out of range")

// storeErrorf wraps an underlying error with Store method context.
func storeErrorf(method string, l, m int, err error) error {
	return fmt.Errorf("Store.%s(%d,%d): %w", method, l, m, err)
}

// Store holds coefficient pairs for all 0 ≤ m ≤ l ≤ lmax.
// c and s hold the cosine- and sine-type coefficients in row-major
// triangular order, length (lmax+1)(lmax+2)/2 each.
type Store struct {
	lmax int
	c, s []float64
}

// NewStore creates a Store covering all degrees 0..maxDegree, zeroed.
// Returns ErrBadDegree if maxDegree < 0.
// Complexity: O(maxDegree²) time and memory.
func NewStore(maxDegree int) (*Store, error) {
	if maxDegree < 0 {
		return nil, ErrBadDegree
	}
	n := triSize(maxDegree)

	return &Store{lmax: maxDegree, c: make([]float64, n), s: make([]float64, n)}, nil
}

// MaxDegree returns the highest degree the Store covers.
// Complexity: O(1).
func (t *Store) MaxDegree() int {
	return t.lmax
}

// Resize reallocates the Store to cover degrees 0..maxDegree and zeroes
// every coefficient. Returns ErrBadDegree if maxDegree < 0.
// Complexity: O(maxDegree²) time and memory.
func (t *Store) Resize(maxDegree int) error {
	if maxDegree < 0 {
		return ErrBadDegree
	}
	n := triSize(maxDegree)
	t.lmax = maxDegree
	t.c = make([]float64, n)
	t.s = make([]float64, n)

	return nil
}

// triSize returns the number of (l,m) pairs with 0 ≤ m ≤ l ≤ lmax.
func triSize(lmax int) int {
	return (lmax + 1) * (lmax + 2) / 2
}

// indexOf computes the flat index for (l, m) or returns ErrOutOfRange.
// Row l starts at l(l+1)/2; entry m sits m slots further.
// Complexity: O(1).
func (t *Store) indexOf(method string, l, m int) (int, error) {
	if l < 0 || l > t.lmax || m < 0 || m > l {
		return 0, storeErrorf(method, l, m, ErrOutOfRange)
	}

	return l*(l+1)/2 + m, nil
}

// C returns the cosine-type coefficient Clm.
// Complexity: O(1).
func (t *Store) C(l, m int) (float64, error) {
	i, err := t.indexOf("C", l, m)
	if err != nil {
		return 0, err
	}

	return t.c[i], nil
}

// S returns the sine-type coefficient Slm.
// Complexity: O(1).
func (t *Store) S(l, m int) (float64, error) {
	i, err := t.indexOf("S", l, m)
	if err != nil {
		return 0, err
	}

	return t.s[i], nil
}

// SetC assigns the cosine-type coefficient Clm.
// Complexity: O(1).
func (t *Store) SetC(l, m int, v float64) error {
	i, err := t.indexOf("SetC", l, m)
	if err != nil {
		return err
	}
	t.c[i] = v

	return nil
}

// SetS assigns the sine-type coefficient Slm.
// Complexity: O(1).
func (t *Store) SetS(l, m int, v float64) error {
	i, err := t.indexOf("SetS", l, m)
	if err != nil {
		return err
	}
	t.s[i] = v

	return nil
}
