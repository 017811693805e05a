// Package coeffs stores fully-normalized spherical-harmonic coefficient
// pairs (Clm, Slm) in a dense lower-triangular layout, and provides the
// triangular counting helpers used when reading gravity-field models.
//
// What:
//
//   - Store holds the Clm/Slm pairs for all 0 ≤ m ≤ l ≤ MaxDegree in two
//     flat, row-major triangular slices.
//   - RequiredCount reports how many (l,m) pairs a (maxDegree, maxOrder)
//     window covers, so a reader knows when it has collected everything.
//
// Why:
//
//   - Gravity-field evaluation indexes coefficients by (degree, order)
//     millions of times; a flat triangular slice keeps that O(1) and
//     cache-friendly.
//   - The ICGEM data section does not announce its own length; the
//     triangular count is the completeness criterion.
//
// Errors:
//
//   - ErrBadDegree: requested maximum degree is negative.
//   - ErrOutOfRange: a (degree, order) index falls outside the triangle.
package coeffs
