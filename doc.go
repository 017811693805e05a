// Package icgem reads ASCII gravity-field models in the ICGEM exchange
// format, as distributed by the International Centre for Global Earth
// Models (http://icgem.gfz-potsdam.de/home).
//
// What:
//
//   - Model wraps one ICGEM file: header metadata, the data-section
//     offset, and the degree/order bounds discovered by inspection.
//   - ParseHeader reads the free-form header block up to end_of_head.
//   - Inspect scans the data section once and reports static and
//     time-variable (TVG) degree/order bounds plus the catalog of
//     periodic-term periods, storing no coefficients.
//   - Extract re-scans the data section and writes the static ("gfc")
//     coefficients up to a requested (maxDegree, maxOrder) window into a
//     caller-sized coeffs.Store.
//   - ParseModel chains the three passes for the common case.
//
// Why:
//
//   - Orbit-dynamics and geoid code needs the Clm/Slm coefficients in a
//     dense triangular container, not a text file.
//   - Providers take liberties with the format (implicitly-zero degree-1
//     terms, stray records, uneven spacing); the reader tolerates what is
//     documented provider behavior and rejects everything else loudly.
//
// The two passes are independent sequential scans: each opens and seeks
// its own handle, keeps all scan state local, and may therefore run
// concurrently against distinct files. A record kind other than
// gfc/gfct/trnd/acos/asin is skipped with a warning; every other anomaly
// aborts the pass with one of the package sentinel errors.
//
// Subpackages:
//
//	coeffs/    — dense triangular Clm/Slm storage + triangular counting
//	cmd/icgem/ — command-line inspection and SQLite export
//
// Errors:
//
//   - ErrNoDataSection — a pass ran before ParseHeader located the data section.
//   - ErrNoEndOfHead   — the header lacks the end_of_head marker.
//   - ErrIO            — the stream failed outside a clean end-of-file.
//   - ErrLineTooLong   — a data line exceeds the 512-byte format maximum.
//   - ErrFieldParse    — a numeric field failed to parse.
//   - ErrConsistency   — a trnd/acos/asin record disagrees with the active gfct term.
//   - ErrCatalog       — a periodic record references an undeclared period.
//   - ErrRange         — a requested degree/order window is invalid for the file or store.
//   - ErrIncomplete    — the data section ended before the window was filled.
//
// Reference: Ince, E. S. et al. (2019): ICGEM — 15 years of successful
// collection and distribution of global gravitational models, associated
// services and future plans. Earth System Science Data, 11, pp. 647-674,
// DOI: http://doi.org/10.5194/essd-11-647-2019.
package icgem
