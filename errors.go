// Package icgem: sentinel error set. All passes return these sentinels,
// wrapped with fmt.Errorf("...: %w", ErrX) where context (file, line
// text, expected vs. actual values) is essential; callers match with
// errors.Is. No pass panics on malformed input.
package icgem

import "errors"

var (
	// ErrNoDataSection is returned when a data pass runs before the data
	// section offset is known (ParseHeader has not succeeded).
	ErrNoDataSection = errors.New("icgem: data section offset not set; parse the header first")

	// ErrNoEndOfHead indicates the header block has no end_of_head marker.
	ErrNoEndOfHead = errors.New("icgem: end_of_head marker not found")

	// ErrIO indicates the source could not be opened, or the stream ended
	// in a failed state other than a clean end-of-file.
	ErrIO = errors.New("icgem: stream read failed")

	// ErrLineTooLong indicates a data line exceeds MaxDataLine bytes.
	// Over-long lines are a format violation, never silently truncated.
	ErrLineTooLong = errors.New("icgem: data line exceeds maximum length")

	// ErrFieldParse indicates a numeric field failed to parse. The wrapped
	// message always carries the offending line.
	ErrFieldParse = errors.New("icgem: malformed numeric field")

	// ErrConsistency indicates a trnd/acos/asin record whose degree/order
	// disagrees with the most recently read gfct record.
	ErrConsistency = errors.New("icgem: record degree/order disagrees with current TVG term")

	// ErrCatalog indicates a periodic record outside (1,0) referencing a
	// period that no (1,0) record has declared.
	ErrCatalog = errors.New("icgem: periodic record references unknown period")

	// ErrRange indicates a requested degree/order window that is invalid,
	// exceeds the file's reported maximum, or exceeds the store's capacity.
	ErrRange = errors.New("icgem: requested degree/order out of range")

	// ErrIncomplete indicates the data section ended before all requested
	// coefficients were read, and the shortfall is not the documented
	// implicit degree-1 convention.
	ErrIncomplete = errors.New("icgem: coefficient set incomplete")
)
