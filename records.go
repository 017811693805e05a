package icgem

import "bytes"

// tagLen is the width of the record-type tag; parsing of numeric fields
// starts at this offset on every recognized record.
const tagLen = 4

// recordKind classifies one data-section line by its leading token.
type recordKind uint8

const (
	// recUnknown marks any unrecognized, blank, or short line. Unknown
	// records are skipped with a warning, never fatal.
	recUnknown recordKind = iota
	// recStatic is a static-gravity coefficient record ("gfc ").
	recStatic
	// recTimeVar is a time-variable coefficient record ("gfct").
	recTimeVar
	// recTrend is a TVG trend record ("trnd").
	recTrend
	// recACos is a periodic cosine-amplitude record ("acos").
	recACos
	// recASin is a periodic sine-amplitude record ("asin").
	recASin
)

// classify inspects the first tagLen bytes of line. The trailing space in
// "gfc " keeps 3-character gfc tags from swallowing gfct records.
// Complexity: O(1).
func classify(line []byte) recordKind {
	if len(line) < tagLen {
		return recUnknown
	}
	switch {
	case bytes.HasPrefix(line, []byte("gfct")):
		return recTimeVar
	case bytes.HasPrefix(line, []byte("gfc ")):
		return recStatic
	case bytes.HasPrefix(line, []byte("trnd")):
		return recTrend
	case bytes.HasPrefix(line, []byte("acos")):
		return recACos
	case bytes.HasPrefix(line, []byte("asin")):
		return recASin
	default:
		return recUnknown
	}
}
