// Package icgem: shared types and options for the ICGEM reader.
package icgem

import "fmt"

// MaxDataLine is the maximum length of one data-section record in bytes,
// per the ICGEM format description
// (http://icgem.gfz-potsdam.de/ICGEM-Format-2011.pdf).
const MaxDataLine = 512

// Bounds holds the degree/order extent of a model's data section, split
// into the static ("gfc") and time-variable ("gfct") parts.
//
// Start fields record the first nonzero degree/order observed — by
// convention degree/order 0 does not establish a start. Stop fields
// record the running maximum, zero included.
type Bounds struct {
	DegreeStaticStart, DegreeStaticStop int
	OrderStaticStart, OrderStaticStop   int
	DegreeTvStart, DegreeTvStop         int
	OrderTvStart, OrderTvStop           int
}

// noteStatic folds one static record's (degree, order) into the bounds.
func (b *Bounds) noteStatic(ll, mm int) {
	if b.DegreeStaticStart == 0 && ll != 0 {
		b.DegreeStaticStart = ll
	}
	if ll > b.DegreeStaticStop {
		b.DegreeStaticStop = ll
	}
	if b.OrderStaticStart == 0 && mm != 0 {
		b.OrderStaticStart = mm
	}
	if mm > b.OrderStaticStop {
		b.OrderStaticStop = mm
	}
}

// noteTimeVar folds one time-variable record's (degree, order) into the bounds.
func (b *Bounds) noteTimeVar(ll, mm int) {
	if b.DegreeTvStart == 0 && ll != 0 {
		b.DegreeTvStart = ll
	}
	if ll > b.DegreeTvStop {
		b.DegreeTvStop = ll
	}
	if b.OrderTvStart == 0 && mm != 0 {
		b.OrderTvStart = mm
	}
	if mm > b.OrderTvStop {
		b.OrderTvStop = mm
	}
}

// Options holds optional hooks customizing pass behavior.
// A nil *Options is valid and behaves like DefaultOptions().
type Options struct {
	// OnWarn receives non-fatal diagnostics: skipped unknown records,
	// a nonzero S(l,0) value, and the implicit degree-1 note.
	// When nil, warnings are discarded.
	OnWarn func(msg string)
}

// DefaultOptions returns Options with no warning hook installed.
func DefaultOptions() Options {
	return Options{}
}

// warn formats and delivers one diagnostic; safe on a nil receiver.
func (o *Options) warn(format string, args ...any) {
	if o == nil || o.OnWarn == nil {
		return
	}
	o.OnWarn(fmt.Sprintf(format, args...))
}
