package icgem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Model wraps one ICGEM gravity-field file: the header metadata, the
// byte offset where the data section begins, and — once Inspect has
// run — the degree/order bounds and periodic-term catalog of the data
// section.
//
// A Model is not safe for concurrent use; distinct Models over distinct
// files share no state and may be used in parallel.
type Model struct {
	// Path is the location of the ICGEM file.
	Path string

	// Header metadata, populated by ParseHeader.
	ProductType string
	ModelName   string
	TideSystem  string // defaults to "unknown" when absent
	Norm        string // defaults to "fully_normalized" when absent
	Errors      string
	GM          float64 // earth_gravity_constant [m³/s²]
	Radius      float64 // reference radius [m]
	MaxDegree   int     // max_degree header entry

	// Bounds and Periods hold the results of the latest Inspect call.
	Bounds  Bounds
	Periods []float64

	// dataStart is the byte offset of the first data-section line;
	// zero means the header has not been parsed yet.
	dataStart int64
}

// Open wraps path in a Model with the format's documented defaults.
// No I/O happens until ParseHeader.
func Open(path string) *Model {
	return &Model{
		Path:       path,
		TideSystem: "unknown",
		Norm:       "fully_normalized",
	}
}

// Degree returns the maximum degree carried by the file: the larger of
// the static and time-variable stops once Inspect has run, falling back
// to the header's max_degree entry.
func (m *Model) Degree() int {
	if d := max(m.Bounds.DegreeStaticStop, m.Bounds.DegreeTvStop); d > 0 {
		return d
	}

	return m.MaxDegree
}

// Order returns the maximum order carried by the file, the larger of the
// static and time-variable stops.
func (m *Model) Order() int {
	return max(m.Bounds.OrderStaticStop, m.Bounds.OrderTvStop)
}

// EarthRadius returns the model's reference radius in meters.
func (m *Model) EarthRadius() float64 { return m.Radius }

// IsNormalized reports whether the coefficients are fully normalized.
func (m *Model) IsNormalized() bool { return m.Norm == "fully_normalized" }

// openData opens a fresh handle on the model file, seeks to the data
// section, and wraps it in a line scanner capped at MaxDataLine bytes.
// Each pass owns its own handle; the seek position is never shared.
func (m *Model) openData() (*os.File, *bufio.Scanner, error) {
	if m.dataStart == 0 {
		return nil, nil, fmt.Errorf("%s: %w", m.Path, ErrNoDataSection)
	}
	f, err := os.Open(m.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", m.Path, ErrIO)
	}
	if _, err = f.Seek(m.dataStart, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("seek %s to %d: %w", m.Path, m.dataStart, ErrIO)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, MaxDataLine), MaxDataLine)

	return f, sc, nil
}

// scanErr maps a scanner's terminal state onto the package taxonomy:
// nil at a clean end-of-file, ErrLineTooLong for an over-long record,
// ErrIO for anything else.
func (m *Model) scanErr(sc *bufio.Scanner) error {
	err := sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return fmt.Errorf("%s: line over %d bytes: %w", m.Path, MaxDataLine, ErrLineTooLong)
	default:
		return fmt.Errorf("%s: %v: %w", m.Path, err, ErrIO)
	}
}
