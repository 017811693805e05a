package icgem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header keywords recognized by ParseHeader. Keys outside this set are
// part of the free-form preamble and are skipped without complaint.
const (
	keyProductType = "product_type"
	keyModelName   = "modelname"
	keyGM          = "earth_gravity_constant"
	keyRadius      = "radius"
	keyMaxDegree   = "max_degree"
	keyErrors      = "errors"
	keyNorm        = "norm"
	keyTideSystem  = "tide_system"
	keyEndOfHead   = "end_of_head"
)

// ParseHeader reads the free-form header block of the model file up to
// the end_of_head marker, assigning the recognized key/value entries and
// recording the byte offset of the first data line.
//
// Returns ErrIO when the file cannot be opened or read, ErrFieldParse
// for a numeric header value that does not parse, and ErrNoEndOfHead
// when the stream ends without the marker.
func (m *Model) ParseHeader() error {
	f, err := os.Open(m.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", m.Path, ErrIO)
	}
	defer f.Close()

	// Track the exact byte offset line by line; bufio.Scanner would hide
	// the delimiter lengths.
	r := bufio.NewReader(f)
	var offset int64
	for {
		line, rdErr := r.ReadString('\n')
		offset += int64(len(line))

		if fields := strings.Fields(line); len(fields) > 0 {
			if fields[0] == keyEndOfHead {
				m.dataStart = offset
				return nil
			}
			if err = m.assignHeaderField(fields); err != nil {
				return err
			}
		}

		if rdErr == io.EOF {
			break
		}
		if rdErr != nil {
			return fmt.Errorf("read %s: %v: %w", m.Path, rdErr, ErrIO)
		}
	}

	return fmt.Errorf("%s: %w", m.Path, ErrNoEndOfHead)
}

// assignHeaderField assigns one whitespace-split header line to the
// matching Model field. Lines with a known key but no value, and values
// that fail numeric parsing, are ErrFieldParse.
func (m *Model) assignHeaderField(fields []string) error {
	key := fields[0]
	switch key {
	case keyProductType, keyModelName, keyGM, keyRadius, keyMaxDegree,
		keyErrors, keyNorm, keyTideSystem:
		// recognized; value required
	default:
		return nil
	}
	if len(fields) < 2 {
		return fmt.Errorf("header key %q has no value in %s: %w", key, m.Path, ErrFieldParse)
	}
	val := fields[1]

	var err error
	switch key {
	case keyProductType:
		m.ProductType = val
	case keyModelName:
		m.ModelName = val
	case keyGM:
		if m.GM, err = strconv.ParseFloat(val, 64); err != nil {
			return fmt.Errorf("header %s %q in %s: %w", key, val, m.Path, ErrFieldParse)
		}
	case keyRadius:
		if m.Radius, err = strconv.ParseFloat(val, 64); err != nil {
			return fmt.Errorf("header %s %q in %s: %w", key, val, m.Path, ErrFieldParse)
		}
	case keyMaxDegree:
		if m.MaxDegree, err = strconv.Atoi(val); err != nil {
			return fmt.Errorf("header %s %q in %s: %w", key, val, m.Path, ErrFieldParse)
		}
	case keyErrors:
		m.Errors = val
	case keyNorm:
		m.Norm = val
	case keyTideSystem:
		m.TideSystem = val
	}

	return nil
}
