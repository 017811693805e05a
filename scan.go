package icgem

import (
	"fmt"
	"strconv"
)

// Numeric field scanning shared by every pass. Both scans of a file must
// apply identical tolerance rules, so all field parsing funnels through
// scanInt/scanFloat.
//
// A field is one whitespace-delimited token holding a signed integer or a
// signed decimal float with an optional 'E'/'e' exponent. Legacy Fortran
// 'D'-exponent literals are rejected; no confirmed sample file uses them.

// skipSpace advances pos past spaces and tabs.
func skipSpace(line []byte, pos int) int {
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
		pos++
	}

	return pos
}

// nextToken isolates the whitespace-delimited token starting at pos
// (after skipping leading blanks). Returns the token and the position
// immediately following it. An empty token means the line is exhausted.
func nextToken(line []byte, pos int) (string, int) {
	start := skipSpace(line, pos)
	end := start
	for end < len(line) && line[end] != ' ' && line[end] != '\t' {
		end++
	}

	return string(line[start:end]), end
}

// scanInt consumes one signed integer field from line at pos.
// Returns the value and the position following the consumed token.
// An empty or malformed token is ErrFieldParse, carrying the line.
func scanInt(line []byte, pos int) (int, int, error) {
	tok, end := nextToken(line, pos)
	if tok == "" {
		return 0, pos, fmt.Errorf("empty integer field in line [%s]: %w", line, ErrFieldParse)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, pos, fmt.Errorf("integer field %q in line [%s]: %w", tok, line, ErrFieldParse)
	}

	return v, end, nil
}

// scanFloat consumes one signed floating-point field from line at pos.
// Returns the value and the position following the consumed token.
// An empty or malformed token is ErrFieldParse, carrying the line.
func scanFloat(line []byte, pos int) (float64, int, error) {
	tok, end := nextToken(line, pos)
	if tok == "" {
		return 0, pos, fmt.Errorf("empty float field in line [%s]: %w", line, ErrFieldParse)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, pos, fmt.Errorf("float field %q in line [%s]: %w", tok, line, ErrFieldParse)
	}

	return v, end, nil
}

// scanDegreeOrder reads the two leading integer fields (degree, order)
// following the record tag.
func scanDegreeOrder(line []byte) (ll, mm, pos int, err error) {
	ll, pos, err = scanInt(line, tagLen)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("degree: %w", err)
	}
	mm, pos, err = scanInt(line, pos)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("order: %w", err)
	}

	return ll, mm, pos, nil
}
