package icgem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomodelling/icgem"
	"github.com/geomodelling/icgem/coeffs"
)

// extractReady writes a model, runs the header pass, and allocates a
// store covering maxDegree.
func extractReady(t *testing.T, maxDegree int, lines ...string) (*icgem.Model, *coeffs.Store) {
	t.Helper()
	m := icgem.Open(writeModel(t, lines...))
	require.NoError(t, m.ParseHeader())
	st, err := coeffs.NewStore(maxDegree)
	require.NoError(t, err)

	return m, st
}

// TestExtract_FullWindow reads a complete degree-2 static section and
// checks the written count and a few stored values.
func TestExtract_FullWindow(t *testing.T) {
	m, st := extractReady(t, 2, staticDeg2...)

	n, err := m.Extract(2, 2, st, nil)
	require.NoError(t, err)
	assert.Equal(t, coeffs.RequiredCount(2, 2), n, "written count equals the window size")

	c00, _ := st.C(0, 0)
	assert.Equal(t, 1.0, c00)
	c11, _ := st.C(1, 1)
	assert.Equal(t, 0.2, c11)
	s11, _ := st.S(1, 1)
	assert.Equal(t, 0.3, s11)
	c22, _ := st.C(2, 2)
	assert.Equal(t, 2.43938357328e-06, c22)
	s20, _ := st.S(2, 0)
	assert.Zero(t, s20, "S(l,0) slots stay zero")
}

// TestExtract_SmallWindow truncates the same section at degree 1, order 1
// and expects exactly three pairs.
func TestExtract_SmallWindow(t *testing.T) {
	m, st := extractReady(t, 1, staticDeg2...)

	n, err := m.Extract(1, 1, st, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "(0,0), (1,0), (1,1)")
}

// TestExtract_OrderClipped verifies an order-limited window skips the
// higher-order records without consuming them as coefficients.
func TestExtract_OrderClipped(t *testing.T) {
	m, st := extractReady(t, 2, staticDeg2...)

	n, err := m.Extract(2, 0, st, nil)
	require.NoError(t, err)
	assert.Equal(t, coeffs.RequiredCount(2, 0), n)

	c20, _ := st.C(2, 0)
	assert.Equal(t, -4.8416514379e-04, c20)
	s21, _ := st.S(2, 1)
	assert.Zero(t, s21, "out-of-window order must not be stored")
}

// TestExtract_SkipsNonStatic confirms gfct/trnd/acos/asin and unknown
// lines interleaved with the static part are ignored by extraction.
func TestExtract_SkipsNonStatic(t *testing.T) {
	lines := append(append([]string{}, tvgBlock...), "# comment")
	lines = append(lines, staticDeg2...)
	m, st := extractReady(t, 2, lines...)

	n, err := m.Extract(2, 2, st, nil)
	require.NoError(t, err)
	assert.Equal(t, coeffs.RequiredCount(2, 2), n)
}

// TestExtract_Degree1Omission reproduces the provider convention of
// leaving out the nominally-zero degree-1 records: extraction succeeds
// and zero-fills C(1,0), C(1,1).
func TestExtract_Degree1Omission(t *testing.T) {
	lines := []string{
		"gfc    0    0  1.00000000000E+00  0.00000000000E+00",
		"gfc    2    0 -4.84165143790E-04  0.00000000000E+00",
		"gfc    2    1 -2.06615509074E-10  1.38441389137E-09",
		"gfc    2    2  2.43938357328E-06 -1.40027370385E-06",
	}
	m, st := extractReady(t, 2, lines...)

	var notes []string
	opts := icgem.Options{OnWarn: func(msg string) { notes = append(notes, msg) }}
	n, err := m.Extract(2, 2, st, &opts)
	require.NoError(t, err, "the degree-1 shortfall is a convention, not corruption")
	assert.Equal(t, coeffs.RequiredCount(2, 2), n)

	c10, _ := st.C(1, 0)
	c11, _ := st.C(1, 1)
	assert.Zero(t, c10)
	assert.Zero(t, c11)
	assert.NotEmpty(t, notes, "the zero-fill is announced")
}

// TestExtract_Incomplete checks that any other shortfall is fatal and
// reports written/target.
func TestExtract_Incomplete(t *testing.T) {
	lines := []string{
		"gfc    0    0  1.00000000000E+00  0.00000000000E+00",
		"gfc    1    0  1.00000000000E-01  0.00000000000E+00",
		"gfc    1    1  2.00000000000E-01  3.00000000000E-01",
	}
	m, st := extractReady(t, 2, lines...)

	_, err := m.Extract(2, 2, st, nil)
	assert.ErrorIs(t, err, icgem.ErrIncomplete)
	assert.Contains(t, err.Error(), "3 of 6")
}

// TestExtract_NonzeroS0Warns verifies the S(l,0) convention violation is
// a warning, never a crash or an error.
func TestExtract_NonzeroS0Warns(t *testing.T) {
	m, st := extractReady(t, 0, "gfc    0    0  1.00000000000E+00  5.00000000000E-01")

	var warned []string
	opts := icgem.Options{OnWarn: func(msg string) { warned = append(warned, msg) }}
	n, err := m.Extract(0, 0, st, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, warned, 1)
	assert.Contains(t, warned[0], "S(0,0)")
}

// TestExtract_MalformedStatic checks that a gfc line with fewer than four
// well-formed fields is fatal even though its prefix matched.
func TestExtract_MalformedStatic(t *testing.T) {
	m, st := extractReady(t, 2, "gfc    2    0 -4.84E-04")

	_, err := m.Extract(2, 2, st, nil)
	assert.ErrorIs(t, err, icgem.ErrFieldParse)
}

// TestExtract_RangeChecks covers every ErrRange trigger.
func TestExtract_RangeChecks(t *testing.T) {
	m, st := extractReady(t, 2, staticDeg2...)

	_, err := m.Extract(1, 2, st, nil)
	assert.ErrorIs(t, err, icgem.ErrRange, "order above degree")
	_, err = m.Extract(-1, 0, st, nil)
	assert.ErrorIs(t, err, icgem.ErrRange, "negative degree")
	_, err = m.Extract(9, 0, st, nil)
	assert.ErrorIs(t, err, icgem.ErrRange, "degree beyond the file's reported maximum")
	_, err = m.Extract(2, 2, nil, nil)
	assert.ErrorIs(t, err, icgem.ErrRange, "nil store")

	small, err := coeffs.NewStore(1)
	require.NoError(t, err)
	_, err = m.Extract(2, 2, small, nil)
	assert.ErrorIs(t, err, icgem.ErrRange, "store smaller than the window")
}

// TestExtract_BeforeHeader verifies the sequencing precondition.
func TestExtract_BeforeHeader(t *testing.T) {
	m := icgem.Open(writeModel(t, staticDeg2...))
	st, err := coeffs.NewStore(2)
	require.NoError(t, err)
	_, err = m.Extract(2, 2, st, nil)
	assert.ErrorIs(t, err, icgem.ErrNoDataSection)
}
