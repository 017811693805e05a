package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomodelling/icgem"
	"github.com/geomodelling/icgem/coeffs"
)

const testModel = `product_type           gravity_field
modelname              SYNTH2026
earth_gravity_constant 3.986004415E+14
radius                 6.378136300E+06
max_degree             2
end_of_head
gfc    0    0  1.00000000000E+00  0.00000000000E+00
gfc    1    0  1.00000000000E-01  0.00000000000E+00
gfc    1    1  2.00000000000E-01  3.00000000000E-01
gfc    2    0 -4.84165143790E-04  0.00000000000E+00
gfc    2    1 -2.06615509074E-10  1.38441389137E-09
gfc    2    2  2.43938357328E-06 -1.40027370385E-06
`

// TestWriteDB extracts a small model and checks the exported tables.
func TestWriteDB(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "model.gfc")
	require.NoError(t, os.WriteFile(src, []byte(testModel), 0o644))

	store, err := coeffs.NewStore(2)
	require.NoError(t, err)
	m, err := icgem.ParseModel(src, 2, 2, store, nil)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.db")
	require.NoError(t, writeDB(out, m, store, 2, 2))

	db, err := sql.Open("sqlite", out)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM coefficients`).Scan(&n))
	assert.Equal(t, coeffs.RequiredCount(2, 2), n)

	var c, s float64
	require.NoError(t, db.QueryRow(
		`SELECT c, s FROM coefficients WHERE l = 2 AND m = 1`).Scan(&c, &s))
	assert.Equal(t, -2.06615509074e-10, c)
	assert.Equal(t, 1.38441389137e-09, s)

	var name string
	var gm float64
	require.NoError(t, db.QueryRow(`SELECT name, gm FROM model`).Scan(&name, &gm))
	assert.Equal(t, "SYNTH2026", name)
	assert.Equal(t, 3.986004415e+14, gm)
}
