package icgem_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testHeader mimics a realistic ICGEM header block for a small
// degree-4 synthetic model.
const testHeader = `Synthetic gravity field model for reader tests.
Longtime model with trend and annual/semi-annual terms.

product_type           gravity_field
modelname              SYNTH2026
earth_gravity_constant 3.986004415E+14
radius                 6.378136300E+06
max_degree             4
errors                 formal
norm                   fully_normalized
tide_system            tide_free
end_of_head =================================================
`

// writeModel materializes a model file with the standard test header and
// the given data lines, returning its path.
func writeModel(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gfc")
	content := testHeader + strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// staticDeg2 is a complete static part for degree ≤ 2, degree-1 included.
var staticDeg2 = []string{
	"gfc    0    0  1.00000000000E+00  0.00000000000E+00",
	"gfc    1    0  1.00000000000E-01  0.00000000000E+00",
	"gfc    1    1  2.00000000000E-01  3.00000000000E-01",
	"gfc    2    0 -4.84165143790E-04  0.00000000000E+00",
	"gfc    2    1 -2.06615509074E-10  1.38441389137E-09",
	"gfc    2    2  2.43938357328E-06 -1.40027370385E-06",
}
