package coeffs_test

import (
	"testing"

	"github.com/geomodelling/icgem/coeffs"
)

// BenchmarkRequiredCount measures the clipped-window sum at a realistic
// model size (EGM2008-scale degree).
func BenchmarkRequiredCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = coeffs.RequiredCount(2190, 2159)
	}
}

// BenchmarkStoreSetC measures the indexed write path.
func BenchmarkStoreSetC(b *testing.B) {
	st, err := coeffs.NewStore(180)
	if err != nil {
		b.Fatalf("NewStore failed: %v", err)
	}
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err = st.SetC(120, 60, 1e-9); err != nil {
			b.Fatalf("SetC failed: %v", err)
		}
	}
}
