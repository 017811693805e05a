package icgem

import (
	"fmt"

	"github.com/geomodelling/icgem/coeffs"
)

// deg1Sentinel is planted at C(1,0) and C(1,1) before extraction starts.
// Some providers (e.g. EGM2008) omit the degree-1 records because they
// are nominally zero; if exactly those two pairs are missing at the end
// and both still carry the sentinel, the omission is the documented
// convention rather than corruption.
const deg1Sentinel = -999e0

// Extract re-scans the data section and writes the static ("gfc")
// coefficients with degree ≤ maxDegree and order ≤ maxOrder into store.
// Records of every other kind, gfct included, are skipped without error.
// Returns the number of coefficient pairs written, which on success
// equals coeffs.RequiredCount(maxDegree, maxOrder).
//
// Every gfc line must carry four well-formed fields (degree, order, Clm,
// Slm) even when it falls outside the requested window (ErrFieldParse
// otherwise). By format convention S(l,0) is zero; a nonzero value there
// is reported through opts.OnWarn, not treated as fatal. The caller must
// size store to cover maxDegree.
//
// Fails with ErrRange for an invalid window (maxOrder > maxDegree,
// maxDegree beyond the header's reported maximum, or beyond the store's
// capacity), ErrIncomplete when the section ends short of the window for
// any reason other than the degree-1 omission convention, and
// ErrNoDataSection / ErrLineTooLong / ErrIO as in Inspect.
func (m *Model) Extract(maxDegree, maxOrder int, store *coeffs.Store, opts *Options) (int, error) {
	if maxDegree < 0 || maxOrder < 0 || maxOrder > maxDegree {
		return 0, fmt.Errorf("window degree=%d order=%d: %w", maxDegree, maxOrder, ErrRange)
	}
	if m.MaxDegree > 0 && maxDegree > m.MaxDegree {
		return 0, fmt.Errorf("degree %d exceeds file maximum %d (%s): %w",
			maxDegree, m.MaxDegree, m.Path, ErrRange)
	}
	if store == nil || store.MaxDegree() < maxDegree {
		return 0, fmt.Errorf("store does not cover degree %d: %w", maxDegree, ErrRange)
	}

	f, sc, err := m.openData()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	// Plant the markers only when both degree-1 pairs fall inside the
	// window; a shortfall of two can then only mean those two.
	target := coeffs.RequiredCount(maxDegree, maxOrder)
	if maxDegree >= 1 && maxOrder >= 1 {
		_ = store.SetC(1, 0, deg1Sentinel)
		_ = store.SetC(1, 1, deg1Sentinel)
	}

	written := 0
	for written < target && sc.Scan() {
		line := sc.Bytes()
		if classify(line) != recStatic {
			continue
		}

		ll, mm, pos, scanErr := scanDegreeOrder(line)
		if scanErr != nil {
			return written, fmt.Errorf("%s: %w", m.Path, scanErr)
		}
		clm, pos, scanErr := scanFloat(line, pos)
		if scanErr != nil {
			return written, fmt.Errorf("%s: Clm: %w", m.Path, scanErr)
		}
		slm, _, scanErr := scanFloat(line, pos)
		if scanErr != nil {
			return written, fmt.Errorf("%s: Slm: %w", m.Path, scanErr)
		}

		// Out of the requested window: consumed, values discarded.
		if ll > maxDegree || mm > maxOrder {
			continue
		}

		if err = store.SetC(ll, mm, clm); err != nil {
			return written, fmt.Errorf("%s: line [%s]: %w", m.Path, line, err)
		}
		written++
		if mm == 0 {
			if slm != 0 {
				opts.warn("nonzero S(%d,0)=%g in %s; format requires zero", ll, slm, m.Path)
			}
			continue
		}
		if err = store.SetS(ll, mm, slm); err != nil {
			return written, fmt.Errorf("%s: line [%s]: %w", m.Path, line, err)
		}
	}
	if err = m.scanErr(sc); err != nil {
		return written, err
	}

	if written == target {
		return written, nil
	}
	if target-written == 2 && m.degree1Omitted(store) {
		_ = store.SetC(1, 0, 0)
		_ = store.SetC(1, 1, 0)
		opts.warn("C(1,0) and C(1,1) not written in %s; set to zero (provider convention)", m.Path)
		return target, nil
	}

	return written, fmt.Errorf("%s: read %d of %d coefficients before end of data: %w",
		m.Path, written, target, ErrIncomplete)
}

// degree1Omitted reports whether both degree-1 cosine slots still carry
// the pre-planted sentinel, i.e. no gfc record ever wrote them.
func (m *Model) degree1Omitted(store *coeffs.Store) bool {
	if store.MaxDegree() < 1 {
		return false
	}
	c10, _ := store.C(1, 0)
	c11, _ := store.C(1, 1)

	return c10 == deg1Sentinel && c11 == deg1Sentinel
}
