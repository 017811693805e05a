package icgem

import "fmt"

// periodFields is the number of numeric fields following (degree, order)
// on an acos/asin record: amplitude-cosine, amplitude-sine, their two
// sigmas, time-span start, time-span end, and the period in years. Only
// the last one, the period, is retained.
const periodFields = 7

// tvgUnset is the sentinel degree/order of the TVG cursor before any
// gfct record has been read.
const tvgUnset = -1

// periodCatalog is the insertion-ordered set of distinct harmonic
// periods (years) declared by (1,0) periodic records. The format writes
// periods with fixed textual precision, so membership is exact equality.
type periodCatalog []float64

// contains reports whether period is already declared.
func (p periodCatalog) contains(period float64) bool {
	for _, v := range p {
		if v == period {
			return true
		}
	}

	return false
}

// add declares period if absent; idempotent.
func (p *periodCatalog) add(period float64) {
	if !p.contains(period) {
		*p = append(*p, period)
	}
}

// Inspect performs one full sequential scan of the data section and
// reports the static and time-variable degree/order bounds plus the
// catalog of periodic-term periods. No coefficients are stored.
//
// The scan validates the cross-record structure of the TVG part: every
// trnd/acos/asin record must carry the same (degree, order) as the most
// recent gfct record (ErrConsistency), and every periodic record outside
// (1,0) must reference a period already declared by a (1,0) record
// (ErrCatalog). Unrecognized lines are reported through opts.OnWarn and
// skipped.
//
// All scan state is local to the call: running Inspect twice on an
// untouched file yields identical results. On success the bounds and
// periods are also recorded on the Model for Degree/Order and the
// ParseModel driver.
//
// Requires ParseHeader to have located the data section
// (ErrNoDataSection otherwise). A line over MaxDataLine bytes is
// ErrLineTooLong; any other non-EOF stream failure is ErrIO.
func (m *Model) Inspect(opts *Options) (Bounds, []float64, error) {
	f, sc, err := m.openData()
	if err != nil {
		return Bounds{}, nil, err
	}
	defer f.Close()

	var b Bounds
	tvDeg, tvOrd := tvgUnset, tvgUnset
	catalog := make(periodCatalog, 0, 4)

	for sc.Scan() {
		line := sc.Bytes()
		switch classify(line) {
		case recStatic:
			ll, mm, _, scanErr := scanDegreeOrder(line)
			if scanErr != nil {
				return Bounds{}, nil, fmt.Errorf("%s: %w", m.Path, scanErr)
			}
			b.noteStatic(ll, mm)

		case recTimeVar:
			ll, mm, _, scanErr := scanDegreeOrder(line)
			if scanErr != nil {
				return Bounds{}, nil, fmt.Errorf("%s: %w", m.Path, scanErr)
			}
			b.noteTimeVar(ll, mm)
			// This gfct term is the reference for the trnd/acos/asin
			// records that follow, until the next gfct.
			tvDeg, tvOrd = ll, mm

		case recTrend:
			ll, mm, _, scanErr := scanDegreeOrder(line)
			if scanErr != nil {
				return Bounds{}, nil, fmt.Errorf("%s: %w", m.Path, scanErr)
			}
			if ll != tvDeg || mm != tvOrd {
				return Bounds{}, nil, fmt.Errorf(
					"%s: trnd record at %d/%d, current TVG term %d/%d: %w",
					m.Path, ll, mm, tvDeg, tvOrd, ErrConsistency)
			}

		case recACos, recASin:
			if err = m.inspectPeriodic(line, tvDeg, tvOrd, &catalog); err != nil {
				return Bounds{}, nil, err
			}

		default:
			opts.warn("ICGEM line skipped: %q (file %s)", line, m.Path)
		}
	}
	if err = m.scanErr(sc); err != nil {
		return Bounds{}, nil, err
	}

	m.Bounds = b
	m.Periods = append([]float64(nil), catalog...)

	return b, m.Periods, nil
}

// inspectPeriodic handles one acos/asin record: parse (degree, order)
// and the periodFields trailing values, validate against the active TVG
// term, then resolve the period against the catalog. Only (1,0) records
// may declare new periods; everyone else must reference a known one.
func (m *Model) inspectPeriodic(line []byte, tvDeg, tvOrd int, catalog *periodCatalog) error {
	ll, mm, pos, err := scanDegreeOrder(line)
	if err != nil {
		return fmt.Errorf("%s: %w", m.Path, err)
	}

	var period float64
	for i := 0; i < periodFields; i++ {
		if period, pos, err = scanFloat(line, pos); err != nil {
			return fmt.Errorf("%s: periodic field %d: %w", m.Path, i+1, err)
		}
	}

	if ll != tvDeg || mm != tvOrd {
		return fmt.Errorf("%s: periodic record at %d/%d, current TVG term %d/%d: %w",
			m.Path, ll, mm, tvDeg, tvOrd, ErrConsistency)
	}

	if ll == 1 && mm == 0 {
		catalog.add(period)
		return nil
	}
	if !catalog.contains(period) {
		return fmt.Errorf("%s: period %.3f/year not declared, line [%s]: %w",
			m.Path, period, line, ErrCatalog)
	}

	return nil
}
