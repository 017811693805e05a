package icgem

import (
	"fmt"

	"github.com/geomodelling/icgem/coeffs"
)

// ParseModel reads the gravity-field model at path and fills store with
// its static coefficients up to the requested degree and order: header
// pass, inspection pass, range validation, store resize, extraction.
//
// The requested degree must not exceed the file's maximum and order must
// not exceed degree (ErrRange). The store is resized to cover degree, so
// any previous contents are discarded. Denormalization is the caller's
// concern.
//
// Returns the populated Model so header metadata, bounds and the period
// catalog remain available to the caller.
func ParseModel(path string, degree, order int, store *coeffs.Store, opts *Options) (*Model, error) {
	m := Open(path)
	if err := m.ParseHeader(); err != nil {
		return nil, err
	}
	if _, _, err := m.Inspect(opts); err != nil {
		return nil, err
	}

	if degree > m.Degree() || order > degree {
		return nil, fmt.Errorf("degree/order %d/%d for model %s (max degree %d): %w",
			degree, order, path, m.Degree(), ErrRange)
	}

	if store == nil {
		return nil, fmt.Errorf("nil store: %w", ErrRange)
	}
	if err := store.Resize(degree); err != nil {
		return nil, err
	}

	if _, err := m.Extract(degree, order, store, opts); err != nil {
		return nil, err
	}

	return m, nil
}
