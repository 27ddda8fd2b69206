// ABOUTME: Error values for catalog availability and model lookup failures
// ABOUTME: Callers distinguish unreachable-source from unknown-model via errors.Is

package catalog

import (
	"errors"
)

var (
	// ErrCatalogUnavailable is returned when the external data source is
	// unreachable and no cached snapshot exists to fall back on.
	ErrCatalogUnavailable = errors.New("model catalog unavailable")

	// ErrModelNotFound is returned by lookups and cost estimation against a
	// model id the catalog does not contain.
	ErrModelNotFound = errors.New("model not found in catalog")
)
