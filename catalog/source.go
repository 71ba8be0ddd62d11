package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrCatalogLoad matches any *LoadError via errors.Is.
var ErrCatalogLoad = errors.New("catalog load failed")

// LoadError reports that one source catalog could not be loaded. A failed
// load is fatal for the whole catalog: the engine has no partial-catalog
// mode, so callers should treat this as service-unavailable until an
// explicit reload succeeds.
type LoadError struct {
	Source ItemType
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s catalog: %v", e.Source, e.Err)
}

func (e *LoadError) Is(target error) bool {
	return target == ErrCatalogLoad
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source supplies the raw per-type collections. Sources are owned by their
// collaborators and read-only to the engine; a Source implementation must be
// safe for concurrent calls since the loader fetches all five catalogs in
// parallel.
type Source interface {
	Lodgings(ctx context.Context) ([]Lodging, error)
	Dinings(ctx context.Context) ([]Dining, error)
	Tours(ctx context.Context) ([]Tour, error)
	Transports(ctx context.Context) ([]Transport, error)
	Attractions(ctx context.Context) ([]Attraction, error)
}
