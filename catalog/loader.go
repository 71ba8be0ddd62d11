package catalog

import (
	"context"
	"sync"

	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/metrics"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader merges the five source catalogs into one normalized, immutable
// snapshot. The first call loads every catalog exactly once; concurrent
// callers arriving during an in-flight load wait for and share that load's
// result. Readers always see either the previous complete snapshot or the
// new one, never a partial catalog.
type Loader struct {
	logger logger.Logger
	source Source
	group  singleflight.Group

	mu       sync.RWMutex
	snapshot []SearchableItem
}

func NewLoader(logger logger.Logger, source Source) *Loader {
	return &Loader{
		logger: logger,
		source: source,
	}
}

// Items returns the normalized catalog snapshot, loading it on first use.
// The returned slice is shared: callers must not mutate it.
func (l *Loader) Items(ctx context.Context) ([]SearchableItem, error) {
	l.mu.RLock()
	snapshot := l.snapshot
	l.mu.RUnlock()
	if snapshot != nil {
		return snapshot, nil
	}

	value, err, _ := l.group.Do("load", func() (any, error) {
		items, err := l.loadAll(ctx)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.snapshot = items
		l.mu.Unlock()

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]SearchableItem), nil
}

// Invalidate drops the current snapshot so the next Items call reloads every
// catalog. In-flight readers keep the snapshot they already hold.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.snapshot = nil
	l.mu.Unlock()
}

// Reload invalidates and reloads the catalog in one step.
func (l *Loader) Reload(ctx context.Context) error {
	l.Invalidate()
	_, err := l.Items(ctx)
	return err
}

// loadAll fetches the five catalogs in parallel and concatenates them in
// canonical type order so the merged order is deterministic regardless of
// which source finishes first. Any single source failure fails the whole
// load.
func (l *Loader) loadAll(ctx context.Context) ([]SearchableItem, error) {
	byType := make(map[ItemType][]SearchableItem, len(AllTypes()))
	var mu sync.Mutex

	store := func(itemType ItemType, items []SearchableItem, err error) error {
		if err != nil {
			return &LoadError{Source: itemType, Err: err}
		}
		mu.Lock()
		byType[itemType] = items
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lodgings, err := l.source.Lodgings(gctx)
		return store(TypeLodging, normalizeAll(lodgings, normalizeLodging), err)
	})
	g.Go(func() error {
		dinings, err := l.source.Dinings(gctx)
		return store(TypeDining, normalizeAll(dinings, normalizeDining), err)
	})
	g.Go(func() error {
		tours, err := l.source.Tours(gctx)
		return store(TypeTour, normalizeAll(tours, normalizeTour), err)
	})
	g.Go(func() error {
		transports, err := l.source.Transports(gctx)
		return store(TypeTransport, normalizeAll(transports, normalizeTransport), err)
	})
	g.Go(func() error {
		attractions, err := l.source.Attractions(gctx)
		return store(TypeAttraction, normalizeAll(attractions, normalizeAttraction), err)
	})

	if err := g.Wait(); err != nil {
		l.logger.Error("catalog load failed", "err", err.Error())
		return nil, err
	}

	var merged []SearchableItem
	for _, itemType := range AllTypes() {
		merged = append(merged, byType[itemType]...)
	}
	if merged == nil {
		merged = []SearchableItem{}
	}

	metrics.CatalogItems.Set(float64(len(merged)))
	l.logger.Info("catalog loaded", "items", len(merged))
	return merged, nil
}

func normalizeAll[T any](items []T, normalize func(T) SearchableItem) []SearchableItem {
	out := make([]SearchableItem, 0, len(items))
	for _, item := range items {
		out = append(out, normalize(item))
	}
	return out
}
