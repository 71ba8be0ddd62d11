package catalog

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vivuhq/vivu/logger"
)

// stubSource serves fixed collections and counts how many full loads the
// loader triggers.
type stubSource struct {
	loads   atomic.Int64
	delay   time.Duration
	failing ItemType

	lodgings    []Lodging
	dinings     []Dining
	tours       []Tour
	transports  []Transport
	attractions []Attraction
}

var errSourceDown = errors.New("source down")

func (s *stubSource) enter(itemType ItemType) error {
	if itemType == TypeLodging {
		s.loads.Add(1)
	}
	time.Sleep(s.delay)
	if s.failing == itemType {
		return errSourceDown
	}
	return nil
}

func (s *stubSource) Lodgings(ctx context.Context) ([]Lodging, error) {
	if err := s.enter(TypeLodging); err != nil {
		return nil, err
	}
	return s.lodgings, nil
}

func (s *stubSource) Dinings(ctx context.Context) ([]Dining, error) {
	if err := s.enter(TypeDining); err != nil {
		return nil, err
	}
	return s.dinings, nil
}

func (s *stubSource) Tours(ctx context.Context) ([]Tour, error) {
	if err := s.enter(TypeTour); err != nil {
		return nil, err
	}
	return s.tours, nil
}

func (s *stubSource) Transports(ctx context.Context) ([]Transport, error) {
	if err := s.enter(TypeTransport); err != nil {
		return nil, err
	}
	return s.transports, nil
}

func (s *stubSource) Attractions(ctx context.Context) ([]Attraction, error) {
	if err := s.enter(TypeAttraction); err != nil {
		return nil, err
	}
	return s.attractions, nil
}

func newTestLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard)
}

func TestLoaderLoadsOnceAndMergesInTypeOrder(t *testing.T) {
	assert := require.New(t)

	source := &stubSource{
		lodgings:    []Lodging{{ID: "ls-01", Name: "Homestay"}},
		dinings:     []Dining{{ID: "dn-01", Name: "Quán"}},
		tours:       []Tour{{ID: "tr-01", Name: "Trek"}},
		transports:  []Transport{{ID: "tp-01", Name: "Bus"}},
		attractions: []Attraction{{ID: "at-01", Name: "Ridge"}},
	}
	loader := NewLoader(newTestLogger(), source)

	items, err := loader.Items(context.Background())
	assert.NoError(err)
	assert.Len(items, 5)

	types := make([]ItemType, 0, len(items))
	for _, item := range items {
		types = append(types, item.Type)
	}
	assert.Equal(AllTypes(), types)

	// Second call must serve the snapshot, not reload.
	_, err = loader.Items(context.Background())
	assert.NoError(err)
	assert.EqualValues(1, source.loads.Load())
}

func TestLoaderSingleFlightUnderConcurrentCallers(t *testing.T) {
	assert := require.New(t)

	source := &stubSource{
		delay:    20 * time.Millisecond,
		lodgings: []Lodging{{ID: "ls-01", Name: "Homestay"}},
	}
	loader := NewLoader(newTestLogger(), source)

	const callers = 16
	var wg sync.WaitGroup
	results := make([][]SearchableItem, callers)
	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = loader.Items(context.Background())
		}()
	}
	wg.Wait()

	for i := range callers {
		assert.NoError(errs[i])
		assert.Len(results[i], 1)
	}
	assert.EqualValues(1, source.loads.Load(), "concurrent callers must share one load")
}

func TestLoaderFailureIsFatalAndNamesTheSource(t *testing.T) {
	assert := require.New(t)

	source := &stubSource{
		failing:  TypeDining,
		lodgings: []Lodging{{ID: "ls-01"}},
	}
	loader := NewLoader(newTestLogger(), source)

	items, err := loader.Items(context.Background())
	assert.Nil(items, "no partial catalog on failure")
	assert.ErrorIs(err, ErrCatalogLoad)

	var loadErr *LoadError
	assert.ErrorAs(err, &loadErr)
	assert.Equal(TypeDining, loadErr.Source)
	assert.ErrorIs(err, errSourceDown)
}

func TestLoaderInvalidateForcesReload(t *testing.T) {
	assert := require.New(t)

	source := &stubSource{lodgings: []Lodging{{ID: "ls-01"}}}
	loader := NewLoader(newTestLogger(), source)

	_, err := loader.Items(context.Background())
	assert.NoError(err)

	loader.Invalidate()
	_, err = loader.Items(context.Background())
	assert.NoError(err)
	assert.EqualValues(2, source.loads.Load())
}

func TestLoaderReloadRecoversAfterFailure(t *testing.T) {
	assert := require.New(t)

	source := &stubSource{failing: TypeTour}
	loader := NewLoader(newTestLogger(), source)

	assert.Error(loader.Reload(context.Background()))

	source.failing = ""
	assert.NoError(loader.Reload(context.Background()))

	items, err := loader.Items(context.Background())
	assert.NoError(err)
	assert.NotNil(items)
}
