package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vivuhq/vivu/logger"
	bolt "go.etcd.io/bbolt"
)

// BoltSource reads each catalog from a bolt database with one bucket per
// catalog type. Collaborators (or cmd/seeder) write the buckets; the engine
// only ever reads them. Items come back in key order, which keeps the merged
// catalog order deterministic across loads.
type BoltSource struct {
	store  *bolt.DB
	logger logger.Logger
}

func NewBoltSource(logger logger.Logger, dbPath string) (*BoltSource, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.Error("failed to create catalog database directory", "err", err.Error(), "path", dbPath)
		return nil, fmt.Errorf("failed to create catalog database directory: %w", err)
	}

	store, err := bolt.Open(dbPath, 0600, &bolt.Options{
		Timeout:  1 * time.Second,
		ReadOnly: false,
	})
	if err != nil {
		logger.Error("failed to open catalog database", "err", err.Error(), "path", dbPath)
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	return &BoltSource{store: store, logger: logger}, nil
}

func (s *BoltSource) Lodgings(ctx context.Context) ([]Lodging, error) {
	return readCatalogBucket[Lodging](ctx, s, TypeLodging)
}

func (s *BoltSource) Dinings(ctx context.Context) ([]Dining, error) {
	return readCatalogBucket[Dining](ctx, s, TypeDining)
}

func (s *BoltSource) Tours(ctx context.Context) ([]Tour, error) {
	return readCatalogBucket[Tour](ctx, s, TypeTour)
}

func (s *BoltSource) Transports(ctx context.Context) ([]Transport, error) {
	return readCatalogBucket[Transport](ctx, s, TypeTransport)
}

func (s *BoltSource) Attractions(ctx context.Context) ([]Attraction, error) {
	return readCatalogBucket[Attraction](ctx, s, TypeAttraction)
}

func (s *BoltSource) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// Seed replaces the bucket for itemType with the given raw records, keyed by
// the provided id. Used by cmd/seeder to provision the database; the engine
// itself never writes.
func Seed[T any](s *BoltSource, itemType ItemType, items []T, id func(T) string) error {
	return s.store.Update(func(tx *bolt.Tx) error {
		if bucket := tx.Bucket([]byte(itemType)); bucket != nil {
			if err := tx.DeleteBucket([]byte(itemType)); err != nil {
				return fmt.Errorf("failed to reset bucket %s: %w", itemType, err)
			}
		}
		bucket, err := tx.CreateBucket([]byte(itemType))
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", itemType, err)
		}

		for _, item := range items {
			key := id(item)
			if key == "" {
				s.logger.Warn("skipping item without id", "type", string(itemType))
				continue
			}
			value, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("failed to marshal item %s: %w", key, err)
			}
			if err := bucket.Put([]byte(key), value); err != nil {
				return fmt.Errorf("failed to store item %s: %w", key, err)
			}
		}
		return nil
	})
}

func readCatalogBucket[T any](ctx context.Context, s *BoltSource, itemType ItemType) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []T
	err := s.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(itemType))
		if bucket == nil {
			return fmt.Errorf("bucket not found: %s", itemType)
		}

		return bucket.ForEach(func(_, value []byte) error {
			var item T
			if err := json.Unmarshal(value, &item); err != nil {
				return fmt.Errorf("failed to unmarshal %s item: %w", itemType, err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		s.logger.Error("could not read catalog bucket", "type", string(itemType), "err", err.Error())
		return nil, err
	}

	return items, nil
}
