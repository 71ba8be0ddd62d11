package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vivuhq/vivu/logger"
)

// Catalog file names inside the data directory, one per type.
var catalogFiles = map[ItemType]string{
	TypeLodging:    "lodging.json",
	TypeDining:     "dining.json",
	TypeTour:       "tours.json",
	TypeTransport:  "transport.json",
	TypeAttraction: "attractions.json",
}

// FileSource reads each catalog from a JSON array file in a data directory.
// This is the default backend.
type FileSource struct {
	dataPath string
	logger   logger.Logger
}

func NewFileSource(logger logger.Logger, dataPath string) *FileSource {
	return &FileSource{dataPath: dataPath, logger: logger}
}

func (s *FileSource) Lodgings(ctx context.Context) ([]Lodging, error) {
	return readCatalogFile[Lodging](ctx, s, TypeLodging)
}

func (s *FileSource) Dinings(ctx context.Context) ([]Dining, error) {
	return readCatalogFile[Dining](ctx, s, TypeDining)
}

func (s *FileSource) Tours(ctx context.Context) ([]Tour, error) {
	return readCatalogFile[Tour](ctx, s, TypeTour)
}

func (s *FileSource) Transports(ctx context.Context) ([]Transport, error) {
	return readCatalogFile[Transport](ctx, s, TypeTransport)
}

func (s *FileSource) Attractions(ctx context.Context) ([]Attraction, error) {
	return readCatalogFile[Attraction](ctx, s, TypeAttraction)
}

func readCatalogFile[T any](ctx context.Context, s *FileSource, itemType ItemType) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dataPath, catalogFiles[itemType])
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("could not read catalog file", "type", string(itemType), "path", path, "err", err.Error())
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Error("could not parse catalog file", "type", string(itemType), "path", path, "err", err.Error())
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return items, nil
}
