// Command seeder provisions the bolt catalog database from the JSON catalog
// files, one bucket per catalog type. Run it once before starting the server
// with CATALOG_BACKEND=bolt.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/config"
	"github.com/vivuhq/vivu/logger"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	if err := seed(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg *config.Config) error {
	log := logger.New()

	files := catalog.NewFileSource(log, cfg.GetDataPath())
	store, err := catalog.NewBoltSource(log, cfg.GetCatalogDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	lodgings, err := files.Lodgings(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Seed(store, catalog.TypeLodging, lodgings, func(l catalog.Lodging) string { return l.ID }); err != nil {
		return err
	}

	dinings, err := files.Dinings(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Seed(store, catalog.TypeDining, dinings, func(d catalog.Dining) string { return d.ID }); err != nil {
		return err
	}

	tours, err := files.Tours(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Seed(store, catalog.TypeTour, tours, func(t catalog.Tour) string { return t.ID }); err != nil {
		return err
	}

	transports, err := files.Transports(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Seed(store, catalog.TypeTransport, transports, func(t catalog.Transport) string { return t.ID }); err != nil {
		return err
	}

	attractions, err := files.Attractions(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Seed(store, catalog.TypeAttraction, attractions, func(a catalog.Attraction) string { return a.ID }); err != nil {
		return err
	}

	log.Info("catalog database seeded",
		"path", cfg.GetCatalogDBPath(),
		"lodgings", len(lodgings),
		"dinings", len(dinings),
		"tours", len(tours),
		"transports", len(transports),
		"attractions", len(attractions),
	)
	return nil
}
