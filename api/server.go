package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/config"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
	"github.com/vivuhq/vivu/validation"
)

type server struct {
	router        *gin.Engine
	httpServer    *http.Server
	cfg           *config.Config
	catalogSource catalog.Source
	searchService *search.Service
	validator     *validation.Validator
	logger        logger.Logger
}

func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)

	defer cancel()

	s := &server{
		cfg:    cfg,
		logger: logger.New(),
	}
	if err := s.setupDependencies(); err != nil {
		return err
	}
	s.warmUpCatalog(ctx)
	s.setupRouter()
	s.setupHTTPServer()
	s.setupGracefulShutdown(ctx)

	return nil
}

func (s *server) setupDependencies() error {
	var err error
	s.catalogSource, err = newCatalogSource(s.logger, s.cfg)
	if err != nil {
		s.logger.Error("error creating catalog source", "err", err.Error())
		return err
	}

	loader := catalog.NewLoader(s.logger, s.catalogSource)
	s.searchService = search.New(s.logger, loader, search.NewResultCache(), s.cfg.GetLocale())

	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		return err
	}

	return nil
}

func newCatalogSource(logger logger.Logger, cfg *config.Config) (catalog.Source, error) {
	switch backend := cfg.GetCatalogBackend(); backend {
	case "bolt":
		return catalog.NewBoltSource(logger, cfg.GetCatalogDBPath())
	case "file":
		return catalog.NewFileSource(logger, cfg.GetDataPath()), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend: %s", backend)
	}
}

// warmUpCatalog triggers the first load so the first request doesn't pay for
// it. A failed warm-up is logged, not fatal: requests return 503 until a
// reload succeeds.
func (s *server) warmUpCatalog(ctx context.Context) {
	if err := s.searchService.Reload(ctx); err != nil {
		s.logger.Error("catalog warm-up failed, searches will be unavailable until reload", "err", err.Error())
	}
}

func (s *server) setupRouter() {
	router := newRouter()

	router.Use(loggingMiddleware(s.logger))

	setupRoutes(router, s.logger, s.searchService, s.validator)

	s.router = router
}

func (s *server) setupHTTPServer() {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.GetPort()),
		Handler: s.router.Handler(),
	}
	s.httpServer = httpServer
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()
}

func (s *server) setupGracefulShutdown(ctx context.Context) {

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Info("starting to shut down http server")
		shutdownCtx := context.Background()
		shutdownCtx, cancel := context.WithTimeout(shutdownCtx, 10*time.Second)
		defer cancel()
		if closer, ok := s.catalogSource.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				s.logger.Error("error closing catalog source", "err", err.Error())
			}
		}
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error shutting down http server", "err", err)
			return
		}
		s.logger.Info("shut down http server successfully")
	}()

	wg.Wait()
}
