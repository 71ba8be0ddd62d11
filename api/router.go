package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vivuhq/vivu/api/handlers"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/metrics"
	"github.com/vivuhq/vivu/services/search"
	"github.com/vivuhq/vivu/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, searchService *search.Service, validator *validation.Validator) {
	router.GET("/health", health())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.SetupSearch(router, logger, searchService, validator)
	handlers.SetupSuggest(router, logger, searchService, validator)
	handlers.SetupPopular(router, logger, searchService, validator)
	handlers.SetupReload(router, logger, searchService)
}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(metrics.Middleware())

	return router
}
