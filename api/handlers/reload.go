package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
)

// SetupReload registers the explicit catalog-reload endpoint, the recovery
// path after a failed load or a catalog data change.
func SetupReload(router *gin.Engine, logger logger.Logger, service *search.Service) {
	router.POST("/reload", handleReload(service, logger))

}

func handleReload(service *search.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.Reload(c.Request.Context()); err != nil {
			logger.Error("catalog reload failed", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusServiceUnavailable, []string{err.Error()})
			return
		}

		writeResponse(c, nil, http.StatusNoContent, nil)
	}
}
