package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
	"github.com/vivuhq/vivu/validation"
)

type PopularRequest struct {
	Limit int `form:"limit" validate:"min=0,max=50"`
}

type PopularResponse struct {
	Results []catalog.SearchableItem `json:"results"`
}

func SetupPopular(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/popular", handlePopular(service, logger, validator))

}

func handlePopular(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := PopularRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from popular request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate popular request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		results, err := service.Popular(c.Request.Context(), request.Limit)
		if err != nil {
			writeSearchError(c, logger, err)
			return
		}

		writeResponse(c, PopularResponse{Results: results}, http.StatusOK, nil)
	}
}
