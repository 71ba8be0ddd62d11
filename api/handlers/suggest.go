package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
	"github.com/vivuhq/vivu/validation"
)

type SuggestRequest struct {
	Query string `form:"q" validate:"max=200"`
	Limit int    `form:"limit" validate:"min=0,max=20"`
}

type SuggestResponse struct {
	Suggestions []search.Suggestion `json:"suggestions"`
}

func SetupSuggest(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/suggest", handleSuggest(service, logger, validator))

}

func handleSuggest(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SuggestRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from suggest request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate suggest request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		suggestions, err := service.Suggest(c.Request.Context(), request.Query, request.Limit)
		if err != nil {
			writeSearchError(c, logger, err)
			return
		}

		writeResponse(c, SuggestResponse{Suggestions: suggestions}, http.StatusOK, nil)
	}
}
