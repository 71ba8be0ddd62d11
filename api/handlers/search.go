package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
	"github.com/vivuhq/vivu/validation"
)

const defaultResultsPerPage = 20

type SearchRequest struct {
	Query     string  `form:"q" validate:"max=200"`
	Type      string  `form:"type" validate:"valid_type"`
	MinPrice  int     `form:"min_price" validate:"min=0"`
	MaxPrice  int     `form:"max_price" validate:"min=0"`
	MinRating float64 `form:"min_rating" validate:"min=0,max=5"`
	Tags      string  `form:"tags" validate:"max=500"`
	PerPage   int     `form:"per_page" validate:"min=0,max=50"`
	Page      int     `form:"page" validate:"min=0"`
	SortBy    string  `form:"sort_by" validate:"valid_sort"`
	SortOrder string  `form:"sort_order" validate:"valid_order"`
}

func (r *SearchRequest) setDefaults() {
	if r.PerPage == 0 {
		r.PerPage = defaultResultsPerPage
	}

	if r.Page == 0 {
		r.Page = 1
	}

	if r.SortBy == "" {
		r.SortBy = string(search.SortRelevance)
	}

	if r.SortOrder == "" {
		// Highest first for rank-like keys, natural order for the rest.
		switch search.SortKey(r.SortBy) {
		case search.SortRelevance, search.SortRating:
			r.SortOrder = string(search.OrderDesc)
		default:
			r.SortOrder = string(search.OrderAsc)
		}
	}
}

func (r *SearchRequest) toQuery() search.Query {
	return search.Query{
		Text:      strings.TrimSpace(r.Query),
		Type:      r.Type,
		MinPrice:  r.MinPrice,
		MaxPrice:  r.MaxPrice,
		MinRating: r.MinRating,
		Tags:      splitTags(r.Tags),
		Page:      r.Page,
		Limit:     r.PerPage,
		SortBy:    search.SortKey(r.SortBy),
		SortOrder: search.SortOrder(r.SortOrder),
	}
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func SetupSearch(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/search", handleSearch(service, logger, validator))

}

func handleSearch(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request parameters"})
			return
		}
		request.setDefaults()

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		searchResponse, err := service.Search(c.Request.Context(), request.toQuery())
		if err != nil {
			writeSearchError(c, logger, err)
			return
		}

		writeResponse(c, searchResponse, http.StatusOK, nil)
	}
}

// writeSearchError translates engine errors into transport responses: an
// invalid query is the caller's fault, a failed catalog load is a retryable
// outage, anything else is a plain server error.
func writeSearchError(c *gin.Context, logger logger.Logger, err error) {
	c.Abort()

	switch {
	case errors.Is(err, search.ErrInvalidQuery):
		logger.Warn("rejected search query", "err", err.Error())
		writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
	case errors.Is(err, catalog.ErrCatalogLoad):
		logger.Error("catalog unavailable", "err", err.Error())
		writeResponse(c, nil, http.StatusServiceUnavailable, []string{"catalog temporarily unavailable, please retry"})
	default:
		logger.Error("search failed", "err", err.Error())
		writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
	}
}
