package search

import (
	"fmt"

	"github.com/vivuhq/vivu/catalog"
)

// paginate slices the requested 1-indexed page out of the full filtered set
// and computes the page metadata. Out-of-range page/limit values are
// rejected, not clamped; a page past the end is valid and yields an empty
// slice with accurate totals.
func paginate(items []catalog.SearchableItem, page, limit int) ([]catalog.SearchableItem, Pagination, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, Pagination{}, &InvalidQueryError{
			Field:  "per_page",
			Reason: fmt.Sprintf("must be between %d and %d", MinLimit, MaxLimit),
		}
	}
	if page < 1 {
		return nil, Pagination{}, &InvalidQueryError{Field: "page", Reason: "must be at least 1"}
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := min(start+limit, total)

	results := make([]catalog.SearchableItem, 0, end-start)
	results = append(results, items[start:end]...)

	pagination := Pagination{
		CurrentPage:  page,
		PageSize:     limit,
		TotalPages:   totalPages,
		HasNextPage:  page*limit < total,
		HasPrevPage:  page > 1,
		TotalResults: total,
	}

	return results, pagination, nil
}
