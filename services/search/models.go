package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vivuhq/vivu/catalog"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPrice     SortKey = "price"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	MinLimit = 1
	MaxLimit = 50
)

// Query is a validated search request. Zero values mean "unconstrained" for
// the filter fields (Type, MinPrice, MaxPrice, MinRating, Tags). A Query is
// built fresh per request and treated as immutable once validated.
type Query struct {
	Text      string
	Type      string
	MinPrice  int
	MaxPrice  int
	MinRating float64
	Tags      []string
	Page      int
	Limit     int
	SortBy    SortKey
	SortOrder SortOrder
}

// Validate checks every field strictly. It never clamps: an out-of-range
// page or limit is an error even though the HTTP boundary also enforces the
// same ranges, so the engine's contract holds when called directly.
func (q *Query) Validate() error {
	if q.Page < 1 {
		return &InvalidQueryError{Field: "page", Reason: "must be at least 1"}
	}
	if q.Limit < MinLimit || q.Limit > MaxLimit {
		return &InvalidQueryError{Field: "per_page", Reason: fmt.Sprintf("must be between %d and %d", MinLimit, MaxLimit)}
	}
	if q.Type != "" {
		if _, ok := catalog.ParseItemType(q.Type); !ok {
			return &InvalidQueryError{Field: "type", Reason: "unknown catalog type"}
		}
	}
	if q.MinPrice < 0 {
		return &InvalidQueryError{Field: "min_price", Reason: "must not be negative"}
	}
	if q.MaxPrice < 0 {
		return &InvalidQueryError{Field: "max_price", Reason: "must not be negative"}
	}
	if q.MinPrice > 0 && q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		return &InvalidQueryError{Field: "min_price", Reason: "must not exceed max_price"}
	}
	if q.MinRating < 0 || q.MinRating > 5 {
		return &InvalidQueryError{Field: "min_rating", Reason: "must be between 0 and 5"}
	}
	switch q.SortBy {
	case SortRelevance, SortPrice, SortRating, SortName:
	default:
		return &InvalidQueryError{Field: "sort_by", Reason: "must be one of relevance, price, rating, name"}
	}
	switch q.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		return &InvalidQueryError{Field: "sort_order", Reason: "must be asc or desc"}
	}

	return nil
}

// Signature serializes the query deterministically for use as a cache key.
// Tags are case-folded and sorted so requests differing only in tag order
// share an entry. Page and limit are part of the key: each page is its own
// cached response.
func (q *Query) Signature() string {
	tags := make([]string, 0, len(q.Tags))
	for _, tag := range q.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return fmt.Sprintf("text=%s|type=%s|min_price=%d|max_price=%d|min_rating=%g|tags=%s|page=%d|limit=%d|sort=%s:%s",
		strings.ToLower(strings.TrimSpace(q.Text)),
		q.Type,
		q.MinPrice,
		q.MaxPrice,
		q.MinRating,
		strings.Join(tags, ","),
		q.Page,
		q.Limit,
		q.SortBy,
		q.SortOrder,
	)
}

// Pagination describes where a page sits within the filtered result set.
// TotalResults counts matches after filtering, before slicing.
type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	PageSize     int  `json:"page_size"`
	TotalPages   int  `json:"total_pages"`
	HasNextPage  bool `json:"has_next_page"`
	HasPrevPage  bool `json:"has_prev_page"`
	TotalResults int  `json:"total_results"`
}

// Filters echoes the structured filters a response was computed under.
type Filters struct {
	Text      string   `json:"text,omitempty"`
	Type      string   `json:"type,omitempty"`
	MinPrice  int      `json:"min_price,omitempty"`
	MaxPrice  int      `json:"max_price,omitempty"`
	MinRating float64  `json:"min_rating,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Response is a complete answer to one search query. Instances stored in the
// result cache are shared between callers and must not be mutated.
type Response struct {
	Results     []catalog.SearchableItem `json:"results"`
	PageDetails Pagination               `json:"page_details"`
	Filters     Filters                  `json:"filters"`
	SearchTime  string                   `json:"search_time"`
}

// Suggestion is the lightweight record returned for type-ahead lookups.
type Suggestion struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     catalog.ItemType `json:"type"`
	Location string           `json:"location"`
}
