package search

import (
	"strings"

	"github.com/vivuhq/vivu/catalog"
)

// matchesFilters applies the structured filters, all of which must hold.
// Text relevance is judged separately: an item failing any filter here is
// excluded no matter how well its text matches.
func matchesFilters(item *catalog.SearchableItem, q *Query) bool {
	if q.Type != "" && item.Type != catalog.ItemType(q.Type) {
		return false
	}

	if !matchesTags(item.Tags, q.Tags) {
		return false
	}

	if q.MinPrice > 0 && item.PriceMidpoint < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && item.PriceMidpoint > q.MaxPrice {
		return false
	}

	// An unknown rating is stored as 0 and fails any positive threshold.
	if q.MinRating > 0 && item.Rating < q.MinRating {
		return false
	}

	return true
}

// matchesTags applies OR semantics: the item passes if any requested tag is
// a case-insensitive substring of any item tag. An empty request set passes
// everything.
func matchesTags(itemTags []string, requested []string) bool {
	if len(requested) == 0 {
		return true
	}

	for _, want := range requested {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		for _, have := range itemTags {
			if strings.Contains(strings.ToLower(have), want) {
				return true
			}
		}
	}
	return false
}
