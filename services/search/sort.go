package search

import (
	"sort"

	"github.com/vivuhq/vivu/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortItems orders the filtered set in place. Every branch uses a stable
// sort: items the key cannot distinguish keep their catalog order, which is
// what makes page-by-page navigation deterministic.
//
// Relevance ignores the requested order and always ranks highest first;
// asc/desc applies to the price, rating and name keys.
func sortItems(items []catalog.SearchableItem, key SortKey, order SortOrder, locale language.Tag) {
	switch key {
	case SortPrice:
		sortByLess(items, order, func(a, b *catalog.SearchableItem) bool {
			return a.PriceMidpoint < b.PriceMidpoint
		})
	case SortRating:
		sortByLess(items, order, func(a, b *catalog.SearchableItem) bool {
			return a.Rating < b.Rating
		})
	case SortName:
		// A collator is not safe for concurrent use, so each sort builds
		// its own.
		coll := collate.New(locale)
		sortByLess(items, order, func(a, b *catalog.SearchableItem) bool {
			return coll.CompareString(a.Name, b.Name) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].RelevanceScore > items[j].RelevanceScore
		})
	}
}

func sortByLess(items []catalog.SearchableItem, order SortOrder, less func(a, b *catalog.SearchableItem) bool) {
	if order == OrderDesc {
		sort.SliceStable(items, func(i, j int) bool {
			return less(&items[j], &items[i])
		})
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(&items[i], &items[j])
	})
}
