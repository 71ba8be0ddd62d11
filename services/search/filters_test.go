package search

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vivuhq/vivu/catalog"
)

func filterTestItem() catalog.SearchableItem {
	return catalog.SearchableItem{
		ID:            "ls-01",
		Type:          catalog.TypeLodging,
		Name:          "Valley Homestay",
		Rating:        4.7,
		Price:         "500.000 - 800.000 VNĐ",
		PriceMidpoint: 650000,
		Tags:          []string{"wifi", "Mountain View", "breakfast"},
	}
}

func TestMatchesFilters(t *testing.T) {
	testCases := []struct {
		name     string
		query    Query
		expected bool
	}{
		{
			name:     "NoFiltersPassesEverything",
			query:    Query{},
			expected: true,
		},
		{
			name:     "TypeMatch",
			query:    Query{Type: "lodging"},
			expected: true,
		},
		{
			name:     "TypeMismatch",
			query:    Query{Type: "dining"},
			expected: false,
		},
		{
			name:     "TagSubstringCaseInsensitive",
			query:    Query{Tags: []string{"mountain"}},
			expected: true,
		},
		{
			name:     "TagsAreORSemantics",
			query:    Query{Tags: []string{"pool", "wifi"}},
			expected: true,
		},
		{
			name:     "NoTagMatches",
			query:    Query{Tags: []string{"pool", "sauna"}},
			expected: false,
		},
		{
			name:     "PriceWithinRange",
			query:    Query{MinPrice: 500000, MaxPrice: 700000},
			expected: true,
		},
		{
			name:     "PriceBelowMin",
			query:    Query{MinPrice: 1000000},
			expected: false,
		},
		{
			name:     "PriceAboveMax",
			query:    Query{MaxPrice: 600000},
			expected: false,
		},
		{
			name:     "OnlyMinBoundSupplied",
			query:    Query{MinPrice: 600000},
			expected: true,
		},
		{
			name:     "RatingAtThreshold",
			query:    Query{MinRating: 4.7},
			expected: true,
		},
		{
			name:     "RatingBelowThreshold",
			query:    Query{MinRating: 4.8},
			expected: false,
		},
		{
			name:     "AllFiltersConjunctive",
			query:    Query{Type: "lodging", Tags: []string{"wifi"}, MinRating: 4.8},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := filterTestItem()
			require.Equal(t, tc.expected, matchesFilters(&item, &tc.query))
		})
	}
}

func TestMatchesFiltersUnknownRatingFailsThreshold(t *testing.T) {
	item := filterTestItem()
	item.Rating = 0

	q := Query{MinRating: 0.5}
	require.False(t, matchesFilters(&item, &q))
}

func TestMatchesFiltersUnparseablePriceIsZeroMidpoint(t *testing.T) {
	assert := require.New(t)

	item := filterTestItem()
	item.Price = "negotiable"
	item.PriceMidpoint = 0

	minQuery := Query{MinPrice: 1}
	assert.False(matchesFilters(&item, &minQuery), "zero midpoint fails any positive min")

	maxQuery := Query{MaxPrice: 100000}
	assert.True(matchesFilters(&item, &maxQuery), "zero midpoint is under any max")
}
