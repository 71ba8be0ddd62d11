package search

import (
	"strings"
	"unicode"
)

// Relevance weights. Scoring is binary per field: a field contributes its
// full weight if any query term appears in it, regardless of how many terms
// hit. These values are a deliberate ranking contract; changing them changes
// result order for every text query.
const (
	weightName        = 3
	weightDescription = 2
	weightLocation    = 2
	weightFeatures    = 1
	weightAmenities   = 1
)

// queryTerms sanitizes free text into match terms: case-folded, punctuation
// stripped, split on whitespace, empty terms discarded. Letters and digits
// in any script survive, so accented Vietnamese queries keep their marks.
func queryTerms(text string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

// score computes the relevance of item against the sanitized terms. With no
// terms every item scores a uniform 1 so pure-filter queries keep a total
// order; with terms, a zero score means the item matched nothing and is
// excluded by the caller.
func score(item *matchFields, terms []string) float64 {
	if len(terms) == 0 {
		return 1
	}

	total := 0.0
	if anyTermIn(item.name, terms) {
		total += weightName
	}
	if anyTermIn(item.description, terms) {
		total += weightDescription
	}
	if anyTermIn(item.location, terms) {
		total += weightLocation
	}
	if anyTermInList(item.features, terms) {
		total += weightFeatures
	}
	if anyTermInList(item.amenities, terms) {
		total += weightAmenities
	}
	return total
}

// matchFields carries pre-lowercased copies of the item's searchable text so
// a single item is folded once per query, not once per term.
type matchFields struct {
	name        string
	description string
	location    string
	features    []string
	amenities   []string
}

func newMatchFields(name, description, location string, features, amenities []string) *matchFields {
	return &matchFields{
		name:        strings.ToLower(name),
		description: strings.ToLower(description),
		location:    strings.ToLower(location),
		features:    lowerAll(features),
		amenities:   lowerAll(amenities),
	}
}

func anyTermIn(field string, terms []string) bool {
	if field == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(field, term) {
			return true
		}
	}
	return false
}

func anyTermInList(entries []string, terms []string) bool {
	for _, entry := range entries {
		if anyTermIn(entry, terms) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
