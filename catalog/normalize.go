package catalog

import "strings"

// The normalize functions below are the only place catalog-specific field
// names are known. They are total: missing optional fields degrade to empty
// strings, zeros and empty sets, never to errors.

func normalizeLodging(l Lodging) SearchableItem {
	item := SearchableItem{
		ID:            l.ID,
		Type:          TypeLodging,
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		Rating:        l.Rating,
		Price:         l.Price,
		PriceMidpoint: ParsePriceMidpoint(l.Price),
		Images:        copyStrings(l.Images),
		Features:      copyStrings(l.RoomTypes),
		Amenities:     copyStrings(l.Amenities),
	}
	item.Tags = deriveTags(item.Features, item.Amenities)
	return item
}

func normalizeDining(d Dining) SearchableItem {
	item := SearchableItem{
		ID:            d.ID,
		Type:          TypeDining,
		Name:          d.Name,
		Description:   d.Description,
		Location:      d.Location,
		Rating:        d.Rating,
		Price:         d.Price,
		PriceMidpoint: ParsePriceMidpoint(d.Price),
		Images:        copyStrings(d.Images),
		Features:      copyStrings(d.Specialties),
	}
	item.Tags = deriveTags(item.Features, item.Amenities, d.Cuisine)
	return item
}

func normalizeTour(t Tour) SearchableItem {
	item := SearchableItem{
		ID:            t.ID,
		Type:          TypeTour,
		Name:          t.Name,
		Description:   t.Description,
		Location:      t.Location,
		Rating:        t.Rating,
		Price:         t.Price,
		PriceMidpoint: ParsePriceMidpoint(t.Price),
		Images:        copyStrings(t.Images),
		Features:      copyStrings(t.Highlights),
		Amenities:     copyStrings(t.Includes),
	}
	item.Tags = deriveTags(item.Features, item.Amenities, t.Difficulty)
	return item
}

func normalizeTransport(t Transport) SearchableItem {
	item := SearchableItem{
		ID:            t.ID,
		Type:          TypeTransport,
		Name:          t.Name,
		Description:   t.Description,
		Location:      joinNonEmpty(t.Location, t.Route),
		Rating:        t.Rating,
		Price:         t.Price,
		PriceMidpoint: ParsePriceMidpoint(t.Price),
		Images:        copyStrings(t.Images),
		Features:      copyStrings(t.Features),
	}
	item.Tags = deriveTags(item.Features, item.Amenities, t.Kind)
	return item
}

func normalizeAttraction(a Attraction) SearchableItem {
	item := SearchableItem{
		ID:            a.ID,
		Type:          TypeAttraction,
		Name:          a.Name,
		Description:   a.Description,
		Location:      a.Location,
		Rating:        a.Rating,
		Price:         a.EntryFee,
		PriceMidpoint: ParsePriceMidpoint(a.EntryFee),
		Images:        copyStrings(a.Images),
		Features:      copyStrings(a.Activities),
	}
	item.Tags = deriveTags(item.Features, item.Amenities, a.Category)
	return item
}

// deriveTags builds the tag set as the union of features, amenities and any
// per-type discriminators (cuisine, difficulty, category, vehicle kind).
// Tags are deduplicated case-insensitively and blanks are dropped.
func deriveTags(features, amenities []string, discriminators ...string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0, len(features)+len(amenities)+len(discriminators))

	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}

	for _, tag := range features {
		add(tag)
	}
	for _, tag := range amenities {
		add(tag)
	}
	for _, tag := range discriminators {
		add(tag)
	}

	return tags
}

// copyStrings returns a non-nil copy so normalized items never alias source
// slices and empty sets serialize as [] rather than null.
func copyStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, " - ")
}
