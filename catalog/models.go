package catalog

// ItemType identifies one of the five source catalogs.
type ItemType string

const (
	TypeLodging    ItemType = "lodging"
	TypeDining     ItemType = "dining"
	TypeTour       ItemType = "tour"
	TypeTransport  ItemType = "transport"
	TypeAttraction ItemType = "attraction"
)

// AllTypes returns every catalog type in canonical load order. The order is
// load-bearing: the merged catalog concatenates per-type items in this order,
// and relevance ties are broken by position in the merged catalog.
func AllTypes() []ItemType {
	return []ItemType{TypeLodging, TypeDining, TypeTour, TypeTransport, TypeAttraction}
}

// ParseItemType reports whether s names a known catalog type.
func ParseItemType(s string) (ItemType, bool) {
	switch ItemType(s) {
	case TypeLodging, TypeDining, TypeTour, TypeTransport, TypeAttraction:
		return ItemType(s), true
	}
	return "", false
}

// Lodging is a raw homestay/hotel record as stored by the lodging catalog.
type Lodging struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	RoomTypes   []string `json:"room_types"`
}

// Dining is a raw restaurant/eatery record as stored by the dining catalog.
type Dining struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Price        string   `json:"price"`
	Rating       float64  `json:"rating"`
	Images       []string `json:"images"`
	Cuisine      string   `json:"cuisine"`
	Specialties  []string `json:"specialties"`
	OpeningHours string   `json:"opening_hours"`
}

// Tour is a raw guided-tour record as stored by the tour catalog.
type Tour struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Highlights  []string `json:"highlights"`
	Includes    []string `json:"includes"`
}

// Transport is a raw transport-option record as stored by the transport
// catalog.
type Transport struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Kind        string   `json:"kind"`
	Route       string   `json:"route"`
	Features    []string `json:"features"`
}

// Attraction is a raw sight/activity record as stored by the attraction
// catalog.
type Attraction struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	EntryFee    string   `json:"entry_fee"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Activities  []string `json:"activities"`
}

// SearchableItem is the canonical record every catalog normalizes into.
// Everything downstream of the loader operates only on this shape.
//
// ID is unique only within a Type; items of different types may share an ID
// and are never merged. RelevanceScore is transient, recomputed per query.
type SearchableItem struct {
	ID             string   `json:"id"`
	Type           ItemType `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	Price          string   `json:"price"`
	PriceMidpoint  int      `json:"price_midpoint"`
	Images         []string `json:"images"`
	Features       []string `json:"features"`
	Amenities      []string `json:"amenities"`
	Tags           []string `json:"tags"`
	RelevanceScore float64  `json:"relevance_score"`
}
