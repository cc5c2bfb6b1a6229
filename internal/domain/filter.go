package domain

// WineSort selects the list ordering.
type WineSort string

const (
	// WineSortRecent is the default: most recently added first.
	WineSortRecent      WineSort = "recent"
	WineSortVintageAsc  WineSort = "vintage_asc"
	WineSortVintageDesc WineSort = "vintage_desc"
	WineSortPriceAsc    WineSort = "price_asc"
	WineSortPriceDesc   WineSort = "price_desc"

	// Rating sorts only take effect while a minimum-rating filter is active.
	WineSortRatingAsc  WineSort = "rating_asc"
	WineSortRatingDesc WineSort = "rating_desc"
)

func (s WineSort) String() string { return string(s) }

func (s WineSort) IsValid() bool {
	switch s {
	case WineSortRecent, WineSortVintageAsc, WineSortVintageDesc,
		WineSortPriceAsc, WineSortPriceDesc, WineSortRatingAsc, WineSortRatingDesc:
		return true
	}
	return false
}

// IsRatingSort reports whether the sort orders by rating.
func (s WineSort) IsRatingSort() bool {
	return s == WineSortRatingAsc || s == WineSortRatingDesc
}

// WineFilter contains filtering and sorting parameters for cellar browsing.
// Zero values mean "no filter".
type WineFilter struct {
	// Search is a free-text OR-match across name and producer.
	Search string

	// Country and Region are substring matches.
	Country string
	Region  string

	// GrapeVariety is a set-containment match on the variety set.
	GrapeVariety string

	// MinRating is a threshold on the UI 0–5 half-star scale.
	MinRating *float64

	// Type is an exact match.
	Type *WineType

	Sort   WineSort
	Limit  int
	Offset int
}
