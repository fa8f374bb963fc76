package domain

import "strings"

// PriceBucket narrows courses to free or paid ones.
type PriceBucket string

const (
	PriceAny  PriceBucket = ""
	PriceFree PriceBucket = "Free"
	PricePaid PriceBucket = "Paid"
)

// ParsePriceBucket accepts "", "free" or "paid" (any case).
func ParsePriceBucket(s string) (PriceBucket, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return PriceAny, nil
	case strings.EqualFold(s, string(PriceFree)):
		return PriceFree, nil
	case strings.EqualFold(s, string(PricePaid)):
		return PricePaid, nil
	}
	return PriceAny, ErrInvalidPriceBucket
}

// Selection is the set of client-side narrowing criteria.
// The zero value selects everything.
type Selection struct {
	Search     string
	Categories []string
	Level      Level
	Price      PriceBucket
	// MinRating is nil when no rating threshold is selected.
	MinRating *float64
}

// IsEmpty reports whether no criterion is active.
func (s Selection) IsEmpty() bool {
	return s.Search == "" && len(s.Categories) == 0 && s.Level == "" && s.Price == PriceAny && s.MinRating == nil
}

// Clone returns a deep copy so callers cannot alias internal slices.
func (s Selection) Clone() Selection {
	out := s
	if s.Categories != nil {
		out.Categories = append([]string(nil), s.Categories...)
	}
	if s.MinRating != nil {
		v := *s.MinRating
		out.MinRating = &v
	}
	return out
}

// RatingOptions returns the offered "N stars & above" thresholds, highest first.
// Any value in 0..5 is accepted as a minimum; these are the ones shown to users.
func RatingOptions() []float64 {
	return []float64{4, 3, 2}
}

// SortOption is the ordering criterion applied to a filtered view.
type SortOption string

const (
	SortLatest         SortOption = "Latest"
	SortTopRated       SortOption = "Top Rated"
	SortPriceLowToHigh SortOption = "Price: Low to High"
	SortPriceHighToLow SortOption = "Price: High to Low"
)

// DefaultSortOption is the ordering on activation and after a reset.
const DefaultSortOption = SortLatest

// SortOptions returns the known options in display order.
func SortOptions() []SortOption {
	return []SortOption{SortLatest, SortTopRated, SortPriceLowToHigh, SortPriceHighToLow}
}

var sortAliases = map[string]SortOption{
	"latest":     SortLatest,
	"top-rated":  SortTopRated,
	"price-asc":  SortPriceLowToHigh,
	"price-desc": SortPriceHighToLow,
}

// ParseSortOption accepts a display label or a short alias.
func ParseSortOption(s string) (SortOption, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSortOption, nil
	}
	for _, opt := range SortOptions() {
		if strings.EqualFold(s, string(opt)) {
			return opt, nil
		}
	}
	if opt, ok := sortAliases[strings.ToLower(s)]; ok {
		return opt, nil
	}
	return "", ErrInvalidSortOption
}
