package services

import (
	"cmp"
	"slices"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

// Comparator orders two courses; negative means a sorts before b.
type Comparator func(a, b *domain.Course) int

var comparators = map[domain.SortOption]Comparator{
	domain.SortLatest: func(a, b *domain.Course) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	},
	domain.SortTopRated: func(a, b *domain.Course) int {
		return cmp.Compare(b.Rating(), a.Rating())
	},
	domain.SortPriceLowToHigh: func(a, b *domain.Course) int {
		return a.Price().Cmp(b.Price())
	},
	domain.SortPriceHighToLow: func(a, b *domain.Course) int {
		return b.Price().Cmp(a.Price())
	},
}

// ComparatorFor returns the comparator of opt and false for an unknown option.
func ComparatorFor(opt domain.SortOption) (Comparator, bool) {
	c, ok := comparators[opt]
	return c, ok
}

// Sort returns a stably sorted copy of courses. The input is left untouched.
// An unknown option yields the input order unchanged.
func Sort(courses []*domain.Course, opt domain.SortOption) []*domain.Course {
	out := make([]*domain.Course, len(courses))
	copy(out, courses)

	compare, ok := ComparatorFor(opt)
	if !ok {
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}
