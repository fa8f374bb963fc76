package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

// Filter returns the courses passing every active predicate of sel, in input order.
// The input slice and its courses are never modified; the result shares the same pointers.
// The result is never nil.
func Filter(courses []*domain.Course, sel domain.Selection) []*domain.Course {
	m := newMatcher(sel)
	out := make([]*domain.Course, 0, len(courses))
	for _, c := range courses {
		if c != nil && m.match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether a single course passes sel.
func Matches(c *domain.Course, sel domain.Selection) bool {
	if c == nil {
		return false
	}
	return newMatcher(sel).match(c)
}

// matcher holds the per-selection precomputed state.
// A cases.Caser is stateful, so one matcher must not be shared between goroutines.
type matcher struct {
	sel        domain.Selection
	folder     cases.Caser
	search     string
	categories map[string]struct{}
}

func newMatcher(sel domain.Selection) *matcher {
	m := &matcher{sel: sel, folder: cases.Fold()}
	m.search = m.fold(sel.Search)
	if len(sel.Categories) > 0 {
		m.categories = make(map[string]struct{}, len(sel.Categories))
		for _, c := range sel.Categories {
			m.categories[c] = struct{}{}
		}
	}
	return m
}

// fold NFC-normalizes s before case folding so precomposed and decomposed
// accents compare equal.
func (m *matcher) fold(s string) string {
	return m.folder.String(norm.NFC.String(s))
}

// match applies the predicates in order: title, category, level, price bucket, rating.
func (m *matcher) match(c *domain.Course) bool {
	if m.search != "" && !strings.Contains(m.fold(c.Title()), m.search) {
		return false
	}
	if m.categories != nil {
		if _, ok := m.categories[c.Category()]; !ok {
			return false
		}
	}
	if m.sel.Level != "" && c.Level() != m.sel.Level {
		return false
	}
	if m.sel.Price != domain.PriceAny {
		// Free requires exactly zero; any other bucket requires a positive price.
		if m.sel.Price == domain.PriceFree {
			if !c.Price().IsZero() {
				return false
			}
		} else if !c.Price().IsPositive() {
			return false
		}
	}
	if m.sel.MinRating != nil && c.Rating() < *m.sel.MinRating {
		return false
	}
	return true
}
