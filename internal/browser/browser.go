// Package browser holds the client-side catalog pipeline: one fetch, then
// local filter and sort over the in-memory canonical set.
package browser

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/app/course/domain/services"
)

// Status messages shown to the user.
const (
	StatusLoading   = "Loading..."
	StatusNoCourses = "No courses found"
)

// Fetcher retrieves the full catalog from the Query Service.
type Fetcher interface {
	FetchCourses(ctx context.Context) ([]*domain.Course, error)
}

// Browser is one catalog browsing session.
// All filter and sort work is local; only Activate talks to the Query Service.
type Browser struct {
	fetcher Fetcher
	logger  *zap.Logger

	mu        sync.RWMutex
	gen       uint64
	loading   bool
	err       string
	courses   []*domain.Course
	filtered  []*domain.Course
	selection domain.Selection
	sort      domain.SortOption
}

// New creates an inactive browser with the default selection and sort.
func New(fetcher Fetcher, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Browser{
		fetcher:  fetcher,
		logger:   logger,
		courses:  []*domain.Course{},
		filtered: []*domain.Course{},
		sort:     domain.DefaultSortOption,
	}
}

// Activate runs the fetch stage: exactly one call to the Fetcher.
// Failures are recorded in Err and never returned or panicked. If activations
// overlap, only the most recently started one applies its result.
func (b *Browser) Activate(ctx context.Context) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.loading = true
	b.mu.Unlock()

	courses, err := b.fetch(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		return
	}
	b.loading = false

	if err != nil {
		b.logger.Warn("fetch courses failed", zap.Error(err))
		b.err = err.Error()
		b.courses = []*domain.Course{}
		b.filtered = []*domain.Course{}
		return
	}

	b.err = ""
	b.courses = courses
	b.refilterLocked()
	b.logger.Debug("courses loaded", zap.Int("count", len(courses)))
}

// fetch shields the browser from a panicking fetcher.
func (b *Browser) fetch(ctx context.Context) (courses []*domain.Course, err error) {
	defer func() {
		if r := recover(); r != nil {
			courses, err = nil, fmt.Errorf("fetch courses: %v", r)
		}
	}()
	if b.fetcher == nil {
		return nil, fmt.Errorf("fetch courses: no fetcher configured")
	}
	courses, err = b.fetcher.FetchCourses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Course, 0, len(courses))
	for _, c := range courses {
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

// refilterLocked re-runs the filter stage. Caller holds mu.
func (b *Browser) refilterLocked() {
	b.filtered = services.Filter(b.courses, b.selection)
}

func (b *Browser) updateSelection(fn func(sel *domain.Selection)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.selection)
	b.refilterLocked()
}

// SetSearch sets the title search text.
func (b *Browser) SetSearch(search string) {
	b.updateSelection(func(sel *domain.Selection) { sel.Search = search })
}

// SetCategory adds or removes category from the selected set.
func (b *Browser) SetCategory(category string, selected bool) {
	b.updateSelection(func(sel *domain.Selection) {
		idx := slices.Index(sel.Categories, category)
		switch {
		case selected && idx < 0:
			sel.Categories = append(slices.Clone(sel.Categories), category)
		case !selected && idx >= 0:
			sel.Categories = slices.Delete(slices.Clone(sel.Categories), idx, idx+1)
		}
	})
}

// SetLevel selects a single level; "" clears it.
func (b *Browser) SetLevel(level domain.Level) {
	b.updateSelection(func(sel *domain.Selection) { sel.Level = level })
}

// SetPriceBucket selects Free, Paid, or PriceAny.
func (b *Browser) SetPriceBucket(bucket domain.PriceBucket) {
	b.updateSelection(func(sel *domain.Selection) { sel.Price = bucket })
}

// SetMinRating selects a minimum rating.
func (b *Browser) SetMinRating(min float64) {
	b.updateSelection(func(sel *domain.Selection) { sel.MinRating = &min })
}

// ClearMinRating removes the rating threshold.
func (b *Browser) ClearMinRating() {
	b.updateSelection(func(sel *domain.Selection) { sel.MinRating = nil })
}

// SetSelection replaces the whole selection at once.
func (b *Browser) SetSelection(sel domain.Selection) {
	b.updateSelection(func(cur *domain.Selection) { *cur = sel.Clone() })
}

// SetSort changes the sort option. Unknown options keep input order in View.
func (b *Browser) SetSort(opt domain.SortOption) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sort = opt
}

// Reset restores the default selection and sort in one update. It does not re-fetch.
func (b *Browser) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selection = domain.Selection{}
	b.sort = domain.DefaultSortOption
	b.refilterLocked()
}

// Loading reports whether a fetch is in flight.
func (b *Browser) Loading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

// Err returns the last fetch error message, or "".
func (b *Browser) Err() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.err
}

// Courses returns the canonical set.
func (b *Browser) Courses() []*domain.Course {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.courses)
}

// Filtered returns the filtered view in canonical order.
func (b *Browser) Filtered() []*domain.Course {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.filtered)
}

// View returns the filtered view ordered by the current sort option.
func (b *Browser) View() []*domain.Course {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return services.Sort(b.filtered, b.sort)
}

// Selection returns a copy of the current selection.
func (b *Browser) Selection() domain.Selection {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selection.Clone()
}

// SortOption returns the current sort option.
func (b *Browser) SortOption() domain.SortOption {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sort
}

// Status summarizes the browser state as a single line.
func (b *Browser) Status() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	switch {
	case b.loading:
		return StatusLoading
	case b.err != "":
		return b.err
	case len(b.filtered) == 0:
		return StatusNoCourses
	}
	return fmt.Sprintf("Showing %d results", len(b.filtered))
}
