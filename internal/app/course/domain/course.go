package domain

import (
	"math"
	"strings"
	"time"
)

// Level is the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels returns the known levels in display order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel matches s case-insensitively against the known levels.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", ErrInvalidLevel
}

// Known catalog categories. The store is authoritative; this list drives CLI help
// and import warnings only.
const (
	CategoryDataScience            = "Data Science"
	CategoryWebDevelopment         = "Web Development"
	CategoryDevOps                 = "DevOps"
	CategoryFinanceAccounting      = "Finance & Accounting"
	CategoryArtificialIntelligence = "Artificial Intelligence"
)

// Categories returns the known categories in display order.
func Categories() []string {
	return []string{
		CategoryDataScience,
		CategoryWebDevelopment,
		CategoryDevOps,
		CategoryFinanceAccounting,
		CategoryArtificialIntelligence,
	}
}

// IsKnownCategory reports whether c is one of Categories.
func IsKnownCategory(c string) bool {
	for _, known := range Categories() {
		if known == c {
			return true
		}
	}
	return false
}

// Course is a read-only catalog record.
// Once built, a Course is never modified; filtered and sorted views share the same pointers.
type Course struct {
	id        string
	title     string
	category  string
	level     Level
	price     Price
	rating    float64
	createdAt time.Time
}

// NewCourse creates a validated Course. Used when courses enter the catalog.
func NewCourse(id, title, category string, level Level, price Price, rating float64, createdAt time.Time) (*Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyCourseID
	}
	if err := validateCourseTitle(title); err != nil {
		return nil, err
	}
	if err := validateCourseCategory(category); err != nil {
		return nil, err
	}
	if _, err := ParseLevel(string(level)); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if math.IsNaN(rating) || rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}

	return &Course{
		id:        strings.TrimSpace(id),
		title:     strings.TrimSpace(title),
		category:  strings.TrimSpace(category),
		level:     level,
		price:     price,
		rating:    rating,
		createdAt: createdAt.UTC(),
	}, nil
}

// ReconstructCourse rebuilds a Course from persisted or transferred state.
// No validation is applied: the store is the source of truth.
func ReconstructCourse(id, title, category string, level Level, price Price, rating float64, createdAt time.Time) *Course {
	return &Course{
		id:        id,
		title:     title,
		category:  category,
		level:     level,
		price:     price,
		rating:    rating,
		createdAt: createdAt,
	}
}

// Getters

func (c *Course) ID() string {
	return c.id
}

func (c *Course) Title() string {
	return c.title
}

func (c *Course) Category() string {
	return c.category
}

func (c *Course) Level() Level {
	return c.level
}

func (c *Course) Price() Price {
	return c.price
}

func (c *Course) Rating() float64 {
	return c.rating
}

func (c *Course) CreatedAt() time.Time {
	return c.createdAt
}

// IsFree returns true if the course price is exactly zero.
func (c *Course) IsFree() bool {
	return c.price.IsZero()
}

// Validation helpers

func validatePrice(price Price) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if price.IsRepresentable() {
		return nil
	}
	if price.Rat().Cmp(numericLimit) >= 0 {
		return ErrPriceTooLarge
	}
	return ErrPriceTooPrecise
}

func validateCourseTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyCourseTitle
	}
	if len(trimmed) > 255 {
		return ErrCourseTitleTooLong
	}
	return nil
}

func validateCourseCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return ErrEmptyCourseCategory
	}
	if len(trimmed) > 100 {
		return ErrCourseCategoryTooLong
	}
	return nil
}
