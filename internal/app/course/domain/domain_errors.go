package domain

import "errors"

// Domain errors for the Course entity
var (
	// ErrEmptyCourseID indicates a course without an identifier.
	ErrEmptyCourseID = errors.New("course id cannot be empty")

	// ErrEmptyCourseTitle indicates an attempt to import a course with an empty title.
	ErrEmptyCourseTitle = errors.New("course title cannot be empty")

	// ErrEmptyCourseCategory indicates an attempt to import a course with an empty category.
	ErrEmptyCourseCategory = errors.New("course category cannot be empty")

	// ErrCourseTitleTooLong indicates the title exceeds maximum length.
	ErrCourseTitleTooLong = errors.New("course title exceeds maximum length of 255 characters")

	// ErrCourseCategoryTooLong indicates the category exceeds maximum length.
	ErrCourseCategoryTooLong = errors.New("course category exceeds maximum length of 100 characters")

	// ErrInvalidLevel indicates a level outside Beginner/Intermediate/Advanced.
	ErrInvalidLevel = errors.New("course level must be one of Beginner, Intermediate, Advanced")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrPriceTooPrecise indicates a price with more than 9 fractional digits.
	ErrPriceTooPrecise = errors.New("price must have at most 9 decimal places")

	// ErrPriceTooLarge indicates a price with more than 29 integer digits.
	ErrPriceTooLarge = errors.New("price exceeds 29 integer digits")

	// ErrMissingPrice indicates a course record whose price is null.
	ErrMissingPrice = errors.New("price is missing")

	// ErrInvalidRating indicates a rating outside the 0-5 range.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

// Browser selection errors
var (
	// ErrInvalidSortOption indicates an unknown sort option label.
	ErrInvalidSortOption = errors.New("unknown sort option")

	// ErrInvalidPriceBucket indicates a price bucket other than Free or Paid.
	ErrInvalidPriceBucket = errors.New("price bucket must be Free or Paid")
)

// ErrCatalogUnavailable is the single failure kind of the catalog query:
// the store is unreachable or the query failed.
var ErrCatalogUnavailable = errors.New("course catalog unavailable")
