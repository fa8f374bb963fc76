package contracts

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

// CourseRepo is the write-side repository interface for courses.
// Methods return Spanner mutations; they do not apply them.
type CourseRepo interface {
	// UpsertMut returns a mutation that inserts or replaces the course (or nil).
	UpsertMut(c *domain.Course) *spanner.Mutation
}
