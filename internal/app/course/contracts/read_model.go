package contracts

import (
	"context"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

// ReadModel is the query side of the catalog.
type ReadModel interface {
	// ListCourses returns at most limit courses with no filter predicate and no
	// guaranteed order. Zero rows is not an error.
	ListCourses(ctx context.Context, limit int) ([]*domain.Course, error)

	// Ping checks that the backing store answers queries.
	Ping(ctx context.Context) error
}
