package queries

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/app/course/queries/list_courses"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	client *spanner.Client
	listQ  *list_courses.SpannerListCoursesQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		client: client,
		listQ:  list_courses.NewSpannerListCoursesQuery(client),
	}
}

func (rm *SpannerReadModel) ListCourses(ctx context.Context, limit int) ([]*domain.Course, error) {
	return rm.listQ.ListCourses(ctx, limit)
}

// Ping runs a trivial query to confirm the database is reachable.
func (rm *SpannerReadModel) Ping(ctx context.Context) error {
	iter := rm.client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("spanner ping: %w", err)
	}
	return nil
}
