package list_courses

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/models/m_course"
)

// SpannerListCoursesQuery reads courses straight from the courses table.
type SpannerListCoursesQuery struct {
	Client *spanner.Client
}

func NewSpannerListCoursesQuery(client *spanner.Client) *SpannerListCoursesQuery {
	return &SpannerListCoursesQuery{Client: client}
}

// ListCourses selects up to limit rows with no predicate and no ORDER BY.
// Row order is whatever Spanner returns; clients sort locally.
func (q *SpannerListCoursesQuery) ListCourses(ctx context.Context, limit int) ([]*domain.Course, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s FROM %s LIMIT @limit`,
			strings.Join(m_course.SelectColumns, ", "), m_course.TableName),
		Params: map[string]interface{}{"limit": int64(limit)},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*domain.Course, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			id        string
			title     string
			category  string
			level     string
			price     big.Rat
			rating    float64
			createdAt time.Time
		)
		if err := row.Columns(&id, &title, &category, &level, &price, &rating, &createdAt); err != nil {
			return nil, err
		}

		out = append(out, domain.ReconstructCourse(
			id, title, category, domain.Level(level),
			domain.NewPriceFromRat(&price), rating, createdAt.UTC(),
		))
	}
}
