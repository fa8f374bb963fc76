package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/models/m_course"
)

// CourseRepo is the Spanner implementation of contracts.CourseRepo.
// It returns *spanner.Mutation but never applies it.
type CourseRepo struct{}

func NewCourseRepo() *CourseRepo {
	return &CourseRepo{}
}

// UpsertMut returns an InsertOrUpdate mutation for c, so re-importing a catalog is idempotent.
func (r *CourseRepo) UpsertMut(c *domain.Course) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_course.UpsertMutation(buildUpsertValues(c))
}

// buildUpsertValues is split out so tests can inspect the row without a mutation.
func buildUpsertValues(c *domain.Course) map[string]interface{} {
	return m_course.BuildUpsertMap(
		c.ID(),
		c.Title(),
		c.Category(),
		string(c.Level()),
		c.Price().Rat(),
		c.Rating(),
		c.CreatedAt().UTC(),
	)
}
