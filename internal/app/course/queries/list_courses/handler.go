package list_courses

import (
	"context"
	"fmt"

	contracts "github.com/murkotick/course-catalog-service/internal/app/course/contracts"
	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

// MaxCourses caps a listing. There is no pagination.
const MaxCourses = 50

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns up to MaxCourses courses. An empty catalog is a successful empty result.
// Every store failure is reported as domain.ErrCatalogUnavailable wrapping the cause.
func (h *Handler) Execute(ctx context.Context) ([]*domain.Course, error) {
	courses, err := h.readModel.ListCourses(ctx, MaxCourses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	if courses == nil {
		courses = []*domain.Course{}
	}
	if len(courses) > MaxCourses {
		courses = courses[:MaxCourses]
	}
	return courses, nil
}
