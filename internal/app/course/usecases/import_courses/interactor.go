package import_courses

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/course-catalog-service/internal/app/course/contracts"
	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/course-catalog-service/internal/pkg/committer"
)

// CourseInput is one course to import. Empty ID gets a generated UUID,
// zero CreatedAt gets the clock time.
type CourseInput struct {
	ID        string
	Title     string
	Category  string
	Level     string
	Price     string // decimal, e.g. "49.99"; empty means free
	Rating    float64
	CreatedAt time.Time
}

// Request is the application-level import request.
type Request struct {
	Courses []CourseInput
}

// Interactor upserts a batch of courses in a single commit.
type Interactor struct {
	CourseRepo contracts.CourseRepo
	Committer  contracts.Committer
	Clock      clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(courseRepo contracts.CourseRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		CourseRepo: courseRepo,
		Committer:  committer,
		Clock:      clk,
	}
}

// Execute validates every course first; nothing is written if any course is invalid.
// It returns the imported ids in input order.
func (it *Interactor) Execute(ctx context.Context, req Request) ([]string, error) {
	if len(req.Courses) == 0 {
		return []string{}, nil
	}
	now := it.Clock.Now()

	// 1. Build domain courses
	courses := make([]*domain.Course, 0, len(req.Courses))
	seen := make(map[string]int, len(req.Courses))
	for i, in := range req.Courses {
		c, err := buildCourse(in, now)
		if err != nil {
			return nil, fmt.Errorf("course %d (%q): %w", i, in.Title, err)
		}
		if prev, dup := seen[c.ID()]; dup {
			return nil, fmt.Errorf("course %d: duplicate id %q (also at %d)", i, c.ID(), prev)
		}
		seen[c.ID()] = i
		courses = append(courses, c)
	}

	// 2. Build commit plan
	plan := commitplan.NewPlan()
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		plan.Add(it.CourseRepo.UpsertMut(c))
		ids = append(ids, c.ID())
	}

	// 3. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}
	return ids, nil
}

func buildCourse(in CourseInput, now time.Time) (*domain.Course, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	level, err := domain.ParseLevel(in.Level)
	if err != nil {
		return nil, err
	}

	price := domain.Free()
	if in.Price != "" {
		price, err = domain.NewPriceFromDecimal(in.Price)
		if err != nil {
			return nil, err
		}
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return domain.NewCourse(id, in.Title, in.Category, level, price, in.Rating, createdAt)
}
