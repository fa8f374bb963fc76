package list_courses

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

type fakeReadModel struct {
	courses   []*domain.Course
	err       error
	gotLimit  int
	callCount int
}

func (f *fakeReadModel) ListCourses(_ context.Context, limit int) ([]*domain.Course, error) {
	f.callCount++
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeReadModel) Ping(context.Context) error { return f.err }

func makeCourses(n int) []*domain.Course {
	out := make([]*domain.Course, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.ReconstructCourse(fmt.Sprintf("c%d", i), "t", domain.CategoryDevOps,
			domain.LevelBeginner, domain.Free(), 3, time.Unix(int64(i), 0).UTC()))
	}
	return out
}

func TestExecute_RequestsCap(t *testing.T) {
	rm := &fakeReadModel{courses: makeCourses(3)}

	got, err := NewHandler(rm).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, MaxCourses, rm.gotLimit)
	assert.Equal(t, 1, rm.callCount)
}

func TestExecute_EmptyIsNotAnError(t *testing.T) {
	got, err := NewHandler(&fakeReadModel{}).Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExecute_TruncatesOversizedResult(t *testing.T) {
	got, err := NewHandler(&fakeReadModel{courses: makeCourses(MaxCourses + 7)}).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, MaxCourses)
}

func TestExecute_WrapsStoreFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	_, err := NewHandler(&fakeReadModel{err: cause}).Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
