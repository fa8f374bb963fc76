package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/app/course/queries/list_courses"
	"github.com/murkotick/course-catalog-service/internal/config"
	"github.com/murkotick/course-catalog-service/internal/transport/httpapi/course"
)

type fakeStore struct {
	courses []*domain.Course
	err     error
}

func (f fakeStore) ListCourses(context.Context, int) ([]*domain.Course, error) {
	return f.courses, f.err
}

func (f fakeStore) Ping(context.Context) error { return f.err }

func newTestServer(store fakeStore, logger *zap.Logger) *Server {
	cfg := config.ServerConfig{
		AllowedOrigins: []string{"https://catalog.example"},
		RequestTimeout: 5 * time.Second,
	}
	h := course.NewHandler(course.Queries{List: list_courses.NewHandler(store)}, false, logger)
	return NewServer(cfg, h, store, logger)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(fakeStore{}, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/courses", http.StatusOK},
		{"/api/courses/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, tt.path)
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(fakeStore{}, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/courses", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_ReadyFailsWhenStoreDown(t *testing.T) {
	srv := newTestServer(fakeStore{err: errors.New("unreachable")}, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not_ready"}`, rec.Body.String())
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(fakeStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	req.Header.Set("Origin", "https://catalog.example")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, "https://catalog.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := newTestServer(fakeStore{err: errors.New("boom")}, zap.New(core))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	failures := logs.FilterMessage("list courses failed").All()
	require.Len(t, failures, 1)

	requests := logs.FilterMessage("http request").All()
	require.Len(t, requests, 1)
	fields := requests[0].ContextMap()
	assert.Equal(t, "/api/courses", fields["path"])
	assert.EqualValues(t, http.StatusInternalServerError, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
