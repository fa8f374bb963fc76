package browser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != CoursesPath || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHTTPClient_DecodesArray(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, `[
		{"_id":"c1","title":"Intro to ML","category":"Data Science","level":"Beginner","price":0,"rating":4.5,"createdAt":"2025-01-02T03:04:05Z"},
		{"_id":"c2","title":"Advanced Go","category":"Web Development","level":"Advanced","price":49.99,"rating":3,"createdAt":"2025-01-03T03:04:05.000Z"}
	]`)

	courses, err := NewHTTPClient(srv.URL+"/", srv.Client()).FetchCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.EqualValues(t, 1, hits.Load())

	assert.Equal(t, "c1", courses[0].ID())
	assert.True(t, courses[0].IsFree())
	assert.Equal(t, domain.LevelBeginner, courses[0].Level())
	assert.True(t, courses[0].CreatedAt().Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))

	assert.True(t, courses[1].Price().Equals(domain.NewPrice(4999, 100)))
	assert.Equal(t, 3.0, courses[1].Rating())
}

func TestHTTPClient_AcceptsLegacyEmptyEnvelope(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"message":"No courses found","courses":[]}`)

	courses, err := NewHTTPClient(srv.URL, srv.Client()).FetchCourses(context.Background())
	require.NoError(t, err)
	require.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestHTTPClient_EmptyArray(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `[]`)

	courses, err := NewHTTPClient(srv.URL, srv.Client()).FetchCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestHTTPClient_ServerError(t *testing.T) {
	srv, hits := newServer(t, http.StatusInternalServerError, `{"message":"Error fetching courses","error":"Internal Server Error"}`)

	_, err := NewHTTPClient(srv.URL, srv.Client()).FetchCourses(context.Background())
	require.Error(t, err)

	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusInternalServerError, herr.StatusCode)
	assert.Equal(t, "Error fetching courses: Internal Server Error", herr.Message)
	assert.Contains(t, err.Error(), "failed to fetch courses")
	assert.EqualValues(t, 1, hits.Load(), "no retry")
}

func TestHTTPClient_NonJSONError(t *testing.T) {
	srv, _ := newServer(t, http.StatusBadGateway, `upstream down`)

	_, err := NewHTTPClient(srv.URL, srv.Client()).FetchCourses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `"just a string"`)

	_, err := NewHTTPClient(srv.URL, srv.Client()).FetchCourses(context.Background())
	assert.ErrorContains(t, err, "unexpected response body")
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	client := srv.Client()
	srv.Close()

	_, err := NewHTTPClient(url, client).FetchCourses(context.Background())
	assert.ErrorContains(t, err, "failed to fetch courses")
}

func TestBrowser_WithHTTPClient(t *testing.T) {
	srv, hits := newServer(t, http.StatusInternalServerError, `{"message":"Error fetching courses","error":"Internal Server Error"}`)

	b := New(NewHTTPClient(srv.URL, srv.Client()), nil)
	require.NotPanics(t, func() { b.Activate(context.Background()) })

	assert.False(t, b.Loading())
	assert.Contains(t, b.Err(), "Error fetching courses")
	assert.Empty(t, b.View())
	assert.EqualValues(t, 1, hits.Load())
}

func TestSnippet_KeepsRunesWhole(t *testing.T) {
	// "é" is two bytes; a 5-byte cut would land inside the third one.
	got := snippet([]byte("éééé"), 5)
	assert.Equal(t, "éé...", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "short", snippet([]byte("  short  "), 10))
}

func TestHTTPError_MultibyteBodyStaysValidUTF8(t *testing.T) {
	body := strings.Repeat("ошибка ", 100)
	srv, _ := newServer(t, http.StatusBadGateway, body)

	_, err := NewHTTPClient(srv.URL, srv.Client()).FetchCourses(context.Background())
	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.Contains(t, err.Error(), "...")
}
