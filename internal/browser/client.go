package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/app/course/dto"
)

// CoursesPath is the catalog listing endpoint relative to the API base URL.
const CoursesPath = "/api/courses"

// HTTPError carries status/body for non-2xx responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	// Message is the server's "message" field, when the body had one.
	Message string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = snippet(e.Body, 300)
	}
	return fmt.Sprintf("failed to fetch courses: %s %s status=%d: %s", e.Method, e.URL, e.StatusCode, msg)
}

// snippet trims b to at most max bytes without splitting a UTF-8 sequence.
func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// HTTPClient fetches the catalog from the Query Service. It never retries.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a client for baseURL (e.g. "http://localhost:8080").
// A nil httpClient gets a client with a 30s timeout.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// FetchCourses issues exactly one GET request for the catalog.
func (c *HTTPClient) FetchCourses(ctx context.Context) ([]*domain.Course, error) {
	url := c.baseURL + CoursesPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &HTTPError{Method: req.Method, URL: url, StatusCode: resp.StatusCode, Body: body}
		var eb dto.ErrorDTO
		if json.Unmarshal(body, &eb) == nil {
			herr.Message = eb.Message
			if eb.Error != "" {
				herr.Message += ": " + eb.Error
			}
		}
		return nil, herr
	}

	items, err := decodeCourses(body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	return dto.ToCourses(items), nil
}

// decodeCourses accepts the canonical bare array and the legacy
// {"message": ..., "courses": [...]} empty-result envelope.
func decodeCourses(body []byte) ([]dto.CourseDTO, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var items []dto.CourseDTO
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode courses: %w", err)
		}
		return items, nil
	case '{':
		var env dto.EmptyCatalogDTO
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode courses envelope: %w", err)
		}
		return env.Courses, nil
	}
	return nil, fmt.Errorf("unexpected response body: %s", snippet(trimmed, 80))
}
