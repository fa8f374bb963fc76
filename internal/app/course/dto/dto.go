package dto

import (
	"time"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

// CourseDTO is the wire representation of a course returned by GET /api/courses.
// The identifier keeps the document-store "_id" key so existing clients can key lists on it.
type CourseDTO struct {
	ID        string       `json:"_id"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	Level     string       `json:"level"`
	Price     domain.Price `json:"price"`
	Rating    float64      `json:"rating"`
	CreatedAt time.Time    `json:"createdAt"`
}

// EmptyCatalogDTO is the legacy "no results" envelope. The service never emits it,
// but clients still accept it.
type EmptyCatalogDTO struct {
	Message string      `json:"message"`
	Courses []CourseDTO `json:"courses"`
}

// ErrorDTO is the body of a failed catalog request.
type ErrorDTO struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FromCourse maps a domain course to its wire form.
func FromCourse(c *domain.Course) CourseDTO {
	return CourseDTO{
		ID:        c.ID(),
		Title:     c.Title(),
		Category:  c.Category(),
		Level:     string(c.Level()),
		Price:     c.Price(),
		Rating:    c.Rating(),
		CreatedAt: c.CreatedAt().UTC(),
	}
}

// FromCourses maps a list; the result is never nil so it encodes as [].
func FromCourses(courses []*domain.Course) []CourseDTO {
	out := make([]CourseDTO, 0, len(courses))
	for _, c := range courses {
		if c == nil {
			continue
		}
		out = append(out, FromCourse(c))
	}
	return out
}

// ToCourse rebuilds the read-only domain course. No validation: the server is authoritative.
func (d CourseDTO) ToCourse() *domain.Course {
	return domain.ReconstructCourse(d.ID, d.Title, d.Category, domain.Level(d.Level), d.Price, d.Rating, d.CreatedAt)
}

// ToCourses maps a decoded list back to domain courses.
func ToCourses(in []CourseDTO) []*domain.Course {
	out := make([]*domain.Course, 0, len(in))
	for _, d := range in {
		out = append(out, d.ToCourse())
	}
	return out
}
