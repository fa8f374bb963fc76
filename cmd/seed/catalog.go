package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/murkotick/course-catalog-service/internal/app/course/usecases/import_courses"
)

type catalogFile struct {
	Courses []courseEntry `yaml:"courses"`
}

type courseEntry struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Category  string    `yaml:"category"`
	Level     string    `yaml:"level"`
	Price     string    `yaml:"price"`
	Rating    float64   `yaml:"rating"`
	CreatedAt time.Time `yaml:"createdAt"`
}

func loadCatalog(path string) (import_courses.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return import_courses.Request{}, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(data)
}

// parseCatalog rejects unknown keys so typos do not silently drop fields.
func parseCatalog(data []byte) (import_courses.Request, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return import_courses.Request{}, fmt.Errorf("parse catalog: %w", err)
	}

	req := import_courses.Request{Courses: make([]import_courses.CourseInput, 0, len(f.Courses))}
	for _, e := range f.Courses {
		req.Courses = append(req.Courses, import_courses.CourseInput{
			ID:        e.ID,
			Title:     e.Title,
			Category:  e.Category,
			Level:     e.Level,
			Price:     e.Price,
			Rating:    e.Rating,
			CreatedAt: e.CreatedAt,
		})
	}
	return req, nil
}
