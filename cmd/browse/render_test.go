package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
)

var created = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func sampleCourses() []*domain.Course {
	return []*domain.Course{
		domain.ReconstructCourse("c1", "Intro to ML", domain.CategoryDataScience, domain.LevelBeginner, domain.Free(), 4.5, created),
		domain.ReconstructCourse("c2", "Advanced Go", domain.CategoryWebDevelopment, domain.LevelAdvanced, domain.NewPrice(995, 20), 3, created),
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatText, sampleCourses(), "Showing 2 results"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "TITLE"))
	assert.Contains(t, lines[1], "Intro to ML")
	assert.Contains(t, lines[1], "Free")
	assert.Contains(t, lines[2], "$49.75")
	assert.Contains(t, lines[2], "2025-03-01")
	assert.Equal(t, "Showing 2 results", lines[3])
}

func TestRenderText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatText, nil, "No courses found"))
	assert.Equal(t, "No courses found\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatJSON, sampleCourses(), "ignored"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0]["_id"])
	assert.Equal(t, 0.0, got[0]["price"])
	assert.Equal(t, 49.75, got[1]["price"])
}

func TestRenderJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatJSON, nil, ""))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatPrice(t *testing.T) {
	subCent, err := domain.NewPriceFromDecimal("0.001")
	require.NoError(t, err)

	tests := []struct {
		price domain.Price
		want  string
	}{
		{domain.Free(), "Free"},
		{domain.NewPrice(19, 1), "$19.00"},
		{domain.NewPrice(4999, 100), "$49.99"},
		{domain.NewPrice(1, 2), "$0.50"},
		{subCent, "$0.001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.price), tt.price.String())
	}
}
