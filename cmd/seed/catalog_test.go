package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseCatalog(t *testing.T) {
	req, err := parseCatalog([]byte(`
courses:
  - id: c1
    title: Intro to ML
    category: Data Science
    level: Beginner
    price: 0
    rating: 4.5
    createdAt: 2025-01-02T03:04:05Z
  - title: No id
    category: DevOps
    level: advanced
`))
	require.NoError(t, err)
	require.Len(t, req.Courses, 2)

	c := req.Courses[0]
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "0", c.Price)
	assert.Equal(t, 4.5, c.Rating)
	assert.True(t, c.CreatedAt.Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))

	assert.Empty(t, req.Courses[1].ID)
	assert.True(t, req.Courses[1].CreatedAt.IsZero())
}

func TestParseCatalog_UnknownField(t *testing.T) {
	_, err := parseCatalog([]byte("courses:\n  - titel: typo\n"))
	assert.ErrorContains(t, err, "parse catalog")
}

func TestLoadCatalog_SampleFileIsValid(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "courses.yaml")
	req, err := loadCatalog(path)
	require.NoError(t, err)
	require.NotEmpty(t, req.Courses)

	ids, err := newImporter(nil, true, zaptest.NewLogger(t)).Execute(t.Context(), req)
	require.NoError(t, err)
	assert.Len(t, ids, len(req.Courses))
}

func TestSeedCmd_DryRun(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run", "--file", filepath.Join("..", "..", "testdata", "courses.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "courses valid (dry run)")
}

func TestSeedCmd_RequiresDatabase(t *testing.T) {
	t.Setenv("SPANNER_DATABASE", "")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", filepath.Join("..", "..", "testdata", "courses.yaml")})

	assert.ErrorContains(t, cmd.Execute(), "SPANNER_DATABASE")
}
