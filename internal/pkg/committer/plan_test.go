package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func upsert(id string) *spanner.Mutation {
	return spanner.InsertOrUpdate("courses", []string{"course_id"}, []interface{}{id})
}

func TestPlan_Add(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	p.Add(nil)
	assert.True(t, p.IsEmpty())

	first, second := upsert("c1"), upsert("c2")
	p.Add(first, nil, second)
	require.Equal(t, 2, p.Len())
	assert.Same(t, first, p.Mutations()[0])
	assert.Same(t, second, p.Mutations()[1])
}

func TestPlan_ZeroAndNil(t *testing.T) {
	var nilPlan *Plan
	assert.True(t, nilPlan.IsEmpty())
	assert.Nil(t, nilPlan.Mutations())

	var zero Plan
	zero.Add(upsert("c1"))
	assert.Equal(t, 1, zero.Len())
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	require.NoError(t, a.Apply(context.Background(), nil))
	require.NoError(t, a.Apply(context.Background(), NewPlan()))
}

func TestAdapter_NilClient(t *testing.T) {
	p := NewPlan()
	p.Add(upsert("c1"))

	err := NewAdapter(nil, WithTransactionTag("course-import"), WithLogger(zaptest.NewLogger(t))).Apply(context.Background(), p)
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestNewAdapter_Options(t *testing.T) {
	a := NewAdapter(nil, WithTransactionTag("course-import"), WithLogger(nil))
	assert.Equal(t, "course-import", a.tag)
	assert.NotNil(t, a.logger)
}
