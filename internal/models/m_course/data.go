package m_course

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// UpsertMutation builds a spanner.InsertOrUpdate mutation for a course from a map of values.
// Expected keys are the column names declared in fields.go.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

// BuildUpsertMap prepares the full row of a course.
// price is stored as NUMERIC, so it is passed as a big.Rat value.
func BuildUpsertMap(courseID, title, category, level string, price *big.Rat, rating float64, createdAt time.Time) map[string]interface{} {
	if price == nil {
		price = new(big.Rat)
	}
	return map[string]interface{}{
		ColCourseID:  courseID,
		ColTitle:     title,
		ColCategory:  category,
		ColLevel:     level,
		ColPrice:     *price,
		ColRating:    rating,
		ColCreatedAt: createdAt,
	}
}
