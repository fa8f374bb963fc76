package m_course

// Field constants for the courses table.
const (
	TableName = "courses"

	ColCourseID  = "course_id"
	ColTitle     = "title"
	ColCategory  = "category"
	ColLevel     = "level"
	ColPrice     = "price"
	ColRating    = "rating"
	ColCreatedAt = "created_at"
)

// SelectColumns is the column order used by read queries and row scanning.
var SelectColumns = []string{
	ColCourseID,
	ColTitle,
	ColCategory,
	ColLevel,
	ColPrice,
	ColRating,
	ColCreatedAt,
}
