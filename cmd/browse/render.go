package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/app/course/dto"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func render(w io.Writer, format string, courses []*domain.Course, status string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromCourses(courses))
	}
	return renderText(w, courses, status)
}

func renderText(w io.Writer, courses []*domain.Course, status string) error {
	if len(courses) == 0 {
		_, err := fmt.Fprintln(w, status)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCATEGORY\tLEVEL\tPRICE\tRATING\tCREATED")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			c.Title(), c.Category(), c.Level(), formatPrice(c.Price()), c.Rating(), c.CreatedAt().Format("2006-01-02"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, status)
	return err
}

// formatPrice shows cents, or every significant digit for sub-cent prices so a
// paid course never renders as $0.00.
func formatPrice(p domain.Price) string {
	if p.IsZero() {
		return "Free"
	}
	cents := p.Rat().FloatString(2)
	if _, frac, ok := strings.Cut(p.String(), "."); ok && len(frac) > 2 {
		return "$" + p.String()
	}
	return "$" + cents
}
