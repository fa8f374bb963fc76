package course

import (
	"errors"
	"net/http"

	"github.com/murkotick/course-catalog-service/internal/app/course/domain"
	"github.com/murkotick/course-catalog-service/internal/app/course/dto"
)

const (
	errorMessage      = "Error fetching courses"
	genericDiagnostic = "Internal Server Error"
)

// mapError translates a catalog failure into status and body.
// The catalog has a single failure kind, so every error is a 500; only the
// diagnostic differs by environment.
func mapError(err error, expose bool) (int, dto.ErrorDTO) {
	body := dto.ErrorDTO{Message: errorMessage, Error: genericDiagnostic}
	if expose && err != nil {
		body.Error = cause(err).Error()
	}
	return http.StatusInternalServerError, body
}

// cause drops the ErrCatalogUnavailable classification and returns the
// underlying store error it was joined with.
func cause(err error) error {
	multi, ok := err.(interface{ Unwrap() []error })
	if !ok || !errors.Is(err, domain.ErrCatalogUnavailable) {
		return err
	}
	for _, e := range multi.Unwrap() {
		if e != domain.ErrCatalogUnavailable {
			return e
		}
	}
	return err
}
