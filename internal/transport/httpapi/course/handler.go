package course

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/murkotick/course-catalog-service/internal/app/course/dto"
	"github.com/murkotick/course-catalog-service/internal/app/course/queries/list_courses"
)

// Queries groups read handlers.
type Queries struct {
	List *list_courses.Handler
}

// Handler is a thin HTTP transport adapter for the catalog.
// It maps application results to the JSON wire shapes and delegates to query handlers.
type Handler struct {
	queries      Queries
	exposeErrors bool
	logger       *zap.Logger
}

// NewHandler builds the handler. exposeErrors controls whether failure diagnostics
// reach the client; it must be false in production.
func NewHandler(qry Queries, exposeErrors bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{queries: qry, exposeErrors: exposeErrors, logger: logger}
}

// Routes mounts the catalog endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/courses", h.ListCourses)
}

// ListCourses serves GET /api/courses. It takes no parameters.
// An empty catalog is 200 with [].
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.queries.List.Execute(r.Context())
	if err != nil {
		h.logger.Error("list courses failed",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		status, body := mapError(err, h.exposeErrors)
		h.respondJSON(w, status, body)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.FromCourses(courses))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
