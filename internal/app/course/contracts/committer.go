package contracts

import (
	"context"

	commitplan "github.com/murkotick/course-catalog-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. It keeps usecases
// independent of the Spanner client.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
