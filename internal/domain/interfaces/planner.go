package interfaces

import (
	"context"

	domaintypes "elevhtn/internal/domain/types"
)

// Planner is the external planning engine. It either returns a totally
// ordered plan or an error wrapping domain.ErrPlannerFailure.
type Planner interface {
	Solve(
		ctx context.Context,
		id domaintypes.RequestID,
		problem domaintypes.Problem,
	) ([]domaintypes.GroundAction, error)
}
