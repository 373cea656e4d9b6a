package interfaces

import (
	"context"

	domaintypes "elevhtn/internal/domain/types"
)

// ProblemService builds, stores and inspects problems.
type ProblemService interface {
	BuildProblem(ctx context.Context, req domaintypes.BuildRequest) (
		domaintypes.Problem,
		domaintypes.Fingerprint,
		error,
	)
	LoadProblem(name domaintypes.ProblemName) (domaintypes.Problem, error)
	FingerprintProblem(name domaintypes.ProblemName) (domaintypes.Fingerprint, error)
	ListProblems() ([]domaintypes.ProblemName, error)
}

// SolveService hands stored problems to the planner and keeps the result.
type SolveService interface {
	SolveProblem(ctx context.Context, name domaintypes.ProblemName) (domaintypes.Plan, error)
	LatestPlan(name domaintypes.ProblemName) (domaintypes.Plan, bool, error)
}
