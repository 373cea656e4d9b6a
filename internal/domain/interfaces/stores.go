package interfaces

import domaintypes "elevhtn/internal/domain/types"

// ProblemStore persists built problems by name.
type ProblemStore interface {
	SaveProblem(name domaintypes.ProblemName, problem domaintypes.Problem) error
	LoadProblem(name domaintypes.ProblemName) (domaintypes.Problem, bool, error)
	ListProblems() ([]domaintypes.ProblemName, error)
}

// PlanStore keeps the last plan returned for each problem.
type PlanStore interface {
	SavePlan(plan domaintypes.Plan) error
	LoadPlan(name domaintypes.ProblemName) (domaintypes.Plan, bool, error)
}
