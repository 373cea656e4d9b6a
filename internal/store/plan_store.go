package store

import (
	"path/filepath"
	"sync"

	"elevhtn/internal/domain"
)

const plansDir = "plans"

// PlanFileStore persists the latest plan for each problem.
type PlanFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPlanFileStore returns a PlanFileStore rooted at home.
func NewPlanFileStore(home string) *PlanFileStore {
	return &PlanFileStore{dir: filepath.Join(home, plansDir)}
}

// SavePlan writes plan under its problem name.
func (s *PlanFileStore) SavePlan(plan domain.Plan) error {
	path, err := recordPath(s.dir, string(plan.Problem))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(path, plan)
}

// LoadPlan retrieves the plan stored for name.
func (s *PlanFileStore) LoadPlan(name domain.ProblemName) (domain.Plan, bool, error) {
	path, err := recordPath(s.dir, string(name))
	if err != nil {
		return domain.Plan{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var plan domain.Plan
	ok, err := readJSON(path, &plan)
	if err != nil || !ok {
		return domain.Plan{}, false, err
	}
	return plan, true, nil
}

var _ domain.PlanStore = (*PlanFileStore)(nil)
