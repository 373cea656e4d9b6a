package solve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"elevhtn/internal/crypto"
	"elevhtn/internal/domain"
	"elevhtn/internal/htn"
)

// Service coordinates the problem store, the planner and the plan store.
type Service struct {
	problems domain.ProblemStore
	plans    domain.PlanStore
	planner  domain.Planner
	log      *slog.Logger

	now   func() time.Time
	newID func() domain.RequestID
}

// New constructs a solve Service. A nil logger uses slog.Default().
func New(
	problems domain.ProblemStore,
	plans domain.PlanStore,
	planner domain.Planner,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		problems: problems,
		plans:    plans,
		planner:  planner,
		log:      log,
		now:      time.Now,
		newID:    func() domain.RequestID { return domain.RequestID(uuid.NewString()) },
	}
}

// SolveProblem sends the stored problem name to the planner, checks the
// plan against the problem and stores it.
func (s *Service) SolveProblem(ctx context.Context, name domain.ProblemName) (domain.Plan, error) {
	p, ok, err := s.problems.LoadProblem(name)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("load problem %s: %w", name, err)
	}
	if !ok {
		return domain.Plan{}, fmt.Errorf("problem %s: %w", name, domain.ErrNotFound)
	}
	fp, err := crypto.Fingerprint(p)
	if err != nil {
		return domain.Plan{}, err
	}

	id := s.newID()
	log := s.log.With("problem", name, "request_id", id)
	log.Debug("sending problem to planner", "fingerprint", fp)

	started := s.now()
	actions, err := s.planner.Solve(ctx, id, p)
	if err != nil {
		log.Warn("planner failed", "err", err)
		return domain.Plan{}, err
	}
	if err := htn.CheckPlan(p, actions); err != nil {
		log.Warn("planner returned a malformed plan", "err", err)
		return domain.Plan{}, fmt.Errorf("solve %s: %w: %w", name, domain.ErrPlannerFailure, err)
	}
	if _, err := htn.Simulate(p, actions); err != nil {
		log.Warn("planner returned an inapplicable plan", "err", err)
		return domain.Plan{}, fmt.Errorf("solve %s: %w: %w", name, domain.ErrPlannerFailure, err)
	}
	if err := htn.CheckRefinement(p, actions); err != nil {
		log.Warn("planner returned a plan that misses its goals", "err", err)
		return domain.Plan{}, fmt.Errorf("solve %s: %w: %w", name, domain.ErrPlannerFailure, err)
	}

	plan := domain.Plan{
		Problem:     name,
		Fingerprint: fp,
		RequestID:   id,
		Actions:     actions,
		CreatedUTC:  s.now().UTC().Unix(),
	}
	if err := s.plans.SavePlan(plan); err != nil {
		return domain.Plan{}, fmt.Errorf("save plan %s: %w", name, err)
	}
	log.Info("plan stored", "steps", len(actions), "elapsed", s.now().Sub(started))
	return plan, nil
}

// LatestPlan returns the last stored plan for name.
func (s *Service) LatestPlan(name domain.ProblemName) (domain.Plan, bool, error) {
	return s.plans.LoadPlan(name)
}

var _ domain.SolveService = (*Service)(nil)
