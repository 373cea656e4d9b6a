package problem

import (
	"context"
	"fmt"
	"log/slog"

	"elevhtn/internal/crypto"
	"elevhtn/internal/domain"
	"elevhtn/internal/elevator"
	"elevhtn/internal/htn"
)

// Service builds and stores problems.
type Service struct {
	problems domain.ProblemStore
	log      *slog.Logger
}

// New constructs a problem Service. A nil logger uses slog.Default().
func New(problems domain.ProblemStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{problems: problems, log: log}
}

// BuildProblem builds the problem described by req, stores it under its
// name and returns it with its fingerprint. Nothing is stored when the build
// fails.
func (s *Service) BuildProblem(ctx context.Context, req domain.BuildRequest) (domain.Problem, domain.Fingerprint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Problem{}, "", err
	}
	name := req.Name
	if name == "" {
		name = elevator.DefaultName
	}
	opts := []elevator.Option{elevator.WithName(string(name))}
	if req.Destinations != nil {
		opts = append(opts, elevator.WithDestinations(req.Destinations))
	}

	p, err := elevator.Build(req.Floors, req.People, req.PersonFloors, opts...)
	if err != nil {
		s.log.Debug("build rejected", "problem", name, "err", err)
		return domain.Problem{}, "", err
	}
	fp, err := crypto.Fingerprint(p)
	if err != nil {
		return domain.Problem{}, "", err
	}
	if err := s.problems.SaveProblem(name, p); err != nil {
		return domain.Problem{}, "", fmt.Errorf("save problem %s: %w", name, err)
	}

	s.log.Info("problem built",
		"problem", name,
		"fingerprint", fp,
		"objects", len(p.Objects),
		"goals", len(p.Goals),
	)
	return p, fp, nil
}

// LoadProblem returns the stored problem or an error wrapping
// domain.ErrNotFound.
func (s *Service) LoadProblem(name domain.ProblemName) (domain.Problem, error) {
	p, ok, err := s.problems.LoadProblem(name)
	if err != nil {
		return domain.Problem{}, fmt.Errorf("load problem %s: %w", name, err)
	}
	if !ok {
		return domain.Problem{}, fmt.Errorf("problem %s: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

// FingerprintProblem recomputes the fingerprint of a stored problem.
func (s *Service) FingerprintProblem(name domain.ProblemName) (domain.Fingerprint, error) {
	p, err := s.LoadProblem(name)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(p)
}

// ListProblems returns the stored problem names.
func (s *Service) ListProblems() ([]domain.ProblemName, error) {
	return s.problems.ListProblems()
}

// Decompositions lists the methods of transport_person(person, floor) that
// apply in the stored problem's initial state.
func (s *Service) Decompositions(name domain.ProblemName, person, floor string) ([]htn.Decomposition, error) {
	p, err := s.LoadProblem(name)
	if err != nil {
		return nil, err
	}
	st, err := htn.InitialState(p)
	if err != nil {
		return nil, err
	}
	ds, err := htn.Decompositions(p, st, elevator.Transport(person, floor))
	if err != nil {
		return nil, err
	}
	s.log.Debug("decompositions", "problem", name, "person", person, "floor", floor, "count", len(ds))
	return ds, nil
}

var _ domain.ProblemService = (*Service)(nil)
