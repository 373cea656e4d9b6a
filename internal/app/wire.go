package app

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"elevhtn/internal/domain"
	"elevhtn/internal/planner"
	problemsvc "elevhtn/internal/services/problem"
	solvesvc "elevhtn/internal/services/solve"
	"elevhtn/internal/store"
)

// Wire bundles the services and settings the CLI commands use.
type Wire struct {
	Problems *problemsvc.Service
	Solver   domain.SolveService
	Logger   *slog.Logger
	Timeout  time.Duration
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("app: home directory is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// File-based stores
	problemStore := store.NewProblemFileStore(cfg.Home)
	planStore := store.NewPlanFileStore(cfg.Home)

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	pc := planner.NewHTTP(cfg.PlannerURL, httpClient)

	return &Wire{
		Problems: problemsvc.New(problemStore, logger),
		Solver:   solvesvc.New(problemStore, planStore, pc, logger),
		Logger:   logger,
		Timeout:  timeout,
	}, nil
}
