package solve

import (
	"fmt"

	"elevhtn/internal/domain"
)

// Path is the planner endpoint, relative to its base URL.
const Path = "/solve"

// Status reports the planner's outcome.
type Status string

const (
	StatusSolved     Status = "solved"
	StatusUnsolvable Status = "unsolvable"
	StatusTimeout    Status = "timeout"
	StatusError      Status = "error"
)

// Known reports whether s is one of the defined statuses.
func (s Status) Known() bool {
	switch s {
	case StatusSolved, StatusUnsolvable, StatusTimeout, StatusError:
		return true
	}
	return false
}

// Request asks the planner to solve one problem.
type Request struct {
	RequestID domain.RequestID `json:"request_id"`
	Problem   domain.Problem   `json:"problem"`
}

// Response is the planner's answer.
type Response struct {
	RequestID domain.RequestID      `json:"request_id"`
	Status    Status                `json:"status"`
	Plan      []domain.GroundAction `json:"plan,omitempty"`
	Message   string                `json:"message,omitempty"`
}

// Result returns the plan for request id, or an error wrapping
// domain.ErrPlannerFailure.
func (r Response) Result(id domain.RequestID) ([]domain.GroundAction, error) {
	if r.RequestID != id {
		return nil, fmt.Errorf("planner: %w: response for request %q, want %q", domain.ErrPlannerFailure, r.RequestID, id)
	}
	switch {
	case r.Status == StatusSolved:
		return r.Plan, nil
	case !r.Status.Known():
		return nil, fmt.Errorf("planner: %w: unknown status %q", domain.ErrPlannerFailure, r.Status)
	case r.Message != "":
		return nil, fmt.Errorf("planner: %w: %s: %s", domain.ErrPlannerFailure, r.Status, r.Message)
	default:
		return nil, fmt.Errorf("planner: %w: %s", domain.ErrPlannerFailure, r.Status)
	}
}
