// Package planner provides an HTTP implementation of the domain.Planner
// interface.
//
// The client sends a problem to an external HTN planner and returns the plan
// it answers with. Transport failures, non-2xx statuses, malformed bodies and
// any answer other than a solved plan are all reported as
// domain.ErrPlannerFailure. The client never retries. Each Solve runs in an
// OpenTelemetry client span that records the outcome.
package planner
