package types

import "strings"

// GroundAction is an action with every parameter bound to an object.
type GroundAction struct {
	Action string   `json:"action" yaml:"action"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// String renders the action as name(arg, ...).
func (a GroundAction) String() string {
	return a.Action + "(" + strings.Join(a.Args, ", ") + ")"
}

// Plan is a totally ordered sequence of ground actions returned by a planner.
type Plan struct {
	Problem     ProblemName    `json:"problem"`
	Fingerprint Fingerprint    `json:"fingerprint"`
	RequestID   RequestID      `json:"request_id,omitempty"`
	Actions     []GroundAction `json:"actions"`
	CreatedUTC  int64          `json:"created_utc"`
}
