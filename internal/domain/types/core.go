package types

// ProblemName identifies a stored problem.
type ProblemName string

// String returns the string form of the name.
func (n ProblemName) String() string { return string(n) }

// Fingerprint is a short content digest of a problem presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// RequestID correlates a planner request with its response.
type RequestID string

// String returns the string form of the request identifier.
func (id RequestID) String() string { return string(id) }
