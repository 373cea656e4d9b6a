// Package solve defines the JSON envelopes exchanged with an external HTN
// planner.
//
// A client POSTs a Request to Path on the planner and receives a Response.
// Only StatusSolved carries a plan; every other status, and any response
// that does not answer the request it was sent for, is a planner failure.
package solve
