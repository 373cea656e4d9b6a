// Package solve sends stored problems to the external planner and keeps the
// plans it returns.
//
// A returned plan is accepted only if every step names a declared action
// over declared objects, the steps apply in order from the initial state,
// and they refine the problem's goal tasks through its methods.
// Anything else is a planner failure; nothing is retried.
package solve
