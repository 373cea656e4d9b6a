// Package htn models hierarchical task network planning problems.
//
// A Model collects user types, objects, fluents, the initial state,
// primitive actions, compound tasks, decomposition methods and goal tasks.
// Every declaration is type-checked as it is added, so a Problem obtained
// from a Model is well-formed and can be handed to a planner as is.
//
// The package also evaluates the declared semantics without planning:
//
//   - InitialState materialises the initial assignments and rejects
//     incomplete ones (every fluent binding needs exactly one value).
//   - Eval evaluates a condition against a state under parameter bindings.
//   - Decompositions lists the method groundings applicable to a goal task
//     in a state. It looks one level deep and never searches.
//   - Apply computes the successor of a single ground action.
//   - CheckPlan, Simulate and CheckRefinement vet a plan returned by an
//     external planner, the last against the goal tasks and their methods.
//
// Declaration errors wrap domain.ErrInvalidModel; goals naming unknown tasks
// or objects wrap domain.ErrUnboundTask.
package htn
