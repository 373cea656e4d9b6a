// Package elevator builds the elevator-transport HTN problem.
//
// Build declares the type hierarchy (Loc > Floor, Elevator; Person), one
// object per floor and per person plus a single elevator, the three fluents,
// the initial state, the five primitive actions, the transport_person task
// with its two methods, and one goal per person.
//
// The bodies of the primitive actions and the goal attachment are extension
// points (ActionBodies, GoalPolicy). DefaultBodies and the destination policy
// are used unless options replace them.
package elevator
