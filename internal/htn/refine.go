package htn

import (
	"fmt"
	"slices"

	"elevhtn/internal/domain"
)

// CheckRefinement verifies that plan carries out the goals of p in order.
// Each goal must have an applicable method grounding, in the state reached so
// far, whose subtasks match the next steps of the plan; compound subtasks are
// refined the same way. Every step must be consumed by some goal. Failures
// wrap domain.ErrInvalidModel, or domain.ErrNotApplicable when a matched step
// cannot be applied.
func CheckRefinement(p domain.Problem, plan []domain.GroundAction) error {
	st, err := InitialState(p)
	if err != nil {
		return err
	}
	r := refiner{p: p, sc: schemaOf(p), plan: plan}
	// Refinement that consumes no step can only nest this deep before it
	// must be cycling.
	r.maxDepth = len(plan) + len(p.Methods) + 1

	pos := 0
	for _, goal := range p.Goals {
		next, end, ok, err := r.task(GroundTask{Name: goal.Task, Args: goal.Args}, st, pos, 0)
		if err != nil {
			return err
		}
		if !ok {
			return invalid("plan does not carry out goal %s from step %d", GroundTask{Name: goal.Task, Args: goal.Args}, pos+1)
		}
		st, pos = next, end
	}
	if pos != len(plan) {
		return invalid("plan has %d steps beyond its goals, starting at step %d (%s)", len(plan)-pos, pos+1, plan[pos])
	}
	return nil
}

type refiner struct {
	p        domain.Problem
	sc       *schema
	plan     []domain.GroundAction
	maxDepth int
}

// task refines t from plan position pos in st. It reports the successor
// state and position of the first grounding that matches.
func (r refiner) task(t GroundTask, st State, pos, depth int) (State, int, bool, error) {
	if _, primitive := r.sc.actions[t.Name]; primitive {
		if pos >= len(r.plan) {
			return State{}, 0, false, nil
		}
		step := r.plan[pos]
		if step.Action != t.Name || !slices.Equal(step.Args, t.Args) {
			return State{}, 0, false, nil
		}
		next, err := Apply(r.p, st, step)
		if err != nil {
			return State{}, 0, false, fmt.Errorf("step %d: %w", pos+1, err)
		}
		return next, pos + 1, true, nil
	}
	if depth >= r.maxDepth {
		return State{}, 0, false, nil
	}

	ds, err := Decompositions(r.p, st, domain.GoalTask{Task: t.Name, Args: t.Args})
	if err != nil {
		return State{}, 0, false, err
	}
	for _, d := range ds {
		next, end, ok, err := r.sequence(d.Subtasks, st, pos, depth+1)
		if err != nil {
			return State{}, 0, false, err
		}
		if ok {
			return next, end, true, nil
		}
	}
	return State{}, 0, false, nil
}

func (r refiner) sequence(ts []GroundTask, st State, pos, depth int) (State, int, bool, error) {
	for _, t := range ts {
		next, end, ok, err := r.task(t, st, pos, depth)
		if err != nil || !ok {
			return State{}, 0, false, err
		}
		st, pos = next, end
	}
	return st, pos, true, nil
}
