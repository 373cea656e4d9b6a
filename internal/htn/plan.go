package htn

import (
	"fmt"

	"elevhtn/internal/domain"
)

// CheckPlan verifies that every step of plan names a declared action with
// well-typed object arguments. It does not simulate the plan; use Apply for
// that. Failures wrap domain.ErrInvalidModel.
func CheckPlan(p domain.Problem, plan []domain.GroundAction) error {
	sc := schemaOf(p)
	for i, ga := range plan {
		a, ok := sc.actions[ga.Action]
		if !ok {
			return invalid("step %d: unknown action %q", i+1, ga.Action)
		}
		if err := sc.checkGround(fmt.Sprintf("step %d: action %s", i+1, a.Name), a.Params, ga.Args, invalid); err != nil {
			return err
		}
	}
	return nil
}

// Simulate applies plan to the initial state of p and returns the final
// state. It stops at the first step that is not applicable.
func Simulate(p domain.Problem, plan []domain.GroundAction) (State, error) {
	st, err := InitialState(p)
	if err != nil {
		return State{}, err
	}
	for i, ga := range plan {
		if st, err = Apply(p, st, ga); err != nil {
			return State{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return st, nil
}
