package htn

import (
	"fmt"

	"elevhtn/internal/domain"
)

// Apply checks the preconditions of ga in st and returns the successor
// state. Effects are evaluated against st before any is assigned. A failing
// precondition is reported as domain.ErrNotApplicable.
func Apply(p domain.Problem, st State, ga domain.GroundAction) (State, error) {
	sc := schemaOf(p)
	a, ok := sc.actions[ga.Action]
	if !ok {
		return State{}, invalid("unknown action %q", ga.Action)
	}
	if err := sc.checkGround("action "+a.Name, a.Params, ga.Args, invalid); err != nil {
		return State{}, err
	}
	b := make(Bindings, len(a.Params))
	for i, prm := range a.Params {
		b[prm.Name] = ga.Args[i]
	}

	idx, err := firstFailing(a.Preconditions, st, b)
	if err != nil {
		return State{}, wrapOwner("action "+a.Name, err)
	}
	if idx >= 0 {
		return State{}, fmt.Errorf("htn: %s: %w: %s", ga, domain.ErrNotApplicable, a.Preconditions[idx])
	}

	type write struct {
		key   string
		value domain.Value
	}
	writes := make([]write, 0, len(a.Effects))
	for _, e := range a.Effects {
		key, err := fluentKey(e.Fluent, st, b)
		if err != nil {
			return State{}, wrapOwner("action "+a.Name, err)
		}
		v, err := Resolve(e.Value, st, b)
		if err != nil {
			return State{}, wrapOwner("action "+a.Name, err)
		}
		writes = append(writes, write{key: key, value: v})
	}
	next := st.Clone()
	for _, w := range writes {
		next.set(w.key, w.value)
	}
	return next, nil
}
