package htn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevhtn/internal/domain"
	"elevhtn/internal/htn"
)

// lampProblem completes lampModel with actions, a task and two methods.
func lampProblem(t *testing.T, lit bool) domain.Problem {
	t.Helper()
	m, litF, inF := lampModel(t)
	require.NoError(t, m.SetInitialValue("in", []string{"lamp0"}, domain.ObjectValue("kitchen")))
	require.NoError(t, m.SetInitialValue("lit", []string{"lamp0"}, domain.BoolValue(lit)))

	on := htn.NewAction("switch_on", htn.P("lamp", "Lamp")).
		Precondition(htn.Not(htn.Holds(litF.Of(htn.Param("lamp"))))).
		Effect(litF.Of(htn.Param("lamp")), htn.Bool(true))
	carry := htn.NewAction("carry", htn.P("lamp", "Lamp"), htn.P("from", "Room"), htn.P("to", "Room")).
		Precondition(
			htn.Equals(inF.Of(htn.Param("lamp")), htn.Param("from")),
			htn.NotEquals(htn.Param("from"), htn.Param("to")),
		).
		Effect(inF.Of(htn.Param("lamp")), htn.Param("to"))
	require.NoError(t, m.AddAction(on.Action()))
	require.NoError(t, m.AddAction(carry.Action()))
	require.NoError(t, m.AddTask("light", htn.P("lamp", "Lamp")))

	doIt := htn.NewMethod("light_it", htn.P("lamp", "Lamp")).
		SetTask("light", "lamp").
		Precondition(htn.Not(htn.Holds(litF.Of(htn.Param("lamp")))))
	doIt.Subtask("switch_on", "lamp")
	already := htn.NewMethod("already_lit", htn.P("lamp", "Lamp")).
		SetTask("light", "lamp").
		Precondition(htn.Holds(litF.Of(htn.Param("lamp"))))
	require.NoError(t, m.AddMethod(doIt.Method()))
	require.NoError(t, m.AddMethod(already.Method()))

	relocate := htn.NewMethod("relocate", htn.P("lamp", "Lamp"), htn.P("from", "Room"), htn.P("to", "Room")).
		SetTask("light", "lamp").
		Precondition(
			htn.Equals(inF.Of(htn.Param("lamp")), htn.Param("from")),
			htn.NotEquals(htn.Param("from"), htn.Param("to")),
		)
	relocate.Subtask("carry", "lamp", "from", "to")
	relocate.Subtask("switch_on", "lamp")
	require.NoError(t, m.AddMethod(relocate.Method()))

	require.NoError(t, m.Validate())
	return m.Problem()
}

func TestEval_Operators(t *testing.T) {
	p := lampProblem(t, false)
	st, err := htn.InitialState(p)
	require.NoError(t, err)
	b := htn.Bindings{"lamp": "lamp0"}
	in := htn.FluentRef{Name: "in"}
	lit := htn.FluentRef{Name: "lit"}

	cases := []struct {
		name string
		cond domain.Condition
		want bool
	}{
		{"equals", htn.Equals(in.Of(htn.Param("lamp")), htn.Obj("kitchen")), true},
		{"not equals", htn.NotEquals(in.Of(htn.Param("lamp")), htn.Obj("kitchen")), false},
		{"holds", htn.Holds(lit.Of(htn.Obj("lamp0"))), false},
		{"bool constant", htn.Holds(htn.Bool(true)), true},
		{"empty and", htn.And(), true},
		{"and", htn.And(htn.Holds(htn.Bool(true)), htn.Not(htn.Holds(lit.Of(htn.Param("lamp"))))), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := htn.Eval(tc.cond, st, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEval_UnboundParameter(t *testing.T) {
	p := lampProblem(t, false)
	st, err := htn.InitialState(p)
	require.NoError(t, err)

	_, err = htn.Eval(htn.Equals(htn.Param("lamp"), htn.Obj("lamp0")), st, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
}

func TestApply_SuccessorAndInputUntouched(t *testing.T) {
	p := lampProblem(t, false)
	st, err := htn.InitialState(p)
	require.NoError(t, err)

	next, err := htn.Apply(p, st, domain.GroundAction{Action: "carry", Args: []string{"lamp0", "kitchen", "hall"}})
	require.NoError(t, err)

	v, ok := next.Get("in", "lamp0")
	require.True(t, ok)
	assert.Equal(t, "hall", v.Object)

	v, _ = st.Get("in", "lamp0")
	assert.Equal(t, "kitchen", v.Object, "input state must not change")
}

func TestApply_Rejections(t *testing.T) {
	p := lampProblem(t, true)
	st, err := htn.InitialState(p)
	require.NoError(t, err)

	_, err = htn.Apply(p, st, domain.GroundAction{Action: "switch_on", Args: []string{"lamp0"}})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)

	_, err = htn.Apply(p, st, domain.GroundAction{Action: "carry", Args: []string{"lamp0", "kitchen", "kitchen"}})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)

	_, err = htn.Apply(p, st, domain.GroundAction{Action: "smash", Args: []string{"lamp0"}})
	assert.ErrorIs(t, err, domain.ErrInvalidModel)

	_, err = htn.Apply(p, st, domain.GroundAction{Action: "switch_on", Args: []string{"kitchen"}})
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
}

func TestDecompositions_GroundsFreeParameters(t *testing.T) {
	p := lampProblem(t, false)
	st, err := htn.InitialState(p)
	require.NoError(t, err)

	ds, err := htn.Decompositions(p, st, domain.GoalTask{Task: "light", Args: []string{"lamp0"}})
	require.NoError(t, err)
	require.Len(t, ds, 2)

	assert.Equal(t, "light_it", ds[0].Method)
	assert.Equal(t, "relocate", ds[1].Method)
	assert.Equal(t, htn.Bindings{"lamp": "lamp0", "from": "kitchen", "to": "hall"}, ds[1].Bindings)
	require.Len(t, ds[1].Subtasks, 2)
	assert.Equal(t, "carry(lamp0, kitchen, hall)", ds[1].Subtasks[0].String())
	assert.Equal(t, "switch_on(lamp0)", ds[1].Subtasks[1].String())
}

func TestDecompositions_UnknownGoal(t *testing.T) {
	p := lampProblem(t, false)
	st, err := htn.InitialState(p)
	require.NoError(t, err)

	_, err = htn.Decompositions(p, st, domain.GoalTask{Task: "dim", Args: []string{"lamp0"}})
	assert.ErrorIs(t, err, domain.ErrUnboundTask)
	_, err = htn.Decompositions(p, st, domain.GoalTask{Task: "light", Args: []string{"lamp7"}})
	assert.ErrorIs(t, err, domain.ErrUnboundTask)
}

func TestState_CloneIsIndependent(t *testing.T) {
	p := lampProblem(t, false)
	st, err := htn.InitialState(p)
	require.NoError(t, err)

	clone := st.Clone()
	next, err := htn.Apply(p, clone, domain.GroundAction{Action: "switch_on", Args: []string{"lamp0"}})
	require.NoError(t, err)

	assert.Equal(t, st.Keys(), clone.Keys())
	v, _ := next.Get("lit", "lamp0")
	assert.True(t, v.Bool)
	v, _ = clone.Get("lit", "lamp0")
	assert.False(t, v.Bool)
	assert.Equal(t, 2, st.Len())
}
