package elevator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevhtn/internal/domain"
	"elevhtn/internal/elevator"
	"elevhtn/internal/htn"
)

func objectsOfType(p domain.Problem, typ string) []string {
	var names []string
	for _, o := range p.ObjectsOfType(typ) {
		names = append(names, o.Name)
	}
	return names
}

func initialState(t *testing.T, p domain.Problem) htn.State {
	t.Helper()
	st, err := htn.InitialState(p)
	require.NoError(t, err)
	return st
}

func valueOf(t *testing.T, st htn.State, fluent string, args ...string) domain.Value {
	t.Helper()
	v, ok := st.Get(fluent, args...)
	require.Truef(t, ok, "no value for %s", htn.Key(fluent, args...))
	return v
}

func TestBuild_DeclaresObjects(t *testing.T) {
	p, err := elevator.Build(3, 2, []int{0, 2})
	require.NoError(t, err)

	assert.Equal(t, elevator.DefaultName, p.Name)
	assert.Equal(t, []string{"floor0", "floor1", "floor2"}, objectsOfType(p, elevator.TypeFloor))
	assert.Equal(t, []string{"person0", "person1"}, objectsOfType(p, elevator.TypePerson))
	assert.Equal(t, []string{"elevator"}, objectsOfType(p, elevator.TypeElevator))
	assert.Empty(t, objectsOfType(p, elevator.TypeLoc))

	assert.Equal(t, []domain.UserType{
		{Name: "Loc"},
		{Name: "Floor", Parent: "Loc"},
		{Name: "Elevator", Parent: "Loc"},
		{Name: "Person"},
	}, p.Types)

	var actions []string
	for _, a := range p.Actions {
		actions = append(actions, a.Name)
	}
	assert.Equal(t, []string{"move_elevator", "enter_elevator", "exit_elevator", "open_door", "close_door"}, actions)
	require.Len(t, p.Tasks, 1)
	assert.Equal(t, elevator.TaskTransportPerson, p.Tasks[0].Name)
	require.Len(t, p.Methods, 2)
	assert.Equal(t, elevator.MethodTransportPerson, p.Methods[0].Name)
	assert.Equal(t, elevator.MethodTransportNoop, p.Methods[1].Name)
}

func TestBuild_InitialState(t *testing.T) {
	p, err := elevator.Build(3, 2, []int{0, 2})
	require.NoError(t, err)
	st := initialState(t, p)

	assert.Equal(t, 4, st.Len())
	assert.Equal(t, domain.ObjectValue("floor0"), valueOf(t, st, elevator.FluentAtPerson, "person0"))
	assert.Equal(t, domain.ObjectValue("floor2"), valueOf(t, st, elevator.FluentAtPerson, "person1"))
	assert.Equal(t, domain.ObjectValue("floor0"), valueOf(t, st, elevator.FluentAtElevator, "elevator"))
	assert.Equal(t, domain.BoolValue(false), valueOf(t, st, elevator.FluentDoorOpen, "elevator"))
}

func TestBuild_OneGoalPerPerson(t *testing.T) {
	p, err := elevator.Build(3, 2, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []domain.GoalTask{
		elevator.Transport("person0", "floor0"),
		elevator.Transport("person1", "floor0"),
	}, p.Goals)

	p, err = elevator.Build(3, 2, []int{0, 2}, elevator.WithDestinations([]int{1, 0}), elevator.WithName("morning"))
	require.NoError(t, err)
	assert.Equal(t, "morning", p.Name)
	assert.Equal(t, []domain.GoalTask{
		elevator.Transport("person0", "floor1"),
		elevator.Transport("person1", "floor0"),
	}, p.Goals)
}

func TestBuild_NoPeople(t *testing.T) {
	p, err := elevator.Build(1, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, p.Goals)
	assert.Empty(t, objectsOfType(p, elevator.TypePerson))

	st := initialState(t, p)
	assert.Equal(t, 2, st.Len())
}

func TestBuild_RejectsInvalidConfiguration(t *testing.T) {
	cases := []struct {
		name   string
		floors int
		people int
		starts []int
		opts   []elevator.Option
	}{
		{"no floors", 0, 0, nil, nil},
		{"negative floors", -1, 0, nil, nil},
		{"negative people", 2, -1, nil, nil},
		{"too few starts", 2, 2, []int{0}, nil},
		{"too many starts", 2, 1, []int{0, 1}, nil},
		{"start above top", 2, 1, []int{2}, nil},
		{"start below ground", 2, 1, []int{-1}, nil},
		{"destination count", 3, 2, []int{0, 1}, []elevator.Option{elevator.WithDestinations([]int{2})}},
		{"destination above top", 3, 1, []int{0}, []elevator.Option{elevator.WithDestinations([]int{3})}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := elevator.Build(tc.floors, tc.people, tc.starts, tc.opts...)
			require.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Empty(t, p.Objects)
		})
	}
}

func TestBuild_GoalPolicyOutsideProblemIsUnbound(t *testing.T) {
	stray := func(sc *elevator.Scene, i int) (domain.GoalTask, error) {
		return elevator.Transport(sc.People[i].Name, "floor9"), nil
	}
	_, err := elevator.Build(2, 1, []int{1}, elevator.WithGoalPolicy(stray))
	require.ErrorIs(t, err, domain.ErrUnboundTask)

	wrongTask := func(sc *elevator.Scene, i int) (domain.GoalTask, error) {
		return domain.GoalTask{Task: "teleport", Args: []string{sc.People[i].Name}}, nil
	}
	_, err = elevator.Build(2, 1, []int{1}, elevator.WithGoalPolicy(wrongTask))
	require.ErrorIs(t, err, domain.ErrUnboundTask)
}

func TestBuild_GoalPolicyErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	_, err := elevator.Build(2, 1, []int{1}, elevator.WithGoalPolicy(func(*elevator.Scene, int) (domain.GoalTask, error) {
		return domain.GoalTask{}, boom
	}))
	require.ErrorIs(t, err, boom)
}

func TestBuild_TransportMethodSubtaskOrder(t *testing.T) {
	p, err := elevator.Build(2, 1, []int{1})
	require.NoError(t, err)

	m := p.Methods[0]
	assert.Equal(t, []string{"person", "end_floor"}, m.TaskArgs)
	want := []domain.Subtask{
		{ID: "t1", Name: "move_elevator", Args: []string{"elevator", "original_floor", "start_floor"}},
		{ID: "t2", Name: "open_door", Args: []string{"elevator"}},
		{ID: "t3", Name: "enter_elevator", Args: []string{"elevator", "person", "start_floor"}},
		{ID: "t4", Name: "close_door", Args: []string{"elevator"}},
		{ID: "t5", Name: "move_elevator", Args: []string{"elevator", "start_floor", "end_floor"}},
		{ID: "t6", Name: "open_door", Args: []string{"elevator"}},
		{ID: "t7", Name: "exit_elevator", Args: []string{"elevator", "person", "end_floor"}},
		{ID: "t8", Name: "close_door", Args: []string{"elevator"}},
	}
	assert.Equal(t, want, m.Subtasks)
	assert.Empty(t, p.Methods[1].Subtasks)
}

func TestBuild_DecompositionDeliversPerson(t *testing.T) {
	p, err := elevator.Build(3, 1, []int{2})
	require.NoError(t, err)
	st := initialState(t, p)

	ds, err := htn.Decompositions(p, st, p.Goals[0])
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, elevator.MethodTransportPerson, ds[0].Method)
	assert.Equal(t, "floor2", ds[0].Bindings["start_floor"])
	assert.Equal(t, "floor0", ds[0].Bindings["original_floor"])

	for _, sub := range ds[0].Subtasks {
		st, err = htn.Apply(p, st, domain.GroundAction{Action: sub.Name, Args: sub.Args})
		require.NoErrorf(t, err, "applying %s", sub)
	}
	assert.Equal(t, domain.ObjectValue("floor0"), valueOf(t, st, elevator.FluentAtPerson, "person0"))
	assert.Equal(t, domain.ObjectValue("floor0"), valueOf(t, st, elevator.FluentAtElevator, "elevator"))
	assert.Equal(t, domain.BoolValue(false), valueOf(t, st, elevator.FluentDoorOpen, "elevator"))

	// Once delivered only the no-op method applies.
	ds, err = htn.Decompositions(p, st, p.Goals[0])
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, elevator.MethodTransportNoop, ds[0].Method)
	assert.Empty(t, ds[0].Subtasks)
}

func TestBuild_PlannerPlanRefinesGoals(t *testing.T) {
	p, err := elevator.Build(3, 2, []int{0, 2})
	require.NoError(t, err)

	ds, err := htn.Decompositions(p, initialState(t, p), p.Goals[1])
	require.NoError(t, err)
	require.Len(t, ds, 1)
	var plan []domain.GroundAction
	for _, sub := range ds[0].Subtasks {
		plan = append(plan, domain.GroundAction{Action: sub.Name, Args: sub.Args})
	}
	require.Len(t, plan, 8)

	// person0 is already in the lobby, so only person1 needs steps.
	require.NoError(t, htn.CheckRefinement(p, plan))

	_, err = htn.Simulate(p, plan[:7])
	require.NoError(t, err)
	assert.ErrorIs(t, htn.CheckRefinement(p, plan[:7]), domain.ErrInvalidModel)
}

func TestBuild_MethodsAreMutuallyExclusive(t *testing.T) {
	p, err := elevator.Build(3, 3, []int{0, 1, 2}, elevator.WithDestinations([]int{0, 0, 1}))
	require.NoError(t, err)
	st := initialState(t, p)

	for _, goal := range p.Goals {
		ds, err := htn.Decompositions(p, st, goal)
		require.NoError(t, err)
		methods := map[string]bool{}
		for _, d := range ds {
			methods[d.Method] = true
		}
		assert.Falsef(t, methods[elevator.MethodTransportPerson] && methods[elevator.MethodTransportNoop], "both methods apply to %v", goal)
	}
}

func TestBuild_ElevatorAlreadyAtPersonFloor(t *testing.T) {
	// The transport method requires the elevator to travel to the person
	// first, so a person waiting where the elevator stands has no method.
	p, err := elevator.Build(3, 1, []int{0}, elevator.WithDestinations([]int{2}))
	require.NoError(t, err)

	ds, err := htn.Decompositions(p, initialState(t, p), p.Goals[0])
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestDefaultBodies_Contracts(t *testing.T) {
	p, err := elevator.Build(2, 1, []int{1})
	require.NoError(t, err)
	st := initialState(t, p)

	apply := func(st htn.State, action string, args ...string) (htn.State, error) {
		return htn.Apply(p, st, domain.GroundAction{Action: action, Args: args})
	}

	_, err = apply(st, elevator.ActionMoveElevator, "elevator", "floor0", "floor0")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "move requires distinct floors")
	_, err = apply(st, elevator.ActionMoveElevator, "elevator", "floor1", "floor0")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "move requires the elevator at start")
	_, err = apply(st, elevator.ActionCloseDoor, "elevator")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "door is already closed")

	open, err := apply(st, elevator.ActionOpenDoor, "elevator")
	require.NoError(t, err)
	_, err = apply(open, elevator.ActionMoveElevator, "elevator", "floor0", "floor1")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "move requires the door closed")
	_, err = apply(open, elevator.ActionEnterElevator, "elevator", "person0", "floor1")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "enter requires the elevator on the person's floor")

	moved, err := apply(st, elevator.ActionMoveElevator, "elevator", "floor0", "floor1")
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectValue("floor1"), valueOf(t, moved, elevator.FluentAtElevator, "elevator"))
	assert.Equal(t, domain.ObjectValue("floor0"), valueOf(t, st, elevator.FluentAtElevator, "elevator"))

	_, err = apply(moved, elevator.ActionEnterElevator, "elevator", "person0", "floor1")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "enter requires the door open")

	opened, err := apply(moved, elevator.ActionOpenDoor, "elevator")
	require.NoError(t, err)
	inside, err := apply(opened, elevator.ActionEnterElevator, "elevator", "person0", "floor1")
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectValue("elevator"), valueOf(t, inside, elevator.FluentAtPerson, "person0"))

	_, err = apply(opened, elevator.ActionExitElevator, "elevator", "person0", "floor1")
	require.ErrorIs(t, err, domain.ErrNotApplicable, "exit requires the person inside")
	out, err := apply(inside, elevator.ActionExitElevator, "elevator", "person0", "floor1")
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectValue("floor1"), valueOf(t, out, elevator.FluentAtPerson, "person0"))
}

func TestBuild_NilBodiesLeaveActionsEmpty(t *testing.T) {
	bodies := elevator.DefaultBodies()
	bodies.OpenDoor = nil
	p, err := elevator.Build(2, 1, []int{1}, elevator.WithBodies(bodies))
	require.NoError(t, err)

	var open domain.Action
	for _, a := range p.Actions {
		if a.Name == elevator.ActionOpenDoor {
			open = a
		}
	}
	assert.Equal(t, []domain.Param{{Name: "elevator", Type: "Elevator"}}, open.Params)
	assert.Empty(t, open.Preconditions)
	assert.Empty(t, open.Effects)
}

func TestBuild_PersonAlreadyThereOnlyNoop(t *testing.T) {
	for floor := 0; floor < 3; floor++ {
		p, err := elevator.Build(3, 1, []int{floor}, elevator.WithDestinations([]int{floor}))
		require.NoError(t, err)

		ds, err := htn.Decompositions(p, initialState(t, p), p.Goals[0])
		require.NoError(t, err)
		require.Lenf(t, ds, 1, "floor %d", floor)
		assert.Equal(t, elevator.MethodTransportNoop, ds[0].Method)
	}
}
