package elevator

import (
	"fmt"

	"elevhtn/internal/domain"
	"elevhtn/internal/htn"
)

type options struct {
	name         string
	bodies       ActionBodies
	goals        GoalPolicy
	destinations []int
}

// Option customises Build.
type Option func(*options)

// WithName sets the problem name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithBodies replaces the action bodies.
func WithBodies(b ActionBodies) Option {
	return func(o *options) { o.bodies = b }
}

// WithGoalPolicy replaces the goal attachment.
func WithGoalPolicy(p GoalPolicy) Option {
	return func(o *options) { o.goals = p }
}

// WithDestinations gives every person a target floor. It must have one entry
// per person; a nil slice keeps the lobby default.
func WithDestinations(dests []int) Option {
	return func(o *options) { o.destinations = append([]int(nil), dests...) }
}

// Build assembles the elevator HTN problem for floorCount floors and
// personCount people, person i starting on floor personFloors[i]. Inputs are
// checked before anything is declared; a malformed input fails with
// domain.ErrInvalidConfiguration and no problem is returned.
func Build(floorCount, personCount int, personFloors []int, opts ...Option) (domain.Problem, error) {
	o := options{name: DefaultName, bodies: DefaultBodies()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(floorCount, personCount, personFloors, o.destinations); err != nil {
		return domain.Problem{}, err
	}
	if o.goals == nil {
		if o.destinations != nil {
			o.goals = DeliverTo(o.destinations)
		} else {
			o.goals = DeliverToLobby
		}
	}

	m := htn.New(o.name)
	sc, err := declareScene(m, floorCount, personCount)
	if err != nil {
		return domain.Problem{}, err
	}

	for i := range personFloors {
		if err := m.SetInitialValue(FluentAtPerson, []string{sc.People[i].Name}, domain.ObjectValue(sc.Floors[personFloors[i]].Name)); err != nil {
			return domain.Problem{}, fmt.Errorf("elevator: initial state: %w", err)
		}
	}
	if err := m.SetInitialValue(FluentAtElevator, []string{sc.Elevator.Name}, domain.ObjectValue(sc.Floors[0].Name)); err != nil {
		return domain.Problem{}, fmt.Errorf("elevator: initial state: %w", err)
	}
	if err := m.SetInitialValue(FluentDoorOpen, []string{sc.Elevator.Name}, domain.BoolValue(false)); err != nil {
		return domain.Problem{}, fmt.Errorf("elevator: initial state: %w", err)
	}

	if err := declareActions(m, sc, o.bodies); err != nil {
		return domain.Problem{}, err
	}
	if err := declareTransport(m, sc); err != nil {
		return domain.Problem{}, err
	}

	for i := range sc.People {
		goal, err := o.goals(sc, i)
		if err != nil {
			return domain.Problem{}, err
		}
		if err := m.AddGoal(goal); err != nil {
			return domain.Problem{}, fmt.Errorf("elevator: goal for %s: %w", sc.People[i].Name, err)
		}
	}

	if err := m.Validate(); err != nil {
		return domain.Problem{}, fmt.Errorf("elevator: %w", err)
	}
	return m.Problem(), nil
}

func validate(floorCount, personCount int, personFloors, destinations []int) error {
	if floorCount < 1 {
		return fmt.Errorf("elevator: %w: floor count must be positive, got %d", domain.ErrInvalidConfiguration, floorCount)
	}
	if personCount < 0 {
		return fmt.Errorf("elevator: %w: person count must not be negative, got %d", domain.ErrInvalidConfiguration, personCount)
	}
	if len(personFloors) != personCount {
		return fmt.Errorf("elevator: %w: %d person floors for %d people", domain.ErrInvalidConfiguration, len(personFloors), personCount)
	}
	for i, f := range personFloors {
		if f < 0 || f >= floorCount {
			return fmt.Errorf("elevator: %w: person %d starts on floor %d, want [0, %d)", domain.ErrInvalidConfiguration, i, f, floorCount)
		}
	}
	if destinations == nil {
		return nil
	}
	if len(destinations) != personCount {
		return fmt.Errorf("elevator: %w: %d destinations for %d people", domain.ErrInvalidConfiguration, len(destinations), personCount)
	}
	for i, f := range destinations {
		if f < 0 || f >= floorCount {
			return fmt.Errorf("elevator: %w: person %d goes to floor %d, want [0, %d)", domain.ErrInvalidConfiguration, i, f, floorCount)
		}
	}
	return nil
}

func declareScene(m *htn.Model, floorCount, personCount int) (*Scene, error) {
	for _, t := range []domain.UserType{
		{Name: TypeLoc},
		{Name: TypeFloor, Parent: TypeLoc},
		{Name: TypeElevator, Parent: TypeLoc},
		{Name: TypePerson},
	} {
		if err := m.AddType(t.Name, t.Parent); err != nil {
			return nil, fmt.Errorf("elevator: types: %w", err)
		}
	}

	sc := &Scene{
		Floors:   make([]domain.Object, floorCount),
		People:   make([]domain.Object, personCount),
		Elevator: domain.Object{Name: ElevatorName, Type: TypeElevator},
	}
	for i := range sc.Floors {
		sc.Floors[i] = domain.Object{Name: FloorName(i), Type: TypeFloor}
	}
	for i := range sc.People {
		sc.People[i] = domain.Object{Name: PersonName(i), Type: TypePerson}
	}
	objs := make([]domain.Object, 0, floorCount+personCount+1)
	objs = append(objs, sc.Floors...)
	objs = append(objs, sc.People...)
	objs = append(objs, sc.Elevator)
	if err := m.AddObjects(objs...); err != nil {
		return nil, fmt.Errorf("elevator: objects: %w", err)
	}

	var err error
	if sc.AtPerson, err = m.AddFluent(FluentAtPerson, TypeLoc, htn.P("person", TypePerson)); err != nil {
		return nil, fmt.Errorf("elevator: fluents: %w", err)
	}
	if sc.AtElevator, err = m.AddFluent(FluentAtElevator, TypeFloor, htn.P("elevator", TypeElevator)); err != nil {
		return nil, fmt.Errorf("elevator: fluents: %w", err)
	}
	if sc.DoorOpen, err = m.AddFluent(FluentDoorOpen, domain.BoolType, htn.P("elevator", TypeElevator)); err != nil {
		return nil, fmt.Errorf("elevator: fluents: %w", err)
	}
	return sc, nil
}

func declareActions(m *htn.Model, sc *Scene, bodies ActionBodies) error {
	decls := []struct {
		schema *htn.ActionSchema
		body   ActionBody
	}{
		{htn.NewAction(ActionMoveElevator, htn.P("elevator", TypeElevator), htn.P("start", TypeFloor), htn.P("end", TypeFloor)), bodies.MoveElevator},
		{htn.NewAction(ActionEnterElevator, htn.P("elevator", TypeElevator), htn.P("person", TypePerson), htn.P("floor", TypeFloor)), bodies.EnterElevator},
		{htn.NewAction(ActionExitElevator, htn.P("elevator", TypeElevator), htn.P("person", TypePerson), htn.P("floor", TypeFloor)), bodies.ExitElevator},
		{htn.NewAction(ActionOpenDoor, htn.P("elevator", TypeElevator)), bodies.OpenDoor},
		{htn.NewAction(ActionCloseDoor, htn.P("elevator", TypeElevator)), bodies.CloseDoor},
	}
	for _, d := range decls {
		if d.body != nil {
			d.body(sc, d.schema)
		}
		if err := m.AddAction(d.schema.Action()); err != nil {
			return fmt.Errorf("elevator: %s: %w", d.schema.Name(), err)
		}
	}
	return nil
}

// declareTransport adds transport_person and its two methods. The full
// method fetches the person from start_floor and delivers them to
// end_floor; the noop method covers a person already at end_floor.
func declareTransport(m *htn.Model, sc *Scene) error {
	if err := m.AddTask(TaskTransportPerson, htn.P("person", TypePerson), htn.P("end_floor", TypeFloor)); err != nil {
		return fmt.Errorf("elevator: %w", err)
	}

	full := htn.NewMethod(MethodTransportPerson,
		htn.P("elevator", TypeElevator),
		htn.P("person", TypePerson),
		htn.P("original_floor", TypeFloor),
		htn.P("start_floor", TypeFloor),
		htn.P("end_floor", TypeFloor),
	).SetTask(TaskTransportPerson, "person", "end_floor")
	elevator, person := htn.Param("elevator"), htn.Param("person")
	original, start, end := htn.Param("original_floor"), htn.Param("start_floor"), htn.Param("end_floor")
	full.Precondition(
		htn.Equals(sc.AtPerson.Of(person), start),
		htn.Equals(sc.AtElevator.Of(elevator), original),
		htn.NotEquals(sc.AtPerson.Of(person), end),
		htn.NotEquals(sc.AtElevator.Of(elevator), start),
		htn.Not(htn.Holds(sc.DoorOpen.Of(elevator))),
	)
	full.Subtask(ActionMoveElevator, "elevator", "original_floor", "start_floor")
	full.Subtask(ActionOpenDoor, "elevator")
	full.Subtask(ActionEnterElevator, "elevator", "person", "start_floor")
	full.Subtask(ActionCloseDoor, "elevator")
	full.Subtask(ActionMoveElevator, "elevator", "start_floor", "end_floor")
	full.Subtask(ActionOpenDoor, "elevator")
	full.Subtask(ActionExitElevator, "elevator", "person", "end_floor")
	full.Subtask(ActionCloseDoor, "elevator")
	if err := m.AddMethod(full.Method()); err != nil {
		return fmt.Errorf("elevator: %w", err)
	}

	noop := htn.NewMethod(MethodTransportNoop,
		htn.P("elevator", TypeElevator),
		htn.P("person", TypePerson),
		htn.P("start_floor", TypeFloor),
		htn.P("end_floor", TypeFloor),
	).SetTask(TaskTransportPerson, "person", "end_floor")
	noop.Precondition(
		htn.Equals(sc.AtPerson.Of(person), start),
		htn.Equals(sc.AtPerson.Of(person), end),
	)
	if err := m.AddMethod(noop.Method()); err != nil {
		return fmt.Errorf("elevator: %w", err)
	}
	return nil
}
