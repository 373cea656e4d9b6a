package elevator

import (
	"elevhtn/internal/domain"
	"elevhtn/internal/htn"
)

// Scene exposes the declared objects and fluents to extension points.
type Scene struct {
	Floors   []domain.Object
	People   []domain.Object
	Elevator domain.Object

	AtPerson   htn.FluentRef // at_person(person: Person) -> Loc
	AtElevator htn.FluentRef // at_elevator(elevator: Elevator) -> Floor
	DoorOpen   htn.FluentRef // elevator_door_open(elevator: Elevator) -> bool
}

// ActionBody declares the preconditions and effects of one action. The
// schema already carries the action's parameters.
type ActionBody func(sc *Scene, a *htn.ActionSchema)

// ActionBodies supplies the five action bodies. A nil body leaves the action
// without preconditions or effects.
//
// Required contracts, relied on by method_transport_person:
//
//   - move_elevator(elevator, start, end) requires at_elevator(elevator) ==
//     start and start != end, and sets at_elevator(elevator) = end.
//   - enter_elevator(elevator, person, floor) requires the door open and both
//     the person and the elevator at floor, and sets at_person(person) =
//     elevator.
//   - exit_elevator(elevator, person, floor) requires the door open, the
//     person in the elevator and the elevator at floor, and sets
//     at_person(person) = floor.
//   - open_door and close_door toggle elevator_door_open(elevator).
type ActionBodies struct {
	MoveElevator  ActionBody
	EnterElevator ActionBody
	ExitElevator  ActionBody
	OpenDoor      ActionBody
	CloseDoor     ActionBody
}

// DefaultBodies returns the reference bodies. The elevator only moves with
// its door closed, and people board or leave only through an open door.
func DefaultBodies() ActionBodies {
	return ActionBodies{
		MoveElevator:  moveElevator,
		EnterElevator: enterElevator,
		ExitElevator:  exitElevator,
		OpenDoor:      openDoor,
		CloseDoor:     closeDoor,
	}
}

func moveElevator(sc *Scene, a *htn.ActionSchema) {
	elevator, start, end := a.Param("elevator"), a.Param("start"), a.Param("end")
	a.Precondition(
		htn.Equals(sc.AtElevator.Of(elevator), start),
		htn.NotEquals(start, end),
		htn.Not(htn.Holds(sc.DoorOpen.Of(elevator))),
	).Effect(sc.AtElevator.Of(elevator), end)
}

func enterElevator(sc *Scene, a *htn.ActionSchema) {
	elevator, person, floor := a.Param("elevator"), a.Param("person"), a.Param("floor")
	a.Precondition(
		htn.Equals(sc.AtPerson.Of(person), floor),
		htn.Equals(sc.AtElevator.Of(elevator), floor),
		htn.Holds(sc.DoorOpen.Of(elevator)),
	).Effect(sc.AtPerson.Of(person), elevator)
}

func exitElevator(sc *Scene, a *htn.ActionSchema) {
	elevator, person, floor := a.Param("elevator"), a.Param("person"), a.Param("floor")
	a.Precondition(
		htn.Equals(sc.AtPerson.Of(person), elevator),
		htn.Equals(sc.AtElevator.Of(elevator), floor),
		htn.Holds(sc.DoorOpen.Of(elevator)),
	).Effect(sc.AtPerson.Of(person), floor)
}

func openDoor(sc *Scene, a *htn.ActionSchema) {
	elevator := a.Param("elevator")
	a.Precondition(htn.Not(htn.Holds(sc.DoorOpen.Of(elevator)))).
		Effect(sc.DoorOpen.Of(elevator), htn.Bool(true))
}

func closeDoor(sc *Scene, a *htn.ActionSchema) {
	elevator := a.Param("elevator")
	a.Precondition(htn.Holds(sc.DoorOpen.Of(elevator))).
		Effect(sc.DoorOpen.Of(elevator), htn.Bool(false))
}
