package elevator

import "strconv"

// DefaultName is the problem name used unless WithName overrides it.
const DefaultName = "ElevatorHTNProblem"

const (
	TypeLoc      = "Loc"
	TypeFloor    = "Floor"
	TypeElevator = "Elevator"
	TypePerson   = "Person"
)

const (
	FluentAtPerson   = "at_person"
	FluentAtElevator = "at_elevator"
	FluentDoorOpen   = "elevator_door_open"
)

const (
	ActionMoveElevator  = "move_elevator"
	ActionEnterElevator = "enter_elevator"
	ActionExitElevator  = "exit_elevator"
	ActionOpenDoor      = "open_door"
	ActionCloseDoor     = "close_door"
)

const (
	TaskTransportPerson   = "transport_person"
	MethodTransportPerson = "method_transport_person"
	MethodTransportNoop   = "method_transport_noop"
)

// ElevatorName is the name of the single elevator object.
const ElevatorName = "elevator"

// FloorName returns the object name of floor i.
func FloorName(i int) string { return "floor" + strconv.Itoa(i) }

// PersonName returns the object name of person i.
func PersonName(i int) string { return "person" + strconv.Itoa(i) }
