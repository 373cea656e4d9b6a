package elevator

import (
	"fmt"

	"elevhtn/internal/domain"
)

// GoalPolicy returns the top-level goal for the person at index i. Goals that
// name objects missing from the problem fail the build with
// domain.ErrUnboundTask.
type GoalPolicy func(sc *Scene, i int) (domain.GoalTask, error)

// Transport returns the goal transport_person(person, floor).
func Transport(person, floor string) domain.GoalTask {
	return domain.GoalTask{Task: TaskTransportPerson, Args: []string{person, floor}}
}

// DeliverTo sends person i to floor dests[i]. Build validates dests when they
// come from WithDestinations.
func DeliverTo(dests []int) GoalPolicy {
	return func(sc *Scene, i int) (domain.GoalTask, error) {
		if i >= len(dests) {
			return domain.GoalTask{}, fmt.Errorf("elevator: %w: no destination for %s", domain.ErrInvalidConfiguration, sc.People[i].Name)
		}
		return Transport(sc.People[i].Name, FloorName(dests[i])), nil
	}
}

// DeliverToLobby sends every person to floor0.
func DeliverToLobby(sc *Scene, i int) (domain.GoalTask, error) {
	return Transport(sc.People[i].Name, FloorName(0)), nil
}
