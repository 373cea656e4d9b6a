package types

// BuildRequest carries the builder inputs for one problem.
type BuildRequest struct {
	Name         ProblemName `json:"name" yaml:"name"`
	Floors       int         `json:"floors" yaml:"floors"`
	People       int         `json:"people" yaml:"people"`
	PersonFloors []int       `json:"person_floors" yaml:"person_floors"`
	Destinations []int       `json:"destinations,omitempty" yaml:"destinations,omitempty"` // optional, one per person
}
