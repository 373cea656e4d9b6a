package types

// Action is an instantaneous, parameterised state transition.
type Action struct {
	Name          string      `json:"name" yaml:"name"`
	Params        []Param     `json:"params" yaml:"params"`
	Preconditions []Condition `json:"preconditions,omitempty" yaml:"preconditions,omitempty"`
	Effects       []Effect    `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Task is an abstract unit of work refined by methods.
type Task struct {
	Name   string  `json:"name" yaml:"name"`
	Params []Param `json:"params" yaml:"params"`
}

// Subtask is one step of a method: an action or a task applied to method
// parameters.
type Subtask struct {
	ID   string   `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Method decomposes Task (applied to TaskArgs, which name method parameters)
// into the totally ordered Subtasks when Preconditions hold.
type Method struct {
	Name          string      `json:"name" yaml:"name"`
	Params        []Param     `json:"params" yaml:"params"`
	Task          string      `json:"task" yaml:"task"`
	TaskArgs      []string    `json:"task_args" yaml:"task_args"`
	Preconditions []Condition `json:"preconditions,omitempty" yaml:"preconditions,omitempty"`
	Subtasks      []Subtask   `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`
}

// GoalTask is a top-level task instance bound to objects.
type GoalTask struct {
	Task string   `json:"task" yaml:"task"`
	Args []string `json:"args" yaml:"args"`
}

// Assignment sets one fluent binding in the initial state.
type Assignment struct {
	Fluent string   `json:"fluent" yaml:"fluent"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty"`
	Value  Value    `json:"value" yaml:"value"`
}

// Problem is the closed aggregate handed to a planner.
type Problem struct {
	Name    string       `json:"name" yaml:"name"`
	Types   []UserType   `json:"types" yaml:"types"`
	Objects []Object     `json:"objects" yaml:"objects"`
	Fluents []Fluent     `json:"fluents" yaml:"fluents"`
	Initial []Assignment `json:"initial" yaml:"initial"`
	Actions []Action     `json:"actions" yaml:"actions"`
	Tasks   []Task       `json:"tasks" yaml:"tasks"`
	Methods []Method     `json:"methods" yaml:"methods"`
	Goals   []GoalTask   `json:"goals" yaml:"goals"`
}

// ObjectsOfType returns the objects whose declared type is exactly typ.
func (p Problem) ObjectsOfType(typ string) []Object {
	var out []Object
	for _, o := range p.Objects {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}
