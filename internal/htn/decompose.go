package htn

import (
	"strings"

	"elevhtn/internal/domain"
)

// GroundTask is a subtask with every argument bound to an object.
type GroundTask struct {
	Name string
	Args []string
}

// String renders the task as name(arg, ...).
func (t GroundTask) String() string { return t.Name + "(" + strings.Join(t.Args, ", ") + ")" }

// Decomposition is one applicable grounding of a method for a goal task.
type Decomposition struct {
	Method   string
	Bindings Bindings
	Subtasks []GroundTask
}

// Decompositions returns every grounding of every method of goal.Task whose
// preconditions hold in st, in method declaration order. Free method
// parameters range over the objects of their type, subtypes included.
func Decompositions(p domain.Problem, st State, goal domain.GoalTask) ([]Decomposition, error) {
	sc := schemaOf(p)
	task, ok := sc.tasks[goal.Task]
	if !ok {
		return nil, unbound("unknown task %q", goal.Task)
	}
	if err := sc.checkGround("task "+task.Name, task.Params, goal.Args, unbound); err != nil {
		return nil, err
	}

	var out []Decomposition
	for _, m := range p.Methods {
		if m.Task != goal.Task {
			continue
		}
		bound, ok := bindTaskArgs(sc, m, goal.Args)
		if !ok {
			continue
		}
		var free []domain.Param
		for _, prm := range m.Params {
			if _, isBound := bound[prm.Name]; !isBound {
				free = append(free, prm)
			}
		}
		var evalErr error
		forEachBinding(sc, p, free, nil, func(objs []string) bool {
			b := bound.clone()
			for i, prm := range free {
				b[prm.Name] = objs[i]
			}
			idx, err := firstFailing(m.Preconditions, st, b)
			if err != nil {
				evalErr = wrapOwner("method "+m.Name, err)
				return false
			}
			if idx >= 0 {
				return true
			}
			out = append(out, Decomposition{Method: m.Name, Bindings: b, Subtasks: groundSubtasks(m, b)})
			return true
		})
		if evalErr != nil {
			return nil, evalErr
		}
	}
	return out, nil
}

// bindTaskArgs binds the method parameters named by TaskArgs to the goal
// objects. It reports false when the objects do not fit the parameter types.
func bindTaskArgs(sc *schema, m domain.Method, args []string) (Bindings, bool) {
	if len(m.TaskArgs) != len(args) {
		return nil, false
	}
	types := make(map[string]string, len(m.Params))
	for _, prm := range m.Params {
		types[prm.Name] = prm.Type
	}
	b := Bindings{}
	for i, name := range m.TaskArgs {
		obj := args[i]
		if prev, seen := b[name]; seen && prev != obj {
			return nil, false
		}
		if !sc.isA(sc.objects[obj].Type, types[name]) {
			return nil, false
		}
		b[name] = obj
	}
	return b, true
}

func groundSubtasks(m domain.Method, b Bindings) []GroundTask {
	out := make([]GroundTask, len(m.Subtasks))
	for i, st := range m.Subtasks {
		args := make([]string, len(st.Args))
		for j, a := range st.Args {
			args[j] = b[a]
		}
		out[i] = GroundTask{Name: st.Name, Args: args}
	}
	return out
}
