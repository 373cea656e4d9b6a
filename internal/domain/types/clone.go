package types

// Clone returns a deep copy of the term.
func (t Term) Clone() Term {
	clone := t
	if len(t.Args) > 0 {
		clone.Args = make([]Term, len(t.Args))
		for i, a := range t.Args {
			clone.Args[i] = a.Clone()
		}
	}
	return clone
}

// Clone returns a deep copy of the condition.
func (c Condition) Clone() Condition {
	clone := Condition{Op: c.Op}
	if len(c.Terms) > 0 {
		clone.Terms = make([]Term, len(c.Terms))
		for i, t := range c.Terms {
			clone.Terms[i] = t.Clone()
		}
	}
	clone.Sub = cloneConditions(c.Sub)
	return clone
}

// Clone returns a deep copy of the action.
func (a Action) Clone() Action {
	clone := Action{
		Name:          a.Name,
		Params:        cloneSlice(a.Params),
		Preconditions: cloneConditions(a.Preconditions),
	}
	if len(a.Effects) > 0 {
		clone.Effects = make([]Effect, len(a.Effects))
		for i, e := range a.Effects {
			clone.Effects[i] = Effect{Fluent: e.Fluent.Clone(), Value: e.Value.Clone()}
		}
	}
	return clone
}

// Clone returns a deep copy of the method.
func (m Method) Clone() Method {
	clone := Method{
		Name:          m.Name,
		Params:        cloneSlice(m.Params),
		Task:          m.Task,
		TaskArgs:      cloneSlice(m.TaskArgs),
		Preconditions: cloneConditions(m.Preconditions),
	}
	if len(m.Subtasks) > 0 {
		clone.Subtasks = make([]Subtask, len(m.Subtasks))
		for i, st := range m.Subtasks {
			clone.Subtasks[i] = Subtask{ID: st.ID, Name: st.Name, Args: cloneSlice(st.Args)}
		}
	}
	return clone
}

// Clone returns a deep copy of the problem.
func (p Problem) Clone() Problem {
	clone := Problem{
		Name:    p.Name,
		Types:   cloneSlice(p.Types),
		Objects: cloneSlice(p.Objects),
	}
	if len(p.Fluents) > 0 {
		clone.Fluents = make([]Fluent, len(p.Fluents))
		for i, f := range p.Fluents {
			clone.Fluents[i] = Fluent{Name: f.Name, Params: cloneSlice(f.Params), Type: f.Type}
		}
	}
	if len(p.Initial) > 0 {
		clone.Initial = make([]Assignment, len(p.Initial))
		for i, a := range p.Initial {
			clone.Initial[i] = Assignment{Fluent: a.Fluent, Args: cloneSlice(a.Args), Value: a.Value}
		}
	}
	if len(p.Actions) > 0 {
		clone.Actions = make([]Action, len(p.Actions))
		for i, a := range p.Actions {
			clone.Actions[i] = a.Clone()
		}
	}
	if len(p.Tasks) > 0 {
		clone.Tasks = make([]Task, len(p.Tasks))
		for i, t := range p.Tasks {
			clone.Tasks[i] = Task{Name: t.Name, Params: cloneSlice(t.Params)}
		}
	}
	if len(p.Methods) > 0 {
		clone.Methods = make([]Method, len(p.Methods))
		for i, m := range p.Methods {
			clone.Methods[i] = m.Clone()
		}
	}
	if len(p.Goals) > 0 {
		clone.Goals = make([]GoalTask, len(p.Goals))
		for i, g := range p.Goals {
			clone.Goals[i] = GoalTask{Task: g.Task, Args: cloneSlice(g.Args)}
		}
	}
	return clone
}

func cloneConditions(values []Condition) []Condition {
	if len(values) == 0 {
		return nil
	}
	clone := make([]Condition, len(values))
	for i, c := range values {
		clone[i] = c.Clone()
	}
	return clone
}

func cloneSlice[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	clone := make([]T, len(values))
	copy(clone, values)
	return clone
}
