package htn

import (
	"elevhtn/internal/domain"
)

// Model accumulates a hierarchical problem declaration. The zero value is
// not usable; call New.
type Model struct {
	problem domain.Problem
	schema  *schema
	initial map[string]int // state key -> index into problem.Initial
}

// New returns an empty model named name.
func New(name string) *Model {
	return &Model{
		problem: domain.Problem{Name: name},
		schema:  newSchema(),
		initial: map[string]int{},
	}
}

// Name returns the problem name.
func (m *Model) Name() string { return m.problem.Name }

// AddType declares a user type. parent may be empty for a root type and must
// already be declared otherwise.
func (m *Model) AddType(name, parent string) error {
	if name == "" {
		return invalid("type name is required")
	}
	if name == domain.BoolType {
		return invalid("type name %s is reserved", name)
	}
	if _, dup := m.schema.types[name]; dup {
		return invalid("duplicate type %s", name)
	}
	if parent != "" {
		if _, ok := m.schema.types[parent]; !ok {
			return invalid("type %s: unknown parent %s", name, parent)
		}
	}
	t := domain.UserType{Name: name, Parent: parent}
	m.schema.types[name] = t
	m.problem.Types = append(m.problem.Types, t)
	return nil
}

// AddObject declares a constant of a user type.
func (m *Model) AddObject(name, typ string) error {
	if name == "" {
		return invalid("object name is required")
	}
	if _, dup := m.schema.objects[name]; dup {
		return invalid("duplicate object %s", name)
	}
	if _, ok := m.schema.types[typ]; !ok {
		return invalid("object %s: unknown type %s", name, typ)
	}
	o := domain.Object{Name: name, Type: typ}
	m.schema.objects[name] = o
	m.problem.Objects = append(m.problem.Objects, o)
	return nil
}

// AddObjects declares several objects, stopping at the first error.
func (m *Model) AddObjects(objs ...domain.Object) error {
	for _, o := range objs {
		if err := m.AddObject(o.Name, o.Type); err != nil {
			return err
		}
	}
	return nil
}

// AddFluent declares a state variable of type typ (a user type or
// domain.BoolType) and returns a handle for building terms.
func (m *Model) AddFluent(name, typ string, params ...domain.Param) (FluentRef, error) {
	if name == "" {
		return FluentRef{}, invalid("fluent name is required")
	}
	if _, dup := m.schema.fluents[name]; dup {
		return FluentRef{}, invalid("duplicate fluent %s", name)
	}
	if !m.schema.knownType(typ) {
		return FluentRef{}, invalid("fluent %s: unknown type %s", name, typ)
	}
	if _, err := m.schema.checkParams("fluent "+name, params); err != nil {
		return FluentRef{}, err
	}
	f := domain.Fluent{Name: name, Params: append([]domain.Param(nil), params...), Type: typ}
	m.schema.fluents[name] = f
	m.problem.Fluents = append(m.problem.Fluents, f)
	return FluentRef{Name: f.Name, Params: f.Params, Type: f.Type}, nil
}

// SetInitialValue assigns the value of fluent(args...) at time zero. A second
// assignment to the same binding replaces the first.
func (m *Model) SetInitialValue(fluent string, args []string, v domain.Value) error {
	f, ok := m.schema.fluents[fluent]
	if !ok {
		return invalid("initial value: unknown fluent %s", fluent)
	}
	if err := m.schema.checkGround("fluent "+fluent, f.Params, args, invalid); err != nil {
		return err
	}
	switch {
	case f.Type == domain.BoolType:
		if v.Kind != domain.ValueBool {
			return invalid("initial value of %s must be boolean", Key(fluent, args...))
		}
	default:
		if v.Kind != domain.ValueObject {
			return invalid("initial value of %s must be an object", Key(fluent, args...))
		}
		o, ok := m.schema.objects[v.Object]
		if !ok {
			return invalid("initial value of %s: unknown object %s", Key(fluent, args...), v.Object)
		}
		if !m.schema.isA(o.Type, f.Type) {
			return invalid("initial value of %s: %s is a %s, want %s", Key(fluent, args...), o.Name, o.Type, f.Type)
		}
	}
	a := domain.Assignment{Fluent: fluent, Args: append([]string(nil), args...), Value: v}
	key := Key(fluent, args...)
	if idx, ok := m.initial[key]; ok {
		m.problem.Initial[idx] = a
		return nil
	}
	m.initial[key] = len(m.problem.Initial)
	m.problem.Initial = append(m.problem.Initial, a)
	return nil
}

// AddAction declares a primitive action after type-checking its
// preconditions and effects.
func (m *Model) AddAction(a domain.Action) error {
	if a.Name == "" {
		return invalid("action name is required")
	}
	if m.taken(a.Name) {
		return invalid("duplicate action %s", a.Name)
	}
	scope, err := m.schema.checkParams("action "+a.Name, a.Params)
	if err != nil {
		return err
	}
	for _, c := range a.Preconditions {
		if err := m.schema.checkCondition(c, scope); err != nil {
			return wrapOwner("action "+a.Name, err)
		}
	}
	for _, e := range a.Effects {
		if err := m.schema.checkEffect(e, scope); err != nil {
			return wrapOwner("action "+a.Name, err)
		}
	}
	a = a.Clone()
	m.schema.actions[a.Name] = a
	m.problem.Actions = append(m.problem.Actions, a)
	return nil
}

// AddTask declares a compound task.
func (m *Model) AddTask(name string, params ...domain.Param) error {
	if name == "" {
		return invalid("task name is required")
	}
	if m.taken(name) {
		return invalid("duplicate task %s", name)
	}
	if _, err := m.schema.checkParams("task "+name, params); err != nil {
		return err
	}
	t := domain.Task{Name: name, Params: append([]domain.Param(nil), params...)}
	m.schema.tasks[name] = t
	m.problem.Tasks = append(m.problem.Tasks, t)
	return nil
}

// AddMethod declares a decomposition of an already declared task. Subtasks
// must name declared actions or tasks.
func (m *Model) AddMethod(md domain.Method) error {
	if md.Name == "" {
		return invalid("method name is required")
	}
	if _, dup := m.schema.methods[md.Name]; dup {
		return invalid("duplicate method %s", md.Name)
	}
	owner := "method " + md.Name
	scope, err := m.schema.checkParams(owner, md.Params)
	if err != nil {
		return err
	}
	task, ok := m.schema.tasks[md.Task]
	if !ok {
		return invalid("%s: unknown task %q", owner, md.Task)
	}
	if err := checkArgs(owner+" task "+task.Name, task.Params, md.TaskArgs, scope, m.schema); err != nil {
		return err
	}
	for _, c := range md.Preconditions {
		if err := m.schema.checkCondition(c, scope); err != nil {
			return wrapOwner(owner, err)
		}
	}
	ids := map[string]struct{}{}
	for _, st := range md.Subtasks {
		if st.ID == "" {
			return invalid("%s: subtask id is required", owner)
		}
		if _, dup := ids[st.ID]; dup {
			return invalid("%s: duplicate subtask id %s", owner, st.ID)
		}
		ids[st.ID] = struct{}{}
		params, ok := m.subtaskParams(st.Name)
		if !ok {
			return invalid("%s subtask %s: unknown action or task %s", owner, st.ID, st.Name)
		}
		if err := checkArgs(owner+" subtask "+st.ID, params, st.Args, scope, m.schema); err != nil {
			return err
		}
	}
	md = md.Clone()
	m.schema.methods[md.Name] = md
	m.problem.Methods = append(m.problem.Methods, md)
	return nil
}

// AddGoal attaches a top-level task instance. Unknown tasks and objects are
// reported as domain.ErrUnboundTask.
func (m *Model) AddGoal(g domain.GoalTask) error {
	task, ok := m.schema.tasks[g.Task]
	if !ok {
		return unbound("goal: unknown task %q", g.Task)
	}
	if err := m.schema.checkGround("goal "+task.Name, task.Params, g.Args, unbound); err != nil {
		return err
	}
	m.problem.Goals = append(m.problem.Goals, domain.GoalTask{Task: g.Task, Args: append([]string(nil), g.Args...)})
	return nil
}

// Validate checks whole-problem invariants that cannot be enforced per
// declaration: every fluent binding has an initial value.
func (m *Model) Validate() error {
	_, err := InitialState(m.problem)
	return err
}

// Problem returns a copy of the declared problem.
func (m *Model) Problem() domain.Problem { return m.problem.Clone() }

// taken reports whether name is used by an action or a task; they share the
// subtask namespace.
func (m *Model) taken(name string) bool {
	_, isAction := m.schema.actions[name]
	_, isTask := m.schema.tasks[name]
	return isAction || isTask
}

func (m *Model) subtaskParams(name string) ([]domain.Param, bool) {
	if a, ok := m.schema.actions[name]; ok {
		return a.Params, true
	}
	if t, ok := m.schema.tasks[name]; ok {
		return t.Params, true
	}
	return nil, false
}

// checkArgs verifies that method parameters named by args fit params.
func checkArgs(owner string, params []domain.Param, args []string, scope map[string]string, s *schema) error {
	if len(args) != len(params) {
		return invalid("%s takes %d arguments, got %d", owner, len(params), len(args))
	}
	for i, arg := range args {
		typ, ok := scope[arg]
		if !ok {
			return invalid("%s: unknown parameter %s", owner, arg)
		}
		if !s.isA(typ, params[i].Type) {
			return invalid("%s: parameter %s is a %s, want %s", owner, arg, typ, params[i].Type)
		}
	}
	return nil
}
