package htn

import (
	"strconv"

	"elevhtn/internal/domain"
)

// P declares a typed parameter.
func P(name, typ string) domain.Param { return domain.Param{Name: name, Type: typ} }

// Param refers to a parameter of the enclosing action or method.
func Param(name string) domain.Term { return domain.Term{Kind: domain.TermParam, Name: name} }

// Obj refers to a declared object.
func Obj(name string) domain.Term { return domain.Term{Kind: domain.TermObject, Name: name} }

// Bool is a boolean constant.
func Bool(b bool) domain.Term { return domain.Term{Kind: domain.TermBool, Bool: b} }

// Equals holds when both terms resolve to the same value.
func Equals(a, b domain.Term) domain.Condition {
	return domain.Condition{Op: domain.OpEquals, Terms: []domain.Term{a, b}}
}

// NotEquals is Not(Equals(a, b)).
func NotEquals(a, b domain.Term) domain.Condition { return Not(Equals(a, b)) }

// Not negates c.
func Not(c domain.Condition) domain.Condition {
	return domain.Condition{Op: domain.OpNot, Sub: []domain.Condition{c}}
}

// Holds is true when the boolean term t resolves to true.
func Holds(t domain.Term) domain.Condition {
	return domain.Condition{Op: domain.OpHolds, Terms: []domain.Term{t}}
}

// And holds when every condition holds. An empty And is true.
func And(cs ...domain.Condition) domain.Condition {
	return domain.Condition{Op: domain.OpAnd, Sub: cs}
}

// FluentRef is a handle on a declared fluent used to build applications.
type FluentRef struct {
	Name   string
	Params []domain.Param
	Type   string
}

// Of applies the fluent to args.
func (f FluentRef) Of(args ...domain.Term) domain.Term {
	return domain.Term{Kind: domain.TermFluent, Name: f.Name, Args: args}
}

// ActionSchema accumulates an action declaration.
type ActionSchema struct {
	action domain.Action
}

// NewAction starts an action declaration with the given parameters.
func NewAction(name string, params ...domain.Param) *ActionSchema {
	return &ActionSchema{action: domain.Action{Name: name, Params: params}}
}

// Name returns the action name.
func (a *ActionSchema) Name() string { return a.action.Name }

// Param refers to one of the action's parameters.
func (a *ActionSchema) Param(name string) domain.Term { return Param(name) }

// Precondition appends preconditions.
func (a *ActionSchema) Precondition(cs ...domain.Condition) *ActionSchema {
	a.action.Preconditions = append(a.action.Preconditions, cs...)
	return a
}

// Effect appends the assignment fluent := value.
func (a *ActionSchema) Effect(fluent, value domain.Term) *ActionSchema {
	a.action.Effects = append(a.action.Effects, domain.Effect{Fluent: fluent, Value: value})
	return a
}

// Action returns a copy of the declaration.
func (a *ActionSchema) Action() domain.Action { return a.action.Clone() }

// MethodSchema accumulates a method declaration.
type MethodSchema struct {
	method domain.Method
}

// NewMethod starts a method declaration with the given parameters.
func NewMethod(name string, params ...domain.Param) *MethodSchema {
	return &MethodSchema{method: domain.Method{Name: name, Params: params}}
}

// SetTask binds the method to task; args name method parameters.
func (m *MethodSchema) SetTask(task string, args ...string) *MethodSchema {
	m.method.Task = task
	m.method.TaskArgs = args
	return m
}

// Precondition appends preconditions.
func (m *MethodSchema) Precondition(cs ...domain.Condition) *MethodSchema {
	m.method.Preconditions = append(m.method.Preconditions, cs...)
	return m
}

// Subtask appends an ordered step and returns its identifier.
func (m *MethodSchema) Subtask(name string, args ...string) string {
	id := "t" + strconv.Itoa(len(m.method.Subtasks)+1)
	m.method.Subtasks = append(m.method.Subtasks, domain.Subtask{ID: id, Name: name, Args: args})
	return id
}

// Method returns a copy of the declaration.
func (m *MethodSchema) Method() domain.Method { return m.method.Clone() }
