package htn

import (
	"fmt"

	"elevhtn/internal/domain"
)

// schema indexes the declarations of a problem by name.
type schema struct {
	types   map[string]domain.UserType
	objects map[string]domain.Object
	fluents map[string]domain.Fluent
	actions map[string]domain.Action
	tasks   map[string]domain.Task
	methods map[string]domain.Method
}

func newSchema() *schema {
	return &schema{
		types:   map[string]domain.UserType{},
		objects: map[string]domain.Object{},
		fluents: map[string]domain.Fluent{},
		actions: map[string]domain.Action{},
		tasks:   map[string]domain.Task{},
		methods: map[string]domain.Method{},
	}
}

// schemaOf indexes p without re-validating it.
func schemaOf(p domain.Problem) *schema {
	s := newSchema()
	for _, t := range p.Types {
		s.types[t.Name] = t
	}
	for _, o := range p.Objects {
		s.objects[o.Name] = o
	}
	for _, f := range p.Fluents {
		s.fluents[f.Name] = f
	}
	for _, a := range p.Actions {
		s.actions[a.Name] = a
	}
	for _, t := range p.Tasks {
		s.tasks[t.Name] = t
	}
	for _, m := range p.Methods {
		s.methods[m.Name] = m
	}
	return s
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("htn: %w: %s", domain.ErrInvalidModel, fmt.Sprintf(format, args...))
}

func unbound(format string, args ...any) error {
	return fmt.Errorf("htn: %w: %s", domain.ErrUnboundTask, fmt.Sprintf(format, args...))
}

// isA reports whether typ equals want or descends from it.
func (s *schema) isA(typ, want string) bool {
	if typ == domain.BoolType || want == domain.BoolType {
		return typ == want
	}
	for seen := 0; typ != "" && seen <= len(s.types); seen++ {
		if typ == want {
			return true
		}
		typ = s.types[typ].Parent
	}
	return false
}

// overlaps reports whether values of a and b may ever be equal.
func (s *schema) overlaps(a, b string) bool {
	return s.isA(a, b) || s.isA(b, a)
}

func (s *schema) knownType(typ string) bool {
	if typ == domain.BoolType {
		return true
	}
	_, ok := s.types[typ]
	return ok
}

func (s *schema) checkParams(owner string, params []domain.Param) (map[string]string, error) {
	scope := make(map[string]string, len(params))
	for _, p := range params {
		if p.Name == "" {
			return nil, invalid("%s: parameter name is required", owner)
		}
		if _, dup := scope[p.Name]; dup {
			return nil, invalid("%s: duplicate parameter %s", owner, p.Name)
		}
		if p.Type == domain.BoolType {
			return nil, invalid("%s: parameter %s cannot be boolean", owner, p.Name)
		}
		if !s.knownType(p.Type) {
			return nil, invalid("%s: parameter %s has unknown type %s", owner, p.Name, p.Type)
		}
		scope[p.Name] = p.Type
	}
	return scope, nil
}

// typeOf checks t within scope and returns its value type.
func (s *schema) typeOf(t domain.Term, scope map[string]string) (string, error) {
	switch t.Kind {
	case domain.TermParam:
		typ, ok := scope[t.Name]
		if !ok {
			return "", invalid("unknown parameter %s", t.Name)
		}
		return typ, nil
	case domain.TermObject:
		o, ok := s.objects[t.Name]
		if !ok {
			return "", invalid("unknown object %s", t.Name)
		}
		return o.Type, nil
	case domain.TermBool:
		return domain.BoolType, nil
	case domain.TermFluent:
		f, ok := s.fluents[t.Name]
		if !ok {
			return "", invalid("unknown fluent %s", t.Name)
		}
		if len(t.Args) != len(f.Params) {
			return "", invalid("fluent %s takes %d arguments, got %d", f.Name, len(f.Params), len(t.Args))
		}
		for i, arg := range t.Args {
			argType, err := s.typeOf(arg, scope)
			if err != nil {
				return "", err
			}
			if !s.isA(argType, f.Params[i].Type) {
				return "", invalid("fluent %s argument %s: %s is not a %s", f.Name, f.Params[i].Name, argType, f.Params[i].Type)
			}
		}
		return f.Type, nil
	default:
		return "", invalid("unknown term kind %q", t.Kind)
	}
}

func (s *schema) checkCondition(c domain.Condition, scope map[string]string) error {
	switch c.Op {
	case domain.OpEquals:
		if len(c.Terms) != 2 || len(c.Sub) != 0 {
			return invalid("eq needs exactly two terms")
		}
		left, err := s.typeOf(c.Terms[0], scope)
		if err != nil {
			return err
		}
		right, err := s.typeOf(c.Terms[1], scope)
		if err != nil {
			return err
		}
		if !s.overlaps(left, right) {
			return invalid("cannot compare %s (%s) with %s (%s)", c.Terms[0], left, c.Terms[1], right)
		}
		return nil
	case domain.OpNot:
		if len(c.Sub) != 1 || len(c.Terms) != 0 {
			return invalid("not needs exactly one condition")
		}
		return s.checkCondition(c.Sub[0], scope)
	case domain.OpHolds:
		if len(c.Terms) != 1 || len(c.Sub) != 0 {
			return invalid("holds needs exactly one term")
		}
		typ, err := s.typeOf(c.Terms[0], scope)
		if err != nil {
			return err
		}
		if typ != domain.BoolType {
			return invalid("%s is not boolean", c.Terms[0])
		}
		return nil
	case domain.OpAnd:
		if len(c.Terms) != 0 {
			return invalid("and takes conditions only")
		}
		for _, sub := range c.Sub {
			if err := s.checkCondition(sub, scope); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalid("unknown condition operator %q", c.Op)
	}
}

func (s *schema) checkEffect(e domain.Effect, scope map[string]string) error {
	if e.Fluent.Kind != domain.TermFluent {
		return invalid("effect target %s is not a fluent", e.Fluent)
	}
	target, err := s.typeOf(e.Fluent, scope)
	if err != nil {
		return err
	}
	value, err := s.typeOf(e.Value, scope)
	if err != nil {
		return err
	}
	if !s.isA(value, target) {
		return invalid("cannot assign %s (%s) to %s (%s)", e.Value, value, e.Fluent, target)
	}
	return nil
}

// checkGround verifies that objects can be bound to params.
func (s *schema) checkGround(owner string, params []domain.Param, args []string, fail func(string, ...any) error) error {
	if len(args) != len(params) {
		return fail("%s takes %d arguments, got %d", owner, len(params), len(args))
	}
	for i, name := range args {
		o, ok := s.objects[name]
		if !ok {
			return fail("%s: unknown object %s", owner, name)
		}
		if !s.isA(o.Type, params[i].Type) {
			return fail("%s: %s is a %s, want %s", owner, name, o.Type, params[i].Type)
		}
	}
	return nil
}

// objectsOf returns the objects of p whose type is typ or a subtype, in
// declaration order.
func (s *schema) objectsOf(p domain.Problem, typ string) []domain.Object {
	var out []domain.Object
	for _, o := range p.Objects {
		if s.isA(o.Type, typ) {
			out = append(out, o)
		}
	}
	return out
}

func wrapOwner(owner string, err error) error {
	return fmt.Errorf("%s: %w", owner, err)
}
