package htn

import (
	"elevhtn/internal/domain"
)

// Bindings maps parameter names to object names.
type Bindings map[string]string

func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Resolve computes the value of t in st under b.
func Resolve(t domain.Term, st State, b Bindings) (domain.Value, error) {
	switch t.Kind {
	case domain.TermParam:
		name, ok := b[t.Name]
		if !ok {
			return domain.Value{}, invalid("parameter %s is unbound", t.Name)
		}
		return domain.ObjectValue(name), nil
	case domain.TermObject:
		return domain.ObjectValue(t.Name), nil
	case domain.TermBool:
		return domain.BoolValue(t.Bool), nil
	case domain.TermFluent:
		key, err := fluentKey(t, st, b)
		if err != nil {
			return domain.Value{}, err
		}
		v, ok := st.values[key]
		if !ok {
			return domain.Value{}, invalid("fluent binding %s has no value", key)
		}
		return v, nil
	default:
		return domain.Value{}, invalid("unknown term kind %q", t.Kind)
	}
}

func fluentKey(t domain.Term, st State, b Bindings) (string, error) {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		v, err := Resolve(arg, st, b)
		if err != nil {
			return "", err
		}
		if v.Kind != domain.ValueObject {
			return "", invalid("argument %d of %s is not an object", i, t.Name)
		}
		args[i] = v.Object
	}
	return Key(t.Name, args...), nil
}

// Eval evaluates c in st under b.
func Eval(c domain.Condition, st State, b Bindings) (bool, error) {
	switch c.Op {
	case domain.OpEquals:
		if len(c.Terms) != 2 {
			return false, invalid("eq needs exactly two terms")
		}
		left, err := Resolve(c.Terms[0], st, b)
		if err != nil {
			return false, err
		}
		right, err := Resolve(c.Terms[1], st, b)
		if err != nil {
			return false, err
		}
		return left == right, nil
	case domain.OpNot:
		if len(c.Sub) != 1 {
			return false, invalid("not needs exactly one condition")
		}
		ok, err := Eval(c.Sub[0], st, b)
		return !ok, err
	case domain.OpHolds:
		if len(c.Terms) != 1 {
			return false, invalid("holds needs exactly one term")
		}
		v, err := Resolve(c.Terms[0], st, b)
		if err != nil {
			return false, err
		}
		if v.Kind != domain.ValueBool {
			return false, invalid("%s is not boolean", c.Terms[0])
		}
		return v.Bool, nil
	case domain.OpAnd:
		for _, sub := range c.Sub {
			ok, err := Eval(sub, st, b)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	default:
		return false, invalid("unknown condition operator %q", c.Op)
	}
}

// firstFailing returns the index of the first condition that does not hold,
// or -1 when all hold.
func firstFailing(cs []domain.Condition, st State, b Bindings) (int, error) {
	for i, c := range cs {
		ok, err := Eval(c, st, b)
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
	}
	return -1, nil
}
