package htn

import (
	"sort"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"elevhtn/internal/domain"
)

// Key renders the state key of a fluent binding, e.g. at_person(person0).
func Key(fluent string, args ...string) string {
	return fluent + "(" + strings.Join(args, ",") + ")"
}

// State maps every fluent binding to its value. States are values: Apply
// returns a new State and never mutates its input.
type State struct {
	values map[string]domain.Value
}

// Get returns the value of fluent(args...).
func (s State) Get(fluent string, args ...string) (domain.Value, bool) {
	v, ok := s.values[Key(fluent, args...)]
	return v, ok
}

// Len returns the number of assigned bindings.
func (s State) Len() int { return len(s.values) }

// Keys returns the assigned bindings in lexical order.
func (s State) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := State{}
	if err := deepcopy.Copy(&out.values, &s.values); err != nil {
		// Value holds only strings and bools; a copy failure is a programming error.
		panic(err)
	}
	if out.values == nil {
		out.values = map[string]domain.Value{}
	}
	return out
}

func (s State) set(key string, v domain.Value) { s.values[key] = v }

// InitialState materialises p's initial assignments. It fails with
// domain.ErrInvalidModel when some fluent binding has no value.
func InitialState(p domain.Problem) (State, error) {
	sc := schemaOf(p)
	st := State{values: make(map[string]domain.Value, len(p.Initial))}
	for _, a := range p.Initial {
		st.set(Key(a.Fluent, a.Args...), a.Value)
	}
	for _, f := range p.Fluents {
		var missing string
		forEachBinding(sc, p, f.Params, nil, func(args []string) bool {
			if _, ok := st.values[Key(f.Name, args...)]; !ok {
				missing = Key(f.Name, args...)
				return false
			}
			return true
		})
		if missing != "" {
			return State{}, invalid("fluent binding %s has no initial value", missing)
		}
	}
	return st, nil
}

// forEachBinding enumerates object tuples for params in declaration order,
// keeping the entries already present in prefix. visit returns false to stop.
func forEachBinding(sc *schema, p domain.Problem, params []domain.Param, prefix []string, visit func([]string) bool) bool {
	if len(prefix) == len(params) {
		return visit(append([]string(nil), prefix...))
	}
	for _, o := range sc.objectsOf(p, params[len(prefix)].Type) {
		if !forEachBinding(sc, p, params, append(prefix, o.Name), visit) {
			return false
		}
	}
	return true
}
