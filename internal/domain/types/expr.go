package types

import "strings"

// TermKind selects how a Term is resolved.
type TermKind string

const (
	TermParam  TermKind = "param"
	TermObject TermKind = "object"
	TermBool   TermKind = "bool"
	TermFluent TermKind = "fluent"
)

// Term is a value-producing expression. Name holds the parameter, object or
// fluent name; Args are only used by fluent applications.
type Term struct {
	Kind TermKind `json:"kind" yaml:"kind"`
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	Bool bool     `json:"bool,omitempty" yaml:"bool,omitempty"`
	Args []Term   `json:"args,omitempty" yaml:"args,omitempty"`
}

// String renders the term in a compact functional notation.
func (t Term) String() string {
	switch t.Kind {
	case TermBool:
		if t.Bool {
			return "true"
		}
		return "false"
	case TermFluent:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		return t.Name + "(" + strings.Join(args, ", ") + ")"
	case TermParam:
		return "?" + t.Name
	default:
		return t.Name
	}
}

// CondOp is the operator of a Condition node.
type CondOp string

const (
	OpEquals CondOp = "eq"
	OpNot    CondOp = "not"
	OpHolds  CondOp = "holds"
	OpAnd    CondOp = "and"
)

// Condition is a boolean expression over fluent values.
//
//	eq:    Terms[0] == Terms[1]
//	not:   !Sub[0]
//	holds: Terms[0] is a boolean term that is true
//	and:   every Sub holds
type Condition struct {
	Op    CondOp      `json:"op" yaml:"op"`
	Terms []Term      `json:"terms,omitempty" yaml:"terms,omitempty"`
	Sub   []Condition `json:"sub,omitempty" yaml:"sub,omitempty"`
}

// String renders the condition in a compact functional notation.
func (c Condition) String() string {
	switch c.Op {
	case OpEquals:
		if len(c.Terms) == 2 {
			return c.Terms[0].String() + " == " + c.Terms[1].String()
		}
	case OpNot:
		if len(c.Sub) == 1 {
			if c.Sub[0].Op == OpEquals && len(c.Sub[0].Terms) == 2 {
				return c.Sub[0].Terms[0].String() + " != " + c.Sub[0].Terms[1].String()
			}
			return "not " + c.Sub[0].String()
		}
	case OpHolds:
		if len(c.Terms) == 1 {
			return c.Terms[0].String()
		}
	case OpAnd:
		parts := make([]string, len(c.Sub))
		for i, s := range c.Sub {
			parts[i] = s.String()
		}
		return "(" + strings.Join(parts, " and ") + ")"
	}
	return string(c.Op) + "?"
}

// Effect assigns the value of Value to the fluent application Fluent.
type Effect struct {
	Fluent Term `json:"fluent" yaml:"fluent"`
	Value  Term `json:"value" yaml:"value"`
}

// String renders the effect as an assignment.
func (e Effect) String() string { return e.Fluent.String() + " := " + e.Value.String() }
