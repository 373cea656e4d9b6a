package types

import "strconv"

// BoolType is the value type of boolean fluents. It cannot be declared as a
// user type.
const BoolType = "bool"

// UserType is a named object category. Parent is empty for root types.
type UserType struct {
	Name   string `json:"name" yaml:"name"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Param is a named, typed parameter of a fluent, action, task or method.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Object is a named constant of a user type.
type Object struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Fluent is a typed state variable parameterised by objects.
type Fluent struct {
	Name   string  `json:"name" yaml:"name"`
	Params []Param `json:"params" yaml:"params"`
	Type   string  `json:"type" yaml:"type"`
}

// ValueKind tells which field of a Value is meaningful.
type ValueKind string

const (
	ValueObject ValueKind = "object"
	ValueBool   ValueKind = "bool"
)

// Value is the content of a fluent binding: an object or a boolean.
type Value struct {
	Kind   ValueKind `json:"kind" yaml:"kind"`
	Object string    `json:"object,omitempty" yaml:"object,omitempty"`
	Bool   bool      `json:"bool,omitempty" yaml:"bool,omitempty"`
}

// ObjectValue wraps an object name.
func ObjectValue(name string) Value { return Value{Kind: ValueObject, Object: name} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// String returns the object name or "true"/"false".
func (v Value) String() string {
	if v.Kind == ValueBool {
		return strconv.FormatBool(v.Bool)
	}
	return v.Object
}
