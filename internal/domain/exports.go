package domain

import (
	interfaces "elevhtn/internal/domain/interfaces"
	types "elevhtn/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProblemName  = types.ProblemName
	Fingerprint  = types.Fingerprint
	RequestID    = types.RequestID
	UserType     = types.UserType
	Param        = types.Param
	Object       = types.Object
	Fluent       = types.Fluent
	ValueKind    = types.ValueKind
	Value        = types.Value
	TermKind     = types.TermKind
	Term         = types.Term
	CondOp       = types.CondOp
	Condition    = types.Condition
	Effect       = types.Effect
	Action       = types.Action
	Task         = types.Task
	Subtask      = types.Subtask
	Method       = types.Method
	GoalTask     = types.GoalTask
	Assignment   = types.Assignment
	Problem      = types.Problem
	GroundAction = types.GroundAction
	Plan         = types.Plan
	BuildRequest = types.BuildRequest
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ProblemStore   = interfaces.ProblemStore
	PlanStore      = interfaces.PlanStore
	Planner        = interfaces.Planner
	ProblemService = interfaces.ProblemService
	SolveService   = interfaces.SolveService
)

// BoolType is the value type of boolean fluents.
const BoolType = types.BoolType

const (
	ValueObject = types.ValueObject
	ValueBool   = types.ValueBool

	TermParam  = types.TermParam
	TermObject = types.TermObject
	TermBool   = types.TermBool
	TermFluent = types.TermFluent

	OpEquals = types.OpEquals
	OpNot    = types.OpNot
	OpHolds  = types.OpHolds
	OpAnd    = types.OpAnd
)

var (
	ObjectValue = types.ObjectValue
	BoolValue   = types.BoolValue
)
