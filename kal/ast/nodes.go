// File: nodes.go
// Title: KAL AST Node Definitions
// Description: Defines all AST node types for representing KAL programs:
//              expressions, prototypes, functions, and the operator enum
//              with its fixed precedence table. Provides canonical string
//              representations and validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/kal/utils/stringx"
)

// AnonymousName is the reserved prototype name under which a bare
// top-level expression is wrapped, so that later stages can treat it
// uniformly with declared functions.
const AnonymousName = "__anon_expr"

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical source representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic structural validation of the node
	Validate() error
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column" for diagnostics
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Operator represents a binary operator
type Operator int

const (
	// OpPlus is addition, precedence 20
	OpPlus Operator = iota

	// OpMinus is subtraction, precedence 20
	OpMinus

	// OpMultiply is multiplication, precedence 30
	OpMultiply

	// OpDivide is division, precedence 30
	OpDivide
)

// operatorSymbols is the process-wide immutable operator table. It is
// built exactly once; precedence lookups must never reconstruct it.
var operatorSymbols = map[string]Operator{
	"+": OpPlus,
	"-": OpMinus,
	"*": OpMultiply,
	"/": OpDivide,
}

// OperatorFromSymbol maps a single-character symbol token to its
// operator. The bool result is false for symbols that are no operator.
func OperatorFromSymbol(symbol string) (Operator, bool) {
	op, ok := operatorSymbols[symbol]
	return op, ok
}

// String returns the source symbol of the operator
func (op Operator) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Precedence returns the binding strength of the operator; higher binds
// tighter. Values below 1 never occur for a valid operator.
func (op Operator) Precedence() int {
	switch op {
	case OpMultiply, OpDivide:
		return 30
	default:
		return 20
	}
}

// Expression nodes

// NumberExpr represents a numeric literal
type NumberExpr struct {
	Value float64  // Literal value
	Pos   Position // Source position
}

// VariableExpr represents a variable reference
type VariableExpr struct {
	Name string   // Variable name
	Pos  Position // Source position
}

// BinaryExpr represents a binary expression (a + b, a * b, ...).
// LHS and RHS are owned exclusively by this node.
type BinaryExpr struct {
	Op  Operator // Operator
	LHS Expr     // Left operand
	RHS Expr     // Right operand
	Pos Position // Source position (of the operator)
}

// CallExpr represents a function call
type CallExpr struct {
	Callee string   // Called function name
	Args   []Expr   // Ordered call arguments
	Pos    Position // Source position
}

// Prototype represents a function signature: its name and the ordered
// parameter names. Duplicate parameters are not rejected at this layer;
// that is left to a later semantic stage.
type Prototype struct {
	Name   string   // Function name
	Params []string // Ordered parameter names
	Pos    Position // Source position
}

// Function represents a function definition: a prototype plus a body
// expression. A bare top-level expression is a Function whose prototype
// carries AnonymousName and no parameters.
type Function struct {
	Proto *Prototype // Signature
	Body  Expr       // Body expression
	Pos   Position   // Source position
}

// Program represents one parsed compilation unit
type Program struct {
	Functions []*Function  // Definitions and top-level expressions, in source order
	Externs   []*Prototype // Declaration-only extern prototypes, in source order
	Pos       Position     // Source position
}

// IsAnonymous reports whether the function wraps a bare top-level expression
func (f *Function) IsAnonymous() bool {
	return f.Proto != nil && f.Proto.Name == AnonymousName
}

// Node interface implementations

func (e *NumberExpr) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *NumberExpr) Position() Position { return e.Pos }

func (e *NumberExpr) Validate() error { return nil }

func (e *VariableExpr) String() string {
	return e.Name
}

func (e *VariableExpr) Position() Position { return e.Pos }

func (e *VariableExpr) Validate() error {
	if stringx.IsBlank(e.Name) {
		return fmt.Errorf("variable expression has empty name")
	}
	return nil
}

// String renders the expression with explicit grouping so that the
// canonical form re-parses to a structurally identical tree.
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.LHS.String(), e.Op.String(), e.RHS.String())
}

func (e *BinaryExpr) Position() Position { return e.Pos }

func (e *BinaryExpr) Validate() error {
	if e.LHS == nil || e.RHS == nil {
		return fmt.Errorf("binary expression %q has missing operand", e.Op)
	}
	if err := e.LHS.Validate(); err != nil {
		return err
	}
	return e.RHS.Validate()
}

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
}

func (e *CallExpr) Position() Position { return e.Pos }

func (e *CallExpr) Validate() error {
	if stringx.IsBlank(e.Callee) {
		return fmt.Errorf("call expression has empty callee")
	}
	for _, arg := range e.Args {
		if arg == nil {
			return fmt.Errorf("call to %q has nil argument", e.Callee)
		}
		if err := arg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prototype) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Params, " "))
}

func (p *Prototype) Position() Position { return p.Pos }

func (p *Prototype) Validate() error {
	if stringx.IsBlank(p.Name) {
		return fmt.Errorf("prototype has empty name")
	}
	for _, param := range p.Params {
		if stringx.IsBlank(param) {
			return fmt.Errorf("prototype %q has empty parameter name", p.Name)
		}
	}
	return nil
}

func (f *Function) String() string {
	if f.IsAnonymous() {
		return f.Body.String()
	}
	return fmt.Sprintf("def %s %s", f.Proto.String(), f.Body.String())
}

func (f *Function) Position() Position { return f.Pos }

func (f *Function) Validate() error {
	if f.Proto == nil {
		return fmt.Errorf("function has no prototype")
	}
	if err := f.Proto.Validate(); err != nil {
		return err
	}
	if f.Body == nil {
		return fmt.Errorf("function %q has no body", f.Proto.Name)
	}
	return f.Body.Validate()
}

func (p *Program) String() string {
	lines := make([]string, 0, len(p.Externs)+len(p.Functions))
	for _, ext := range p.Externs {
		lines = append(lines, "extern "+ext.String())
	}
	for _, fn := range p.Functions {
		lines = append(lines, fn.String())
	}
	return strings.Join(lines, "\n")
}

func (p *Program) Position() Position { return p.Pos }

func (p *Program) Validate() error {
	for _, ext := range p.Externs {
		if err := ext.Validate(); err != nil {
			return err
		}
	}
	for _, fn := range p.Functions {
		if err := fn.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Accept implementations

func (e *NumberExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumberExpr(e)
}

func (e *VariableExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableExpr(e)
}

func (e *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(e)
}

func (e *CallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpr(e)
}

func (p *Prototype) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrototype(p)
}

func (f *Function) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunction(f)
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

// Expr marker methods

func (e *NumberExpr) exprNode()   {}
func (e *VariableExpr) exprNode() {}
func (e *BinaryExpr) exprNode()   {}
func (e *CallExpr) exprNode()     {}
