// File: visitor.go
// Title: KAL AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              KAL AST nodes. Provides base visitor interface and common
//              visitor implementations for tree printing, validation and
//              node collection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit structural nodes
	VisitProgram(program *Program) interface{}
	VisitFunction(function *Function) interface{}
	VisitPrototype(proto *Prototype) interface{}

	// Visit expression nodes
	VisitNumberExpr(expr *NumberExpr) interface{}
	VisitVariableExpr(expr *VariableExpr) interface{}
	VisitBinaryExpr(expr *BinaryExpr) interface{}
	VisitCallExpr(expr *CallExpr) interface{}
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods. It
// performs no traversal of its own; child traversal is the job of Walk,
// which dispatches every node through the outer visitor so that derived
// overrides are honored.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} { return nil }

func (bv *BaseVisitor) VisitFunction(function *Function) interface{} { return nil }

func (bv *BaseVisitor) VisitPrototype(proto *Prototype) interface{} { return nil }

func (bv *BaseVisitor) VisitNumberExpr(expr *NumberExpr) interface{} { return nil }

func (bv *BaseVisitor) VisitVariableExpr(expr *VariableExpr) interface{} { return nil }

func (bv *BaseVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} { return nil }

func (bv *BaseVisitor) VisitCallExpr(expr *CallExpr) interface{} { return nil }

// Walk traverses the tree rooted at node in pre-order, dispatching
// every node to the given visitor. Dispatch always goes through v
// itself, never through an embedded base, so overrides on derived
// visitors see nested nodes. Nil children are skipped.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	node.Accept(v)

	switch n := node.(type) {
	case *Program:
		for _, ext := range n.Externs {
			if ext != nil {
				Walk(v, ext)
			}
		}
		for _, fn := range n.Functions {
			if fn != nil {
				Walk(v, fn)
			}
		}
	case *Function:
		if n.Proto != nil {
			Walk(v, n.Proto)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *BinaryExpr:
		if n.LHS != nil {
			Walk(v, n.LHS)
		}
		if n.RHS != nil {
			Walk(v, n.RHS)
		}
	case *CallExpr:
		for _, arg := range n.Args {
			if arg != nil {
				Walk(v, arg)
			}
		}
	}
}

// TreeVisitor creates an indented tree representation of the AST
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
}

func (tv *TreeVisitor) VisitProgram(program *Program) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString("Program:\n")
	tv.indent++

	for _, ext := range program.Externs {
		tv.writeIndent()
		tv.buffer.WriteString("Extern:\n")
		tv.indent++
		ext.Accept(tv)
		tv.indent--
	}
	for _, fn := range program.Functions {
		fn.Accept(tv)
	}

	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitFunction(function *Function) interface{} {
	tv.writeIndent()
	if function.IsAnonymous() {
		tv.buffer.WriteString("TopLevelExpr:\n")
	} else {
		tv.buffer.WriteString("Function:\n")
	}
	tv.indent++

	if !function.IsAnonymous() {
		function.Proto.Accept(tv)
	}

	tv.writeIndent()
	tv.buffer.WriteString("Body:\n")
	tv.indent++
	function.Body.Accept(tv)
	tv.indent--

	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitPrototype(proto *Prototype) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Prototype: %s\n", proto.Name))
	if len(proto.Params) > 0 {
		tv.indent++
		tv.writeIndent()
		tv.buffer.WriteString(fmt.Sprintf("Params: %s\n", strings.Join(proto.Params, " ")))
		tv.indent--
	}
	return nil
}

func (tv *TreeVisitor) VisitNumberExpr(expr *NumberExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Number: %s\n", expr.String()))
	return nil
}

func (tv *TreeVisitor) VisitVariableExpr(expr *VariableExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Variable: %s\n", expr.Name))
	return nil
}

func (tv *TreeVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("BinaryExpr: %s\n", expr.Op))
	tv.indent++
	expr.LHS.Accept(tv)
	expr.RHS.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitCallExpr(expr *CallExpr) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Call: %s\n", expr.Callee))
	tv.indent++
	for _, arg := range expr.Args {
		arg.Accept(tv)
	}
	tv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitProgram(program *Program) interface{} {
	if err := program.Validate(); err != nil {
		vv.addError(fmt.Errorf("program validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitFunction(function *Function) interface{} {
	if err := function.Validate(); err != nil {
		vv.addError(fmt.Errorf("function validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitPrototype(proto *Prototype) interface{} {
	if err := proto.Validate(); err != nil {
		vv.addError(fmt.Errorf("prototype validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitVariableExpr(expr *VariableExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("variable validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("binary expression validation failed: %w", err))
	}
	return nil
}

func (vv *ValidationVisitor) VisitCallExpr(expr *CallExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("call validation failed: %w", err))
	}
	return nil
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Numbers    []*NumberExpr
	Variables  []*VariableExpr
	Calls      []*CallExpr
	Prototypes []*Prototype
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Numbers:    make([]*NumberExpr, 0),
		Variables:  make([]*VariableExpr, 0),
		Calls:      make([]*CallExpr, 0),
		Prototypes: make([]*Prototype, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Numbers = cv.Numbers[:0]
	cv.Variables = cv.Variables[:0]
	cv.Calls = cv.Calls[:0]
	cv.Prototypes = cv.Prototypes[:0]
}

func (cv *CollectorVisitor) VisitNumberExpr(expr *NumberExpr) interface{} {
	cv.Numbers = append(cv.Numbers, expr)
	return nil
}

func (cv *CollectorVisitor) VisitVariableExpr(expr *VariableExpr) interface{} {
	cv.Variables = append(cv.Variables, expr)
	return nil
}

func (cv *CollectorVisitor) VisitCallExpr(expr *CallExpr) interface{} {
	cv.Calls = append(cv.Calls, expr)
	return nil
}

func (cv *CollectorVisitor) VisitPrototype(proto *Prototype) interface{} {
	cv.Prototypes = append(cv.Prototypes, proto)
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates every node in the tree and returns all errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	Walk(visitor, node)
	return visitor.Errors()
}

// ASTToString converts an AST node to an indented tree representation
func ASTToString(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects specific types of nodes from the whole tree
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	Walk(visitor, node)
	return visitor
}
