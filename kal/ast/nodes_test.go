// File: nodes_test.go
// Title: KAL AST Node Unit Tests
// Description: Unit tests for the KAL AST node types covering canonical
//              string rendering, operator precedence, validation, and
//              anonymous function handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial node test suite

package ast

import (
	"testing"
)

// Helper functions for creating test AST nodes

func num(v float64) *NumberExpr {
	return &NumberExpr{Value: v}
}

func variable(name string) *VariableExpr {
	return &VariableExpr{Name: name}
}

func binary(op Operator, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, LHS: lhs, RHS: rhs}
}

func TestOperatorFromSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   Operator
		ok     bool
	}{
		{"+", OpPlus, true},
		{"-", OpMinus, true},
		{"*", OpMultiply, true},
		{"/", OpDivide, true},
		{"<", 0, false},
		{"=", 0, false},
		{"", 0, false},
		{"++", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			op, ok := OperatorFromSymbol(tt.symbol)
			if ok != tt.ok {
				t.Errorf("OperatorFromSymbol(%q) ok = %v, want %v", tt.symbol, ok, tt.ok)
			}
			if ok && op != tt.want {
				t.Errorf("OperatorFromSymbol(%q) = %v, want %v", tt.symbol, op, tt.want)
			}
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		op   Operator
		want int
	}{
		{OpPlus, 20},
		{OpMinus, 20},
		{OpMultiply, 30},
		{OpDivide, 30},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.Precedence(); got != tt.want {
				t.Errorf("Precedence() = %d, want %d", got, tt.want)
			}
		})
	}

	if OpPlus.Precedence() != OpMinus.Precedence() {
		t.Error("additive operators must share precedence")
	}
	if OpMultiply.Precedence() <= OpPlus.Precedence() {
		t.Error("multiplicative operators must bind tighter than additive")
	}
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{OpPlus, "+"},
		{OpMinus, "-"},
		{OpMultiply, "*"},
		{OpDivide, "/"},
		{Operator(99), "?"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operator(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "integer literal",
			node: num(42),
			want: "42",
		},
		{
			name: "fractional literal",
			node: num(1.45),
			want: "1.45",
		},
		{
			name: "variable",
			node: variable("x"),
			want: "x",
		},
		{
			name: "binary expression",
			node: binary(OpPlus, variable("a"), variable("b")),
			want: "(a + b)",
		},
		{
			name: "nested binary expression",
			node: binary(OpPlus, variable("a"), binary(OpMultiply, variable("b"), variable("c"))),
			want: "(a + (b * c))",
		},
		{
			name: "call without arguments",
			node: &CallExpr{Callee: "foo"},
			want: "foo()",
		},
		{
			name: "call with arguments",
			node: &CallExpr{Callee: "foo", Args: []Expr{num(1), num(2)}},
			want: "foo(1, 2)",
		},
		{
			name: "prototype",
			node: &Prototype{Name: "foo", Params: []string{"a", "b"}},
			want: "foo(a b)",
		},
		{
			name: "function definition",
			node: &Function{
				Proto: &Prototype{Name: "add", Params: []string{"a", "b"}},
				Body:  binary(OpPlus, variable("a"), variable("b")),
			},
			want: "def add(a b) (a + b)",
		},
		{
			name: "anonymous function renders bare body",
			node: &Function{
				Proto: &Prototype{Name: AnonymousName},
				Body:  binary(OpMinus, num(4), num(5)),
			},
			want: "(4 - 5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Externs: []*Prototype{
			{Name: "sin", Params: []string{"x"}},
		},
		Functions: []*Function{
			{
				Proto: &Prototype{Name: "twice", Params: []string{"x"}},
				Body:  binary(OpMultiply, variable("x"), num(2)),
			},
			{
				Proto: &Prototype{Name: AnonymousName},
				Body:  &CallExpr{Callee: "twice", Args: []Expr{num(3)}},
			},
		},
	}

	want := "extern sin(x)\ndef twice(x) (x * 2)\ntwice(3)"
	if got := program.String(); got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}

func TestIsAnonymous(t *testing.T) {
	anon := &Function{Proto: &Prototype{Name: AnonymousName}, Body: num(1)}
	if !anon.IsAnonymous() {
		t.Error("expected anonymous function")
	}

	named := &Function{Proto: &Prototype{Name: "foo"}, Body: num(1)}
	if named.IsAnonymous() {
		t.Error("named function must not report anonymous")
	}

	orphan := &Function{Body: num(1)}
	if orphan.IsAnonymous() {
		t.Error("function without prototype must not report anonymous")
	}
}

func TestNodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name:    "valid number",
			node:    num(3.14),
			wantErr: false,
		},
		{
			name:    "valid variable",
			node:    variable("x"),
			wantErr: false,
		},
		{
			name:    "blank variable name",
			node:    variable("  "),
			wantErr: true,
		},
		{
			name:    "binary with missing operand",
			node:    &BinaryExpr{Op: OpPlus, LHS: num(1)},
			wantErr: true,
		},
		{
			name:    "call with empty callee",
			node:    &CallExpr{Args: []Expr{num(1)}},
			wantErr: true,
		},
		{
			name:    "call with nil argument",
			node:    &CallExpr{Callee: "foo", Args: []Expr{nil}},
			wantErr: true,
		},
		{
			name:    "prototype with blank parameter",
			node:    &Prototype{Name: "foo", Params: []string{"a", ""}},
			wantErr: true,
		},
		{
			name:    "function without body",
			node:    &Function{Proto: &Prototype{Name: "foo"}},
			wantErr: true,
		},
		{
			name:    "function without prototype",
			node:    &Function{Body: num(1)},
			wantErr: true,
		},
		{
			name: "valid program",
			node: &Program{
				Functions: []*Function{
					{Proto: &Prototype{Name: "foo"}, Body: num(1)},
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Line: 3, Column: 7, Offset: 42}
	if got := pos.String(); got != "3:7" {
		t.Errorf("Position.String() = %q, want %q", got, "3:7")
	}
}
