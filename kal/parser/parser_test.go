// File: parser_test.go
// Title: KAL Parser Unit Tests
// Description: Unit tests for the KAL recursive descent parser. Tests
//              cover operator precedence, associativity, call syntax,
//              prototypes, extern declarations, error codes, and the
//              nesting depth limit.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial parser test suite

package parser

import (
	"errors"
	"strings"
	"testing"

	kalerror "github.com/msto63/kal/core/error"
	"github.com/msto63/kal/kal/ast"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return p
}

// parseOne parses input expected to contain exactly one function
func parseOne(t *testing.T, input string) *ast.Function {
	t.Helper()
	program, err := newTestParser(t).Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	if len(program.Functions) != 1 {
		t.Fatalf("Parse(%q) returned %d functions, want 1", input, len(program.Functions))
	}
	return program.Functions[0]
}

func TestParser_ExpressionStructure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // canonical form with explicit grouping
	}{
		{
			name:  "number literal",
			input: "42",
			want:  "42",
		},
		{
			name:  "variable",
			input: "x",
			want:  "x",
		},
		{
			name:  "multiplication binds tighter than addition",
			input: "a+b*c",
			want:  "(a + (b * c))",
		},
		{
			name:  "multiplication on the left",
			input: "a*b+c",
			want:  "((a * b) + c)",
		},
		{
			name:  "equal precedence is left-associative",
			input: "a+b-c",
			want:  "((a + b) - c)",
		},
		{
			name:  "division chains left",
			input: "a/b/c",
			want:  "((a / b) / c)",
		},
		{
			name:  "parentheses override precedence",
			input: "(a+b)*c",
			want:  "((a + b) * c)",
		},
		{
			name:  "mixed precedence chain",
			input: "a+b*c-d/e",
			want:  "((a + (b * c)) - (d / e))",
		},
		{
			name:  "call with expression arguments",
			input: "foo(1+2, bar(x))",
			want:  "foo((1 + 2), bar(x))",
		},
		{
			name:  "call without arguments",
			input: "foo()",
			want:  "foo()",
		},
		{
			name:  "deeply grouped expression",
			input: "((((x))))",
			want:  "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := parseOne(t, tt.input)
			if !fn.IsAnonymous() {
				t.Error("bare expression must be wrapped anonymously")
			}
			if got := fn.Body.String(); got != tt.want {
				t.Errorf("Parse(%q) body = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParser_Definition(t *testing.T) {
	fn := parseOne(t, "def add(a b) a+b")

	if fn.IsAnonymous() {
		t.Fatal("definition must not be anonymous")
	}
	if fn.Proto.Name != "add" {
		t.Errorf("name = %q, want %q", fn.Proto.Name, "add")
	}
	if len(fn.Proto.Params) != 2 || fn.Proto.Params[0] != "a" || fn.Proto.Params[1] != "b" {
		t.Errorf("params = %v, want [a b]", fn.Proto.Params)
	}
	if got := fn.Body.String(); got != "(a + b)" {
		t.Errorf("body = %q, want %q", got, "(a + b)")
	}
}

func TestParser_DefinitionWithoutParams(t *testing.T) {
	fn := parseOne(t, "def one() 1")
	if len(fn.Proto.Params) != 0 {
		t.Errorf("params = %v, want none", fn.Proto.Params)
	}
}

func TestParser_Extern(t *testing.T) {
	program, err := newTestParser(t).Parse("extern sin(x)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Externs) != 1 {
		t.Fatalf("externs = %d, want 1", len(program.Externs))
	}
	ext := program.Externs[0]
	if ext.Name != "sin" || len(ext.Params) != 1 || ext.Params[0] != "x" {
		t.Errorf("extern = %s, want sin(x)", ext)
	}
}

func TestParser_MultipleTopLevelItems(t *testing.T) {
	input := `# library
extern sin(x)
def twice(x) x*2
twice(3); twice(4)
`
	program, err := newTestParser(t).Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Externs) != 1 {
		t.Errorf("externs = %d, want 1", len(program.Externs))
	}
	if len(program.Functions) != 3 {
		t.Fatalf("functions = %d, want 3", len(program.Functions))
	}
	if program.Functions[0].IsAnonymous() {
		t.Error("first function is a named definition")
	}
	if !program.Functions[1].IsAnonymous() || !program.Functions[2].IsAnonymous() {
		t.Error("trailing expressions must be anonymous")
	}
}

func TestParser_StraySemicolons(t *testing.T) {
	program, err := newTestParser(t).Parse(";; 1+2 ;;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Functions) != 1 {
		t.Errorf("functions = %d, want 1", len(program.Functions))
	}
}

func TestParser_EmptyInput(t *testing.T) {
	program, err := newTestParser(t).Parse("  # comment only\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Functions) != 0 || len(program.Externs) != 0 {
		t.Error("empty input must produce an empty program")
	}
}

func TestParser_ErrorCodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  kalerror.Code
	}{
		{
			name:  "malformed number",
			input: "1.2.3",
			code:  kalerror.CodeMalformedNumber,
		},
		{
			name:  "malformed number inside expression",
			input: "x + 1..5",
			code:  kalerror.CodeMalformedNumber,
		},
		{
			name:  "unmatched parenthesis",
			input: "(1+2",
			code:  kalerror.CodeUnmatchedParenthesis,
		},
		{
			name:  "bad argument separator",
			input: "foo(1 2)",
			code:  kalerror.CodeExpectedArgSeparatorOrClose,
		},
		{
			name:  "missing function name",
			input: "def (a) a",
			code:  kalerror.CodeMalformedPrototype,
		},
		{
			name:  "missing open paren in prototype",
			input: "def foo a",
			code:  kalerror.CodeMalformedPrototype,
		},
		{
			name:  "missing close paren in prototype",
			input: "def foo(a b",
			code:  kalerror.CodeMalformedPrototype,
		},
		{
			name:  "extern without prototype",
			input: "extern 42",
			code:  kalerror.CodeMalformedPrototype,
		},
		{
			name:  "operator without operand",
			input: "1+",
			code:  kalerror.CodeUnexpectedToken,
		},
		{
			name:  "stray symbol as expression",
			input: "@",
			code:  kalerror.CodeUnexpectedToken,
		},
		{
			name:  "comma outside argument list",
			input: ",",
			code:  kalerror.CodeUnexpectedToken,
		},
		{
			name:  "missing definition body",
			input: "def foo(a)",
			code:  kalerror.CodeUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser(t).Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if !kalerror.HasCode(err, tt.code) {
				t.Errorf("Parse(%q) error code = %v, want %v (error: %v)",
					tt.input, kalerror.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestParser_ErrorPosition(t *testing.T) {
	_, err := newTestParser(t).Parse("foo(1 2)")
	if err == nil {
		t.Fatal("expected error")
	}

	var kerr *kalerror.Error
	if !errors.As(err, &kerr) {
		t.Fatalf("expected *kalerror.Error, got %T", err)
	}
	details := kerr.Details()
	if details["line"] != 1 {
		t.Errorf("line = %v, want 1", details["line"])
	}
	if details["column"] != 7 {
		t.Errorf("column = %v, want 7", details["column"])
	}
	if details["after"] != "NUMBER(1)" {
		t.Errorf("after = %v, want NUMBER(1)", details["after"])
	}
}

func TestParser_NestingDepthLimit(t *testing.T) {
	p, err := New(Options{MaxNestingDepth: 10})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Within the limit
	if _, err := p.Parse(strings.Repeat("(", 5) + "1" + strings.Repeat(")", 5)); err != nil {
		t.Fatalf("shallow nesting must parse: %v", err)
	}

	// Beyond the limit
	_, err = p.Parse(strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50))
	if err == nil {
		t.Fatal("expected nesting depth error")
	}
	if !kalerror.HasCode(err, kalerror.CodeNestingTooDeep) {
		t.Errorf("error code = %v, want %v", kalerror.GetCode(err), kalerror.CodeNestingTooDeep)
	}
}

func TestParser_DepthResetsBetweenParses(t *testing.T) {
	p, err := New(Options{MaxNestingDepth: 10})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	input := strings.Repeat("(", 8) + "1" + strings.Repeat(")", 8)
	for i := 0; i < 3; i++ {
		if _, err := p.Parse(input); err != nil {
			t.Fatalf("parse %d failed: %v", i, err)
		}
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	p, err := New(Options{MaxInputLength: 16})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := p.Parse("1+2"); err != nil {
		t.Fatalf("short input must parse: %v", err)
	}

	_, err = p.Parse(strings.Repeat("1+", 16) + "1")
	if err == nil {
		t.Fatal("expected length error")
	}
	if !kalerror.HasCode(err, kalerror.CodeValidationFailed) {
		t.Errorf("error code = %v, want %v", kalerror.GetCode(err), kalerror.CodeValidationFailed)
	}
}

func TestParser_ParseExpression(t *testing.T) {
	p := newTestParser(t)

	expr, err := p.ParseExpression("a+b*c")
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}
	if got := expr.String(); got != "(a + (b * c))" {
		t.Errorf("expr = %q, want %q", got, "(a + (b * c))")
	}

	if _, err := p.ParseExpression("a b"); err == nil {
		t.Error("trailing tokens must be rejected")
	}
}

func TestParser_RoundTrip(t *testing.T) {
	// The canonical rendering of a parsed program must re-parse to the
	// same canonical rendering.
	inputs := []string{
		"a+b*c",
		"a*b+c/d-e",
		"def fib(n) fib(n-1)+fib(n-2)",
		"extern pow(base exp)\ndef square(x) pow(x, 2)\nsquare(1.5)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			p := newTestParser(t)

			first, err := p.Parse(input)
			if err != nil {
				t.Fatalf("first parse failed: %v", err)
			}
			canonical := first.String()

			second, err := p.Parse(canonical)
			if err != nil {
				t.Fatalf("canonical form %q failed to parse: %v", canonical, err)
			}
			if got := second.String(); got != canonical {
				t.Errorf("round trip diverged:\nfirst:  %q\nsecond: %q", canonical, got)
			}
		})
	}
}

func TestParser_PositionTracking(t *testing.T) {
	fn := parseOne(t, "def foo(a)\n  a*2")

	if fn.Pos.Line != 1 || fn.Pos.Column != 1 {
		t.Errorf("function position = %v, want 1:1", fn.Pos)
	}

	binary, ok := fn.Body.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("body is %T, want *ast.BinaryExpr", fn.Body)
	}
	if binary.Pos.Line != 2 {
		t.Errorf("operator line = %d, want 2", binary.Pos.Line)
	}
	if binary.LHS.Position().Column != 3 {
		t.Errorf("lhs column = %d, want 3", binary.LHS.Position().Column)
	}
}
