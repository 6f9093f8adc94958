// File: kal_test.go
// Title: KAL Engine Unit Tests
// Description: Unit tests for the KAL engine facade covering parsing,
//              tokenizing, tree dumping, configuration-driven options,
//              and concurrent use.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial engine test suite

package kal

import (
	"strings"
	"sync"
	"testing"

	kalconfig "github.com/msto63/kal/core/config"
	kalerror "github.com/msto63/kal/core/error"
	"github.com/msto63/kal/kal/parser"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	engine, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return engine
}

func TestEngine_Parse(t *testing.T) {
	engine := newTestEngine(t, Options{})

	program, err := engine.Parse("extern sin(x)\ndef twice(x) x*2\ntwice(21)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Externs) != 1 || len(program.Functions) != 2 {
		t.Errorf("got %d externs and %d functions, want 1 and 2",
			len(program.Externs), len(program.Functions))
	}
}

func TestEngine_ParseError(t *testing.T) {
	engine := newTestEngine(t, Options{})

	_, err := engine.Parse("foo(1 2)")
	if err == nil {
		t.Fatal("expected error")
	}
	// Wrapping with request context must not lose the syntax code
	if !kalerror.HasCode(err, kalerror.CodeExpectedArgSeparatorOrClose) {
		t.Errorf("error code = %v, want %v",
			kalerror.GetCode(err), kalerror.CodeExpectedArgSeparatorOrClose)
	}
}

func TestEngine_ParseExpression(t *testing.T) {
	engine := newTestEngine(t, Options{})

	expr, err := engine.ParseExpression("1+2*3")
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}
	if got := expr.String(); got != "(1 + (2 * 3))" {
		t.Errorf("expr = %q, want %q", got, "(1 + (2 * 3))")
	}
}

func TestEngine_Tokenize(t *testing.T) {
	engine := newTestEngine(t, Options{})

	tokens, err := engine.Tokenize("def foo(a) a")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(tokens) != 7 {
		t.Errorf("got %d tokens, want 7", len(tokens))
	}
	if tokens[0].Type != parser.TokenDef {
		t.Errorf("first token = %v, want DEF", tokens[0])
	}
}

func TestEngine_TokenizeLengthLimit(t *testing.T) {
	engine := newTestEngine(t, Options{MaxInputLength: 8})

	if _, err := engine.Tokenize("1+2"); err != nil {
		t.Fatalf("short input must tokenize: %v", err)
	}

	_, err := engine.Tokenize("1+2+3+4+5+6")
	if !kalerror.HasCode(err, kalerror.CodeValidationFailed) {
		t.Errorf("error code = %v, want %v", kalerror.GetCode(err), kalerror.CodeValidationFailed)
	}
}

func TestEngine_TokenizeDefaultLengthLimit(t *testing.T) {
	// A zero-options engine bounds tokenization the same way Parse is
	// bounded by the parser default.
	engine := newTestEngine(t, Options{})

	oversized := strings.Repeat("x ", parser.DefaultMaxInputLength)
	_, err := engine.Tokenize(oversized)
	if !kalerror.HasCode(err, kalerror.CodeValidationFailed) {
		t.Errorf("error code = %v, want %v", kalerror.GetCode(err), kalerror.CodeValidationFailed)
	}

	if _, err := engine.Tokenize("1+2"); err != nil {
		t.Errorf("short input must tokenize: %v", err)
	}
}

func TestEngine_Dump(t *testing.T) {
	engine := newTestEngine(t, Options{})

	program, err := engine.Parse("def twice(x) x*2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	dump := engine.Dump(program)
	for _, part := range []string{"Program:", "Prototype: twice", "BinaryExpr: *"} {
		if !strings.Contains(dump, part) {
			t.Errorf("dump missing %q:\n%s", part, dump)
		}
	}
}

func TestEngine_OptionsLimitsApply(t *testing.T) {
	engine := newTestEngine(t, Options{MaxNestingDepth: 5})

	_, err := engine.Parse(strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20))
	if !kalerror.HasCode(err, kalerror.CodeNestingTooDeep) {
		t.Errorf("error code = %v, want %v", kalerror.GetCode(err), kalerror.CodeNestingTooDeep)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := kalconfig.LoadFromString(`
[parser]
max_input_length = 1024
max_nesting_depth = 32
`, kalconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	opts := OptionsFromConfig(cfg)
	if opts.MaxInputLength != 1024 {
		t.Errorf("MaxInputLength = %d, want 1024", opts.MaxInputLength)
	}
	if opts.MaxNestingDepth != 32 {
		t.Errorf("MaxNestingDepth = %d, want 32", opts.MaxNestingDepth)
	}

	// Missing keys fall back to zero, letting the parser apply defaults
	empty, err := kalconfig.LoadFromString("", kalconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if opts := OptionsFromConfig(empty); opts.MaxInputLength != 0 || opts.MaxNestingDepth != 0 {
		t.Errorf("expected zero options for empty config, got %+v", opts)
	}
}

func TestEngine_ConcurrentParse(t *testing.T) {
	engine := newTestEngine(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := engine.Parse("def fib(n) fib(n-1)+fib(n-2)"); err != nil {
					t.Errorf("concurrent parse failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPackageLevelHelpers(t *testing.T) {
	program, err := Parse("1+1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Functions) != 1 {
		t.Errorf("got %d functions, want 1", len(program.Functions))
	}

	tokens, err := Tokenize("1+1")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(tokens) != 4 {
		t.Errorf("got %d tokens, want 4", len(tokens))
	}
}
