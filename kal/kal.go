// File: kal.go
// Title: KAL Engine
// Description: Implements the KAL engine facade. Creates request-scoped
//              parsers with correlated logging, applies configured limits,
//              and exposes parsing, tokenizing, and tree dumping as a
//              single coherent API.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial engine implementation

package kal

import (
	"time"

	"github.com/google/uuid"

	kalconfig "github.com/msto63/kal/core/config"
	kalerror "github.com/msto63/kal/core/error"
	kallog "github.com/msto63/kal/core/log"
	"github.com/msto63/kal/kal/ast"
	"github.com/msto63/kal/kal/parser"
)

// Engine is the high-level entry point for parsing KAL source text.
// An Engine is safe for concurrent use; every request gets its own
// parser and a correlated request ID in the logs.
type Engine struct {
	logger  *kallog.Logger
	options Options
}

// Options configures engine behavior
type Options struct {
	Logger          *kallog.Logger
	MaxInputLength  int
	MaxNestingDepth int
}

// OptionsFromConfig builds engine options from a loaded configuration.
// Missing keys keep their zero value and fall back to parser defaults.
func OptionsFromConfig(cfg *kalconfig.Config) Options {
	return Options{
		MaxInputLength:  cfg.GetInt("parser.max_input_length", 0),
		MaxNestingDepth: cfg.GetInt("parser.max_nesting_depth", 0),
	}
}

// NewEngine creates a new engine with the given options
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = kallog.GetDefault()
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "kal-engine"),
		options: opts,
	}, nil
}

// Parse parses KAL source text into a program AST
func (e *Engine) Parse(input string) (*ast.Program, error) {
	requestID := uuid.New().String()
	logger := e.logger.WithRequestID(requestID)
	start := time.Now()

	p, err := e.newParser(logger)
	if err != nil {
		return nil, err
	}

	program, err := p.Parse(input)
	if err != nil {
		return nil, kalerror.Wrap(err, "parse request "+requestID)
	}

	logger.Info("Parse request completed", kallog.Fields{
		"functions":   len(program.Functions),
		"externs":     len(program.Externs),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return program, nil
}

// ParseExpression parses a single KAL expression
func (e *Engine) ParseExpression(input string) (ast.Expr, error) {
	p, err := e.newParser(e.logger.WithRequestID(uuid.New().String()))
	if err != nil {
		return nil, err
	}
	return p.ParseExpression(input)
}

// Tokenize returns the raw token stream of the input. The same length
// limit applies as for Parse.
func (e *Engine) Tokenize(input string) ([]parser.Token, error) {
	maxLen := e.options.MaxInputLength
	if maxLen == 0 {
		maxLen = parser.DefaultMaxInputLength
	}
	if len(input) > maxLen {
		return nil, kalerror.Newf("input exceeds maximum length: %d > %d",
			len(input), maxLen).
			WithCode(kalerror.CodeValidationFailed).
			WithOperation("tokenize")
	}
	return parser.TokenizeInput(input)
}

// Dump renders a parsed node as an indented tree for inspection
func (e *Engine) Dump(node ast.Node) string {
	return ast.ASTToString(node)
}

// newParser builds a request-scoped parser from the engine options
func (e *Engine) newParser(logger *kallog.Logger) (*parser.Parser, error) {
	return parser.New(parser.Options{
		Logger:          logger,
		MaxInputLength:  e.options.MaxInputLength,
		MaxNestingDepth: e.options.MaxNestingDepth,
	})
}

// Convenience functions using a default engine

// Parse parses KAL source text with default options
func Parse(input string) (*ast.Program, error) {
	engine, err := NewEngine(Options{})
	if err != nil {
		return nil, err
	}
	return engine.Parse(input)
}

// Tokenize tokenizes KAL source text with default options
func Tokenize(input string) ([]parser.Token, error) {
	engine, err := NewEngine(Options{})
	if err != nil {
		return nil, err
	}
	return engine.Tokenize(input)
}
