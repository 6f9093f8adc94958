// File: parser.go
// Title: KAL Recursive Descent Parser
// Description: Implements the parsing phase of KAL source processing.
//              Converts token streams into Abstract Syntax Trees using
//              recursive descent with operator precedence climbing.
//              Handles definitions, extern declarations, and top-level
//              expressions with detailed error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	kalerror "github.com/msto63/kal/core/error"
	kallog "github.com/msto63/kal/core/log"
	"github.com/msto63/kal/kal/ast"
	"github.com/msto63/kal/utils/stringx"
)

// Parser implements recursive descent parsing for KAL
type Parser struct {
	lexer    *Lexer
	current  Token // Current token
	previous Token // Previous token
	logger   *kallog.Logger
	options  Options
	depth    int // Current expression nesting depth
}

// Options configures parser behavior
type Options struct {
	Logger          *kallog.Logger
	MaxInputLength  int
	MaxNestingDepth int
}

const (
	// DefaultMaxInputLength bounds the size of a single parsed input
	DefaultMaxInputLength = 65536

	// DefaultMaxNestingDepth bounds expression recursion so that
	// adversarial inputs cannot exhaust the goroutine stack
	DefaultMaxNestingDepth = 200
)

// New creates a new KAL parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = kallog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxNestingDepth == 0 {
		opts.MaxNestingDepth = DefaultMaxNestingDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "kal-parser"),
		options: opts,
	}, nil
}

// Parse parses KAL source text and returns the program AST.
// A source is a sequence of function definitions, extern declarations,
// and bare top-level expressions; stray ';' separators are skipped.
func (p *Parser) Parse(input string) (*ast.Program, error) {
	// Validate input length
	if len(input) > p.options.MaxInputLength {
		return nil, kalerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(kalerror.CodeValidationFailed).
			WithOperation("parse")
	}

	// Initialize lexer
	p.lexer = NewLexer(input)
	p.depth = 0
	if err := p.advance(); err != nil { // Load first token
		return nil, err
	}

	p.logger.Debug("Starting KAL parsing", kallog.Fields{
		"input":  stringx.Truncate(input, 120, "..."),
		"length": len(input),
	})

	program := &ast.Program{
		Pos: p.currentPosition(),
	}

	for p.current.Type != TokenEOF {
		switch {
		case p.current.Type == TokenSymbol && p.current.Value == ";":
			// Top-level separator, ignore
			if err := p.advance(); err != nil {
				return nil, err
			}
		case p.current.Type == TokenDef:
			fn, err := p.parseDefinition()
			if err != nil {
				p.logParseFailure(input, err)
				return nil, err
			}
			program.Functions = append(program.Functions, fn)
		case p.current.Type == TokenExtern:
			proto, err := p.parseExtern()
			if err != nil {
				p.logParseFailure(input, err)
				return nil, err
			}
			program.Externs = append(program.Externs, proto)
		default:
			fn, err := p.parseTopLevelExpr()
			if err != nil {
				p.logParseFailure(input, err)
				return nil, err
			}
			program.Functions = append(program.Functions, fn)
		}
	}

	p.logger.Debug("KAL parsing completed successfully", kallog.Fields{
		"functions": len(program.Functions),
		"externs":   len(program.Externs),
	})

	return program, nil
}

// ParseExpression parses a single KAL expression and requires the input
// to contain nothing else
func (p *Parser) ParseExpression(input string) (ast.Expr, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, kalerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(kalerror.CodeValidationFailed).
			WithOperation("parse-expression")
	}

	p.lexer = NewLexer(input)
	p.depth = 0
	if err := p.advance(); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, p.parseError(kalerror.CodeUnexpectedToken,
			fmt.Sprintf("unexpected token after expression: %s", p.current))
	}

	return expr, nil
}

// parseDefinition parses 'def' prototype expression
func (p *Parser) parseDefinition() (*ast.Function, error) {
	pos := p.currentPosition()
	if err := p.advance(); err != nil { // consume 'def'
		return nil, err
	}

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, kalerror.Wrap(err, "function definition")
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, kalerror.Wrapf(err, "body of function '%s'", proto.Name)
	}

	return &ast.Function{
		Proto: proto,
		Body:  body,
		Pos:   pos,
	}, nil
}

// parseExtern parses 'extern' prototype
func (p *Parser) parseExtern() (*ast.Prototype, error) {
	if err := p.advance(); err != nil { // consume 'extern'
		return nil, err
	}

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, kalerror.Wrap(err, "extern declaration")
	}

	return proto, nil
}

// parseTopLevelExpr wraps a bare expression into an anonymous function
func (p *Parser) parseTopLevelExpr() (*ast.Function, error) {
	pos := p.currentPosition()

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Proto: &ast.Prototype{Name: ast.AnonymousName, Pos: pos},
		Body:  body,
		Pos:   pos,
	}, nil
}

// parsePrototype parses name '(' param* ')'
func (p *Parser) parsePrototype() (*ast.Prototype, error) {
	pos := p.currentPosition()

	if p.current.Type != TokenIdentifier {
		return nil, p.parseError(kalerror.CodeMalformedPrototype,
			"expected function name in prototype")
	}

	name := p.current.Value
	if err := p.advance(); err != nil {
		return nil, err
	}

	if !p.currentIsSymbol("(") {
		return nil, p.parseError(kalerror.CodeMalformedPrototype,
			"expected '(' in prototype")
	}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var params []string
	for p.current.Type == TokenIdentifier {
		params = append(params, p.current.Value)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if !p.currentIsSymbol(")") {
		return nil, p.parseError(kalerror.CodeMalformedPrototype,
			"expected ')' in prototype")
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}

	return &ast.Prototype{
		Name:   name,
		Params: params,
		Pos:    pos,
	}, nil
}

// parseExpr parses an expression: primary (binop primary)*
func (p *Parser) parseExpr() (ast.Expr, error) {
	if err := p.enterExpr(); err != nil {
		return nil, err
	}
	defer p.leaveExpr()

	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return p.parseBinOpRHS(0, lhs)
}

// parseBinOpRHS climbs operator precedence. It consumes operator/operand
// pairs while the pending operator binds at least as tightly as minPrec;
// a strictly tighter operator to the right claims the just-parsed operand
// through recursion.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	for {
		tokPrec := p.currentPrecedence()
		if tokPrec < minPrec {
			return lhs, nil
		}

		op, err := p.currentOperator()
		if err != nil {
			return nil, err
		}
		pos := p.currentPosition()
		if err := p.advance(); err != nil { // consume operator
			return nil, err
		}

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		// If the next operator binds tighter, it owns rhs first
		nextPrec := p.currentPrecedence()
		if tokPrec < nextPrec {
			rhs, err = p.parseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{
			Op:  op,
			LHS: lhs,
			RHS: rhs,
			Pos: pos,
		}
	}
}

// parsePrimary parses number literals, identifier expressions, and
// parenthesized expressions
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch {
	case p.current.Type == TokenNumber:
		expr := &ast.NumberExpr{
			Value: p.current.Number,
			Pos:   p.currentPosition(),
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return expr, nil

	case p.current.Type == TokenIdentifier:
		return p.parseIdentifierExpr()

	case p.currentIsSymbol("("):
		return p.parseParenExpr()

	default:
		return nil, p.parseError(kalerror.CodeUnexpectedToken,
			fmt.Sprintf("expected expression, got %s", p.current))
	}
}

// parseIdentifierExpr parses a variable reference or, when followed by
// '(', a function call
func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	pos := p.currentPosition()
	name := p.current.Value
	if err := p.advance(); err != nil {
		return nil, err
	}

	if !p.currentIsSymbol("(") {
		return &ast.VariableExpr{Name: name, Pos: pos}, nil
	}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var args []ast.Expr
	if !p.currentIsSymbol(")") {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, kalerror.Wrapf(err, "argument %d of call to '%s'", len(args)+1, name)
			}
			args = append(args, arg)

			if p.currentIsSymbol(")") {
				break
			}
			if !p.currentIsSymbol(",") {
				return nil, p.parseError(kalerror.CodeExpectedArgSeparatorOrClose,
					fmt.Sprintf("expected ',' or ')' in argument list, got %s", p.current))
			}
			if err := p.advance(); err != nil { // consume ','
				return nil, err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}

	return &ast.CallExpr{
		Callee: name,
		Args:   args,
		Pos:    pos,
	}, nil
}

// parseParenExpr parses '(' expression ')'
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.currentIsSymbol(")") {
		return nil, p.parseError(kalerror.CodeUnmatchedParenthesis,
			"expected ')' after expression")
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}

	return expr, nil
}

// Utility methods

// advance moves to the next token, surfacing lexical errors
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.previous = p.current
	p.current = tok
	return nil
}

// currentIsSymbol reports whether the current token is the given symbol
func (p *Parser) currentIsSymbol(symbol string) bool {
	return p.current.Type == TokenSymbol && p.current.Value == symbol
}

// currentPrecedence returns the binding strength of the current token as
// a binary operator, or -1 when it is no operator
func (p *Parser) currentPrecedence() int {
	if p.current.Type != TokenSymbol {
		return -1
	}
	op, ok := ast.OperatorFromSymbol(p.current.Value)
	if !ok {
		return -1
	}
	return op.Precedence()
}

// currentOperator resolves the current token to its operator. Callers
// check precedence first, so a failed lookup indicates an inconsistency
// between the precedence and operator tables.
func (p *Parser) currentOperator() (ast.Operator, error) {
	op, ok := ast.OperatorFromSymbol(p.current.Value)
	if !ok {
		return 0, p.parseError(kalerror.CodeUnknownOperator,
			fmt.Sprintf("symbol '%s' has precedence but no operator", p.current.Value))
	}
	return op, nil
}

// enterExpr tracks expression nesting depth
func (p *Parser) enterExpr() error {
	p.depth++
	if p.depth > p.options.MaxNestingDepth {
		return p.parseError(kalerror.CodeNestingTooDeep,
			fmt.Sprintf("expression nesting exceeds maximum depth %d", p.options.MaxNestingDepth))
	}
	return nil
}

// leaveExpr unwinds expression nesting depth
func (p *Parser) leaveExpr() {
	p.depth--
}

// currentPosition returns the current AST position
func (p *Parser) currentPosition() ast.Position {
	return ast.Position{
		Line:   p.current.Line,
		Column: p.current.Column,
		Offset: p.current.Position,
	}
}

// parseError creates a parse error with current position. The previous
// token is included so diagnostics show what the offending token follows.
func (p *Parser) parseError(code kalerror.Code, message string) error {
	err := kalerror.New(message).
		WithCode(code).
		WithOperation("parse").
		WithDetails(map[string]interface{}{
			"line":   p.current.Line,
			"column": p.current.Column,
			"offset": p.current.Position,
			"token":  p.current.String(),
		})
	if p.previous != (Token{}) {
		err = err.WithDetail("after", p.previous.String())
	}
	return err
}

// logParseFailure logs a parse failure with truncated input context
func (p *Parser) logParseFailure(input string, err error) {
	p.logger.Warn("KAL parsing failed", kallog.Fields{
		"input": stringx.Truncate(input, 120, "..."),
		"error": err.Error(),
		"code":  string(kalerror.GetCode(err)),
	})
}
