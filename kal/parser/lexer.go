// File: lexer.go
// Title: KAL Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of KAL parsing.
//              Converts KAL source text into streams of tokens for the
//              parser. Handles keywords, identifiers, numeric literals,
//              comments, and single-character symbols, and provides
//              detailed position information for error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"

	kalerror "github.com/msto63/kal/core/error"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Keywords
	TokenDef    // def
	TokenExtern // extern

	// Identifiers and literals
	TokenIdentifier // foo, x, fib
	TokenNumber     // 123, 1.45

	// Any other single non-whitespace character: operators, parentheses,
	// commas, semicolons. Classification is left to the parser.
	TokenSymbol
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Number   float64   // Parsed value, set for TokenNumber only
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenDef:
		return "DEF"
	case TokenExtern:
		return "EXTERN"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenSymbol:
		return "SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of KAL input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. A non-nil error is
// only produced for malformed numeric literals; the lexer remains
// usable afterwards and resumes behind the offending literal.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	if l.ch == 0 {
		return Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}, nil
	}

	if isLetter(l.ch) {
		value := l.readIdentifier()
		return Token{
			Type:     lookupIdent(value),
			Value:    value,
			Position: pos,
			Line:     line,
			Column:   column,
		}, nil
	}

	if isDigit(l.ch) {
		value, err := l.readNumber(line, column, pos)
		if err != nil {
			return Token{Type: TokenNumber, Value: value, Position: pos, Line: line, Column: column}, err
		}
		number, perr := strconv.ParseFloat(value, 64)
		if perr != nil {
			return Token{Type: TokenNumber, Value: value, Position: pos, Line: line, Column: column},
				malformedNumber(value, line, column, pos)
		}
		return Token{
			Type:     TokenNumber,
			Value:    value,
			Number:   number,
			Position: pos,
			Line:     line,
			Column:   column,
		}, nil
	}

	tok := Token{
		Type:     TokenSymbol,
		Value:    string(l.ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
	l.readChar()
	return tok, nil
}

// Tokenize returns all tokens from the input as a slice. On a lexical
// error the tokens read so far are returned together with the error.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// readIdentifier reads an identifier (letter followed by letters and digits)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal. The whole digit-and-dot run is
// consumed even when it is malformed, so the caller can continue
// tokenizing behind it.
func (l *Lexer) readNumber(line, column, pos int) (string, error) {
	start := l.position
	dots := 0

	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			dots++
		}
		l.readChar()
	}

	value := l.input[start:l.position]
	if dots > 1 {
		return value, malformedNumber(value, line, column, pos)
	}
	return value, nil
}

// skipWhitespaceAndComments skips whitespace and '#' line comments
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// Utility functions

// malformedNumber builds the lexical error for an invalid numeric literal
func malformedNumber(value string, line, column, pos int) error {
	return kalerror.Newf("malformed number literal '%s'", value).
		WithCode(kalerror.CodeMalformedNumber).
		WithDetails(map[string]interface{}{
			"literal": value,
			"line":    line,
			"column":  column,
			"offset":  pos,
		})
}

// isLetter checks if the character is a letter (including Unicode)
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch > 127
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Keywords map for identifier lookup
var keywords = map[string]TokenType{
	"def":    TokenDef,
	"extern": TokenExtern,
}

// lookupIdent determines if an identifier is a keyword or regular identifier
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// IsKeyword checks if a string is a KAL keyword
func IsKeyword(s string) bool {
	_, isKeyword := keywords[s]
	return isKeyword
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
