// File: doc.go
// Title: KAL Parser Package Documentation
// Description: Implements the lexical analyzer and parser for KAL source
//              text. Converts KAL source into structured AST representations
//              with detailed error reporting and syntax validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing capabilities for KAL source text.

This package implements a recursive descent parser that converts KAL source
into Abstract Syntax Tree (AST) representations. It includes:

  • Lexical analyzer (tokenizer) for KAL syntax
  • Recursive descent parser with operator precedence climbing
  • Detailed error reporting with position information
  • Configurable limits for input length and expression nesting

The parser follows the KAL grammar rules and produces well-formed AST nodes
that can be analyzed, printed, and consumed by later compilation stages.
*/
package parser
