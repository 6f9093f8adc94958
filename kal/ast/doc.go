// File: doc.go
// Title: KAL Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes for parsed KAL
//              source: expressions, prototypes, functions, and programs,
//              together with a visitor pattern and tree utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for KAL source.

Nodes are immutable once constructed and are owned by their parent node
(or by the caller for the root). The package provides:
  • Expression nodes (numbers, variables, binary expressions, calls)
  • Prototype and Function nodes for declarations and definitions
  • The operator enum with its fixed precedence table
  • Visitor patterns for traversal, printing, and collection
  • Canonical String rendering that re-parses to a structurally
    identical tree
*/
package ast
