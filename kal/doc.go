// File: doc.go
// Title: KAL Engine Package Documentation
// Description: Provides the high-level entry point for working with KAL
//              source text. Bundles lexer and parser behind a single
//              engine with request-scoped logging and configurable limits.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial engine implementation

/*
Package kal provides the high-level front end for the KAL language.

KAL (Kaleido Arithmetic Language) is a small expression language with
function definitions, extern declarations, and floating point arithmetic.
This package bundles the tokenizer and parser behind an Engine that adds
request-scoped logging, configurable limits, and convenience helpers for
dumping parsed trees.

Typical usage:

	engine, err := kal.NewEngine(kal.Options{})
	if err != nil {
	    ...
	}
	program, err := engine.Parse("def twice(x) x*2")
*/
package kal
