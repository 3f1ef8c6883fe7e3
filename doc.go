// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

// Package jread implements a JSON tokenizer for embedding in tools that
// need a dependency-light JSON reader.
//
// # Tokenizing
//
// Tokenize scans a source string into a flat sequence of tokens. Each token
// records its kind and the span of source text it was scanned from, and
// renders its text by slicing the original source without copying:
//
//	toks, err := jread.Tokenize(`{"a": [1, true]}`)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//	for _, tok := range toks {
//	   fmt.Println(tok.Kind, tok.Text())
//	}
//
// Whitespace separates tokens but is never emitted. Input that matches no
// token pattern stops the scan with an error of concrete type *SyntaxError
// reporting the offending offset and line/column position.
//
// # Parsing
//
// The ast subpackage consumes a token sequence and builds a JSON value tree.
// See its documentation for the grammar entry points.
//
// # Strings
//
// Tokenize does not decode escape sequences: the text of a String token is
// the raw source including quotation marks. The Quote, Unquote and Unescape
// functions convert between raw and decoded forms for callers that need the
// interpreted string contents.
package jread
