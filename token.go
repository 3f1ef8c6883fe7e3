// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package jread

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values. The set is closed: every token
// produced by Tokenize has exactly one of these kinds.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number with optional fraction and/or exponent
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of a source text. Tokens are created by
// Tokenize and are immutable. A token does not copy its text: it holds a
// reference to the original source and a span into it, so a token (and any
// string sliced from it) is a read-only view of the source buffer.
type Token struct {
	Kind Kind
	Span Span

	src string
	num float64
}

// Text returns the raw source text of the token, exactly src[Span.Pos:Span.End].
// String tokens include their surrounding quotation marks.
func (t Token) Text() string { return t.src[t.Span.Pos:t.Span.End] }

// Float64 returns the numeric payload of a Number token. For all other
// kinds it returns 0.
func (t Token) Float64() float64 { return t.num }

func (t Token) String() string {
	return fmt.Sprintf("%v[%q] @ %d..%d", t.Kind, t.Text(), t.Span.Pos, t.Span.End)
}
