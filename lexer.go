// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package jread

import (
	"fmt"
	"strconv"
	"strings"

	"go4.org/mem"
)

// Tokenize scans src from left to right and returns the sequence of tokens
// it contains. Whitespace separates tokens but is never emitted. Each token
// is a zero-copy view of src, and token spans are non-overlapping and
// strictly increasing.
//
// If the scan reaches input matching no token pattern, Tokenize reports a
// *SyntaxError identifying the offending position. The tokens successfully
// scanned before the failure are returned alongside the error, so callers
// that prefer truncation to failure may ignore it.
func Tokenize(src string) ([]Token, error) {
	lx := lexer{src: src}
	var toks []Token
	for {
		tok, ok, err := lx.next()
		if err != nil {
			return toks, err
		} else if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// SyntaxError is the concrete type of lexical errors reported by Tokenize.
type SyntaxError struct {
	Offset   int     // byte offset of the offending input
	Location LineCol // line and column of the offending input
	Message  string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %v: %s", e.Location, e.Message)
}

// A lexer holds the scan position within a single source string. The zero
// position is the start of the input.
type lexer struct {
	src string
	pos int
}

// next returns the next token of the input. At the end of input it returns
// ok == false with a nil error.
func (lx *lexer) next() (Token, bool, error) {
	// Discard whitespace.
	for lx.pos < len(lx.src) && isSpace(lx.src[lx.pos]) {
		lx.pos++
	}
	if lx.pos == len(lx.src) {
		return Token{}, false, nil
	}

	start := lx.pos
	ch := lx.src[lx.pos]

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		lx.pos++
		return lx.emit(k, start), true, nil
	}

	// Handle constants: true, false, null.
	rest := mem.S(lx.src[lx.pos:])
	switch ch {
	case 't':
		if mem.HasPrefix(rest, mem.S("true")) {
			lx.pos += len("true")
			return lx.emit(True, start), true, nil
		}
	case 'f':
		if mem.HasPrefix(rest, mem.S("false")) {
			lx.pos += len("false")
			return lx.emit(False, start), true, nil
		}
	case 'n':
		if mem.HasPrefix(rest, mem.S("null")) {
			lx.pos += len("null")
			return lx.emit(Null, start), true, nil
		}
	}

	// Handle numbers.
	if ch == '-' || isDigit(ch) {
		return lx.scanNumber(start)
	}

	// Handle string values.
	if ch == '"' {
		return lx.scanString(start)
	}

	return Token{}, false, lx.failf(start, "unexpected %q", rune(ch))
}

// scanNumber consumes the longest input matching
// -?digits(.digits)?([eE][+-]?digits)? starting at start.
// Precondition: the byte at start is a digit or "-".
func (lx *lexer) scanNumber(start int) (Token, bool, error) {
	if lx.src[lx.pos] == '-' {
		lx.pos++
	}
	if lx.digits() == 0 {
		lx.pos = start
		return Token{}, false, lx.failf(start, "unexpected %q", rune(lx.src[start]))
	}

	// A decimal point joins the number only if digits follow it.
	if mark := lx.pos; lx.pos < len(lx.src) && lx.src[lx.pos] == '.' {
		lx.pos++
		if lx.digits() == 0 {
			lx.pos = mark
		}
	}

	// Likewise an exponent, with an optional sign after the marker.
	if mark := lx.pos; lx.pos < len(lx.src) && (lx.src[lx.pos] == 'e' || lx.src[lx.pos] == 'E') {
		lx.pos++
		if lx.pos < len(lx.src) && (lx.src[lx.pos] == '+' || lx.src[lx.pos] == '-') {
			lx.pos++
		}
		if lx.digits() == 0 {
			lx.pos = mark
		}
	}

	tok := lx.emit(Number, start)
	v, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil {
		v = 0 // the scanned pattern always parses; keep zero if it somehow does not
	}
	tok.num = v
	return tok, true, nil
}

// scanString consumes a quoted string: any run of non-quote, non-backslash
// bytes or backslash-escaped pairs between double quotation marks. Escape
// sequences are not validated or decoded here.
func (lx *lexer) scanString(start int) (Token, bool, error) {
	lx.pos++ // opening quote
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '"':
			lx.pos++
			return lx.emit(String, start), true, nil
		case '\\':
			if lx.pos+1 >= len(lx.src) {
				lx.pos = len(lx.src)
				return Token{}, false, lx.failf(start, "unterminated string")
			}
			// Skipping two bytes may land inside a multibyte rune, but UTF-8
			// continuation bytes never read as a quote or backslash, so the
			// scan resynchronizes on the next iteration.
			lx.pos += 2
		default:
			lx.pos++
		}
	}
	return Token{}, false, lx.failf(start, "unterminated string")
}

func (lx *lexer) emit(k Kind, start int) Token {
	return Token{Kind: k, Span: Span{Pos: start, End: lx.pos}, src: lx.src}
}

// digits consumes a run of decimal digits and reports how many were consumed.
func (lx *lexer) digits() int {
	n := 0
	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.pos++
		n++
	}
	return n
}

func (lx *lexer) failf(off int, msg string, args ...any) error {
	return &SyntaxError{
		Offset:   off,
		Location: lineColAt(lx.src, off),
		Message:  fmt.Sprintf(msg, args...),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
