// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/cmalvern/jread"
)

// A cursor is a position in a token sequence, represented as the suffix of
// tokens remaining to parse. Every grammar rule takes a cursor and returns
// the advanced cursor on success; on failure the input cursor is returned
// unchanged, so no rule consumes input it did not match.

// ParseError is the concrete type of errors reported by the parser. It
// carries a human-readable description of the first unmatched expectation
// and the byte offset where matching failed.
type ParseError struct {
	Offset  int // byte offset of the failure, -1 at end of input
	Message string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return "at end of input: " + e.Message
	}
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

func parseErrorf(in []jread.Token, msg string, args ...any) *ParseError {
	off := -1
	if len(in) != 0 {
		off = in[0].Span.Pos
	}
	return &ParseError{Offset: off, Message: fmt.Sprintf(msg, args...)}
}

// matchKind returns the next token of in if its kind equals want, along with
// the advanced cursor. It fails without consuming input if the cursor is
// empty or the kinds differ.
func matchKind(in []jread.Token, want jread.Kind) (jread.Token, []jread.Token, error) {
	if len(in) == 0 {
		return jread.Token{}, in, parseErrorf(in, "expected %v, got end of input", want)
	} else if in[0].Kind != want {
		return jread.Token{}, in, parseErrorf(in, "expected %v, got %v", want, in[0].Kind)
	}
	return in[0], in[1:], nil
}

// matchText returns the next token of in if its rendered source text equals
// text, along with the advanced cursor. It fails without consuming input if
// the cursor is empty or the text differs.
func matchText(in []jread.Token, text string) (jread.Token, []jread.Token, error) {
	if len(in) == 0 {
		return jread.Token{}, in, parseErrorf(in, "expected %q, got end of input", text)
	} else if in[0].Text() != text {
		return jread.Token{}, in, parseErrorf(in, "expected %q, got %q", text, in[0].Text())
	}
	return in[0], in[1:], nil
}

// Parse tokenizes src and parses it as a single JSON value comprising the
// whole input. It is shorthand for jread.Tokenize followed by ParseValue
// with a check that no tokens remain.
func Parse(src string) (Value, error) {
	toks, err := jread.Tokenize(src)
	if err != nil {
		return nil, err
	}
	v, rest, err := ParseValue(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, parseErrorf(rest, "unexpected %v after value", rest[0].Kind)
	}
	return v, nil
}

// ParseValue parses a single value of any type from the front of in. The
// alternatives are tried in a fixed order: object, array, string, number,
// boolean, null. Each alternative has a unique leading token kind, so the
// first token decides the rule and no backtracking occurs.
func ParseValue(in []jread.Token) (Value, []jread.Token, error) {
	if len(in) == 0 {
		return nil, in, parseErrorf(in, "expected a value, got end of input")
	}
	switch in[0].Kind {
	case jread.LBrace:
		obj, rest, err := ParseObject(in)
		if err != nil {
			return nil, in, err
		}
		return obj, rest, nil
	case jread.LSquare:
		arr, rest, err := ParseArray(in)
		if err != nil {
			return nil, in, err
		}
		return arr, rest, nil
	case jread.String:
		s, rest, err := ParseString(in)
		if err != nil {
			return nil, in, err
		}
		return s, rest, nil
	case jread.Number:
		n, rest, err := ParseNumber(in)
		if err != nil {
			return nil, in, err
		}
		return n, rest, nil
	case jread.True, jread.False:
		b, rest, err := ParseBool(in)
		if err != nil {
			return nil, in, err
		}
		return b, rest, nil
	case jread.Null:
		z, rest, err := ParseNull(in)
		if err != nil {
			return nil, in, err
		}
		return z, rest, nil
	default:
		return nil, in, parseErrorf(in, "expected a value, got %v", in[0].Kind)
	}
}

// ParseObject parses an object: "{", zero or more comma-separated
// key-colon-value members, "}". Keys must be string tokens. A comma must be
// followed by another member, so trailing commas fail.
func ParseObject(in []jread.Token) (*Object, []jread.Token, error) {
	open, rest, err := matchKind(in, jread.LBrace)
	if err != nil {
		return nil, in, err
	}
	obj := newObject()
	rest, err = separated(rest, jread.RBrace, func(cur []jread.Token) ([]jread.Token, error) {
		key, cur, err := matchKind(cur, jread.String)
		if err != nil {
			return cur, err
		}
		if _, cur, err = matchKind(cur, jread.Colon); err != nil {
			return cur, err
		}
		val, cur, err := ParseValue(cur)
		if err != nil {
			return cur, err
		}
		obj.set(stripQuotes(key.Text()), val)
		return cur, nil
	})
	if err != nil {
		return nil, in, err
	}
	end, rest, err := matchKind(rest, jread.RBrace)
	if err != nil {
		return nil, in, err
	}
	obj.span = jread.Span{Pos: open.Span.Pos, End: end.Span.End}
	return obj, rest, nil
}

// ParseArray parses an array: "[", zero or more comma-separated values, "]".
// The comma rules are the same as for objects.
func ParseArray(in []jread.Token) (*Array, []jread.Token, error) {
	open, rest, err := matchKind(in, jread.LSquare)
	if err != nil {
		return nil, in, err
	}
	arr := new(Array)
	rest, err = separated(rest, jread.RSquare, func(cur []jread.Token) ([]jread.Token, error) {
		v, cur, err := ParseValue(cur)
		if err != nil {
			return cur, err
		}
		arr.Values = append(arr.Values, v)
		return cur, nil
	})
	if err != nil {
		return nil, in, err
	}
	end, rest, err := matchKind(rest, jread.RSquare)
	if err != nil {
		return nil, in, err
	}
	arr.span = jread.Span{Pos: open.Span.Pos, End: end.Span.End}
	return arr, rest, nil
}

// ParseString parses a string value. Exactly one leading and one trailing
// quotation mark are removed from the token text; escape sequences are
// passed through undecoded.
func ParseString(in []jread.Token) (String, []jread.Token, error) {
	tok, rest, err := matchKind(in, jread.String)
	if err != nil {
		return String{}, in, err
	}
	return String{span: tok.Span, text: stripQuotes(tok.Text())}, rest, nil
}

// ParseNumber parses a number value from the token's numeric payload.
func ParseNumber(in []jread.Token) (Number, []jread.Token, error) {
	tok, rest, err := matchKind(in, jread.Number)
	if err != nil {
		return Number{}, in, err
	}
	return Number{span: tok.Span, value: tok.Float64()}, rest, nil
}

// ParseBool parses a Boolean constant, matched by token kind.
func ParseBool(in []jread.Token) (Bool, []jread.Token, error) {
	if tok, rest, err := matchKind(in, jread.True); err == nil {
		return Bool{span: tok.Span, value: true}, rest, nil
	}
	tok, rest, err := matchKind(in, jread.False)
	if err != nil {
		if len(in) == 0 {
			return Bool{}, in, parseErrorf(in, "expected true or false, got end of input")
		}
		return Bool{}, in, parseErrorf(in, "expected true or false, got %v", in[0].Kind)
	}
	return Bool{span: tok.Span, value: false}, rest, nil
}

// ParseNull parses the null constant.
func ParseNull(in []jread.Token) (Null, []jread.Token, error) {
	tok, rest, err := matchText(in, "null")
	if err != nil {
		return Null{}, in, err
	}
	return Null{span: tok.Span}, rest, nil
}

// separated consumes zero or more elements separated by commas, stopping
// before a leading token of kind term. The terminator is not consumed.
// After a comma another element is required, so a trailing separator fails
// inside elem.
func separated(in []jread.Token, term jread.Kind, elem func([]jread.Token) ([]jread.Token, error)) ([]jread.Token, error) {
	if len(in) == 0 || in[0].Kind == term {
		return in, nil
	}
	for {
		rest, err := elem(in)
		if err != nil {
			return in, err
		}
		in = rest
		if len(in) == 0 || in[0].Kind != jread.Comma {
			return in, nil
		}
		in = in[1:]
	}
}

// stripQuotes removes exactly one leading and one trailing quotation mark.
// String tokens always carry both.
func stripQuotes(text string) string { return text[1 : len(text)-1] }
