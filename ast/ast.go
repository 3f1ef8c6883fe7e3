// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a recursive-descent
// parser that constructs value trees from a token sequence.
package ast

import (
	"github.com/cmalvern/jread"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// A Value is an arbitrary JSON value. The set of concrete types is closed:
// *Object, *Array, String, Number, Bool and Null. Each value records the
// span of source text it was parsed from.
type Value interface {
	Span() jread.Span

	isValue() // no implementations outside this package
}

// An Object is a collection of key-value members. Keys iterate in the order
// they first appear in the source. A repeated key overwrites the stored
// value but keeps the position of its first occurrence.
type Object struct {
	span jread.Span
	m    *linkedhashmap.Map[string, Value]
}

func newObject() *Object {
	return &Object{m: linkedhashmap.New[string, Value]()}
}

// Span satisfies the Value interface.
func (o *Object) Span() jread.Span { return o.span }

// Len reports the number of members of o.
func (o *Object) Len() int { return o.m.Size() }

// Find returns the value of the member of o with the given key, and reports
// whether such a member exists.
func (o *Object) Find(key string) (Value, bool) { return o.m.Get(key) }

// Keys returns the keys of o in iteration order.
func (o *Object) Keys() []string { return o.m.Keys() }

func (o *Object) set(key string, v Value) { o.m.Put(key, v) }

// An Array is an ordered sequence of values.
type Array struct {
	span jread.Span

	Values []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() jread.Span { return a.span }

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// A String is a string value. Its text is the raw source contents with the
// enclosing quotation marks removed; escape sequences are not decoded.
type String struct {
	span jread.Span
	text string
}

// Span satisfies the Value interface.
func (s String) Span() jread.Span { return s.span }

// Text returns the quote-stripped, undecoded text of s.
func (s String) Text() string { return s.text }

// Unescape returns the text of s with escape sequences decoded.
// It panics if the text contains an incomplete escape sequence.
func (s String) Unescape() string {
	dec, err := jread.Unescape(s.text)
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// A Number is a floating-point value.
type Number struct {
	span  jread.Span
	value float64
}

// Span satisfies the Value interface.
func (n Number) Span() jread.Span { return n.span }

// Float64 returns the value of n.
func (n Number) Float64() float64 { return n.value }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	span  jread.Span
	value bool
}

// Span satisfies the Value interface.
func (b Bool) Span() jread.Span { return b.span }

// Value returns the truth value of b.
func (b Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct {
	span jread.Span
}

// Span satisfies the Value interface.
func (n Null) Span() jread.Span { return n.span }

func (*Object) isValue() {}
func (*Array) isValue()  {}
func (String) isValue()  {}
func (Number) isValue()  {}
func (Bool) isValue()    {}
func (Null) isValue()    {}
