// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/cmalvern/jread/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

// Every concrete variant satisfies Value.
var _ = []ast.Value{
	new(ast.Object), new(ast.Array), ast.String{}, ast.Number{}, ast.Bool{}, ast.Null{},
}

func TestObject(t *testing.T) {
	v, err := ast.Parse(`{"name": "John Doe", "age": 30, "isStudent": false}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Parse: got %T, want *ast.Object", v)
	}

	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
	if diff := cmp.Diff([]string{"name", "age", "isStudent"}, obj.Keys()); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}

	if m, ok := obj.Find("age"); !ok {
		t.Error(`Find "age": not found`)
	} else if n := m.(ast.Number).Float64(); n != 30 {
		t.Errorf(`Find "age": got %v, want 30`, n)
	}
	if m, ok := obj.Find("nonesuch"); ok {
		t.Errorf(`Find "nonesuch": unexpectedly found %v`, m)
	}
}

func TestString_unescape(t *testing.T) {
	v, err := ast.Parse(`"a\nb A \q"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s := v.(ast.String)

	// The stored text is undecoded; Unescape interprets it on demand.
	if got, want := s.Text(), `a\nb A \q`; got != want {
		t.Errorf("Text: got %q, want %q", got, want)
	}
	if got, want := s.Unescape(), "a\nb A �"; got != want {
		t.Errorf("Unescape: got %q, want %q", got, want)
	}
}

func TestString_unescapeInvalid(t *testing.T) {
	v, err := ast.Parse(`"ab\u12"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s := v.(ast.String)
	mtest.MustPanic(t, func() { s.Unescape() })
}
