// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package jread_test

import (
	"testing"

	"github.com/cmalvern/jread"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\nb", `"a\nb"`},
		{`say "hi"`, `"say \"hi\""`},
		{"back\\slash", `"back\\slash"`},
		{"\x01", `"\u0001"`},
		{"\ufffd", `"\ufffd"`},
		{"\u2028\u2029", `"\u2028\u2029"`},
		{"杭州", `"杭州"`},
	}
	for _, test := range tests {
		if got := jread.Quote(test.input); got != test.want {
			t.Errorf("Quote %q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"\"\\\/"`, `"\/`},
		{`"AǼ"`, "AǼ"},
		{`"\uZZZZ"`, "�"}, // invalid hex digits become the replacement rune
		{`"\q"`, "�"},     // as does an unknown escape
		{`"杭州"`, "杭州"},
	}
	for _, test := range tests {
		got, err := jread.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote %#q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		``, `"`, `x`, `"abc`, `abc"`, // missing quotations
		`"ab\"`,  // incomplete escape sequence
		`"\u00"`, // incomplete Unicode escape
	}
	for _, input := range tests {
		if got, err := jread.Unquote(input); err == nil {
			t.Errorf("Unquote %#q: got %q, want error", input, got)
		}
	}
}

func TestQuoteUnquoteRound(t *testing.T) {
	tests := []string{"", "plain", "a\nb\tc\x01", `quo"te`, "\\", "杭州 café"}
	for _, input := range tests {
		dec, err := jread.Unquote(jread.Quote(input))
		if err != nil {
			t.Errorf("Unquote Quote %q failed: %v", input, err)
		} else if string(dec) != input {
			t.Errorf("Round trip %q: got %q", input, dec)
		}
	}
}
