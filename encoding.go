// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package jread

import (
	"errors"
	"strings"

	"github.com/cmalvern/jread/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return Unescape(src[1 : len(src)-1])
}

// Unescape decodes the contents of a JSON string value whose quotation
// marks have already been removed. It has the same escape handling as
// Unquote.
func Unescape(src string) ([]byte, error) { return escape.Unquote(mem.S(src)) }
