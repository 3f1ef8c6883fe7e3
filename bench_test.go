// Copyright (C) 2025 Cole Malvern. All Rights Reserved.

package jread_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/cmalvern/jread"
)

const benchInput = `{
  "name": "John Doe",
  "age": 30,
  "isStudent": false,
  "scores": [100, 90, 95, -3.5e2, 0.001],
  "address": {
    "street": "123 Main St",
    "city": "Springfield & environs",
    "state": "IL"
  },
  "tags": ["a", "b", "c", null, true, false]
}`

func BenchmarkTokenize(b *testing.B) {
	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader([]byte(benchInput)))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := jread.Tokenize(benchInput); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
