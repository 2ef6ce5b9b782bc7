// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canon computes the canonical UPPER_SNAKE_CASE form of
// macro names and macro parameter lists.
package canon

import "strings"

// Name returns the canonical form of raw: every run of characters other
// than ASCII letters and digits becomes a single underscore, leading and
// trailing underscores are removed, and ASCII letters are upper-cased.
// Name("") is "". A string without letters or digits maps to "".
func Name(raw string) string {
	if raw == "" {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	sep := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		case 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		default:
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteByte(c)
	}
	return b.String()
}

// IsCanonical reports whether s is non-empty and already in canonical form.
func IsCanonical(s string) bool {
	return s != "" && Name(s) == s
}

// Params canonicalizes every identifier token in a parameter list,
// leaving commas, spaces, ellipses and parentheses as they are.
// Tokens with an empty canonical form, like "_", are kept unchanged.
func Params(list string) string {
	var b strings.Builder
	b.Grow(len(list))
	for i := 0; i < len(list); {
		if !isIdentStart(list[i]) {
			b.WriteByte(list[i])
			i++
			continue
		}
		j := i + 1
		for j < len(list) && isIdentByte(list[j]) {
			j++
		}
		tok := list[i:j]
		if c := Name(tok); c != "" {
			tok = c
		}
		b.WriteString(tok)
		i = j
	}
	return b.String()
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsIdentByte reports whether c may appear inside a C identifier.
func IsIdentByte(c byte) bool {
	return isIdentByte(c)
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}
