// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canon

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nameTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{"max_val", "MAX_VAL"},
	{"MAX_VAL", "MAX_VAL"},
	{"maxVal", "MAXVAL"},
	{"a__b", "A_B"},
	{"__FOO_H__", "FOO_H"},
	{"_x", "X"},
	{"x_", "X"},
	{"__", ""},
	{"---", ""},
	{"a-b.c d", "A_B_C_D"},
	{"v2_beta", "V2_BETA"},
	{"9lives", "9LIVES"},
	{"été", "T"},
	{"aéb", "A_B"},
}

func TestName(t *testing.T) {
	for _, tt := range nameTests {
		assert.Equal(t, tt.out, Name(tt.in), "Name(%q)", tt.in)
	}
}

var canonicalShape = regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"max_val", "Foo-Bar", "__init__", "x", "a  b", "ABC", "__", "q_1_", "ünï_cödé", "a\tb\nc",
	}
	for _, in := range inputs {
		once := Name(in)
		assert.Equal(t, once, Name(once), "Name(Name(%q))", in)
		if once != "" {
			assert.Regexp(t, canonicalShape, once, "Name(%q)", in)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("MAX_VAL"))
	assert.True(t, IsCanonical("A1"))
	assert.False(t, IsCanonical(""))
	assert.False(t, IsCanonical("max_val"))
	assert.False(t, IsCanonical("_MAX"))
	assert.False(t, IsCanonical("A__B"))
}

var paramsTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{"()", "()"},
	{"(x, y_val)", "(X, Y_VAL)"},
	{"(X, Y_VAL)", "(X, Y_VAL)"},
	{"(fmt, ...)", "(FMT, ...)"},
	{"( a ,b__c )", "( A ,B_C )"},
	{"(_, x)", "(_, X)"},
	{"(__va)", "(VA)"},
}

func TestParams(t *testing.T) {
	for _, tt := range paramsTests {
		assert.Equal(t, tt.out, Params(tt.in), "Params(%q)", tt.in)
	}
}
