// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdit(t *testing.T) {
	b := NewBuffer([]byte("0123456789"))
	b.Insert(8, ",7½,")
	b.Replace(9, 10, "the-end")
	b.Insert(10, "!")
	b.Insert(4, "3.14,")
	b.Insert(4, "π,")
	b.Insert(4, "3.15,")
	b.Replace(3, 4, "three,")
	want := "012three,3.14,π,3.15,4567,7½,8the-end!"

	s := b.String()
	assert.Equal(t, want, s)
	assert.Equal(t, want, string(b.Bytes()))
	assert.Equal(t, 7, b.Len())
}

func TestEditOrderIndependent(t *testing.T) {
	b1 := NewBuffer([]byte("max_val + max_val"))
	b1.Replace(0, 7, "MAX_VAL")
	b1.Replace(10, 17, "MAX_VAL")

	b2 := NewBuffer([]byte("max_val + max_val"))
	b2.Replace(10, 17, "MAX_VAL")
	b2.Replace(0, 7, "MAX_VAL")

	assert.Equal(t, "MAX_VAL + MAX_VAL", b1.String())
	assert.Equal(t, b1.String(), b2.String())
}

func TestCheck(t *testing.T) {
	b := NewBuffer([]byte("abcdef"))
	b.Replace(1, 3, "x")
	b.Replace(3, 5, "y")
	b.Insert(5, "!")
	require.NoError(t, b.Check())

	b.Replace(2, 4, "z")
	err := b.Check()
	require.Error(t, err)
	var oe *OverlapError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, &OverlapError{1, 3, 2, 4}, oe)
	assert.Panics(t, func() { b.Bytes() })
}

func TestInvalidPosition(t *testing.T) {
	b := NewBuffer([]byte("abc"))
	assert.Panics(t, func() { b.Insert(4, "x") })
	assert.Panics(t, func() { b.Replace(2, 1, "x") })
	assert.Panics(t, func() { b.Delete(-1, 1) })
}
