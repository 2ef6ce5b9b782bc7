// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorList(t *testing.T) {
	var l ErrorList
	assert.NoError(t, l.Err())
	assert.Equal(t, "no errors", l.Error())

	l.Add(nil)
	l.Add(&Error{Pos: Position{"b.h", 3, 1}, Msg: "late"})
	l.Add(&Error{Pos: Position{"a.h", 9, 2}, Msg: "early"})
	l.Add(&Error{Pos: Position{"b.h", 3, 1}, Msg: "late"})
	l.Add(errors.New("plain"))

	var more ErrorList
	more.Add(&Error{Pos: Position{"a.h", 1, 0}, Msg: "first"})
	l.Add(&more)

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, "plain\na.h:1: first\na.h:9:2: early\nb.h:3:1: late", l.Err().Error())
}

func TestPosition(t *testing.T) {
	assert.Equal(t, "-", Position{}.String())
	assert.Equal(t, "f.c", Position{Filename: "f.c"}.String())
	assert.Equal(t, "f.c:2", Position{"f.c", 2, 0}.String())
	assert.Equal(t, "f.c:2:5", Position{"f.c", 2, 5}.String())
	assert.Equal(t, "2:5", Position{"", 2, 5}.String())
}
