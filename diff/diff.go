// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff implements a Diff function that compares two inputs
// and returns a unified diff.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Context is the number of unchanged lines shown around each change.
const Context = 3

// Diff returns a unified diff of old and new, with a leading
// "diff oldName newName" line. It returns nil if the inputs are equal.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "diff %s %s\n", oldName, newName)
	err := difflib.WriteUnifiedDiff(&buf, difflib.UnifiedDiff{
		A:        splitLines(old),
		B:        splitLines(new),
		FromFile: oldName,
		ToFile:   newName,
		Context:  Context,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitLines splits data after each newline. A final line without
// a newline is marked the way diff(1) marks it.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] = last + "\n\\ No newline at end of file\n"
	}
	return lines
}
