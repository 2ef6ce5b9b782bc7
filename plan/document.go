// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import "strings"

// A Document is a read-only snapshot of a file as a sequence of lines.
// Line text does not include the line terminator.
type Document interface {
	LineCount() int
	LineAt(i int) string
}

// Lines is a Document backed by a slice.
type Lines []string

func (l Lines) LineCount() int      { return len(l) }
func (l Lines) LineAt(i int) string { return l[i] }

// SplitLines splits text into lines, dropping "\n" and "\r\n" terminators.
// Text ending in a newline has a final empty line, as in an editor buffer.
func SplitLines(text string) Lines {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Lines(lines)
}
