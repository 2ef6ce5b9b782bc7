// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import "fmt"

// Apply replays edits, in the order Edits returns them, against doc
// and returns the rewritten lines. It panics if an edit is out of range,
// or if the edits are not ordered from the end of the document to the start
// without overlap.
func Apply(doc Document, edits []Edit) []string {
	lines := make([]string, doc.LineCount())
	for i := range lines {
		lines[i] = doc.LineAt(i)
	}
	for i, e := range edits {
		if i > 0 {
			prev := edits[i-1]
			if e.Line > prev.Line || e.Line == prev.Line && e.End > prev.Start {
				panic(fmt.Sprintf("plan: edit %v out of order after %v", e, prev))
			}
		}
		if e.Line < 0 || e.Line >= len(lines) || e.Start < 0 || e.Start > e.End || e.End > len(doc.LineAt(e.Line)) {
			panic(fmt.Sprintf("plan: edit %v out of range", e))
		}
		text := lines[e.Line]
		lines[e.Line] = text[:e.Start] + e.NewText + text[e.End:]
	}
	return lines
}
