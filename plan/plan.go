// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan computes the edits that bring #define macro names
// in a file to canonical UPPER_SNAKE_CASE.
//
// Planning runs in two passes over a Document. The first pass finds
// declaration lines of the form
//
//	#define name
//	#define name(params)
//
// and builds a table mapping each non-canonical name to its canonical form.
// The second pass rewrites every word-bounded occurrence of those names on
// all other lines. Declaration lines are never rewritten by the second pass,
// so the body of a macro keeps its text even when it mentions other macros.
//
// The result is sorted from the end of the file to the start, so the edits
// can be applied one after another against the original line offsets.
package plan

import (
	"fmt"
	"sort"

	"github.com/defstyle/defstyle/canon"
)

// Options controls planning.
type Options struct {
	// UppercaseParams also canonicalizes the parameter names of
	// function-like macros in their declaration. Macro bodies are not
	// rewritten. The default is false.
	UppercaseParams bool
}

// An Edit replaces bytes [Start, End) of line Line with NewText.
type Edit struct {
	Line    int
	Start   int
	End     int
	NewText string
}

func (e Edit) String() string {
	return fmt.Sprintf("%d:%d-%d %q", e.Line, e.Start, e.End, e.NewText)
}

// A Range is a position range in editor coordinates.
// Planned ranges always have StartLine == EndLine.
type Range struct {
	StartLine int `json:"startLine"`
	StartCol  int `json:"startCol"`
	EndLine   int `json:"endLine"`
	EndCol    int `json:"endCol"`
}

// A TextEdit is the editor-facing form of an Edit.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// TextEdit returns e in editor form.
func (e Edit) TextEdit() TextEdit {
	return TextEdit{
		Range:   Range{StartLine: e.Line, StartCol: e.Start, EndLine: e.Line, EndCol: e.End},
		NewText: e.NewText,
	}
}

// Edits returns the edits renaming the macros declared in doc,
// ordered by descending line and, within a line, descending column.
func Edits(doc Document, opts Options) []Edit {
	decls := Declarations(doc)

	var edits []Edit
	declLines := make(map[int]bool)
	for _, d := range decls {
		declLines[d.Line] = true
		if to := canon.Name(d.Name); to != "" && to != d.Name {
			edits = append(edits, Edit{d.Line, d.NameCol, d.NameCol + len(d.Name), to})
		}
		if opts.UppercaseParams && d.Params != "" {
			if to := canon.Params(d.Params); to != d.Params {
				edits = append(edits, Edit{d.Line, d.ParamsCol, d.ParamsCol + len(d.Params), to})
			}
		}
	}

	renames := RenameTable(decls)
	if len(renames) == 0 {
		sortEdits(edits)
		return edits
	}

	for i := 0; i < doc.LineCount(); i++ {
		if declLines[i] {
			continue
		}
		edits = usages(edits, i, doc.LineAt(i), renames)
	}
	sortEdits(edits)
	return edits
}

// usages appends an edit for every maximal identifier run in text
// that names an entry in renames. A maximal run is exactly a match
// bounded on both sides by a non-identifier byte or the line edge.
func usages(edits []Edit, line int, text string, renames map[string]string) []Edit {
	for i := 0; i < len(text); {
		if !canon.IsIdentByte(text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && canon.IsIdentByte(text[j]) {
			j++
		}
		if to, ok := renames[text[i:j]]; ok {
			edits = append(edits, Edit{line, i, j, to})
		}
		i = j
	}
	return edits
}

func sortEdits(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Line != edits[j].Line {
			return edits[i].Line > edits[j].Line
		}
		return edits[i].Start > edits[j].Start
	})
}
