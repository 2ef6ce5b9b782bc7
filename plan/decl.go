// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"regexp"

	"github.com/defstyle/defstyle/canon"
)

// A Declaration is a line declaring a macro.
type Declaration struct {
	Line    int
	Name    string
	NameCol int

	// Params is the parameter list including its parentheses,
	// or "" for an object-like macro. ParamsCol is -1 when Params is "".
	Params    string
	ParamsCol int
}

// defineRE matches a single-line macro declaration.
// The parameter list ends at the first ')' with no nesting, and a list
// with no ')' at all is not a parameter list.
var defineRE = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)(\([^)]*\))?`)

// Declarations returns the macro declarations in doc, in line order.
// Continuation lines of a multi-line macro are not declarations.
func Declarations(doc Document) []Declaration {
	var decls []Declaration
	for i := 0; i < doc.LineCount(); i++ {
		if d, ok := parseDeclaration(i, doc.LineAt(i)); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

func parseDeclaration(line int, text string) (Declaration, bool) {
	m := defineRE.FindStringSubmatchIndex(text)
	if m == nil {
		return Declaration{}, false
	}
	d := Declaration{
		Line:      line,
		Name:      text[m[2]:m[3]],
		NameCol:   m[2],
		ParamsCol: -1,
	}
	if m[4] >= 0 {
		d.Params = text[m[4]:m[5]]
		d.ParamsCol = m[4]
	}
	return d, true
}

// RenameTable maps each declared name that is not canonical to its
// canonical form. Names whose canonical form is empty are left out.
// A name declared more than once keeps its last mapping.
func RenameTable(decls []Declaration) map[string]string {
	renames := make(map[string]string)
	for _, d := range decls {
		to := canon.Name(d.Name)
		if to == "" || to == d.Name {
			continue
		}
		renames[d.Name] = to
	}
	return renames
}
