// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"sort"

	"github.com/defstyle/defstyle/canon"
)

// A Collision is a canonical name reached from more than one declared name.
// Planned edits rename all of them to Target regardless.
type Collision struct {
	Target string
	Names  []string // distinct declared names, in order of first declaration
	Lines  []int    // first declaration line of each name
}

// Collisions reports the canonical names shared by distinct declared names.
// A name that is already canonical counts as reaching itself.
func Collisions(decls []Declaration) []Collision {
	byTarget := make(map[string]*Collision)
	var order []string
	seen := make(map[string]bool)
	for _, d := range decls {
		to := canon.Name(d.Name)
		if to == "" || seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		c := byTarget[to]
		if c == nil {
			c = &Collision{Target: to}
			byTarget[to] = c
			order = append(order, to)
		}
		c.Names = append(c.Names, d.Name)
		c.Lines = append(c.Lines, d.Line)
	}

	var list []Collision
	for _, to := range order {
		if c := byTarget[to]; len(c.Names) > 1 {
			list = append(list, *c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Lines[0] < list[j].Lines[0]
	})
	return list
}
