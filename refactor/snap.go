// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/defstyle/defstyle/plan"
	"golang.org/x/sync/errgroup"
)

// A Snapshot is a set of loaded files plus the edits planned for them.
type Snapshot struct {
	r *Refactor

	// files contains the contents of files before any edits.
	// It's keyed by File.Name.
	files map[string]*File
	names []string

	// edits contains the planned edits, keyed by file name.
	// It only contains entries for files that change.
	edits map[string]*Edit

	Errors ErrorList
}

// File is a loaded source file. Files are immutable once loaded.
type File struct {
	Name  string // Short path (either relative to r.dir or absolute)
	Text  []byte
	Lines plan.Lines

	// starts holds the byte offset of the start of each line.
	starts []int
}

func newFile(name string, text []byte) *File {
	f := &File{Name: name, Text: text, Lines: plan.SplitLines(string(text))}
	f.starts = append(f.starts, 0)
	for i, c := range text {
		if c == '\n' {
			f.starts = append(f.starts, i+1)
		}
	}
	return f
}

// Offset returns the byte offset in f.Text of column col on line line.
func (f *File) Offset(line, col int) int {
	return f.starts[line] + col
}

// Position returns the position of column col on line line.
func (f *File) Position(line, col int) Position {
	return Position{Filename: f.Name, Line: line + 1, Column: col + 1}
}

func (s *Snapshot) Refactor() *Refactor { return s.r }

// Files returns the loaded files in name order.
func (s *Snapshot) Files() []*File {
	files := make([]*File, len(s.names))
	for i, name := range s.names {
		files[i] = s.files[name]
	}
	return files
}

// Plan computes the edits for every loaded file, using up to
// Config.Jobs goroutines. Name collisions are recorded in s.Errors.
func (s *Snapshot) Plan(ctx context.Context) error {
	opts := plan.Options{UppercaseParams: s.r.Config.UppercaseParams}
	files := s.Files()

	type result struct {
		edit       *Edit
		collisions []plan.Collision
	}
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	jobs := s.r.Config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(jobs)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			edits := plan.Edits(f.Lines, opts)
			ed, err := f.apply(edits)
			if err != nil {
				return err
			}
			results[i] = result{ed, plan.Collisions(plan.Declarations(f.Lines))}
			s.r.Log.Debug("planned", "file", f.Name, "edits", len(edits))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, f := range files {
		res := results[i]
		if res.edit != nil {
			s.edits[f.Name] = res.edit
		}
		for _, c := range res.collisions {
			s.Errors.Add(collisionError(f, c))
		}
	}
	return nil
}

func collisionError(f *File, c plan.Collision) *Error {
	e := &Error{
		Pos: f.Position(c.Lines[0], 0),
		Msg: fmt.Sprintf("%s all rename to %s", strings.Join(c.Names, ", "), c.Target),
	}
	for i := 1; i < len(c.Names); i++ {
		e.Secondary = append(e.Secondary, &Error{
			Pos: f.Position(c.Lines[i], 0),
			Msg: "\tother declaration of " + c.Target,
		})
	}
	return e
}

// Edits returns the planned edits for the named file,
// or nil if the file does not change.
func (s *Snapshot) Edits(name string) []plan.Edit {
	if ed := s.edits[name]; ed != nil {
		return ed.Edits
	}
	return nil
}

// Modified returns the names of the files that change, in name order.
func (s *Snapshot) Modified() []string {
	var names []string
	for _, name := range s.names {
		ed := s.edits[name]
		if ed != nil && !bytes.Equal(ed.OldText, ed.NewText) {
			names = append(names, name)
		}
	}
	return names
}
