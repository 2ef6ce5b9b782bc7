// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"bytes"
	"fmt"
	"os"

	"github.com/defstyle/defstyle/diff"
	"github.com/defstyle/defstyle/edit"
	"github.com/defstyle/defstyle/plan"
	"golang.org/x/xerrors"
)

// An Edit is the planned rewrite of one file.
type Edit struct {
	Name    string
	OldText []byte
	NewText []byte
	Edits   []plan.Edit
}

// apply applies edits to f in a single buffer pass.
// It returns nil if there is nothing to change.
func (f *File) apply(edits []plan.Edit) (*Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}
	b := edit.NewBuffer(f.Text)
	for _, e := range edits {
		if e.Line >= len(f.starts) || e.End > len(f.Lines[e.Line]) {
			return nil, fmt.Errorf("%s: edit %v out of range", f.Name, e)
		}
		b.Replace(f.Offset(e.Line, e.Start), f.Offset(e.Line, e.End), e.NewText)
	}
	if err := b.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return &Edit{Name: f.Name, OldText: f.Text, NewText: b.Bytes(), Edits: edits}, nil
}

func (s *Snapshot) currentBytes(name string) []byte {
	if ed := s.edits[name]; ed != nil {
		return ed.NewText
	}
	if f := s.files[name]; f != nil {
		return f.Text
	}
	return nil
}

// Diff returns a unified diff of all planned changes.
func (s *Snapshot) Diff() ([]byte, error) {
	var diffs []byte
	for _, name := range s.names {
		old := s.files[name].Text
		new := s.currentBytes(name)
		if bytes.Equal(old, new) {
			continue
		}
		d, err := diff.Diff("old/"+name, old, "new/"+name, new)
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, d...)
	}
	return diffs, nil
}

// Write writes every changed file back to disk, keeping its mode.
func (s *Snapshot) Write() error {
	failed := false
	for _, name := range s.Modified() {
		path := s.r.abs(name)
		mode := os.FileMode(0o666)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, s.edits[name].NewText, mode); err != nil {
			fmt.Fprintf(s.r.Stderr, "%s\n", xerrors.Errorf("writing %s: %w", name, err))
			failed = true
			continue
		}
		s.r.Log.Info("rewrote", "file", name, "edits", len(s.edits[name].Edits))
	}
	if failed {
		return fmt.Errorf("errors writing files")
	}
	return nil
}
