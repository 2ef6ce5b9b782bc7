// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refactor loads source files, plans macro renames in each of
// them, and applies, shows, or writes the resulting edits.
package refactor

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// A Refactor holds the state for an active rewrite.
type Refactor struct {
	Config Config
	Stdout io.Writer
	Stderr io.Writer
	Log    *slog.Logger

	dir string
}

// New returns a new rewrite resolving relative file names against dir
// (usually ".").
func New(dir string, cfg Config) (*Refactor, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	r := &Refactor{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    slog.New(slog.DiscardHandler),
		dir:    filepath.Clean(dir),
	}
	return r, nil
}

// Dir returns the directory relative file names are resolved against.
func (r *Refactor) Dir() string {
	return r.dir
}

func (r *Refactor) abs(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.dir, name)
}

// Load reads the named files, and every file with one of the configured
// extensions below the named directories, into a new Snapshot.
func (r *Refactor) Load(ctx context.Context, paths ...string) (*Snapshot, error) {
	names, err := r.expand(paths)
	if err != nil {
		return nil, err
	}
	s := &Snapshot{
		r:     r,
		files: make(map[string]*File),
		edits: make(map[string]*Edit),
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.files[name] != nil {
			continue
		}
		text, err := os.ReadFile(r.abs(name))
		if err != nil {
			return nil, xerrors.Errorf("loading %s: %w", name, err)
		}
		s.files[name] = newFile(name, text)
		s.names = append(s.names, name)
	}
	sortNames(s.names)
	return s, nil
}

// expand turns the argument list into a list of file names.
// Files named explicitly are kept whatever their extension.
func (r *Refactor) expand(paths []string) ([]string, error) {
	var names []string
	for _, p := range paths {
		info, err := os.Stat(r.abs(p))
		if err != nil {
			return nil, xerrors.Errorf("loading %s: %w", p, err)
		}
		if !info.IsDir() {
			names = append(names, filepath.Clean(p))
			continue
		}
		err = filepath.WalkDir(r.abs(p), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != r.abs(p) && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !r.Config.hasExtension(path) {
				return nil
			}
			name := path
			if !filepath.IsAbs(p) {
				if rel, err := filepath.Rel(r.dir, path); err == nil {
					name = rel
				}
			}
			names = append(names, name)
			return nil
		})
		if err != nil {
			return nil, xerrors.Errorf("walking %s: %w", p, err)
		}
	}
	return names, nil
}

func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		di, dj := filepath.Dir(names[i]), filepath.Dir(names[j])
		if di != dj {
			return di < dj
		}
		return names[i] < names[j]
	})
}
