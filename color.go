// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// useColor reports whether output to w should be colorized
// for the given color setting.
func useColor(setting string, w io.Writer) bool {
	switch setting {
	case "on":
		return true
	case "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeDiff copies the unified diff d to w, coloring it if colored is set.
func writeDiff(w io.Writer, d []byte, colored bool) error {
	var (
		header = color.New(color.Bold)
		hunk   = color.New(color.FgCyan)
		del    = color.New(color.FgRed)
		ins    = color.New(color.FgGreen)
	)
	for _, c := range []*color.Color{header, hunk, del, ins} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	lines := bytes.SplitAfter(d, []byte("\n"))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		text := bytes.TrimSuffix(line, []byte("\n"))
		var c *color.Color
		switch {
		case bytes.HasPrefix(text, []byte("diff ")),
			bytes.HasPrefix(text, []byte("--- ")),
			bytes.HasPrefix(text, []byte("+++ ")):
			c = header
		case bytes.HasPrefix(text, []byte("@@")):
			c = hunk
		case bytes.HasPrefix(text, []byte("-")):
			c = del
		case bytes.HasPrefix(text, []byte("+")):
			c = ins
		}
		s := string(text)
		if c != nil {
			s = c.Sprint(s)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
		if len(text) < len(line) {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
