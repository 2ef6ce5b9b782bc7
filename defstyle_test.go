// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Each testdata/*.txt archive holds the command line in its comment.
// Sections named stdout and stderr hold the expected output, sections
// under want/ hold the expected file contents after the run, and all
// other sections are written to a fresh directory before the run.
func TestRun(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test cases")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			t.Log(file)
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			dir := t.TempDir()
			var wantStdout, wantStderr txtar.File
			var wantFiles []txtar.File
			for _, file := range ar.Files {
				switch {
				case file.Name == "stdout":
					wantStdout = file
					continue
				case file.Name == "stderr":
					wantStderr = file
					continue
				case strings.HasPrefix(file.Name, "want/"):
					wantFiles = append(wantFiles, file)
					continue
				}
				targ := filepath.Join(dir, file.Name)
				if err := os.MkdirAll(filepath.Dir(targ), 0777); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(targ, file.Data, 0666); err != nil {
					t.Fatal(err)
				}
			}

			var stdout, stderr bytes.Buffer
			cmd := newRootCmd(dir, &stdout, &stderr)
			cmd.SetArgs(strings.Fields(string(ar.Comment)))
			if err := cmd.Execute(); err != nil {
				fmt.Fprintf(&stderr, "ERROR: %v\n", err)
			}

			cmp := func(name string, have, want []byte) {
				have = trimSpace(have)
				want = trimSpace(want)
				if !bytes.Equal(have, want) {
					t.Errorf("%s:\n%s", name, have)
					t.Errorf("want:\n%s", want)
				}
			}
			cmp("stderr", stderr.Bytes(), wantStderr.Data)
			cmp("stdout", stdout.Bytes(), wantStdout.Data)
			for _, want := range wantFiles {
				name := strings.TrimPrefix(want.Name, "want/")
				have, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					t.Error(err)
					continue
				}
				cmp(name, have, want.Data)
			}
		})
	}
}

func trimSpace(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " ")
	}
	return bytes.Join(lines, []byte("\n"))
}

func TestWriteDiffColor(t *testing.T) {
	d := []byte("diff a b\n--- a\n+++ b\n@@ -1 +1 @@\n-x\n+X\n")

	var plain bytes.Buffer
	if err := writeDiff(&plain, d, false); err != nil {
		t.Fatal(err)
	}
	if plain.String() != string(d) {
		t.Errorf("writeDiff uncolored = %q, want %q", plain.String(), d)
	}

	var colored bytes.Buffer
	if err := writeDiff(&colored, d, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[31m-x") {
		t.Errorf("writeDiff colored = %q, missing red deletion", colored.String())
	}
	if !strings.Contains(colored.String(), "\x1b[32m+X") {
		t.Errorf("writeDiff colored = %q, missing green insertion", colored.String())
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if !useColor("on", &buf) {
		t.Errorf("useColor(on) = false")
	}
	if useColor("off", &buf) {
		t.Errorf("useColor(off) = true")
	}
	if useColor("auto", &buf) {
		t.Errorf("useColor(auto) on a buffer = true")
	}
}
