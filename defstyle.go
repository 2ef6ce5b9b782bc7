// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/defstyle/defstyle/plan"
	"github.com/defstyle/defstyle/refactor"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	log.SetPrefix("defstyle: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(".", os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}

// An outputMode selects what defstyle does with the planned edits.
type outputMode int

const (
	modeWrite outputMode = iota
	modeDiff
	modeList
	modeCheck
	modeJSON
)

func newRootCmd(dir string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defstyle [flags] path...",
		Short: "Rename #define macros to UPPER_SNAKE_CASE",
		Long: "Defstyle renames the macros declared with #define in C-family source files\n" +
			"to UPPER_SNAKE_CASE, along with every other use of those names in the same file.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefstyle(cmd, dir, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolP("diff", "d", false, "show diff instead of writing files")
	flags.BoolP("list", "l", false, "list files that would change")
	flags.Bool("check", false, "list files that would change and fail if there are any")
	flags.Bool("json", false, "print the planned edits as JSON")
	flags.BoolP("uppercase-params", "p", false, "also rename macro parameters")
	flags.Bool("strict", false, "treat macro names that rename to the same name as errors")
	flags.IntP("jobs", "j", 0, "number of files planned in parallel (0 means GOMAXPROCS)")
	flags.StringSlice("ext", nil, "file extensions picked up in directories (default .c,.h,.cc,.cpp,.hpp,.hh,.ino)")
	flags.String("color", "auto", "colorize diff output (auto|on|off)")
	flags.String("config", "", "read configuration from `file`")
	flags.BoolP("verbose", "v", false, "log progress to standard error")
	return cmd
}

func runDefstyle(cmd *cobra.Command, dir string, args []string) error {
	flags := cmd.Flags()
	mode, err := selectMode(flags)
	if err != nil {
		return err
	}
	cfgFile, err := flags.GetString("config")
	if err != nil {
		return err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}

	cfg, used, err := refactor.LoadConfig(dir, cfgFile, flags)
	if err != nil {
		return err
	}
	r, err := refactor.New(dir, cfg)
	if err != nil {
		return err
	}
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()
	r.Log = newLogger(r.Stderr, verbose)
	if used != "" {
		r.Log.Debug("loaded config", "file", used)
	}
	return run(cmd.Context(), r, mode, args)
}

func selectMode(flags *pflag.FlagSet) (outputMode, error) {
	mode := modeWrite
	n := 0
	for _, f := range []struct {
		name string
		mode outputMode
	}{
		{"diff", modeDiff},
		{"list", modeList},
		{"check", modeCheck},
		{"json", modeJSON},
	} {
		set, err := flags.GetBool(f.name)
		if err != nil {
			return 0, err
		}
		if set {
			mode = f.mode
			n++
		}
	}
	if n > 1 {
		return 0, newErrUsage("at most one of --diff, --list, --check, --json may be set")
	}
	return mode, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func run(ctx context.Context, r *refactor.Refactor, mode outputMode, paths []string) error {
	snap, err := r.Load(ctx, paths...)
	if err != nil {
		return err
	}
	if len(snap.Files()) == 0 {
		return newErrPrecondition("no source files in %v", paths)
	}
	if err := snap.Plan(ctx); err != nil {
		return err
	}
	if snap.Errors.Len() > 0 {
		if r.Config.Strict {
			return snap.Errors.Err()
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", snap.Errors.Error())
	}

	modified := snap.Modified()
	switch mode {
	case modeDiff:
		d, err := snap.Diff()
		if err != nil {
			return err
		}
		return writeDiff(r.Stdout, d, useColor(r.Config.Color, r.Stdout))

	case modeList, modeCheck:
		for _, name := range modified {
			fmt.Fprintf(r.Stdout, "%s\n", name)
		}
		if mode == modeCheck && len(modified) > 0 {
			return newErrPrecondition("%d file(s) need rewriting", len(modified))
		}
		return nil

	case modeJSON:
		return writeJSON(r.Stdout, snap, modified)
	}

	if len(modified) == 0 {
		fmt.Fprintf(r.Stderr, "nothing to change\n")
		return nil
	}
	return snap.Write()
}

type fileEdits struct {
	File  string          `json:"file"`
	Edits []plan.TextEdit `json:"edits"`
}

func writeJSON(w io.Writer, snap *refactor.Snapshot, names []string) error {
	out := make([]fileEdits, 0, len(names))
	for _, name := range names {
		fe := fileEdits{File: name}
		for _, e := range snap.Edits(name) {
			fe.Edits = append(fe.Edits, e.TextEdit())
		}
		out = append(out, fe)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(out)
}
