// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Defstyle renames C preprocessor macros to UPPER_SNAKE_CASE.
//
// Usage:
//
//	defstyle [flags] path...
//
// Defstyle reads each named file, and each file with a C-family extension
// below each named directory, and looks for macro declarations:
//
//	#define max_val 100
//	#define clamp(lo, hi, v) ...
//
// A declared name that is not already in canonical form is renamed: every
// run of characters other than letters and digits becomes one underscore,
// leading and trailing underscores are dropped, and letters are upper-cased.
// So max_val becomes MAX_VAL and __my_header_h__ becomes MY_HEADER_H.
//
// Every other occurrence of a renamed name in the same file is renamed too,
// as long as it is a whole identifier: renaming buf leaves buffer and
// rebuf alone. Lines that declare a macro are only changed at the declared
// name, so a macro body keeps its text. Comments and string literals are
// not treated specially.
//
// By default, defstyle writes changes back to the disk.
// The -d flag causes defstyle to print a diff of the intended changes instead.
// The -l flag lists the files that would change, and -check does the same
// but exits with a non-zero status if there are any.
// The -json flag prints the planned edits, with zero-based line numbers and
// byte columns, for use by editors.
//
// The -p flag also renames the parameters of function-like macros in their
// declaration, so that
//
//	#define clamp(lo, hi, v) ...
//
// becomes
//
//	#define CLAMP(LO, HI, V) ...
//
// The body is left as it is.
//
// Two declared names that rename to the same name, like foo_bar and
// FOO_BAR, are both renamed and reported as a warning. The -strict flag
// makes that an error.
//
// Macros continued onto further lines with a trailing backslash are only
// recognized on their first line.
//
// # Configuration
//
// Settings are read, in increasing order of precedence, from a
// .defstyle.yaml file in the current directory (or the file named by
// -config), from DEFSTYLE_ environment variables, and from flags:
//
//	uppercase_params: true      # -p, DEFSTYLE_UPPERCASE_PARAMS
//	strict: false               # -strict, DEFSTYLE_STRICT
//	jobs: 0                     # -j, DEFSTYLE_JOBS
//	extensions: [.c, .h]        # -ext, DEFSTYLE_EXTENSIONS
//	color: auto                 # -color, DEFSTYLE_COLOR
package main
