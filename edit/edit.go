// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edit implements buffered position-based editing of byte slices.
package edit

import (
	"fmt"
	"sort"
	"strings"
)

// A Buffer is a queue of edits to apply to a given byte slice.
// Edit offsets always refer to the original text, regardless
// of the order in which the edits are queued.
type Buffer struct {
	old []byte
	q   edits
}

// An edit records a single text modification: change the bytes in [start,end) to new.
type edit struct {
	start int
	end   int
	new   string
}

// An edits is a list of edits that is sortable by start offset, breaking ties by end offset.
type edits []edit

func (x edits) Len() int      { return len(x) }
func (x edits) Swap(i, j int) { x[i], x[j] = x[j], x[i] }
func (x edits) Less(i, j int) bool {
	if x[i].start != x[j].start {
		return x[i].start < x[j].start
	}
	return x[i].end < x[j].end
}

// NewBuffer returns a new buffer to accumulate changes to an initial data slice.
// The returned buffer maintains a reference to the data, so the caller must ensure
// the data is not modified until after the Buffer is done being used.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{old: data}
}

// Len returns the number of queued edits.
func (b *Buffer) Len() int {
	return len(b.q)
}

func (b *Buffer) Insert(pos int, new string) {
	if pos < 0 || pos > len(b.old) {
		panic("invalid edit position")
	}
	b.q = append(b.q, edit{pos, pos, new})
}

func (b *Buffer) Delete(start, end int) {
	b.Replace(start, end, "")
}

func (b *Buffer) Replace(start, end int, new string) {
	if end < start || start < 0 || end > len(b.old) {
		panic("invalid edit position")
	}
	b.q = append(b.q, edit{start, end, new})
}

// An OverlapError reports two queued edits that change the same text.
type OverlapError struct {
	Start1, End1 int
	Start2, End2 int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d,%d) and [%d,%d)", e.Start1, e.End1, e.Start2, e.End2)
}

// Check reports the first pair of queued edits that overlap.
// Spans are half-open. Two insertions at the same offset do not overlap;
// an insertion overlaps a replacement whose span strictly contains or
// starts at the insertion point.
func (b *Buffer) Check() error {
	sort.Stable(b.q)
	for i := 1; i < len(b.q); i++ {
		prev, e := b.q[i-1], b.q[i]
		if overlaps(prev, e) {
			return &OverlapError{prev.start, prev.end, e.start, e.end}
		}
	}
	return nil
}

func overlaps(a, b edit) bool {
	if a.start == a.end && b.start == b.end {
		return false
	}
	if a.start == a.end {
		return b.start <= a.start && a.start < b.end
	}
	if b.start == b.end {
		return a.start <= b.start && b.start < a.end
	}
	return a.start < b.end && b.start < a.end
}

// Bytes returns a new byte slice containing the original data
// with the queued edits applied. It panics if edits overlap;
// callers that cannot rule that out should call Check first.
func (b *Buffer) Bytes() []byte {
	if err := b.Check(); err != nil {
		panic(err.Error())
	}
	var new []byte
	offset := 0
	for _, e := range b.q {
		new = append(new, b.old[offset:e.start]...)
		offset = e.end
		new = append(new, e.new...)
	}
	new = append(new, b.old[offset:]...)
	return new
}

// String returns a string containing the original data
// with the queued edits applied.
func (b *Buffer) String() string {
	var s strings.Builder
	s.Write(b.Bytes())
	return s.String()
}
