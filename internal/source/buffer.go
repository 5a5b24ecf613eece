// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package source

import "strings"

// Buffer is a read-only view of a source file plus its name. It is owned
// by the driver and shared by reference with the lexer and the
// diagnostics renderer; none of them may mutate it.
type Buffer struct {
	name string
	data []byte

	// lineOffsets[i] is the byte offset of the first byte of line i+1
	// (lines are 1-based everywhere else in this package).
	lineOffsets []int
}

// New returns a Buffer over data, pre-computing line start offsets so
// that LineText and Resolve are O(log n).
func New(name string, data []byte) *Buffer {
	b := &Buffer{name: name, data: data}
	b.lineOffsets = append(b.lineOffsets, 0)
	for i, c := range data {
		if c == '\n' {
			b.lineOffsets = append(b.lineOffsets, i+1)
		}
	}
	return b
}

// Name returns the filename the buffer was constructed with.
func (b *Buffer) Name() string { return b.name }

// Bytes returns the raw bytes of the source. Callers must not modify
// the returned slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes in the source.
func (b *Buffer) Len() int { return len(b.data) }

// Empty reports whether the buffer has zero bytes.
func (b *Buffer) Empty() bool { return len(b.data) == 0 }

// LineText returns the text of the given 1-based line, without its
// trailing newline. Returns false if the line does not exist.
func (b *Buffer) LineText(line int) (string, bool) {
	if line < 1 || line > len(b.lineOffsets) {
		return "", false
	}
	start := b.lineOffsets[line-1]
	var end int
	if line == len(b.lineOffsets) {
		end = len(b.data)
	} else {
		end = b.lineOffsets[line] - 1 // back up over the newline
		if end < start {
			end = start
		}
	}
	return strings.TrimSuffix(string(b.data[start:end]), "\r"), true
}

// Resolve converts a byte offset into a 1-based (line, column) pair.
// Column counts bytes from the start of the line, matching the lexer's
// own column bookkeeping.
func (b *Buffer) Resolve(offset int) (line, col int) {
	// binary search for the last lineOffsets[i] <= offset
	lo, hi := 0, len(b.lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = lo + 1
	col = offset - b.lineOffsets[lo] + 1
	return line, col
}
