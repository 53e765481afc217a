// Package source provides the structural extraction layer for the
// analyzers: the immutable source buffer, line classification, the
// balanced-block extractor, and the regex-based method locator. All
// pattern constants live in patterns.go so the heuristics can be
// tuned (or swapped for a real parser) without touching analyzer
// logic.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Buffer holds one source file in memory: the full text and its
// newline-split line sequence. Lines are 1-indexed for reporting.
// A Buffer is immutable once created and lives for one analysis run.
type Buffer struct {
	// Name is the base name of the file, used for report identity.
	Name string

	// Text is the complete file content.
	Text string

	// Lines is Text split on newlines. Empty for an empty file, so
	// a 0-byte input reports total_lines = 0 rather than 1.
	Lines []string
}

// NewBuffer builds a Buffer from raw text.
func NewBuffer(name, text string) *Buffer {
	b := &Buffer{Name: name, Text: text}
	if text != "" {
		b.Lines = strings.Split(text, "\n")
	}
	return b
}

// Load reads the file at path into a Buffer. A missing file or
// non-UTF-8 content is a fatal input error; everything past this
// point degrades instead of failing.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading %s: content is not valid UTF-8", path)
	}
	return NewBuffer(filepath.Base(path), string(data)), nil
}

// LineClass is the classification of a single source line. Every
// line belongs to exactly one class, which keeps the partition
// invariant blank + comment + logical == total.
type LineClass int

// Line classes.
const (
	LineBlank LineClass = iota
	LineComment
	LineLogical
)

// ClassifyLine assigns a line to exactly one class. Blank wins over
// comment so the two never double count.
func ClassifyLine(line string) LineClass {
	stripped := strings.TrimSpace(line)
	switch {
	case stripped == "":
		return LineBlank
	case IsCommentLine(line):
		return LineComment
	default:
		return LineLogical
	}
}

// IsCommentLine reports whether the line begins (after trimming)
// with a line-comment or block-comment marker. Continuation lines of
// a block comment conventionally start with "*", which is covered;
// code sharing a line with a trailing comment is counted as logical.
func IsCommentLine(line string) bool {
	stripped := strings.TrimSpace(line)
	return strings.HasPrefix(stripped, "//") ||
		strings.HasPrefix(stripped, "/*") ||
		strings.HasPrefix(stripped, "*")
}
