package compiler

import (
	"bytes"
	"strings"
	"unicode"
)

// Line is a significant line of a source document.
type Line struct {
	Num  int    // 1-based position in the source
	Text string // Trimmed content
}

// Lines splits raw content into trimmed lines, dropping blank lines and
// lines whose first non-space character is '#'. Lines have no length limit.
func Lines(data []byte) []Line {
	var out []Line
	for i, raw := range bytes.Split(data, []byte("\n")) {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}
		out = append(out, Line{Num: i + 1, Text: string(raw)})
	}
	return out
}

// fields splits a line on whitespace and colons. Colons only separate
// structural tokens, so "T: a : s" and "T:a:s" yield the same fields.
func fields(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
}
