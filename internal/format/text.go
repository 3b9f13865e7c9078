// Package format provides shared text formatting utilities for terminal output.
package format

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// DisplayWidth returns the visible width of a string in terminal columns,
// accounting for wide characters and stripping ANSI escape sequences.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripAnsi(s))
}

// TruncateToWidth truncates a string to fit within maxWidth display columns,
// appending "..." when truncation occurs. ANSI sequences are preserved
// without counting toward the width.
func TruncateToWidth(s string, maxWidth int) string {
	if DisplayWidth(s) <= maxWidth {
		return s
	}

	targetWidth := maxWidth - 3
	if targetWidth < 0 {
		targetWidth = 0
	}

	matches := ansiRegex.FindAllStringIndex(s, -1)

	var result strings.Builder
	visibleWidth := 0
	pos := 0
	matchIdx := 0

	for pos < len(s) && visibleWidth < targetWidth {
		if matchIdx < len(matches) && pos == matches[matchIdx][0] {
			result.WriteString(s[matches[matchIdx][0]:matches[matchIdx][1]])
			pos = matches[matchIdx][1]
			matchIdx++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[pos:])
		w := runewidth.RuneWidth(r)
		if visibleWidth+w > targetWidth {
			break
		}
		result.WriteString(s[pos : pos+size])
		visibleWidth += w
		pos += size
	}

	result.WriteString("...")
	if len(matches) > 0 {
		result.WriteString("\x1b[0m")
	}
	return result.String()
}

// PadToWidth pads a string with spaces on the right to the given display
// width. Strings already at or past the width are returned unchanged.
func PadToWidth(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
