package report

import (
	"fmt"
	"io"
)

// Format represents the output format
type Format string

const (
	FormatText     Format = "text"
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(s Summary, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}

// ParseFormat validates a format string from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatTable, FormatJSON, FormatMarkdown:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s (use text, table, markdown, or json)", s)
}

// TextFormatter renders one plain line per affected issue.
type TextFormatter struct{}

// Format outputs the summary as newline-joined plain text.
func (f *TextFormatter) Format(s Summary, w io.Writer) error {
	if s.Empty() {
		_, err := fmt.Fprintln(w, "No assignees removed.")
		return err
	}
	for _, line := range s.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
