package report

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter formats the summary as Markdown, suitable for a
// workflow job summary.
type MarkdownFormatter struct{}

// Format outputs the summary as Markdown.
func (f *MarkdownFormatter) Format(s Summary, w io.Writer) error {
	fmt.Fprintf(w, "# Stale assignee sweep: %s\n\n", s.Repo)
	fmt.Fprintf(w, "*Generated: %s*\n\n", s.GeneratedAt.Format("2006-01-02 15:04"))

	if s.DryRun {
		fmt.Fprintln(w, "> **Dry run**: no changes were made.")
		fmt.Fprintln(w)
	}

	if s.Empty() {
		fmt.Fprintln(w, "No assignees removed.")
		fmt.Fprintln(w)
		f.footer(s, w)
		return nil
	}

	fmt.Fprintln(w, "| Issue | Unassigned |")
	fmt.Fprintln(w, "|-------|------------|")
	for _, is := range s.Issues {
		fmt.Fprintf(w, "| [#%d](%s) | %s |\n", is.Number, is.URL, strings.Join(is.Users, ", "))
	}
	fmt.Fprintln(w)

	f.footer(s, w)
	return nil
}

func (f *MarkdownFormatter) footer(s Summary, w io.Writer) {
	fmt.Fprintf(w, "%d issues scanned, %d past the inactivity threshold, %d exempted by linked open pull requests.\n",
		s.Scanned, s.Qualified, s.Guarded)
}
