package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hal/stalesweep/internal/format"
)

const maxUserColumnWidth = 40

// TableFormatter renders the summary as a terminal table.
type TableFormatter struct {
	// NoColor disables ANSI styling, for non-TTY destinations.
	NoColor bool
}

// Format outputs the summary as an aligned table with a totals footer.
func (f *TableFormatter) Format(s Summary, w io.Writer) error {
	header := color.New(color.Bold)
	issueStyle := color.New(color.FgCyan)
	userStyle := color.New(color.FgYellow)
	if f.NoColor {
		header.DisableColor()
		issueStyle.DisableColor()
		userStyle.DisableColor()
	}

	if s.DryRun {
		fmt.Fprintln(w, header.Sprint("DRY RUN: no changes were made"))
	}

	if s.Empty() {
		fmt.Fprintf(w, "No assignees removed. (%d issues scanned, %d past threshold, %d guarded by open PRs)\n",
			s.Scanned, s.Qualified, s.Guarded)
		return nil
	}

	issueWidth := len("ISSUE")
	userWidth := len("UNASSIGNED")
	for _, is := range s.Issues {
		if w := format.DisplayWidth(issueCell(is.Number)); w > issueWidth {
			issueWidth = w
		}
		users := format.TruncateToWidth(strings.Join(is.Users, ", "), maxUserColumnWidth)
		if w := format.DisplayWidth(users); w > userWidth {
			userWidth = w
		}
	}

	fmt.Fprintf(w, "%s  %s  %s\n",
		header.Sprint(format.PadToWidth("ISSUE", issueWidth)),
		header.Sprint(format.PadToWidth("UNASSIGNED", userWidth)),
		header.Sprint("URL"))

	for _, is := range s.Issues {
		users := format.TruncateToWidth(strings.Join(is.Users, ", "), maxUserColumnWidth)
		fmt.Fprintf(w, "%s  %s  %s\n",
			format.PadToWidth(issueStyle.Sprint(issueCell(is.Number)), issueWidth),
			format.PadToWidth(userStyle.Sprint(users), userWidth),
			is.URL)
	}

	fmt.Fprintf(w, "\n%d assignees removed across %d issues (%d scanned, %d guarded)\n",
		s.Removed(), len(s.Issues), s.Scanned, s.Guarded)

	return nil
}

func issueCell(number int) string {
	return fmt.Sprintf("#%d", number)
}
