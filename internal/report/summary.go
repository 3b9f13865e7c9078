// Package report aggregates unassignment records into a run summary and
// renders it for terminals, job summaries, and chat webhooks.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hal/stalesweep/internal/sweep"
)

// IssueSummary is one affected issue and every user removed from it.
type IssueSummary struct {
	Number int      `json:"number"`
	URL    string   `json:"url"`
	Users  []string `json:"users"`
}

// Summary is the aggregated outcome of one sweep run.
type Summary struct {
	Repo        string         `json:"repo"`
	DryRun      bool           `json:"dryRun,omitempty"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Scanned     int            `json:"scanned"`
	Qualified   int            `json:"qualified"`
	Guarded     int            `json:"guarded"`
	Issues      []IssueSummary `json:"issues"`
}

// Build groups a run's unassignment records by issue, ordered by issue
// number, with user order preserved within each issue.
func Build(repo string, result *sweep.Result) Summary {
	s := Summary{
		Repo:        repo,
		DryRun:      result.DryRun,
		GeneratedAt: time.Now(),
		Scanned:     result.Scanned,
		Qualified:   result.Qualified,
		Guarded:     result.Guarded,
	}

	byIssue := make(map[int]*IssueSummary)
	for _, rec := range result.Records {
		is, ok := byIssue[rec.IssueNumber]
		if !ok {
			is = &IssueSummary{Number: rec.IssueNumber, URL: rec.IssueURL}
			byIssue[rec.IssueNumber] = is
		}
		is.Users = append(is.Users, rec.User)
	}

	for _, is := range byIssue {
		s.Issues = append(s.Issues, *is)
	}
	sort.Slice(s.Issues, func(i, j int) bool {
		return s.Issues[i].Number < s.Issues[j].Number
	})

	return s
}

// Empty reports whether the run removed no assignees.
func (s Summary) Empty() bool {
	return len(s.Issues) == 0
}

// Removed returns the total number of unassignments across all issues.
func (s Summary) Removed() int {
	n := 0
	for _, is := range s.Issues {
		n += len(is.Users)
	}
	return n
}

// Lines renders one human-readable line per affected issue.
func (s Summary) Lines() []string {
	lines := make([]string, 0, len(s.Issues))
	for _, is := range s.Issues {
		lines = append(lines, fmt.Sprintf("Unassigned %s from %s#%d (%s)",
			strings.Join(is.Users, ", "), s.Repo, is.Number, is.URL))
	}
	return lines
}

// Join renders the per-issue lines joined by the given separator; newline
// for logs, comma for single-line workflow outputs.
func (s Summary) Join(sep string) string {
	return strings.Join(s.Lines(), sep)
}
