// Package model contains domain types for the sweep.
// These types are independent of any external GitHub library.
package model

import "time"

// Issue is an open issue as seen at the start of a run.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	HTMLURL   string    `json:"htmlUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
	Assignees []string  `json:"assignees,omitempty"`

	// IsPullRequest is true when the issue record is actually a pull
	// request. Such records are filtered out by the lister.
	IsPullRequest bool `json:"isPullRequest,omitempty"`

	// LinkedPRNumber is the pull request number carried directly on the
	// issue record, or 0 when there is none.
	LinkedPRNumber int `json:"linkedPrNumber,omitempty"`
}

// InactiveFor returns how long the issue has gone without an update.
func (i Issue) InactiveFor(now time.Time) time.Duration {
	return now.Sub(i.UpdatedAt)
}

// User is a platform account referenced by an issue assignment.
type User struct {
	Login     string `json:"login"`
	SiteAdmin bool   `json:"siteAdmin,omitempty"`
}

// Repo identifies the repository being swept.
type Repo struct {
	Owner      string `json:"owner"`
	Name       string `json:"name"`
	HTMLURL    string `json:"htmlUrl,omitempty"`
	OwnerIsOrg bool   `json:"ownerIsOrg,omitempty"`
}

// FullName returns the owner/name form of the repository.
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

// PullRequestRef is a pull request discovered by one of the linked-work
// detection methods.
type PullRequestRef struct {
	Number int    `json:"number"`
	State  string `json:"state"` // open, closed
}

// IsOpen reports whether the referenced pull request is open.
func (p PullRequestRef) IsOpen() bool {
	return p.State == "open"
}
