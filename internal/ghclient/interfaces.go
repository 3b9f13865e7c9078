// Package ghclient provides GitHub API client functionality.
package ghclient

import (
	"context"

	"github.com/hal/stalesweep/internal/model"
)

// IssueService defines the GitHub API surface the sweep consumes. The
// interface exists so the engine can be tested against fakes without any
// network access.
type IssueService interface {
	// Listing (primary path; failures abort the run)
	ListOpenIssues(ctx context.Context, owner, repo string) ([]model.Issue, error)

	// Linked-work detection (auxiliary; failures degrade to "no result")
	GetPullRequest(ctx context.Context, owner, repo string, number int) (model.PullRequestRef, error)
	SearchOpenPullRequests(ctx context.Context, owner, repo string, issueNumber int) ([]int, error)

	// Assignee classification (auxiliary; failures degrade to "inactive")
	GetUser(ctx context.Context, login string) (model.User, error)
	IsOrgMember(ctx context.Context, org, user string) (bool, error)

	// Repository metadata
	GetRepository(ctx context.Context, owner, repo string) (model.Repo, error)

	// Mutation (primary path; permission failures are fatal)
	ReplaceAssignees(ctx context.Context, owner, repo string, number int, assignees []string) error
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

// Ensure Client implements IssueService.
var _ IssueService = (*Client)(nil)
