package ghclient

import (
	"context"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v57/github"

	"github.com/hal/stalesweep/internal/log"
	"github.com/hal/stalesweep/internal/model"
)

// issuePageSize is the fixed page size used when listing issues.
const issuePageSize = 100

// ListOpenIssues fetches every open, non-pull-request issue in the
// repository, paginating until exhausted. Any page failure aborts the run.
func (c *Client) ListOpenIssues(ctx context.Context, owner, repo string) ([]model.Issue, error) {
	opts := &gh.IssueListByRepoOptions{
		State: "open",
		ListOptions: gh.ListOptions{
			PerPage: issuePageSize,
		},
	}

	var issues []model.Issue

	for {
		page, resp, err := c.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, wrapRead("failed to list open issues", err)
		}

		for _, issue := range page {
			m := issueToModel(issue)
			if m.IsPullRequest {
				continue
			}
			issues = append(issues, m)
		}

		log.Debug("listed issue page", "page", opts.Page, "count", len(page))

		if resp.NextPage == 0 || len(page) < issuePageSize {
			break
		}
		opts.Page = resp.NextPage
	}

	return issues, nil
}

// issueToModel converts a GitHub API issue to the domain type.
func issueToModel(issue *gh.Issue) model.Issue {
	var assignees []string
	for _, assignee := range issue.Assignees {
		assignees = append(assignees, assignee.GetLogin())
	}

	m := model.Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		Body:          issue.GetBody(),
		HTMLURL:       issue.GetHTMLURL(),
		UpdatedAt:     issue.GetUpdatedAt().Time,
		Assignees:     assignees,
		IsPullRequest: issue.IsPullRequest(),
	}

	if links := issue.GetPullRequestLinks(); links != nil {
		m.LinkedPRNumber = prNumberFromURL(links.GetURL())
	}

	return m
}

// prNumberFromURL extracts the pull request number from an API URL like
// https://api.github.com/repos/owner/repo/pulls/123.
func prNumberFromURL(url string) int {
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return 0
	}
	n, err := strconv.Atoi(url[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

// ReplaceAssignees replaces the issue's assignee list wholesale with the
// given logins. This is a full replace, not an incremental removal.
func (c *Client) ReplaceAssignees(ctx context.Context, owner, repo string, number int, assignees []string) error {
	if assignees == nil {
		assignees = []string{}
	}
	req := &gh.IssueRequest{Assignees: &assignees}

	_, _, err := c.client.Issues.Edit(ctx, owner, repo, number, req)
	return wrapWrite("failed to update issue assignees", err)
}

// CreateComment posts a comment on the issue.
func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &gh.IssueComment{Body: gh.String(body)}

	_, _, err := c.client.Issues.CreateComment(ctx, owner, repo, number, comment)
	return wrapWrite("failed to create issue comment", err)
}
