package ghclient

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v57/github"

	"github.com/hal/stalesweep/internal/model"
)

// GetPullRequest fetches a single pull request by number.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (model.PullRequestRef, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return model.PullRequestRef{}, wrapRead(fmt.Sprintf("failed to get pull request #%d", number), err)
	}
	return model.PullRequestRef{
		Number: pr.GetNumber(),
		State:  pr.GetState(),
	}, nil
}

// SearchOpenPullRequests searches the repository for open pull requests
// whose title or body mentions the issue number, returning candidate PR
// numbers. Callers re-fetch each candidate to confirm its state.
func (c *Client) SearchOpenPullRequests(ctx context.Context, owner, repo string, issueNumber int) ([]int, error) {
	query := fmt.Sprintf("repo:%s/%s is:pr is:open %d in:title,body", owner, repo, issueNumber)

	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{
			PerPage: issuePageSize,
		},
	}

	var numbers []int

	for {
		result, resp, err := c.client.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, wrapRead("failed to search for linked pull requests", err)
		}

		for _, issue := range result.Issues {
			if !issue.IsPullRequest() {
				continue
			}
			numbers = append(numbers, issue.GetNumber())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return numbers, nil
}

// GetUser fetches a user, including the site-administrator flag.
func (c *Client) GetUser(ctx context.Context, login string) (model.User, error) {
	user, _, err := c.client.Users.Get(ctx, login)
	if err != nil {
		return model.User{}, wrapRead(fmt.Sprintf("failed to get user %s", login), err)
	}
	return model.User{
		Login:     user.GetLogin(),
		SiteAdmin: user.GetSiteAdmin(),
	}, nil
}

// GetRepository fetches repository metadata, including whether the owner is
// an organization.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (model.Repo, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return model.Repo{}, wrapRead(fmt.Sprintf("failed to get repository %s/%s", owner, repo), err)
	}
	return model.Repo{
		Owner:      r.GetOwner().GetLogin(),
		Name:       r.GetName(),
		HTMLURL:    r.GetHTMLURL(),
		OwnerIsOrg: r.GetOwner().GetType() == "Organization",
	}, nil
}

// IsOrgMember reports whether the user is a member of the organization.
// Callers treat errors as "not a member", never as fatal.
func (c *Client) IsOrgMember(ctx context.Context, org, user string) (bool, error) {
	member, _, err := c.client.Organizations.IsMember(ctx, org, user)
	if err != nil {
		return false, wrapRead(fmt.Sprintf("failed to check org membership for %s", user), err)
	}
	return member, nil
}
