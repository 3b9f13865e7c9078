package sweep

import (
	"context"
	"time"

	"github.com/hal/stalesweep/internal/ghclient"
	"github.com/hal/stalesweep/internal/log"
	"github.com/hal/stalesweep/internal/model"
)

// Membership is the three-valued result of an organization membership
// lookup. Unknown (lookup failed) classifies the same as NotMember, but
// stays distinguishable for tests and debug logs.
type Membership int

const (
	MemberUnknown Membership = iota
	MemberNo
	MemberYes
)

// String returns the lookup result as a short label.
func (m Membership) String() string {
	switch m {
	case MemberYes:
		return "member"
	case MemberNo:
		return "not-member"
	default:
		return "unknown"
	}
}

// Classifier partitions an issue's assignees into active users (kept) and
// inactive users (removed).
type Classifier struct {
	svc         ghclient.IssueService
	repo        model.Repo
	exempt      map[string]bool
	callTimeout time.Duration
}

// NewClassifier creates a classifier for the repository. exemptUsers are
// always treated as active.
func NewClassifier(svc ghclient.IssueService, repo model.Repo, exemptUsers []string, callTimeout time.Duration) *Classifier {
	exempt := make(map[string]bool, len(exemptUsers))
	for _, u := range exemptUsers {
		exempt[u] = true
	}
	return &Classifier{
		svc:         svc,
		repo:        repo,
		exempt:      exempt,
		callTimeout: callTimeout,
	}
}

// Partition splits assignees into active and inactive sets, preserving
// input order within each set.
func (c *Classifier) Partition(ctx context.Context, assignees []string) (active, inactive []string) {
	for _, login := range assignees {
		if c.isActive(ctx, login) {
			active = append(active, login)
		} else {
			inactive = append(inactive, login)
		}
	}
	return active, inactive
}

// isActive reports whether the assignee is exempt from removal: a
// configured exemption, the repository owner, a site administrator, or a
// member of the owning organization.
func (c *Classifier) isActive(ctx context.Context, login string) bool {
	if c.exempt[login] {
		log.Debug("assignee exempt by config", "user", login)
		return true
	}
	if login == c.repo.Owner {
		return true
	}

	cctx, cancel := withTimeout(ctx, c.callTimeout)
	user, err := c.svc.GetUser(cctx, login)
	cancel()
	if err != nil {
		log.Debug("user lookup failed, not treating as site admin",
			"user", login, "error", err)
	} else if user.SiteAdmin {
		return true
	}

	if m := c.OrgMembership(ctx, login); m == MemberYes {
		return true
	}

	return false
}

// OrgMembership checks whether the user belongs to the owning organization.
// When the repository owner is not an organization, or the lookup fails,
// the result is MemberUnknown.
func (c *Classifier) OrgMembership(ctx context.Context, login string) Membership {
	if !c.repo.OwnerIsOrg {
		return MemberUnknown
	}

	cctx, cancel := withTimeout(ctx, c.callTimeout)
	member, err := c.svc.IsOrgMember(cctx, c.repo.Owner, login)
	cancel()
	if err != nil {
		log.Debug("org membership lookup failed, treating as not a member",
			"org", c.repo.Owner, "user", login, "error", err)
		return MemberUnknown
	}

	if member {
		return MemberYes
	}
	return MemberNo
}
