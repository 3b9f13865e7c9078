package sweep

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hal/stalesweep/internal/ghclient"
	"github.com/hal/stalesweep/internal/log"
	"github.com/hal/stalesweep/internal/model"
)

// ErrMissingThreshold is returned when no inactivity threshold was
// configured. There is deliberately no fallback default.
var ErrMissingThreshold = errors.New("inactivity threshold not configured. Set --inactive-for or the inactive_for config key")

// Engine runs the sweep pipeline over one repository: list, filter, guard,
// classify, mutate, record. Issues are processed sequentially, in list
// order; the only state shared across issues is the append-only record
// accumulator owned by Run.
type Engine struct {
	svc ghclient.IssueService
	cfg Config

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a sweep engine.
func New(svc ghclient.IssueService, cfg Config) *Engine {
	return &Engine{
		svc: svc,
		cfg: cfg,
		now: time.Now,
	}
}

// Run performs one sweep. Listing and mutation failures abort the run with
// an error; auxiliary lookups degrade without failing the batch. The
// returned Result is complete even when an error cut the run short, so
// callers can report partial progress.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.cfg.Threshold <= 0 {
		return nil, ErrMissingThreshold
	}

	result := &Result{DryRun: e.cfg.DryRun}

	repo := e.repoMetadata(ctx)
	guard := NewGuard(e.svc, e.cfg.Owner, e.cfg.Repo, e.cfg.CallTimeout)
	classifier := NewClassifier(e.svc, repo, e.cfg.ExemptUsers, e.cfg.CallTimeout)

	cctx, cancel := withTimeout(ctx, e.cfg.CallTimeout)
	issues, err := e.svc.ListOpenIssues(cctx, e.cfg.Owner, e.cfg.Repo)
	cancel()
	if err != nil {
		return result, fmt.Errorf("listing open issues: %w", err)
	}

	log.Info("scanning open issues", "repo", repo.FullName(), "count", len(issues))
	now := e.now()

	for _, issue := range issues {
		result.Scanned++

		if !Qualifies(issue, now, e.cfg.Threshold) {
			log.Trace("issue still active or unassigned", "issue", issue.Number)
			continue
		}
		result.Qualified++

		if linked := guard.LinkedOpenPRs(ctx, issue); len(linked) > 0 {
			result.Guarded++
			log.Info("issue exempted by linked open pull request",
				"issue", issue.Number, "linked", linked[0].Number)
			continue
		}

		active, inactive := classifier.Partition(ctx, issue.Assignees)
		if len(inactive) == 0 {
			log.Debug("all assignees active", "issue", issue.Number)
			continue
		}

		if err := e.unassign(ctx, issue, active, inactive); err != nil {
			return result, err
		}
		result.Updated++

		for _, user := range inactive {
			result.Records = append(result.Records, model.UnassignmentRecord{
				User:        user,
				Owner:       e.cfg.Owner,
				Repo:        e.cfg.Repo,
				IssueNumber: issue.Number,
				IssueURL:    issue.HTMLURL,
			})
		}
	}

	return result, nil
}

// repoMetadata fetches repository metadata. Failure is not fatal: the sweep
// falls back to coordinates from the config, which disables the
// organization-membership check (no member can be confirmed).
func (e *Engine) repoMetadata(ctx context.Context) model.Repo {
	cctx, cancel := withTimeout(ctx, e.cfg.CallTimeout)
	defer cancel()

	repo, err := e.svc.GetRepository(cctx, e.cfg.Owner, e.cfg.Repo)
	if err != nil {
		log.Warn("could not fetch repository metadata, org membership checks disabled",
			"repo", e.cfg.Owner+"/"+e.cfg.Repo, "error", err)
		return model.Repo{Owner: e.cfg.Owner, Name: e.cfg.Repo}
	}
	return repo
}

// unassign replaces the issue's assignees with the active subset and posts
// the explanatory comment. Both writes are primary-path: any failure,
// permission errors in particular, aborts the run.
func (e *Engine) unassign(ctx context.Context, issue model.Issue, active, inactive []string) error {
	if e.cfg.DryRun {
		log.Info("dry-run: would unassign", "issue", issue.Number, "users", strings.Join(inactive, ","))
		return nil
	}

	cctx, cancel := withTimeout(ctx, e.cfg.CallTimeout)
	err := e.svc.ReplaceAssignees(cctx, e.cfg.Owner, e.cfg.Repo, issue.Number, active)
	cancel()
	if err != nil {
		return fmt.Errorf("unassigning issue #%d: %w", issue.Number, err)
	}

	cctx, cancel = withTimeout(ctx, e.cfg.CallTimeout)
	err = e.svc.CreateComment(cctx, e.cfg.Owner, e.cfg.Repo, issue.Number, commentBody(inactive, e.cfg.Threshold))
	cancel()
	if err != nil {
		return fmt.Errorf("commenting on issue #%d: %w", issue.Number, err)
	}

	log.Info("unassigned inactive users", "issue", issue.Number, "users", strings.Join(inactive, ","))
	return nil
}

// commentBody builds the comment naming each removed user.
func commentBody(removed []string, threshold time.Duration) string {
	mentions := make([]string, len(removed))
	for i, user := range removed {
		mentions[i] = "@" + user
	}
	return fmt.Sprintf(
		"%s: you have been unassigned from this issue because it has shown no activity for more than %s. "+
			"If you are still working on it, leave a comment and a maintainer can assign you again.",
		strings.Join(mentions, ", "), humanDuration(threshold))
}
