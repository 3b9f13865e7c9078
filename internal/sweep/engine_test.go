package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal/stalesweep/internal/ghclient"
	"github.com/hal/stalesweep/internal/model"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testEngine(svc ghclient.IssueService, cfg Config) *Engine {
	e := New(svc, cfg)
	e.now = func() time.Time { return testNow }
	return e
}

func testConfig() Config {
	return Config{
		Owner:     "acme",
		Repo:      "widgets",
		Threshold: 30 * time.Minute,
	}
}

func TestRunUnassignsInactiveKeepsActive(t *testing.T) {
	// Issue #42, threshold 30m, last update 45m ago, alice inactive,
	// bob an org member, no linked PRs.
	svc := newFakeService()
	svc.repo = model.Repo{Owner: "acme", Name: "widgets", OwnerIsOrg: true}
	svc.orgMembers["bob"] = true
	svc.issues = []model.Issue{{
		Number:    42,
		HTMLURL:   "https://github.com/acme/widgets/issues/42",
		UpdatedAt: testNow.Add(-45 * time.Minute),
		Assignees: []string{"alice", "bob"},
	}}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Qualified)
	assert.Equal(t, 0, result.Guarded)
	assert.Equal(t, 1, result.Updated)

	// bob retained via full replace
	assert.Equal(t, []string{"bob"}, svc.replaced[42])

	// one comment mentioning @alice
	require.Len(t, svc.comments[42], 1)
	assert.Contains(t, svc.comments[42][0], "@alice")
	assert.NotContains(t, svc.comments[42][0], "@bob")
	assert.Contains(t, svc.comments[42][0], "30 minutes")

	// one unassignment record
	require.Len(t, result.Records, 1)
	assert.Equal(t, model.UnassignmentRecord{
		User:        "alice",
		Owner:       "acme",
		Repo:        "widgets",
		IssueNumber: 42,
		IssueURL:    "https://github.com/acme/widgets/issues/42",
	}, result.Records[0])
}

func TestRunSkipsRecentlyActiveIssue(t *testing.T) {
	// Issue #7, last update 10m ago, threshold 30m.
	svc := newFakeService()
	svc.issues = []model.Issue{{
		Number:    7,
		UpdatedAt: testNow.Add(-10 * time.Minute),
		Assignees: []string{"alice"},
	}}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Qualified)
	assert.Empty(t, result.Records)
	assert.Empty(t, svc.replaced)
	assert.Empty(t, svc.comments)
}

func TestRunSkipsIssueAtExactThreshold(t *testing.T) {
	svc := newFakeService()
	svc.issues = []model.Issue{{
		Number:    9,
		UpdatedAt: testNow.Add(-30 * time.Minute),
		Assignees: []string{"alice"},
	}}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Qualified)
	assert.Empty(t, svc.replaced)
}

func TestRunSkipsUnassignedIssues(t *testing.T) {
	svc := newFakeService()
	svc.issues = []model.Issue{{
		Number:    3,
		UpdatedAt: testNow.Add(-90 * 24 * time.Hour),
	}}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Empty(t, svc.replaced)
	assert.Empty(t, svc.comments)
}

func TestRunGuardedIssueUntouched(t *testing.T) {
	// Issue #8 is stale with an inactive assignee, but an open PR says
	// "fixes #8".
	svc := newFakeService()
	svc.pulls[100] = model.PullRequestRef{Number: 100, State: "open"}
	svc.search[8] = []int{100}
	svc.issues = []model.Issue{{
		Number:    8,
		UpdatedAt: testNow.Add(-48 * time.Hour),
		Assignees: []string{"carol"},
	}}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Guarded)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, result.Records)
	assert.Empty(t, svc.replaced)
	assert.Empty(t, svc.comments)
}

func TestRunIdempotent(t *testing.T) {
	svc := newFakeService()
	svc.repo = model.Repo{Owner: "acme", Name: "widgets", OwnerIsOrg: true}
	svc.orgMembers["bob"] = true
	svc.issues = []model.Issue{{
		Number:    42,
		HTMLURL:   "https://github.com/acme/widgets/issues/42",
		UpdatedAt: testNow.Add(-45 * time.Minute),
		Assignees: []string{"alice", "bob"},
	}}

	engine := testEngine(svc, testConfig())

	first, err := engine.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Records, 1)

	// Simulate the state after the first run: alice gone, bob kept.
	svc.issues[0].Assignees = svc.replaced[42]
	svc.replaced = map[int][]string{}
	svc.comments = map[int][]string{}

	second, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, second.Records)
	assert.Empty(t, svc.replaced, "second run must not mutate again")
	assert.Empty(t, svc.comments)
}

func TestRunListFailureAborts(t *testing.T) {
	svc := newFakeService()
	svc.listErr = errors.New("upstream down")

	_, err := testEngine(svc, testConfig()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing open issues")
}

func TestRunPermissionFailureAborts(t *testing.T) {
	svc := newFakeService()
	svc.replaceErr = ghclient.ErrPermission
	svc.issues = []model.Issue{
		{
			Number:    1,
			UpdatedAt: testNow.Add(-time.Hour),
			Assignees: []string{"alice"},
		},
		{
			Number:    2,
			UpdatedAt: testNow.Add(-time.Hour),
			Assignees: []string{"dave"},
		},
	}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.ErrorIs(t, err, ghclient.ErrPermission)

	// The run stops at the first write failure; no records accumulate.
	assert.Empty(t, result.Records)
	assert.Empty(t, svc.comments)
}

func TestRunDryRunPerformsNoMutation(t *testing.T) {
	svc := newFakeService()
	svc.issues = []model.Issue{{
		Number:    42,
		HTMLURL:   "https://github.com/acme/widgets/issues/42",
		UpdatedAt: testNow.Add(-45 * time.Minute),
		Assignees: []string{"alice"},
	}}

	cfg := testConfig()
	cfg.DryRun = true

	result, err := testEngine(svc, cfg).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	require.Len(t, result.Records, 1, "dry-run still reports what it would do")
	assert.Empty(t, svc.replaced)
	assert.Empty(t, svc.comments)
}

func TestRunExemptUserKept(t *testing.T) {
	svc := newFakeService()
	svc.issues = []model.Issue{{
		Number:    5,
		HTMLURL:   "https://github.com/acme/widgets/issues/5",
		UpdatedAt: testNow.Add(-time.Hour),
		Assignees: []string{"vip", "alice"},
	}}

	cfg := testConfig()
	cfg.ExemptUsers = []string{"vip"}

	result, err := testEngine(svc, cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"vip"}, svc.replaced[5])
	require.Len(t, result.Records, 1)
	assert.Equal(t, "alice", result.Records[0].User)
}

func TestRunMissingThreshold(t *testing.T) {
	svc := newFakeService()

	_, err := New(svc, Config{Owner: "acme", Repo: "widgets"}).Run(context.Background())
	require.ErrorIs(t, err, ErrMissingThreshold)
}

func TestRunRepoMetadataFailureDisablesMembership(t *testing.T) {
	svc := newFakeService()
	svc.repoErr = errors.New("metadata unavailable")
	svc.orgMembers["bob"] = true // would be active, but org status is unknown
	svc.issues = []model.Issue{{
		Number:    6,
		HTMLURL:   "https://github.com/acme/widgets/issues/6",
		UpdatedAt: testNow.Add(-time.Hour),
		Assignees: []string{"bob"},
	}}

	result, err := testEngine(svc, testConfig()).Run(context.Background())
	require.NoError(t, err)

	// Without metadata the owner cannot be confirmed as an org, so bob is
	// treated as inactive. Conservative but never fatal.
	require.Len(t, result.Records, 1)
	assert.Equal(t, "bob", result.Records[0].User)
}

func TestCommentBody(t *testing.T) {
	body := commentBody([]string{"alice", "dave"}, 30*24*time.Hour)
	assert.Contains(t, body, "@alice, @dave")
	assert.Contains(t, body, "30 days")
}
