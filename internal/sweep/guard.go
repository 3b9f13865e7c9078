package sweep

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hal/stalesweep/internal/ghclient"
	"github.com/hal/stalesweep/internal/log"
	"github.com/hal/stalesweep/internal/model"
)

// Body-scan patterns. A referencing pull request can show up as a bare
// "#123" token, a full pull request URL, or a closing keyword followed by
// "#123". Numbers extracted here are candidates only; each is re-fetched
// and kept only if the pull request is open.
var (
	bareRefPattern = regexp.MustCompile(`#(\d+)`)
	closingPattern = regexp.MustCompile(`(?i)\b(?:close[sd]?|fix(?:e[sd])?|resolve[sd]?)\s+#(\d+)`)
)

// Guard decides whether an issue is exempt from unassignment because work
// on it is already in progress. Detection is best-effort: false negatives
// and false positives are both possible.
type Guard struct {
	svc         ghclient.IssueService
	owner       string
	repo        string
	callTimeout time.Duration
	urlPattern  *regexp.Regexp
}

// NewGuard creates a guard bound to one repository.
func NewGuard(svc ghclient.IssueService, owner, repo string, callTimeout time.Duration) *Guard {
	return &Guard{
		svc:         svc,
		owner:       owner,
		repo:        repo,
		callTimeout: callTimeout,
		urlPattern: regexp.MustCompile(fmt.Sprintf(
			`https://github\.com/%s/%s/pull/(\d+)`,
			regexp.QuoteMeta(owner), regexp.QuoteMeta(repo))),
	}
}

// LinkedOpenPRs returns every open pull request linked to the issue,
// deduplicated by number. All three detection methods run; none
// short-circuits the others, and sub-method failures degrade to an empty
// contribution. A non-empty result exempts the issue entirely.
func (g *Guard) LinkedOpenPRs(ctx context.Context, issue model.Issue) []model.PullRequestRef {
	var (
		mu    sync.Mutex
		found []model.PullRequestRef
	)
	collect := func(prs []model.PullRequestRef) {
		mu.Lock()
		found = append(found, prs...)
		mu.Unlock()
	}

	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		collect(g.directLink(gctx, issue))
		return nil
	})
	eg.Go(func() error {
		collect(g.searchLinked(gctx, issue))
		return nil
	})
	eg.Go(func() error {
		collect(g.confirmOpen(gctx, ExtractReferences(issue.Body, g.urlPattern)))
		return nil
	})

	// Goroutines swallow their own errors, so Wait only synchronizes.
	_ = eg.Wait()

	return dedupeByNumber(found)
}

// directLink checks the pull request linkage carried on the issue itself.
func (g *Guard) directLink(ctx context.Context, issue model.Issue) []model.PullRequestRef {
	if issue.LinkedPRNumber == 0 {
		return nil
	}
	return g.confirmOpen(ctx, []int{issue.LinkedPRNumber})
}

// searchLinked searches the repository for open pull requests mentioning
// the issue number and confirms each hit's state.
func (g *Guard) searchLinked(ctx context.Context, issue model.Issue) []model.PullRequestRef {
	cctx, cancel := withTimeout(ctx, g.callTimeout)
	numbers, err := g.svc.SearchOpenPullRequests(cctx, g.owner, g.repo, issue.Number)
	cancel()
	if err != nil {
		log.Debug("linked-PR search failed, treating as no result",
			"issue", issue.Number, "error", err)
		return nil
	}
	return g.confirmOpen(ctx, numbers)
}

// confirmOpen fetches each candidate number and keeps open pull requests.
// Fetch failures are swallowed; an unverifiable candidate is dropped.
func (g *Guard) confirmOpen(ctx context.Context, numbers []int) []model.PullRequestRef {
	var prs []model.PullRequestRef
	for _, n := range numbers {
		cctx, cancel := withTimeout(ctx, g.callTimeout)
		pr, err := g.svc.GetPullRequest(cctx, g.owner, g.repo, n)
		cancel()
		if err != nil {
			log.Trace("could not verify referenced pull request",
				"number", n, "error", err)
			continue
		}
		if pr.IsOpen() {
			prs = append(prs, pr)
		}
	}
	return prs
}

// ExtractReferences scans an issue body for pull request number candidates:
// bare "#N" tokens, full pull request URLs matching urlPattern, and closing
// keywords followed by "#N". Duplicates are removed and the result sorted.
func ExtractReferences(body string, urlPattern *regexp.Regexp) []int {
	if body == "" {
		return nil
	}

	seen := make(map[int]bool)
	add := func(s string) {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			seen[n] = true
		}
	}

	for _, m := range bareRefPattern.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	if urlPattern != nil {
		for _, m := range urlPattern.FindAllStringSubmatch(body, -1) {
			add(m[1])
		}
	}
	for _, m := range closingPattern.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// dedupeByNumber removes duplicate pull request references, keeping the
// first occurrence and returning them sorted by number.
func dedupeByNumber(prs []model.PullRequestRef) []model.PullRequestRef {
	if len(prs) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(prs))
	out := make([]model.PullRequestRef, 0, len(prs))
	for _, pr := range prs {
		if seen[pr.Number] {
			continue
		}
		seen[pr.Number] = true
		out = append(out, pr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// withTimeout derives a per-call deadline when one is configured.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
