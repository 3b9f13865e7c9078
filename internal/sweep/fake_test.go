package sweep

import (
	"context"
	"fmt"

	"github.com/hal/stalesweep/internal/ghclient"
	"github.com/hal/stalesweep/internal/model"
)

// fakeService is an in-memory IssueService for engine, guard, and
// classifier tests.
type fakeService struct {
	issues  []model.Issue
	listErr error

	pulls     map[int]model.PullRequestRef
	search    map[int][]int // issue number -> candidate PR numbers
	searchErr error

	users      map[string]model.User
	userErr    error
	orgMembers map[string]bool
	memberErr  error

	repo    model.Repo
	repoErr error

	replaceErr error
	commentErr error

	replaced map[int][]string // issue number -> final assignee list
	comments map[int][]string // issue number -> comment bodies
}

func newFakeService() *fakeService {
	return &fakeService{
		pulls:      map[int]model.PullRequestRef{},
		search:     map[int][]int{},
		users:      map[string]model.User{},
		orgMembers: map[string]bool{},
		replaced:   map[int][]string{},
		comments:   map[int][]string{},
	}
}

func (f *fakeService) ListOpenIssues(_ context.Context, _, _ string) ([]model.Issue, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.issues, nil
}

func (f *fakeService) GetPullRequest(_ context.Context, _, _ string, number int) (model.PullRequestRef, error) {
	pr, ok := f.pulls[number]
	if !ok {
		return model.PullRequestRef{}, fmt.Errorf("pull request #%d not found", number)
	}
	return pr, nil
}

func (f *fakeService) SearchOpenPullRequests(_ context.Context, _, _ string, issueNumber int) ([]int, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.search[issueNumber], nil
}

func (f *fakeService) GetUser(_ context.Context, login string) (model.User, error) {
	if f.userErr != nil {
		return model.User{}, f.userErr
	}
	u, ok := f.users[login]
	if !ok {
		return model.User{Login: login}, nil
	}
	return u, nil
}

func (f *fakeService) IsOrgMember(_ context.Context, _, user string) (bool, error) {
	if f.memberErr != nil {
		return false, f.memberErr
	}
	return f.orgMembers[user], nil
}

func (f *fakeService) GetRepository(_ context.Context, owner, repo string) (model.Repo, error) {
	if f.repoErr != nil {
		return model.Repo{}, f.repoErr
	}
	if f.repo.Owner == "" {
		return model.Repo{Owner: owner, Name: repo}, nil
	}
	return f.repo, nil
}

func (f *fakeService) ReplaceAssignees(_ context.Context, _, _ string, number int, assignees []string) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced[number] = assignees
	return nil
}

func (f *fakeService) CreateComment(_ context.Context, _, _ string, number int, body string) error {
	if f.commentErr != nil {
		return f.commentErr
	}
	f.comments[number] = append(f.comments[number], body)
	return nil
}

var _ ghclient.IssueService = (*fakeService)(nil)
