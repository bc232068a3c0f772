// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"

	"github.com/rios0rios0/gitbridge/domain"
)

// ---------------------------------------------------------------------------
// SpyGitService
// ---------------------------------------------------------------------------

// SpyGitService implements domain.GitService as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyGitService struct {
	// --- identity ---
	ProviderType domain.ProviderType
	Token        string

	// --- GetUser ---
	User       domain.User
	GetUserErr error
	// spy: number of calls
	GetUserCalls int

	// --- GetRepositories ---
	RepositoryWalk domain.RepositoryWalk
	// spy: sort/mode hints received
	RepositorySorts []string

	// --- SearchRepositories ---
	SearchResults []domain.Repository
	SearchErr     error

	// --- GetRepositoryDetails ---
	RepositoryDetails    domain.Repository
	RepositoryDetailsErr error
	// spy: names requested
	DetailNames []string

	// --- GetBranches ---
	Branches       []domain.Branch
	GetBranchesErr error
	// spy: names requested
	BranchNames []string

	// --- GetSuggestedTasks ---
	TaskWalk domain.TaskWalk
	// spy: number of calls
	GetSuggestedTasksCalls int
}

func (s *SpyGitService) Provider() domain.ProviderType {
	if s.ProviderType == "" {
		return domain.ProviderAzureDevOps
	}
	return s.ProviderType
}

func (s *SpyGitService) LatestToken() string {
	return s.Token
}

func (s *SpyGitService) GetUser(_ context.Context) (domain.User, error) {
	s.GetUserCalls++
	return s.User, s.GetUserErr
}

func (s *SpyGitService) GetRepositories(
	_ context.Context,
	sort string,
	_ domain.AppMode,
) domain.RepositoryWalk {
	s.RepositorySorts = append(s.RepositorySorts, sort)
	return s.RepositoryWalk
}

func (s *SpyGitService) SearchRepositories(
	_ context.Context,
	_ string,
	_ int,
	_, _ string,
) ([]domain.Repository, error) {
	return s.SearchResults, s.SearchErr
}

func (s *SpyGitService) GetRepositoryDetails(
	_ context.Context,
	fullName string,
) (domain.Repository, error) {
	s.DetailNames = append(s.DetailNames, fullName)
	return s.RepositoryDetails, s.RepositoryDetailsErr
}

func (s *SpyGitService) GetBranches(_ context.Context, fullName string) ([]domain.Branch, error) {
	s.BranchNames = append(s.BranchNames, fullName)
	return s.Branches, s.GetBranchesErr
}

func (s *SpyGitService) GetSuggestedTasks(_ context.Context) domain.TaskWalk {
	s.GetSuggestedTasksCalls++
	return s.TaskWalk
}
