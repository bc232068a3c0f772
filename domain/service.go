package domain

import "context"

// GitService abstracts a Git hosting platform behind provider-agnostic
// repository, branch, user, and suggested-task operations. Each
// implementation handles authentication and the platform's traversal shape.
type GitService interface {
	// Provider returns the platform identifier.
	Provider() ProviderType

	// LatestToken returns the latest working credential of the user.
	LatestToken() string

	// GetUser returns the authenticated user's profile. It fails with an
	// AuthenticationError when no working credential is available.
	GetUser(ctx context.Context) (User, error)

	// GetRepositories discovers every repository the user can reach. The walk
	// is best effort: sub-branch failures are recorded on the report instead
	// of aborting it. The sort and mode hints may be ignored by providers.
	GetRepositories(ctx context.Context, sort string, mode AppMode) RepositoryWalk

	// SearchRepositories searches for repositories matching the query.
	// Providers without a usable search surface return an empty list.
	SearchRepositories(ctx context.Context, query string, perPage int, sort, order string) ([]Repository, error)

	// GetRepositoryDetails fetches a single repository by its
	// organization/project/repository name. Malformed names fail with
	// ErrInvalidRepoName before any network call.
	GetRepositoryDetails(ctx context.Context, fullName string) (Repository, error)

	// GetBranches lists the branch refs of a repository. Malformed names fail
	// with ErrInvalidRepoName; fetch failures degrade to an empty list.
	GetBranches(ctx context.Context, fullName string) ([]Branch, error)

	// GetSuggestedTasks finds open work assigned to the authenticated user and
	// correlates each item to a repository, with the same best-effort contract
	// as GetRepositories.
	GetSuggestedTasks(ctx context.Context) TaskWalk
}
