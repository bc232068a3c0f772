package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitbridge/application"
	"github.com/rios0rios0/gitbridge/config"
	"github.com/rios0rios0/gitbridge/domain"
	providerPkg "github.com/rios0rios0/gitbridge/infrastructure/provider"
	testdoubles "github.com/rios0rios0/gitbridge/test"
	"github.com/rios0rios0/gitbridge/test/domain/entitybuilders"
)

// newBridge wires one spy service into a fresh registry under the "spy" type
// and returns the bridge, the spy, and a matching provider configuration.
func newBridge(spy *testdoubles.SpyGitService) (*application.BridgeService, config.ProviderConfig) {
	registry := providerPkg.NewRegistry()
	registry.Register("spy", func(_, _ string) domain.GitService {
		return spy
	})
	return application.NewBridgeService(registry), config.ProviderConfig{Type: "spy", Token: "token"}
}

func TestListRepositories(t *testing.T) {
	t.Parallel()

	t.Run("should return the provider's repository walk", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().
			WithFullName("org/proj/repo").
			BuildRepository()
		spy := &testdoubles.SpyGitService{
			RepositoryWalk: domain.RepositoryWalk{
				Repositories: []domain.Repository{repo},
			},
		}
		bridge, provCfg := newBridge(spy)

		// when
		walk, err := bridge.ListRepositories(context.Background(), provCfg)

		// then
		require.NoError(t, err)
		require.Len(t, walk.Repositories, 1)
		assert.Equal(t, "org/proj/repo", walk.Repositories[0].FullName)
		assert.Equal(t, []string{""}, spy.RepositorySorts)
	})

	t.Run("should fail when the provider type is not registered", func(t *testing.T) {
		t.Parallel()

		// given
		bridge := application.NewBridgeService(providerPkg.NewRegistry())

		// when
		_, err := bridge.ListRepositories(context.Background(), config.ProviderConfig{Type: "missing"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider type")
	})
}

func TestListSuggestedTasks(t *testing.T) {
	t.Parallel()

	t.Run("should return the provider's task walk", func(t *testing.T) {
		t.Parallel()

		// given
		task := entitybuilders.NewSuggestedTaskBuilder().
			WithRepo("org/proj/repo").
			WithIssueNumber(42).
			WithTitle("Fix it").
			BuildSuggestedTask()
		spy := &testdoubles.SpyGitService{
			TaskWalk: domain.TaskWalk{Tasks: []domain.SuggestedTask{task}},
		}
		bridge, provCfg := newBridge(spy)

		// when
		walk, err := bridge.ListSuggestedTasks(context.Background(), provCfg)

		// then
		require.NoError(t, err)
		require.Len(t, walk.Tasks, 1)
		assert.Equal(t, 42, walk.Tasks[0].IssueNumber)
		assert.Equal(t, 1, spy.GetSuggestedTasksCalls)
	})
}

func TestListBranches(t *testing.T) {
	t.Parallel()

	t.Run("should pass the repository name through to the provider", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyGitService{
			Branches: []domain.Branch{{Name: "main", CommitSHA: "sha"}},
		}
		bridge, provCfg := newBridge(spy)

		// when
		branches, err := bridge.ListBranches(context.Background(), provCfg, "org/proj/repo")

		// then
		require.NoError(t, err)
		require.Len(t, branches, 1)
		assert.Equal(t, "main", branches[0].Name)
		assert.Equal(t, []string{"org/proj/repo"}, spy.BranchNames)
	})
}

func TestGetRepository(t *testing.T) {
	t.Parallel()

	t.Run("should pass the repository name through to the provider", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyGitService{
			RepositoryDetails: domain.Repository{FullName: "org/proj/repo"},
		}
		bridge, provCfg := newBridge(spy)

		// when
		repo, err := bridge.GetRepository(context.Background(), provCfg, "org/proj/repo")

		// then
		require.NoError(t, err)
		assert.Equal(t, "org/proj/repo", repo.FullName)
		assert.Equal(t, []string{"org/proj/repo"}, spy.DetailNames)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the authenticated user", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyGitService{
			User: domain.User{Login: "someone", Email: "someone@example.com"},
		}
		bridge, provCfg := newBridge(spy)

		// when
		user, err := bridge.CurrentUser(context.Background(), provCfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, "someone@example.com", user.Email)
		assert.Equal(t, 1, spy.GetUserCalls)
	})
}
