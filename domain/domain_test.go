package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitbridge/domain"
)

func TestNumericID(t *testing.T) {
	t.Parallel()

	t.Run("should be deterministic across calls", func(t *testing.T) {
		t.Parallel()

		// given
		nativeID := "f86e4e97-1d48-4a2e-b4d3-3edd50dd4b28"

		// when
		first := domain.NumericID(nativeID)
		second := domain.NumericID(nativeID)

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should always be non-negative", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{"", "a", "repo-id", "f86e4e97-1d48-4a2e-b4d3-3edd50dd4b28"}

		for _, input := range inputs {
			// when
			id := domain.NumericID(input)

			// then
			assert.GreaterOrEqual(t, id, int32(0), "input %q", input)
		}
	})

	t.Run("should differ for distinct identifiers", func(t *testing.T) {
		t.Parallel()

		// when
		first := domain.NumericID("repo-one")
		second := domain.NumericID("repo-two")

		// then
		assert.NotEqual(t, first, second)
	})
}

func TestParseRepositoryKey(t *testing.T) {
	t.Parallel()

	t.Run("should parse a three-segment name", func(t *testing.T) {
		t.Parallel()

		// given
		fullName := "my-org/MyProject/my-repo"

		// when
		key, err := domain.ParseRepositoryKey(fullName)

		// then
		require.NoError(t, err)
		assert.Equal(t, "my-org", key.Organization)
		assert.Equal(t, "MyProject", key.Project)
		assert.Equal(t, "my-repo", key.Name)
		assert.Equal(t, fullName, key.FullName())
	})

	tests := []struct {
		name     string
		fullName string
	}{
		{name: "should reject a bare repository name", fullName: "my-repo"},
		{name: "should reject a two-segment name", fullName: "org/repo"},
		{name: "should reject a four-segment name", fullName: "org/project/repo/extra"},
		{name: "should reject an empty name", fullName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			_, err := domain.ParseRepositoryKey(tt.fullName)

			// then
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRepoName)
		})
	}
}

func TestWalkReports(t *testing.T) {
	t.Parallel()

	t.Run("should not be degraded without failures", func(t *testing.T) {
		t.Parallel()

		// given
		walk := domain.RepositoryWalk{}

		// then
		assert.False(t, walk.Degraded())
	})

	t.Run("should be degraded when a branch failed", func(t *testing.T) {
		t.Parallel()

		// given
		walk := domain.TaskWalk{
			Failures: []domain.BranchFailure{
				{Scope: "project TestProject", Err: assert.AnError},
			},
		}

		// then
		assert.True(t, walk.Degraded())
	})
}
