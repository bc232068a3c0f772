package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitbridge/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	nativeID string
	fullName string
	isPublic bool
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		nativeID:    "f86e4e97-1d48-4a2e-b4d3-000000000001",
		fullName:    "test-org/TestProject/test-repo",
		isPublic:    false,
	}
}

// WithNativeID sets the provider-native identifier.
func (b *RepositoryBuilder) WithNativeID(nativeID string) *RepositoryBuilder {
	b.nativeID = nativeID
	return b
}

// WithFullName sets the org/project/repo name.
func (b *RepositoryBuilder) WithFullName(fullName string) *RepositoryBuilder {
	b.fullName = fullName
	return b
}

// WithIsPublic sets the visibility flag.
func (b *RepositoryBuilder) WithIsPublic(isPublic bool) *RepositoryBuilder {
	b.isPublic = isPublic
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() domain.Repository {
	return domain.Repository{
		ID:       domain.NumericID(b.nativeID),
		NativeID: b.nativeID,
		FullName: b.fullName,
		Provider: domain.ProviderAzureDevOps,
		IsPublic: b.isPublic,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.nativeID = "f86e4e97-1d48-4a2e-b4d3-000000000001"
	b.fullName = "test-org/TestProject/test-repo"
	b.isPublic = false
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		nativeID:    b.nativeID,
		fullName:    b.fullName,
		isPublic:    b.isPublic,
	}
}
