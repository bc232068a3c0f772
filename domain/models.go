package domain

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// ProviderType identifies the Git hosting platform a record came from.
type ProviderType string

const (
	ProviderAzureDevOps ProviderType = "azure_devops"
)

// AppMode mirrors the deployment mode of the calling application. Providers
// may use it to scope discovery; the Azure DevOps walker ignores it.
type AppMode string

const (
	AppModeOSS  AppMode = "oss"
	AppModeSaaS AppMode = "saas"
)

// TaskType classifies a suggested task.
type TaskType string

const (
	TaskTypeOpenIssue       TaskType = "open_issue"
	TaskTypeOpenPullRequest TaskType = "open_pr"
)

// RepositoryKey is the composite identifier of a repository as it crosses the
// generic provider boundary: organization/project/repository.
type RepositoryKey struct {
	Organization string
	Project      string
	Name         string
}

// FullName returns the slash-separated form of the key.
func (k RepositoryKey) FullName() string {
	return k.Organization + "/" + k.Project + "/" + k.Name
}

// ParseRepositoryKey parses an "organization/project/repository" name.
// Any other segment count fails with ErrInvalidRepoName.
func ParseRepositoryKey(fullName string) (RepositoryKey, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 3 {
		return RepositoryKey{}, fmt.Errorf("%w: %q", ErrInvalidRepoName, fullName)
	}
	return RepositoryKey{
		Organization: parts[0],
		Project:      parts[1],
		Name:         parts[2],
	}, nil
}

// Repository represents a Git repository on a hosting provider, shaped for
// generic consumers. NativeID keeps the provider's own identifier (a GUID on
// Azure DevOps); ID is a lossy numeric projection of it kept for callers that
// require an integer. Collisions are possible and not detected.
type Repository struct {
	ID       int32
	NativeID string
	FullName string
	Provider ProviderType
	IsPublic bool
}

// NumericID maps a provider-native identifier string to a positive 32-bit
// integer. The mapping is deterministic (FNV-1a) and non-reversible.
func NumericID(nativeID string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(nativeID))
	return int32(h.Sum32() & 0x7FFFFFFF)
}

// Branch represents a branch ref with its namespace prefix stripped.
// Protected is always false: true protection status is not queried.
type Branch struct {
	Name      string
	CommitSHA string
	Protected bool
}

// User represents the authenticated user. Fields may be empty when the
// underlying API omits them.
type User struct {
	ID        int32
	Login     string
	AvatarURL string
	Name      string
	Email     string
}

// SuggestedTask is a unit of work correlated to a repository, suggested to
// the user as something to pick up. Tasks are never deduplicated.
type SuggestedTask struct {
	Provider    ProviderType
	TaskType    TaskType
	Repo        string // organization/project/repository
	IssueNumber int
	Title       string
}
