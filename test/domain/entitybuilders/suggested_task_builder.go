package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitbridge/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SuggestedTaskBuilder helps create test suggested tasks with a fluent interface.
type SuggestedTaskBuilder struct {
	*testkit.BaseBuilder
	taskType    domain.TaskType
	repo        string
	issueNumber int
	title       string
}

// NewSuggestedTaskBuilder creates a new task builder with sensible defaults.
func NewSuggestedTaskBuilder() *SuggestedTaskBuilder {
	return &SuggestedTaskBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		taskType:    domain.TaskTypeOpenIssue,
		repo:        "test-org/TestProject/test-repo",
		issueNumber: 123,
		title:       "Fix bug in login",
	}
}

// WithTaskType sets the task category.
func (b *SuggestedTaskBuilder) WithTaskType(taskType domain.TaskType) *SuggestedTaskBuilder {
	b.taskType = taskType
	return b
}

// WithRepo sets the org/project/repo name.
func (b *SuggestedTaskBuilder) WithRepo(repo string) *SuggestedTaskBuilder {
	b.repo = repo
	return b
}

// WithIssueNumber sets the work item identifier.
func (b *SuggestedTaskBuilder) WithIssueNumber(issueNumber int) *SuggestedTaskBuilder {
	b.issueNumber = issueNumber
	return b
}

// WithTitle sets the task title.
func (b *SuggestedTaskBuilder) WithTitle(title string) *SuggestedTaskBuilder {
	b.title = title
	return b
}

// Build creates the task (satisfies testkit.Builder interface).
func (b *SuggestedTaskBuilder) Build() interface{} {
	return b.BuildSuggestedTask()
}

// BuildSuggestedTask creates the task with a concrete return type.
func (b *SuggestedTaskBuilder) BuildSuggestedTask() domain.SuggestedTask {
	return domain.SuggestedTask{
		Provider:    domain.ProviderAzureDevOps,
		TaskType:    b.taskType,
		Repo:        b.repo,
		IssueNumber: b.issueNumber,
		Title:       b.title,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SuggestedTaskBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.taskType = domain.TaskTypeOpenIssue
	b.repo = "test-org/TestProject/test-repo"
	b.issueNumber = 123
	b.title = "Fix bug in login"
	return b
}

// Clone creates a deep copy of the SuggestedTaskBuilder.
func (b *SuggestedTaskBuilder) Clone() testkit.Builder {
	return &SuggestedTaskBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		taskType:    b.taskType,
		repo:        b.repo,
		issueNumber: b.issueNumber,
		title:       b.title,
	}
}
