package domain

// BranchFailure records a failure in one sub-branch of an aggregate walk
// (one organization, one project, one work item). The walk continues over
// siblings; the failure is kept so callers can tell "nothing found" apart
// from "every branch failed".
type BranchFailure struct {
	Scope string // e.g. "project TestProject"
	Err   error
}

// RepositoryWalk is the outcome of a repository discovery walk. The walk
// never fails as a whole: Repositories holds whatever was accumulated and
// Failures the branches that were skipped.
type RepositoryWalk struct {
	Repositories []Repository
	Failures     []BranchFailure
}

// Degraded reports whether at least one branch of the walk failed.
func (w RepositoryWalk) Degraded() bool {
	return len(w.Failures) > 0
}

// TaskWalk is the outcome of a suggested-task discovery walk, with the same
// best-effort contract as RepositoryWalk.
type TaskWalk struct {
	Tasks    []SuggestedTask
	Failures []BranchFailure
}

// Degraded reports whether at least one branch of the walk failed.
func (w TaskWalk) Degraded() bool {
	return len(w.Failures) > 0
}
