package azuredevops

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/domain"
)

// wiqlQueryTemplate selects open work items assigned to one user, newest
// change first. The excluded states mirror the platform's closed-state set.
const wiqlQueryTemplate = `SELECT [System.Id], [System.Title], [System.WorkItemType], [System.State] ` +
	`FROM WorkItems ` +
	`WHERE [System.AssignedTo] = '%s' ` +
	`AND [System.State] NOT IN ('Closed', 'Done', 'Removed', 'Resolved') ` +
	`ORDER BY [System.ChangedDate] DESC`

// workItem is a work item with relation links expanded.
type workItem struct {
	ID     int `json:"id"`
	Fields struct {
		Title        string `json:"System.Title"`
		WorkItemType string `json:"System.WorkItemType"`
	} `json:"fields"`
	Relations []workItemRelation `json:"relations"`
}

// workItemRelation is one relation link of a work item.
type workItemRelation struct {
	Rel string `json:"rel"`
	URL string `json:"url"`
}

// GetSuggestedTasks finds open work items assigned to the authenticated user
// and correlates each one to a repository. The walk mirrors the repository
// walk's organization/project traversal and shares its best-effort contract:
// sub-branch failures are recorded and logged, never raised.
func (s *Service) GetSuggestedTasks(ctx context.Context) domain.TaskWalk {
	var walk domain.TaskWalk

	user, err := s.GetUser(ctx)
	if err != nil {
		logger.Warnf("Failed to get user for suggested tasks: %v", err)
		walk.Failures = append(walk.Failures, domain.BranchFailure{Scope: "user", Err: err})
		return walk
	}

	// Without an email there is nothing to query work items against.
	if user.Email == "" {
		logger.Warn("No user email found, cannot fetch work items")
		return walk
	}

	if !s.isMultiTenant() {
		s.collectOrganizationTasks(ctx, s.baseURL, user.Email, &walk)
		return walk
	}

	accounts, err := s.listAccounts(ctx)
	if err != nil {
		logger.Warnf("Failed to get organizations: %v", err)
		walk.Failures = append(walk.Failures, domain.BranchFailure{Scope: "accounts", Err: err})
		return walk
	}

	for _, org := range accounts {
		s.collectOrganizationTasks(ctx, s.baseURL+"/"+org, user.Email, &walk)
	}

	return walk
}

// collectOrganizationTasks walks one organization scope: per project it runs
// the WIQL query, batch-fetches matching items, and emits suggested tasks.
func (s *Service) collectOrganizationTasks(
	ctx context.Context,
	orgURL, userEmail string,
	walk *domain.TaskWalk,
) {
	projects, err := s.listProjects(ctx, orgURL)
	if err != nil {
		logger.Warnf("Failed to get work items for organization %s: %v", orgURL, err)
		walk.Failures = append(walk.Failures, domain.BranchFailure{
			Scope: "organization " + orgURL,
			Err:   err,
		})
		return
	}

	for _, proj := range projects {
		if proj.Name == "" {
			continue
		}

		ids, queryErr := s.queryAssignedWorkItems(ctx, orgURL, proj.Name, userEmail)
		if queryErr != nil {
			logger.Warnf("Failed to query work items for project %s: %v", proj.Name, queryErr)
			walk.Failures = append(walk.Failures, domain.BranchFailure{
				Scope: "project " + proj.Name,
				Err:   queryErr,
			})
			continue
		}

		if len(ids) == 0 {
			continue
		}

		if processErr := s.collectWorkItemTasks(ctx, orgURL, proj.Name, ids, walk); processErr != nil {
			logger.Warnf("Failed to process work items for project %s: %v", proj.Name, processErr)
			walk.Failures = append(walk.Failures, domain.BranchFailure{
				Scope: "project " + proj.Name,
				Err:   processErr,
			})
		}
	}
}

// queryAssignedWorkItems runs the WIQL query for one project and returns the
// matched work item identifiers.
func (s *Service) queryAssignedWorkItems(
	ctx context.Context,
	orgURL, projectName, userEmail string,
) ([]int, error) {
	reqURL := fmt.Sprintf(
		"%s/%s/_apis/wit/wiql?api-version=%s",
		orgURL, url.PathEscape(projectName), apiVersionWiql,
	)
	body := map[string]string{
		"query": fmt.Sprintf(wiqlQueryTemplate, userEmail),
	}

	var result struct {
		WorkItems []struct {
			ID int `json:"id"`
		} `json:"workItems"`
	}
	if err := s.postJSON(ctx, reqURL, body, &result); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(result.WorkItems))
	for _, item := range result.WorkItems {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

// collectWorkItemTasks batch-fetches full details (with relations) for the
// given work item ids and emits one suggested task per item that could be
// associated with a repository. Items without an association are dropped.
func (s *Service) collectWorkItemTasks(
	ctx context.Context,
	orgURL, projectName string,
	ids []int,
	walk *domain.TaskWalk,
) error {
	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, strconv.Itoa(id))
	}

	reqURL := fmt.Sprintf(
		"%s/%s/_apis/wit/workitems?ids=%s&$expand=relations&api-version=%s",
		orgURL, url.PathEscape(projectName), strings.Join(idStrings, ","), apiVersionWorkItems,
	)

	var result struct {
		Value []workItem `json:"value"`
	}
	if err := s.getJSON(ctx, reqURL, &result); err != nil {
		return err
	}

	orgName := s.organizationName(orgURL)

	for _, item := range result.Value {
		repoName, ok := s.workItemRepository(ctx, item, orgURL, projectName)
		if !ok {
			continue
		}

		title := item.Fields.Title
		if title == "" {
			title = "Untitled Work Item"
		}
		itemType := item.Fields.WorkItemType
		if itemType == "" {
			itemType = "Work Item"
		}

		walk.Tasks = append(walk.Tasks, domain.SuggestedTask{
			Provider:    domain.ProviderAzureDevOps,
			TaskType:    mapWorkItemType(itemType),
			Repo:        orgName + "/" + projectName + "/" + repoName,
			IssueNumber: item.ID,
			Title:       title,
		})
	}

	return nil
}

// workItemRepository resolves the repository a work item belongs to, in
// strict priority order: an explicit Git commit artifact link, then the
// first repository of the owning project. Items with neither are dropped.
func (s *Service) workItemRepository(
	ctx context.Context,
	item workItem,
	orgURL, projectName string,
) (string, bool) {
	for _, rel := range item.Relations {
		if !strings.Contains(rel.Rel, "ArtifactLink") {
			continue
		}

		repoID, ok := commitRepositoryID(rel.URL)
		if !ok {
			continue
		}

		name, err := s.repositoryNameByID(ctx, orgURL, projectName, repoID)
		if err != nil {
			logger.Warnf("Failed to get repository name for ID %s: %v", repoID, err)
			continue
		}
		if name != "" {
			return name, true
		}
	}

	// Fallback for items without explicit Git links: the first repository of
	// the owning project, in list order.
	names, err := s.projectRepositoryNames(ctx, orgURL, projectName)
	if err != nil {
		logger.Warnf("Failed to get repositories for project %s: %v", projectName, err)
		return "", false
	}
	if len(names) > 0 {
		return names[0], true
	}

	return "", false
}

// commitRepositoryID extracts the repository identifier from a Git commit
// artifact URL of the form .../_apis/git/repositories/{id}/commits/{sha}.
// The path segments are validated in place: "repositories" must follow a
// "git" segment and be followed by the identifier and a "commits" segment.
func commitRepositoryID(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := 1; i+2 < len(segments); i++ {
		if segments[i] != "repositories" || segments[i-1] != "git" {
			continue
		}
		if segments[i+2] != "commits" || segments[i+1] == "" {
			continue
		}
		return segments[i+1], true
	}

	return "", false
}

// repositoryNameByID resolves a repository's human name from its native id.
func (s *Service) repositoryNameByID(
	ctx context.Context,
	orgURL, projectName, repoID string,
) (string, error) {
	reqURL := fmt.Sprintf(
		"%s/%s/_apis/git/repositories/%s?api-version=%s",
		orgURL, url.PathEscape(projectName), url.PathEscape(repoID), apiVersionRepositories,
	)

	var repo repository
	if err := s.getJSON(ctx, reqURL, &repo); err != nil {
		return "", err
	}
	return repo.Name, nil
}

// projectRepositoryNames lists the repository names of one project.
func (s *Service) projectRepositoryNames(
	ctx context.Context,
	orgURL, projectName string,
) ([]string, error) {
	repos, err := s.listRepositories(ctx, orgURL, projectName)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, repo := range repos {
		if repo.Name != "" {
			names = append(names, repo.Name)
		}
	}
	return names, nil
}

// mapWorkItemType converts a work item type label to a generic task
// category.
// TODO: confirm with product whether stories and tasks should get their own
// categories; every label currently collapses to the open-issue category.
func mapWorkItemType(label string) domain.TaskType {
	switch strings.ToLower(label) {
	case "bug", "defect":
		return domain.TaskTypeOpenIssue
	case "user story", "story", "feature":
		return domain.TaskTypeOpenIssue
	case "task", "work item":
		return domain.TaskTypeOpenIssue
	default:
		return domain.TaskTypeOpenIssue
	}
}
