package azuredevops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/domain"
)

// project is an Azure DevOps project as returned by the projects API.
type project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// repository is an Azure DevOps Git repository.
type repository struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// account is an Azure DevOps organization (account) on the cloud host.
type account struct {
	AccountName string `json:"accountName"`
}

// GetRepositories discovers every repository reachable with the configured
// token. On the cloud host it enumerates organizations first; a fixed
// instance goes straight to projects. Sub-branch failures are recorded on
// the walk and logged; the walk itself never fails.
func (s *Service) GetRepositories(ctx context.Context, _ string, _ domain.AppMode) domain.RepositoryWalk {
	var walk domain.RepositoryWalk

	if !s.isMultiTenant() {
		s.collectOrganizationRepositories(ctx, s.baseURL, &walk)
		return walk
	}

	accounts, err := s.listAccounts(ctx)
	if err != nil {
		logger.Warnf("Failed to get organizations: %v", err)
		walk.Failures = append(walk.Failures, domain.BranchFailure{Scope: "accounts", Err: err})
		return walk
	}

	for _, org := range accounts {
		s.collectOrganizationRepositories(ctx, s.baseURL+"/"+org, &walk)
	}

	return walk
}

// collectOrganizationRepositories walks one organization scope: lists its
// projects, then the repositories of each project.
func (s *Service) collectOrganizationRepositories(
	ctx context.Context,
	orgURL string,
	walk *domain.RepositoryWalk,
) {
	projects, err := s.listProjects(ctx, orgURL)
	if err != nil {
		logger.Warnf("Failed to get projects from %s: %v", orgURL, err)
		walk.Failures = append(walk.Failures, domain.BranchFailure{
			Scope: "organization " + orgURL,
			Err:   err,
		})
		return
	}

	orgName := s.organizationName(orgURL)

	for _, proj := range projects {
		if proj.ID == "" || proj.Name == "" {
			continue
		}

		repos, reposErr := s.listRepositories(ctx, orgURL, proj.Name)
		if reposErr != nil {
			logger.Warnf("Failed to get repositories for project %s: %v", proj.Name, reposErr)
			walk.Failures = append(walk.Failures, domain.BranchFailure{
				Scope: "project " + proj.Name,
				Err:   reposErr,
			})
			continue
		}

		for _, repo := range repos {
			walk.Repositories = append(walk.Repositories, domain.Repository{
				ID:       domain.NumericID(repo.ID),
				NativeID: repo.ID,
				FullName: orgName + "/" + proj.Name + "/" + repo.Name,
				Provider: domain.ProviderAzureDevOps,
				IsPublic: false, // protection queries are not issued; assume private
			})
		}
	}
}

// listAccounts enumerates the organizations visible on the cloud host.
func (s *Service) listAccounts(ctx context.Context) ([]string, error) {
	reqURL := s.baseURL + "/_apis/accounts?api-version=" + apiVersionAccounts

	var result struct {
		Value []account `json:"value"`
	}
	if err := s.getJSON(ctx, reqURL, &result); err != nil {
		return nil, err
	}

	var names []string
	for _, acc := range result.Value {
		if acc.AccountName != "" {
			names = append(names, acc.AccountName)
		}
	}
	return names, nil
}

// listProjects enumerates the projects of one organization scope, following
// continuation tokens until the listing is exhausted.
func (s *Service) listProjects(ctx context.Context, orgURL string) ([]project, error) {
	var all []project
	continuation := ""

	for {
		reqURL := orgURL + "/_apis/projects?api-version=" + apiVersionProjects
		if continuation != "" {
			reqURL += "&continuationToken=" + url.QueryEscape(continuation)
		}

		resp, headers, err := s.doRequestWithHeaders(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}

		var result struct {
			Value []project `json:"value"`
			Count int       `json:"count"`
		}
		if err := json.Unmarshal(resp, &result); err != nil {
			return nil, fmt.Errorf("failed to parse projects response: %w", err)
		}
		all = append(all, result.Value...)

		continuation = headers.Get(continuationTokenHeader)
		if continuation == "" {
			break
		}
	}

	return all, nil
}

// listRepositories enumerates the Git repositories of one project.
func (s *Service) listRepositories(ctx context.Context, orgURL, projectName string) ([]repository, error) {
	reqURL := fmt.Sprintf(
		"%s/%s/_apis/git/repositories?api-version=%s",
		orgURL, url.PathEscape(projectName), apiVersionRepositories,
	)

	var result struct {
		Value []repository `json:"value"`
	}
	if err := s.getJSON(ctx, reqURL, &result); err != nil {
		return nil, err
	}
	return result.Value, nil
}

// SearchRepositories is not supported: Azure DevOps code search needs an
// organization context this generic surface does not carry.
func (s *Service) SearchRepositories(
	_ context.Context,
	_ string,
	_ int,
	_, _ string,
) ([]domain.Repository, error) {
	return []domain.Repository{}, nil
}

// GetRepositoryDetails fetches one repository by its org/project/repo name.
// A malformed name fails before any network call; an unreachable repository
// surfaces as an AuthenticationError.
func (s *Service) GetRepositoryDetails(ctx context.Context, fullName string) (domain.Repository, error) {
	key, err := domain.ParseRepositoryKey(fullName)
	if err != nil {
		return domain.Repository{}, err
	}

	reqURL := fmt.Sprintf(
		"%s/%s/%s/_apis/git/repositories/%s?api-version=%s",
		s.baseURL,
		url.PathEscape(key.Organization),
		url.PathEscape(key.Project),
		url.PathEscape(key.Name),
		apiVersionRepositories,
	)

	var repo repository
	if getErr := s.getJSON(ctx, reqURL, &repo); getErr != nil {
		logger.Warnf("Failed to get repository details for %s: %v", fullName, getErr)
		return domain.Repository{}, &domain.AuthenticationError{
			Message: "cannot access repository " + fullName,
		}
	}

	return domain.Repository{
		ID:       domain.NumericID(repo.ID),
		NativeID: repo.ID,
		FullName: fullName,
		Provider: domain.ProviderAzureDevOps,
		IsPublic: false,
	}, nil
}

// GetBranches lists the branch refs of a repository, with the refs/heads/
// prefix stripped. Fetch failures degrade to an empty list; only a malformed
// name is surfaced to the caller.
func (s *Service) GetBranches(ctx context.Context, fullName string) ([]domain.Branch, error) {
	key, err := domain.ParseRepositoryKey(fullName)
	if err != nil {
		return nil, err
	}

	// Custom instances scope the refs URL by project only; the cloud host
	// needs the organization segment as well.
	var reqURL string
	if !s.isMultiTenant() {
		reqURL = fmt.Sprintf(
			"%s/%s/_apis/git/repositories/%s/refs?filter=heads/&api-version=%s",
			s.baseURL, url.PathEscape(key.Project), url.PathEscape(key.Name), apiVersionRepositories,
		)
	} else {
		reqURL = fmt.Sprintf(
			"%s/%s/%s/_apis/git/repositories/%s/refs?filter=heads/&api-version=%s",
			s.baseURL,
			url.PathEscape(key.Organization),
			url.PathEscape(key.Project),
			url.PathEscape(key.Name),
			apiVersionRepositories,
		)
	}

	var result struct {
		Value []struct {
			Name     string `json:"name"`
			ObjectID string `json:"objectId"`
		} `json:"value"`
	}
	if getErr := s.getJSON(ctx, reqURL, &result); getErr != nil {
		logger.Warnf("Failed to get branches for %s: %v", fullName, getErr)
		return []domain.Branch{}, nil
	}

	var branches []domain.Branch
	for _, ref := range result.Value {
		name := strings.TrimPrefix(ref.Name, "refs/heads/")
		if name == "" {
			continue
		}
		branches = append(branches, domain.Branch{
			Name:      name,
			CommitSHA: ref.ObjectID,
			Protected: false,
		})
	}

	return branches, nil
}
