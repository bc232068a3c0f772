package azuredevops

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rios0rios0/gitbridge/domain"
)

const (
	// defaultBaseURL is the multi-tenant Azure DevOps cloud host. Any other
	// base is treated as a fixed single-organization instance.
	defaultBaseURL = "https://dev.azure.com"

	// defaultOrgName is used when no organization name can be derived.
	defaultOrgName = "DefaultCollection"

	requestTimeout = 30 * time.Second
)

// Service implements domain.GitService against the Azure DevOps REST API.
type Service struct {
	baseURL     string
	profileBase string
	token       string
	multiTenant bool
	httpClient  *http.Client
}

// New creates an Azure DevOps service authenticated with the given PAT.
// baseDomain may be empty (cloud), a bare host name, or a full URL to a
// custom instance; it is normalized to a canonical base URL.
func New(token, baseDomain string) domain.GitService {
	baseURL := resolveBaseURL(baseDomain)
	return &Service{
		baseURL:     baseURL,
		profileBase: profileBaseURL,
		token:       token,
		multiTenant: baseURL == defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Provider returns the platform identifier.
func (s *Service) Provider() domain.ProviderType {
	return domain.ProviderAzureDevOps
}

// LatestToken returns the PAT configured for this service.
func (s *Service) LatestToken() string {
	return s.token
}

// resolveBaseURL normalizes a configured base domain to a canonical base URL.
// A full URL carrying more than the host (e.g. a project path) is truncated
// to scheme + host; a bare host gets the https scheme; empty means the cloud.
func resolveBaseURL(baseDomain string) string {
	if baseDomain == "" {
		return defaultBaseURL
	}

	if !strings.HasPrefix(baseDomain, "http") {
		return "https://" + baseDomain
	}

	base := strings.TrimRight(baseDomain, "/")
	rest := base
	if idx := strings.Index(base, "://"); idx >= 0 {
		rest = base[idx+len("://"):]
	}
	if strings.Contains(rest, "/") {
		parts := strings.Split(base, "/")
		return strings.Join(parts[:3], "/") // scheme + empty + host
	}

	return base
}

// isMultiTenant reports whether the service targets the cloud host, which
// requires an organization-enumeration step before projects can be listed.
func (s *Service) isMultiTenant() bool {
	return s.multiTenant
}

// organizationName derives the display name used as the first segment of
// org/project/repo names. Custom instances use the first label of the host;
// cloud organizations use the last path segment of the organization URL.
func (s *Service) organizationName(orgURL string) string {
	if !s.isMultiTenant() {
		parsed, err := url.Parse(orgURL)
		if err != nil || parsed.Hostname() == "" {
			return defaultOrgName
		}
		return strings.Split(parsed.Hostname(), ".")[0]
	}

	if orgURL != s.baseURL {
		parts := strings.Split(orgURL, "/")
		return parts[len(parts)-1]
	}

	return defaultOrgName
}
