package azuredevops //nolint:testpackage // tests unexported functions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitbridge/domain"
)

// newTestService builds a Service pointed at a test server, bypassing the
// base-domain resolution done by New.
func newTestService(server *httptest.Server, multiTenant bool) *Service {
	return &Service{
		baseURL:     server.URL,
		profileBase: server.URL,
		token:       "test-token",
		multiTenant: multiTenant,
		httpClient:  server.Client(),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("should identify as Azure DevOps", func(t *testing.T) {
		t.Parallel()

		// given
		service := New("token", "")

		// when
		provider := service.Provider()

		// then
		assert.Equal(t, domain.ProviderAzureDevOps, provider)
	})

	t.Run("should return the configured PAT", func(t *testing.T) {
		t.Parallel()

		// given
		service := New("my-pat", "")

		// when
		token := service.LatestToken()

		// then
		assert.Equal(t, "my-pat", token)
	})
}

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		baseDomain string
		expected   string
	}{
		{
			name:       "should default to the cloud host when empty",
			baseDomain: "",
			expected:   "https://dev.azure.com",
		},
		{
			name:       "should prefix a bare host with https",
			baseDomain: "myorg.visualstudio.com",
			expected:   "https://myorg.visualstudio.com",
		},
		{
			name:       "should keep a host-only URL verbatim",
			baseDomain: "https://myorg.visualstudio.com",
			expected:   "https://myorg.visualstudio.com",
		},
		{
			name:       "should strip a trailing slash",
			baseDomain: "https://myorg.visualstudio.com/",
			expected:   "https://myorg.visualstudio.com",
		},
		{
			name:       "should truncate a project path to scheme and host",
			baseDomain: "https://myorg.visualstudio.com/MyProject",
			expected:   "https://myorg.visualstudio.com",
		},
		{
			name:       "should truncate a nested path to scheme and host",
			baseDomain: "https://dev.azure.com/myorg/MyProject",
			expected:   "https://dev.azure.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := resolveBaseURL(tt.baseDomain)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOrganizationName(t *testing.T) {
	t.Parallel()

	t.Run("should use the first host label on a custom instance", func(t *testing.T) {
		t.Parallel()

		// given
		service := &Service{
			baseURL:     "https://myorg.visualstudio.com",
			multiTenant: false,
		}

		// when
		name := service.organizationName(service.baseURL)

		// then
		assert.Equal(t, "myorg", name)
	})

	t.Run("should use the last path segment of a cloud organization URL", func(t *testing.T) {
		t.Parallel()

		// given
		service := &Service{
			baseURL:     "https://dev.azure.com",
			multiTenant: true,
		}

		// when
		name := service.organizationName("https://dev.azure.com/acme")

		// then
		assert.Equal(t, "acme", name)
	})

	t.Run("should fall back to the placeholder for the bare cloud host", func(t *testing.T) {
		t.Parallel()

		// given
		service := &Service{
			baseURL:     "https://dev.azure.com",
			multiTenant: true,
		}

		// when
		name := service.organizationName(service.baseURL)

		// then
		assert.Equal(t, "DefaultCollection", name)
	})
}

// silentHandler returns 200 with an empty JSON object for any request.
func silentHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	})
}
