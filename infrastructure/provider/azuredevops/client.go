package azuredevops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rios0rios0/gitbridge/domain"
)

// REST API versions consumed by this service.
const (
	apiVersionAccounts       = "7.1-preview.1"
	apiVersionProjects       = "7.1-preview.4"
	apiVersionRepositories   = "7.1-preview.1"
	apiVersionConnectionData = "7.1-preview.1"
	apiVersionProfile        = "7.1-preview.3"
	apiVersionWiql           = "7.1-preview.2"
	apiVersionWorkItems      = "7.1-preview.3"
)

// continuationTokenHeader carries the cursor for paginated list endpoints.
const continuationTokenHeader = "x-ms-continuationtoken"

// doRequest issues one authenticated request and returns the raw body.
func (s *Service) doRequest(ctx context.Context, method, rawURL string, body interface{}) ([]byte, error) {
	resp, _, err := s.doRequestWithHeaders(ctx, method, rawURL, body)
	return resp, err
}

// doRequestWithHeaders issues one authenticated request against an absolute
// URL. It never retries. Failures are translated into the service's typed
// errors: missing token -> AuthenticationError, transport failure ->
// ConnectivityError, non-2xx status -> APIError.
func (s *Service) doRequestWithHeaders(
	ctx context.Context,
	method, rawURL string,
	body interface{},
) ([]byte, http.Header, error) {
	if s.token == "" {
		return nil, nil, &domain.AuthenticationError{Message: "no Azure DevOps token provided"}
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Basic auth with empty username and the PAT as password
	auth := base64.StdEncoding.EncodeToString([]byte(":" + s.token))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, &domain.ConnectivityError{Provider: domain.ProviderAzureDevOps, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &domain.ConnectivityError{Provider: domain.ProviderAzureDevOps, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, nil, &domain.APIError{
			Provider:   domain.ProviderAzureDevOps,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	return respBody, resp.Header, nil
}

// getJSON issues a GET request and decodes the JSON response into out.
func (s *Service) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	resp, err := s.doRequest(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// postJSON issues a POST request with a JSON body and decodes the response.
func (s *Service) postJSON(ctx context.Context, rawURL string, body, out interface{}) error {
	resp, err := s.doRequest(ctx, http.MethodPost, rawURL, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
