package azuredevops

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/domain"
)

// profileBaseURL hosts the cloud profile API, which lives outside the
// organization-scoped API surface.
const profileBaseURL = "https://app.vssps.visualstudio.com"

// GetUser resolves the authenticated user through a three-tier fallback:
// the connection-data endpoint (custom instances), then the cloud profile
// endpoint, then a cheap listing probe that only validates the token and
// yields a synthetic minimal user. Each tier's failure is logged and the
// next tier tried; when all fail the token is considered invalid.
func (s *Service) GetUser(ctx context.Context) (domain.User, error) {
	if !s.isMultiTenant() {
		user, err := s.userFromConnectionData(ctx)
		if err != nil {
			logger.Warnf("Failed to get user from connection data: %v", err)
		} else if user.Login != "" || user.ID != 0 {
			return user, nil
		}
	}

	user, err := s.userFromProfile(ctx)
	if err != nil {
		logger.Warnf("Failed to get user info from profile API: %v", err)
	} else {
		return user, nil
	}

	if probeErr := s.probeToken(ctx); probeErr != nil {
		logger.Warnf("Failed to validate Azure DevOps token: %v", probeErr)
		return domain.User{}, &domain.AuthenticationError{Message: "invalid Azure DevOps token"}
	}

	return domain.User{
		ID:        1,
		Login:     "ado-user",
		AvatarURL: "",
		Name:      "Azure DevOps User",
		Email:     "ado-user@example.com",
	}, nil
}

// userFromConnectionData queries the connection-data endpoint of a custom
// instance. The display name field usually carries the email address.
func (s *Service) userFromConnectionData(ctx context.Context) (domain.User, error) {
	reqURL := s.baseURL + "/_apis/connectionData?api-version=" + apiVersionConnectionData

	var data struct {
		AuthenticatedUser struct {
			ID                  string `json:"id"`
			ProviderDisplayName string `json:"providerDisplayName"`
		} `json:"authenticatedUser"`
	}
	if err := s.getJSON(ctx, reqURL, &data); err != nil {
		return domain.User{}, err
	}

	authUser := data.AuthenticatedUser
	if authUser.ID == "" && authUser.ProviderDisplayName == "" {
		return domain.User{}, nil
	}

	return domain.User{
		ID:        domain.NumericID(authUser.ID),
		Login:     authUser.ProviderDisplayName,
		AvatarURL: "",
		Name:      authUser.ProviderDisplayName,
		Email:     authUser.ProviderDisplayName,
	}, nil
}

// userFromProfile queries the cloud profile endpoint.
func (s *Service) userFromProfile(ctx context.Context) (domain.User, error) {
	reqURL := s.profileBase + "/_apis/profile/profiles/me?api-version=" + apiVersionProfile

	var data struct {
		ID             string `json:"id"`
		EmailAddress   string `json:"emailAddress"`
		DisplayName    string `json:"displayName"`
		CoreAttributes struct {
			Avatar struct {
				Value struct {
					Value string `json:"value"`
				} `json:"value"`
			} `json:"Avatar"`
		} `json:"coreAttributes"`
	}
	if err := s.getJSON(ctx, reqURL, &data); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        domain.NumericID(data.ID),
		Login:     data.EmailAddress,
		AvatarURL: data.CoreAttributes.Avatar.Value.Value,
		Name:      data.DisplayName,
		Email:     data.EmailAddress,
	}, nil
}

// probeToken issues the cheapest listing call available for the deployment
// shape, purely to check that the token is accepted.
func (s *Service) probeToken(ctx context.Context) error {
	var reqURL string
	if !s.isMultiTenant() {
		reqURL = s.baseURL + "/_apis/projects?$top=1&api-version=" + apiVersionProjects
	} else {
		reqURL = s.baseURL + "/_apis/accounts?$top=1&api-version=" + apiVersionAccounts
	}

	_, err := s.doRequest(ctx, http.MethodGet, reqURL, nil)
	return err
}
