package application

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/config"
	"github.com/rios0rios0/gitbridge/domain"
	providerPkg "github.com/rios0rios0/gitbridge/infrastructure/provider"
)

// BridgeService resolves a configured Git service and exposes the generic
// provider operations to the CLI, reporting degraded walks along the way.
type BridgeService struct {
	registry *providerPkg.Registry
}

// NewBridgeService creates a new service with the given registry.
func NewBridgeService(registry *providerPkg.Registry) *BridgeService {
	return &BridgeService{
		registry: registry,
	}
}

// resolve builds the Git service for one provider configuration.
func (s *BridgeService) resolve(provCfg config.ProviderConfig) (domain.GitService, error) {
	return s.registry.Get(provCfg.Type, provCfg.Token, provCfg.BaseDomain)
}

// ListRepositories discovers the repositories reachable with the configured
// credentials. The walk is best effort; failed branches are logged and kept
// on the report.
func (s *BridgeService) ListRepositories(
	ctx context.Context,
	provCfg config.ProviderConfig,
) (domain.RepositoryWalk, error) {
	service, err := s.resolve(provCfg)
	if err != nil {
		return domain.RepositoryWalk{}, err
	}

	logger.Infof("Discovering repositories via %s...", service.Provider())

	walk := service.GetRepositories(ctx, "", domain.AppModeOSS)

	logger.Infof("Found %d repositories", len(walk.Repositories))
	if walk.Degraded() {
		logger.Warnf("Walk degraded: %d branch(es) failed", len(walk.Failures))
	}

	return walk, nil
}

// ListSuggestedTasks finds open work assigned to the authenticated user.
func (s *BridgeService) ListSuggestedTasks(
	ctx context.Context,
	provCfg config.ProviderConfig,
) (domain.TaskWalk, error) {
	service, err := s.resolve(provCfg)
	if err != nil {
		return domain.TaskWalk{}, err
	}

	logger.Infof("Collecting suggested tasks via %s...", service.Provider())

	walk := service.GetSuggestedTasks(ctx)

	logger.Infof("Found %d suggested tasks", len(walk.Tasks))
	if walk.Degraded() {
		logger.Warnf("Walk degraded: %d branch(es) failed", len(walk.Failures))
	}

	return walk, nil
}

// ListBranches lists the branch refs of one org/project/repo.
func (s *BridgeService) ListBranches(
	ctx context.Context,
	provCfg config.ProviderConfig,
	fullName string,
) ([]domain.Branch, error) {
	service, err := s.resolve(provCfg)
	if err != nil {
		return nil, err
	}
	return service.GetBranches(ctx, fullName)
}

// GetRepository fetches one repository by its org/project/repo name.
func (s *BridgeService) GetRepository(
	ctx context.Context,
	provCfg config.ProviderConfig,
	fullName string,
) (domain.Repository, error) {
	service, err := s.resolve(provCfg)
	if err != nil {
		return domain.Repository{}, err
	}
	return service.GetRepositoryDetails(ctx, fullName)
}

// CurrentUser resolves the authenticated user's profile.
func (s *BridgeService) CurrentUser(
	ctx context.Context,
	provCfg config.ProviderConfig,
) (domain.User, error) {
	service, err := s.resolve(provCfg)
	if err != nil {
		return domain.User{}, err
	}
	return service.GetUser(ctx)
}
