package services

import (
	portsrepo "github.com/FinHubBR/finhub_backend/internal/core/ports/repositories"
	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Profile service first since reporting derives everything from it
	container.Profile = NewProfileService(repos.StateRepo)
	container.Reporting = NewReportingService(container.Profile)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
