package services

import (
	"github.com/SscSPs/accounts_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.AccountEventPublisher, extraChecks map[string]portsrepo.HealthChecker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithEventPublisher(publisher),
		WithMutationTimeout(cfg.MutationTimeout),
	)

	checks := map[string]portsrepo.HealthChecker{"account store": repos.AccountRepo}
	for name, check := range extraChecks {
		checks[name] = check
	}
	container.Health = NewHealthService(checks)

	return container
}
