package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account AccountSvcFacade
	Health  HealthSvc
}

// HealthSvc reports readiness of the service's collaborators.
type HealthSvc interface {
	CheckHealth(ctx context.Context) error
}
