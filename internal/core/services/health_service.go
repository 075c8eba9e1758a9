package services

import (
	"context"
	"net/http"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	portsrepo "github.com/SscSPs/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_service/internal/core/ports/services"
)

type healthService struct {
	BaseService
	checkers map[string]portsrepo.HealthChecker
}

// NewHealthService reports unhealthy when any named checker fails.
func NewHealthService(checkers map[string]portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{checkers: checkers}
}

func (s *healthService) CheckHealth(ctx context.Context) error {
	for name, checker := range s.checkers {
		if checker == nil {
			continue
		}
		if err := checker.Ping(ctx); err != nil {
			s.LogError(ctx, err, "Health check failed", "check", name)
			return apperrors.NewAppError(http.StatusServiceUnavailable, name+" unavailable", err)
		}
	}
	return nil
}
