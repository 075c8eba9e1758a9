package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs an expected, caller-caused failure.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// isDomainError reports whether err belongs to the caller-facing taxonomy.
func isDomainError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrOwnershipMismatch) ||
		errors.Is(err, apperrors.ErrInvalidAmount) ||
		errors.Is(err, apperrors.ErrInsufficientFunds)
}

// WrapStoreError passes domain errors through unchanged and converts every
// other collaborator failure into an infrastructure AppError.
func (s *BaseService) WrapStoreError(err error, msg string) error {
	if err == nil || isDomainError(err) || errors.Is(err, apperrors.ErrInfrastructure) {
		return err
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewAppError(http.StatusGatewayTimeout, msg+": timed out", err)
	case errors.Is(err, context.Canceled):
		return apperrors.NewAppError(http.StatusServiceUnavailable, msg+": canceled", err)
	default:
		return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
	}
}
