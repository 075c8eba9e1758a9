package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/core/domain"
	"github.com/SscSPs/accounts_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_service/internal/observability"
)

// DefaultMutationTimeout bounds a deposit or withdrawal when no timeout is configured.
const DefaultMutationTimeout = 5 * time.Second

// accountService implements the AccountSvcFacade interface.
// It holds no mutable state after construction.
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	publisher       events.AccountEventPublisher
	mutationTimeout time.Duration
	now             func() time.Time
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountService)

// WithEventPublisher sets the publisher notified after successful writes.
func WithEventPublisher(p events.AccountEventPublisher) ServiceOption {
	return func(s *accountService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithMutationTimeout bounds each deposit/withdrawal. A non-positive value disables the bound.
func WithMutationTimeout(d time.Duration) ServiceOption {
	return func(s *accountService) {
		s.mutationTimeout = d
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *accountService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     repo,
		publisher:       events.NoopPublisher{},
		mutationTimeout: DefaultMutationTimeout,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// ListAccounts returns every account. The name filter is accepted for client
// compatibility and deliberately ignored.
func (s *accountService) ListAccounts(ctx context.Context, name string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, s.WrapStoreError(err, "failed to list accounts")
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.String("ignored_name_filter", name))
	return accounts, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Account not found", slog.Int64("account_id", accountID))
			return nil, apperrors.NewNotFoundError("account", accountID)
		}
		s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		return nil, s.WrapStoreError(err, "failed to find account")
	}

	return account, nil
}

func (s *accountService) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	// Client-supplied identifiers are never honoured; the store assigns one.
	account.AccountID = 0
	account.OpeningDate = domain.DateOnly(account.OpeningDate)

	if err := account.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected account creation", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now().UTC()
	account.CreatedAt = now
	account.LastUpdatedAt = now

	created, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_type", account.AccountType))
		return nil, s.WrapStoreError(err, "failed to save account")
	}

	s.LogInfo(ctx, "Account created successfully", slog.Int64("account_id", created.AccountID))
	s.publish(ctx, events.AccountEvent{
		Type:      events.AccountCreated,
		AccountID: created.AccountID,
		OwnerID:   created.OwnerID,
		Balance:   created.Balance,
	})
	return created, nil
}

// UpdateAccount replaces the stored record; fields absent from account are
// cleared, not merged.
func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, account domain.Account) (*domain.Account, error) {
	account.AccountID = accountID
	account.OpeningDate = domain.DateOnly(account.OpeningDate)

	if err := account.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected account update",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	account.LastUpdatedAt = s.now().UTC()

	updated, err := s.accountRepo.ReplaceAccount(ctx, account)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account not found for update", slog.Int64("account_id", accountID))
			return nil, apperrors.NewNotFoundError("account", accountID)
		}
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, s.WrapStoreError(err, "failed to update account")
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	s.publish(ctx, events.AccountEvent{
		Type:      events.AccountUpdated,
		AccountID: updated.AccountID,
		OwnerID:   updated.OwnerID,
		Balance:   updated.Balance,
	})
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	removed, err := s.accountRepo.DeleteAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		return s.WrapStoreError(err, "failed to delete account")
	}

	if !removed {
		s.LogDebug(ctx, "Account already absent", slog.Int64("account_id", accountID))
		return nil
	}

	s.LogInfo(ctx, "Account deleted successfully", slog.Int64("account_id", accountID))
	s.publish(ctx, events.AccountEvent{Type: events.AccountDeleted, AccountID: accountID})
	return nil
}

func (s *accountService) DeleteAccountsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	removed, err := s.accountRepo.DeleteAccountsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete accounts by owner", slog.Int64("owner_id", ownerID))
		return 0, s.WrapStoreError(err, "failed to delete accounts by owner")
	}

	s.LogInfo(ctx, "Owner accounts deleted",
		slog.Int64("owner_id", ownerID),
		slog.Int64("removed", removed))
	if removed > 0 {
		owner := ownerID
		s.publish(ctx, events.AccountEvent{Type: events.OwnerAccountsDelete, OwnerID: &owner, Removed: removed})
	}
	return removed, nil
}

func (s *accountService) Deposit(ctx context.Context, accountID int64, amount int64, ownerID int64) (*domain.Account, error) {
	return s.mutateBalance(ctx, "deposit", accountID, amount, ownerID, (*domain.Account).Deposit)
}

func (s *accountService) Withdraw(ctx context.Context, accountID int64, amount int64, ownerID int64) (*domain.Account, error) {
	return s.mutateBalance(ctx, "withdraw", accountID, amount, ownerID, (*domain.Account).Withdraw)
}

// mutateBalance runs the ownership check and apply inside the store's atomic
// unit. Checks run in order: existence, ownership, amount, funds.
func (s *accountService) mutateBalance(
	ctx context.Context,
	operation string,
	accountID, amount, ownerID int64,
	apply func(*domain.Account, int64) error,
) (*domain.Account, error) {
	if s.mutationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.mutationTimeout)
		defer cancel()
	}

	logAttrs := []any{
		slog.String("operation", operation),
		slog.Int64("account_id", accountID),
		slog.Int64("owner_id", ownerID),
		slog.Int64("amount", amount),
	}

	start := time.Now()
	account, err := s.accountRepo.MutateBalance(ctx, accountID, func(acc *domain.Account) error {
		if !acc.OwnedBy(ownerID) {
			return &apperrors.OwnershipMismatchError{AccountID: acc.AccountID, OwnerID: ownerID}
		}
		if err := apply(acc, amount); err != nil {
			return err
		}
		acc.LastUpdatedAt = s.now().UTC()
		return nil
	})
	observability.BalanceMutationLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.BalanceMutations.WithLabelValues(operation, apperrors.Kind(err)).Inc()
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account not found for balance mutation", logAttrs...)
			return nil, apperrors.NewNotFoundError("account", accountID)
		}
		if isDomainError(err) {
			s.LogWarn(ctx, "Balance mutation rejected", append(logAttrs, slog.String("error", err.Error()))...)
			return nil, err
		}
		s.LogError(ctx, err, "Balance mutation failed", logAttrs...)
		return nil, s.WrapStoreError(err, "failed to "+operation)
	}

	observability.BalanceMutations.WithLabelValues(operation, "ok").Inc()
	s.LogInfo(ctx, "Balance mutated", append(logAttrs, slog.Int64("balance", account.Balance))...)

	eventType := events.BalanceDeposited
	if operation == "withdraw" {
		eventType = events.BalanceWithdrawn
	}
	s.publish(ctx, events.AccountEvent{
		Type:      eventType,
		AccountID: account.AccountID,
		OwnerID:   account.OwnerID,
		Amount:    amount,
		Balance:   account.Balance,
	})
	return account, nil
}

// publish delivers an event after a committed write. Failures are logged and
// counted but never returned: the write has already happened.
func (s *accountService) publish(ctx context.Context, event events.AccountEvent) {
	event.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		observability.EventsPublishFailed.WithLabelValues(event.Type).Inc()
		s.LogError(ctx, err, "Failed to publish account event",
			slog.String("event_type", event.Type),
			slog.Int64("account_id", event.AccountID))
	}
}
