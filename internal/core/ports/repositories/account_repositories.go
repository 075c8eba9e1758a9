package repositories

import (
	"context"

	"github.com/SscSPs/accounts_service/internal/core/domain"
)

// BalanceMutation is applied to a locked snapshot of an account. Returning an
// error aborts the mutation and leaves the stored record untouched.
type BalanceMutation func(account *domain.Account) error

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	// Returns an error matching apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves every account in store order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account, ignoring account.AccountID, and
	// returns the stored record with its assigned identifier.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// ReplaceAccount overwrites every mutable column of an existing account.
	// Returns an error matching apperrors.ErrNotFound when absent; never inserts.
	ReplaceAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeleteAccount removes an account. Reports whether a row was removed.
	DeleteAccount(ctx context.Context, accountID int64) (bool, error)

	// DeleteAccountsByOwner removes every account of ownerID and returns how many were removed.
	DeleteAccountsByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// AccountBalanceMutator performs atomic read-modify-write of a single account.
type AccountBalanceMutator interface {
	// MutateBalance locks the account, applies fn and persists the result as one
	// indivisible unit with respect to other mutations of the same account.
	MutateBalance(ctx context.Context, accountID int64, fn BalanceMutation) (*domain.Account, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceMutator
	HealthChecker
}
