package services

import (
	"context"

	"github.com/SscSPs/accounts_service/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its identifier.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts. name is accepted for compatibility
	// with existing clients and intentionally has no effect.
	ListAccounts(ctx context.Context, name string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account, assigning its identifier.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount replaces the account identified by accountID with account.
	UpdateAccount(ctx context.Context, accountID int64, account domain.Account) (*domain.Account, error)

	// DeleteAccount removes an account. Deleting a missing account is not an error.
	DeleteAccount(ctx context.Context, accountID int64) error

	// DeleteAccountsByOwner removes every account of ownerID and returns the count removed.
	DeleteAccountsByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// AccountBalanceSvc defines the owner-scoped balance mutations.
type AccountBalanceSvc interface {
	// Deposit atomically adds amount to the account balance.
	Deposit(ctx context.Context, accountID int64, amount int64, ownerID int64) (*domain.Account, error)

	// Withdraw atomically subtracts amount from the account balance.
	Withdraw(ctx context.Context, accountID int64, amount int64, ownerID int64) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountBalanceSvc
}
