package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_service/internal/core/ports/repositories"
	"github.com/SscSPs/accounts_service/internal/models"
	"github.com/SscSPs/accounts_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, account_type, opening_date, balance, owner_id, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// NewAccountRepository exposes the account repository for callers that do not need the provider.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return newPgxAccountRepository(pool)
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountType,
		&m.OpeningDate,
		&m.Balance,
		&m.OwnerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

// SaveAccount inserts a new account; the database assigns the identifier.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_type, opening_date, balance, owner_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + accountColumns + `;
	`
	saved, err := scanAccount(r.Pool.QueryRow(ctx, query,
		m.AccountType,
		m.OpeningDate,
		m.Balance,
		m.OwnerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account", accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}
	return &acc, nil
}

// ListAccounts retrieves every account ordered by identifier.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ReplaceAccount overwrites every mutable column of an existing account.
// created_at is left as stored.
func (r *PgxAccountRepository) ReplaceAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET account_type = $2, opening_date = $3, balance = $4, owner_id = $5, last_updated_at = $6
		WHERE account_id = $1
		RETURNING ` + accountColumns + `;
	`
	replaced, err := scanAccount(r.Pool.QueryRow(ctx, query,
		m.AccountID,
		m.AccountType,
		m.OpeningDate,
		m.Balance,
		m.OwnerID,
		m.LastUpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account", account.AccountID)
		}
		return nil, fmt.Errorf("failed to replace account %d: %w", account.AccountID, err)
	}
	return &replaced, nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxAccountRepository) DeleteAccountsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE owner_id = $1;`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete accounts of owner %d: %w", ownerID, err)
	}
	return cmdTag.RowsAffected(), nil
}

// MutateBalance locks the row with SELECT ... FOR UPDATE, applies fn and
// writes back balance and last_updated_at in the same transaction. Only those
// two columns are persisted.
func (r *PgxAccountRepository) MutateBalance(ctx context.Context, accountID int64, fn portsrepo.BalanceMutation) (*domain.Account, error) {
	var result domain.Account
	err := r.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		lockQuery := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
		acc, err := scanAccount(tx.QueryRow(ctx, lockQuery, accountID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("account", accountID)
			}
			return fmt.Errorf("failed to lock account %d: %w", accountID, err)
		}

		if err := fn(&acc); err != nil {
			return err
		}

		updateQuery := `
			UPDATE accounts
			SET balance = $2, last_updated_at = $3
			WHERE account_id = $1
			RETURNING ` + accountColumns + `;
		`
		result, err = scanAccount(tx.QueryRow(ctx, updateQuery, accountID, acc.Balance, acc.LastUpdatedAt))
		if err != nil {
			return fmt.Errorf("failed to update balance of account %d: %w", accountID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
