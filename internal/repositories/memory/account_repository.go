// Package memory provides a process-local account store. Each record carries
// its own mutex so balance mutations on one account never contend with
// mutations on another.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_service/internal/core/ports/repositories"
)

type accountRecord struct {
	mu      sync.Mutex
	account domain.Account
	deleted bool
}

// AccountRepository is an in-memory AccountRepositoryFacade.
// The map lock is only held for lookups and structural changes, never while
// a record lock is being acquired for a mutation.
type AccountRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*accountRecord
}

// NewAccountRepository creates an empty store whose first identifier is 1.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{records: make(map[int64]*accountRecord)}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func cloneAccount(a domain.Account) domain.Account {
	if a.OwnerID != nil {
		owner := *a.OwnerID
		a.OwnerID = &owner
	}
	return a
}

func (r *AccountRepository) lookup(accountID int64) (*accountRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[accountID]
	return rec, ok
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(accountID)
	if !ok {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	acc := cloneAccount(rec.account)
	return &acc, nil
}

// ListAccounts returns accounts ordered by identifier.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	ids := make([]int64, 0, len(r.records))
	recs := make(map[int64]*accountRecord, len(r.records))
	for id, rec := range r.records {
		ids = append(ids, id)
		recs[id] = rec
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	accounts := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		rec := recs[id]
		rec.mu.Lock()
		if !rec.deleted {
			accounts = append(accounts, cloneAccount(rec.account))
		}
		rec.mu.Unlock()
	}
	return accounts, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	account.AccountID = r.nextID
	r.records[account.AccountID] = &accountRecord{account: cloneAccount(account)}

	saved := cloneAccount(account)
	return &saved, nil
}

// ReplaceAccount overwrites an existing record, keeping its creation time.
func (r *AccountRepository) ReplaceAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(account.AccountID)
	if !ok {
		return nil, apperrors.NewNotFoundError("account", account.AccountID)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return nil, apperrors.NewNotFoundError("account", account.AccountID)
	}
	account.CreatedAt = rec.account.CreatedAt
	rec.account = cloneAccount(account)

	replaced := cloneAccount(account)
	return &replaced, nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	rec, ok := r.records[accountID]
	delete(r.records, accountID)
	r.mu.Unlock()
	if !ok {
		return false, nil
	}

	rec.mu.Lock()
	rec.deleted = true
	rec.mu.Unlock()
	return true, nil
}

func (r *AccountRepository) DeleteAccountsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	var removed []*accountRecord
	for id, rec := range r.records {
		rec.mu.Lock()
		owned := rec.account.OwnedBy(ownerID)
		rec.mu.Unlock()
		if owned {
			delete(r.records, id)
			removed = append(removed, rec)
		}
	}
	r.mu.Unlock()

	for _, rec := range removed {
		rec.mu.Lock()
		rec.deleted = true
		rec.mu.Unlock()
	}
	return int64(len(removed)), nil
}

// MutateBalance applies fn to a private copy under the record lock and stores
// the copy only if fn and the context both succeed.
func (r *AccountRepository) MutateBalance(ctx context.Context, accountID int64, fn portsrepo.BalanceMutation) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(accountID)
	if !ok {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}

	working := cloneAccount(rec.account)
	if err := fn(&working); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The identifier is not the mutation's to change.
	working.AccountID = accountID
	rec.account = working

	result := cloneAccount(working)
	return &result, nil
}

// Ping always succeeds.
func (r *AccountRepository) Ping(context.Context) error {
	return nil
}
