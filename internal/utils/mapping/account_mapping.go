package mapping

import (
	"database/sql"

	"github.com/SscSPs/accounts_service/internal/core/domain"
	"github.com/SscSPs/accounts_service/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:   d.AccountID,
		AccountType: d.AccountType,
		OpeningDate: domain.DateOnly(d.OpeningDate),
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.OwnerID != nil {
		m.OwnerID = sql.NullInt64{Int64: *d.OwnerID, Valid: true}
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:   m.AccountID,
		AccountType: m.AccountType,
		OpeningDate: domain.DateOnly(m.OpeningDate),
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.OwnerID.Valid {
		owner := m.OwnerID.Int64
		d.OwnerID = &owner
	}
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
