package mapping_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SscSPs/accounts_service/internal/core/domain"
	"github.com/SscSPs/accounts_service/internal/models"
	"github.com/SscSPs/accounts_service/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestToModelAccount_OwnerNullability(t *testing.T) {
	owner := int64(7)
	withOwner := mapping.ToModelAccount(domain.Account{AccountID: 1, AccountType: "savings", OwnerID: &owner})
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, withOwner.OwnerID)

	withoutOwner := mapping.ToModelAccount(domain.Account{AccountID: 2, AccountType: "savings"})
	assert.False(t, withoutOwner.OwnerID.Valid)
}

func TestToDomainAccount(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	m := models.Account{
		AccountID:   3,
		AccountType: "checking",
		OpeningDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Balance:     250,
		OwnerID:     sql.NullInt64{Int64: 9, Valid: true},
		AuditFields: models.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	d := mapping.ToDomainAccount(m)
	assert.Equal(t, int64(3), d.AccountID)
	assert.Equal(t, "checking", d.AccountType)
	assert.Equal(t, int64(250), d.Balance)
	if assert.NotNil(t, d.OwnerID) {
		assert.Equal(t, int64(9), *d.OwnerID)
	}
	assert.Equal(t, now, d.CreatedAt)

	m.OwnerID = sql.NullInt64{}
	assert.Nil(t, mapping.ToDomainAccount(m).OwnerID)

	slice := mapping.ToDomainAccountSlice([]models.Account{m, m})
	assert.Len(t, slice, 2)
}
