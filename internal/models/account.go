package models

import (
	"database/sql"
	"time"
)

// AuditFields holds the row timestamps maintained by the service.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// Account is one row of the accounts table.
// OwnerID is nullable; an account may exist before it is assigned to a customer.
type Account struct {
	AccountID   int64         `db:"account_id"`
	AccountType string        `db:"account_type"`
	OpeningDate time.Time     `db:"opening_date"`
	Balance     int64         `db:"balance"`
	OwnerID     sql.NullInt64 `db:"owner_id"`
	AuditFields
}
