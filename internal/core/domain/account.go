package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/accounts_service/internal/apperrors"
)

// Account type length limits, counted in runes.
const (
	MinAccountTypeLength = 3
	MaxAccountTypeLength = 50
)

// Account represents a financial account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID   int64     // Assigned by the store; 0 until persisted
	AccountType string    // e.g. "savings"
	OpeningDate time.Time // Calendar date, UTC midnight
	Balance     int64     // Minor units
	OwnerID     *int64    // Weak reference to the owning customer; nil when unowned
	AuditFields
}

// Validate checks the preconditions shared by create and update.
func (a Account) Validate() error {
	if strings.TrimSpace(a.AccountType) == "" {
		return apperrors.NewValidationError("type", "must not be blank")
	}
	if n := utf8.RuneCountInString(a.AccountType); n < MinAccountTypeLength || n > MaxAccountTypeLength {
		return apperrors.NewValidationError("type", "length must be between 3 and 50")
	}
	if a.OpeningDate.IsZero() {
		return apperrors.NewValidationError("openingDate", "is required")
	}
	return nil
}

// OwnedBy reports whether ownerID matches the stored owner.
// An account without an owner is never owned by anyone.
func (a Account) OwnedBy(ownerID int64) bool {
	return a.OwnerID != nil && *a.OwnerID == ownerID
}

// Deposit increments the balance by amount.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return &apperrors.InvalidAmountError{Amount: amount, Reason: "must be greater than zero"}
	}
	if a.Balance > math.MaxInt64-amount {
		return &apperrors.InvalidAmountError{Amount: amount, Reason: "would overflow balance"}
	}
	a.Balance += amount
	return nil
}

// Withdraw decrements the balance by amount. The balance never goes negative.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return &apperrors.InvalidAmountError{Amount: amount, Reason: "must be greater than zero"}
	}
	if amount > a.Balance {
		return &apperrors.InsufficientFundsError{AccountID: a.AccountID, Balance: a.Balance, Amount: amount}
	}
	a.Balance -= amount
	return nil
}

// DateOnly truncates t to its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
