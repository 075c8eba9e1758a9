package dto

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/SscSPs/accounts_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// minorUnitExponent renders minor units (cents) as a two-decimal amount.
const minorUnitExponent = -2

// AccountRequest is the body of create and update calls. Update replaces the
// whole record, so omitted fields are cleared.
type AccountRequest struct {
	XMLName     xml.Name `json:"-" xml:"account"`
	Type        string   `json:"type" xml:"type" binding:"required,notblank,min=3,max=50"`
	OpeningDate string   `json:"openingDate" xml:"openingDate" binding:"required,datetime=2006-01-02"`
	Balance     int64    `json:"balance" xml:"balance"`
	OwnerID     *int64   `json:"ownerId" xml:"ownerId,omitempty"`
}

// ToDomain converts the request into a domain.Account. The id is left unset.
func (r AccountRequest) ToDomain() (domain.Account, error) {
	opening, err := time.Parse(DateLayout, r.OpeningDate)
	if err != nil {
		return domain.Account{}, fmt.Errorf("openingDate %q: %w", r.OpeningDate, err)
	}
	return domain.Account{
		AccountType: r.Type,
		OpeningDate: opening,
		Balance:     r.Balance,
		OwnerID:     r.OwnerID,
	}, nil
}

// BalanceMutationRequest is the body of deposit and withdraw calls.
// Amount is checked by the service after ownership, so it carries no binding rule.
type BalanceMutationRequest struct {
	XMLName xml.Name `json:"-" xml:"balanceMutation"`
	Amount  int64    `json:"amount" xml:"amount"`
	OwnerID *int64   `json:"ownerId" xml:"ownerId" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	XMLName        xml.Name  `json:"-" xml:"account"`
	ID             int64     `json:"id" xml:"id"`
	Type           string    `json:"type" xml:"type"`
	OpeningDate    string    `json:"openingDate" xml:"openingDate"`
	Balance        int64     `json:"balance" xml:"balance"`
	BalanceDisplay string    `json:"balanceDisplay" xml:"balanceDisplay"`
	OwnerID        *int64    `json:"ownerId" xml:"ownerId,omitempty"`
	CreatedAt      time.Time `json:"createdAt" xml:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt" xml:"lastUpdatedAt"`
}

// ListAccountsResponse wraps a list of accounts for XML; JSON clients receive the bare array.
type ListAccountsResponse struct {
	XMLName  xml.Name          `json:"-" xml:"accounts"`
	Accounts []AccountResponse `json:"accounts" xml:"account"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             acc.AccountID,
		Type:           acc.AccountType,
		OpeningDate:    acc.OpeningDate.Format(DateLayout),
		Balance:        acc.Balance,
		BalanceDisplay: decimal.New(acc.Balance, minorUnitExponent).StringFixed(2),
		OwnerID:        acc.OwnerID,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
