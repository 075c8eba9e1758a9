package events

import (
	"context"
	"time"
)

// Event types emitted after successful account writes.
const (
	AccountCreated      = "account.created"
	AccountUpdated      = "account.updated"
	AccountDeleted      = "account.deleted"
	OwnerAccountsDelete = "account.owner_deleted"
	BalanceDeposited    = "balance.deposited"
	BalanceWithdrawn    = "balance.withdrawn"
)

// AccountEvent is the payload published for every account write.
type AccountEvent struct {
	Type       string    `json:"type"`
	AccountID  int64     `json:"accountId,omitempty"`
	OwnerID    *int64    `json:"ownerId,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	Balance    int64     `json:"balance"`
	Removed    int64     `json:"removed,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// AccountEventPublisher delivers account events to downstream consumers.
type AccountEventPublisher interface {
	Publish(ctx context.Context, event AccountEvent) error
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, AccountEvent) error { return nil }
