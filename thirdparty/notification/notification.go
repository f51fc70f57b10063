package notification

import (
	"context"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
)

// Event is the message handed from the core to the notification transport.
type Event struct {
	Type       constant.EventType `json:"type"`
	AccountID  uint64             `json:"account_id"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// Sink accepts events after the state change they describe is committed.
// Delivery is best effort; callers log failures and move on.
type Sink interface {
	NewOrder(ctx context.Context, buyerID uint64) error
	AccountRegistered(ctx context.Context, accountID uint64) error
}

// Handler processes one delivered event.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}
