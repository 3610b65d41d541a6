package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmatrust/custody/internal/domain"
)

// CustodyEventType names what happened to a hop
type CustodyEventType string

const (
	// CustodyEventApproved fires when the sender counter-approves a
	// confirmed receipt (distribution hop, phase 4)
	CustodyEventApproved CustodyEventType = "approved"
	// CustodyEventFinalized fires when the reconciliation listener closes a
	// hop from an on-chain event
	CustodyEventFinalized CustodyEventType = "finalized"
)

// CustodyEvent is published whenever a hop reaches a settled state. It is a
// notification for downstream consumers, never a source of truth; the store
// is already consistent before the event goes out.
type CustodyEvent struct {
	Hop        domain.Hop       `json:"hop"`
	Type       CustodyEventType `json:"type"`
	IntentRef  string           `json:"intent_ref,omitempty"`
	ProofRef   string           `json:"proof_ref,omitempty"`
	TokenIDs   []string         `json:"token_ids"`
	FromUserID uint64           `json:"from_user_id,omitempty"`
	ToUserID   uint64           `json:"to_user_id,omitempty"`
	TxHash     string           `json:"tx_hash,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Subject returns the NATS subject the event is published on
func (e *CustodyEvent) Subject() string {
	return fmt.Sprintf("custody.%s.%s", e.Hop, e.Type)
}

// Publisher emits custody events to downstream consumers
//
//go:generate mockgen -source=messaging.go -destination=../mocks/messaging.go -package=mocks -mock_names=Publisher=MockPublisher,Subscriber=MockSubscriber
type Publisher interface {
	// PublishCustodyEvent publishes one event; implementations must not
	// block hop settlement on broker availability
	PublishCustodyEvent(ctx context.Context, event *CustodyEvent) error
	// Close releases the underlying connection
	Close()
}

// Subscriber is the inbound chain event source for the reconciliation listener
type Subscriber interface {
	// SubscribeTransferEvents streams live transfer events to the handler
	// until the context is cancelled or the subscription errors out
	SubscribeTransferEvents(ctx context.Context, handler func(*domain.TransferEvent)) error
	// FilterTransferEvents retrieves historical transfer events in the
	// inclusive block range
	FilterTransferEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*domain.TransferEvent, error)
	// LatestBlock returns the current chain head block number
	LatestBlock(ctx context.Context) (uint64, error)
	// Close releases the underlying connection
	Close()
}
