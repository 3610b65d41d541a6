package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/domain"
)

// ReceiptProof represents the receipt_proofs table - the receiver-confirmed
// (and eventually verified) record that a hop was physically completed.
// At most one proof exists per intent; the listener may also create
// standalone proofs (IntentID nil) so on-chain events are never lost when
// no intent can be linked.
//
// Status uses the hop-specific vocabulary: distribution proofs speak
// {pending,in_transit,delivered,confirmed,verified,rejected}, pharmacy
// proofs speak {pending,received,verified,completed,rejected}.
type ReceiptProof struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Ref is the external UUID reference
	Ref string `gorm:"column:ref;not null;uniqueIndex;type:text"`
	// Hop identifies which proof vocabulary Status belongs to
	Hop domain.Hop `gorm:"column:hop;not null;type:text"`
	// IntentID links the proof to its invoice; unique, nil for standalone proofs
	IntentID *uint64 `gorm:"column:intent_id;uniqueIndex"`
	// FromUserID / ToUserID mirror the parties; nil when wallet resolution failed
	FromUserID *uint64                     `gorm:"column:from_user_id"`
	ToUserID   *uint64                     `gorm:"column:to_user_id"`
	TokenIDs   datatypes.JSONSlice[string] `gorm:"column:token_ids;not null;type:jsonb"`
	Status     string                      `gorm:"column:status;not null;type:text;index"`
	// ChainTxHash carries the on-chain transaction that finalized the hop;
	// backfill idempotency is keyed on its presence
	ChainTxHash *string `gorm:"column:chain_tx_hash;type:text;index"`
	// VerifiedBy / VerifiedAt record the sender's counter-approval (distribution hop)
	VerifiedBy *uint64    `gorm:"column:verified_by"`
	VerifiedAt *time.Time `gorm:"column:verified_at"`
	// SupplyChainCompleted marks the whole chain terminal (pharmacy hop only)
	SupplyChainCompleted bool       `gorm:"column:supply_chain_completed;not null;default:false"`
	CompletedAt          *time.Time `gorm:"column:completed_at"`
	CreatedAt            time.Time  `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ReceiptProof model
func (ReceiptProof) TableName() string {
	return "receipt_proofs"
}
