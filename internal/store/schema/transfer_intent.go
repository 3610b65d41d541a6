package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/domain"
)

// TransferIntent represents the transfer_intents table - the per-hop invoice
// (manufacturer invoice or commercial invoice) recording a planned custody
// transfer. TokenIDs is a snapshot taken at creation and must not be mutated
// once the intent leaves pending; it is the last-resort key for resolving
// ambiguous on-chain confirmations.
type TransferIntent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Ref is the external UUID reference
	Ref string `gorm:"column:ref;not null;uniqueIndex;type:text"`
	// Hop identifies which leg of the supply chain this invoice covers
	Hop domain.Hop `gorm:"column:hop;not null;type:text"`
	// FromUserID is the sender (current custodian)
	FromUserID uint64 `gorm:"column:from_user_id;not null;index:idx_intents_pair,priority:1"`
	// ToUserID is the receiver
	ToUserID uint64 `gorm:"column:to_user_id;not null;index:idx_intents_pair,priority:2"`
	// TokenIDs is the immutable snapshot of chain token ids intended for transfer
	TokenIDs datatypes.JSONSlice[string] `gorm:"column:token_ids;not null;type:jsonb"`
	Quantity int64                       `gorm:"column:quantity;not null"`
	// Status: pending -> sent (chain hash reported) -> paid|cancelled (billing, out of scope)
	Status domain.IntentStatus `gorm:"column:status;not null;type:text;index"`
	// ChainTxHash is set only when the status transitions to sent
	ChainTxHash *string   `gorm:"column:chain_tx_hash;type:text;index"`
	BatchNumber string    `gorm:"column:batch_number;not null;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the TransferIntent model
func (TransferIntent) TableName() string {
	return "transfer_intents"
}
