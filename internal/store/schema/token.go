package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/domain"
)

// Token represents the tokens table - the off-chain mirror of one drug NFT.
// One token is one physical unit of a drug batch. Rows are never deleted;
// custody history is preserved by forward-only status transitions.
type Token struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the chain-assigned NFT id (decimal string, unique)
	TokenID string `gorm:"column:token_id;not null;uniqueIndex;type:text"`
	// SerialNumber is the derived unique serial printed on the physical unit
	SerialNumber string `gorm:"column:serial_number;not null;uniqueIndex;type:text"`
	// BatchNumber groups tokens minted from the same production batch
	BatchNumber string `gorm:"column:batch_number;not null;type:text;index"`
	// DrugRef references the drug catalog entry (catalog CRUD is out of scope)
	DrugRef string `gorm:"column:drug_ref;not null;type:text"`
	// ProductionRef references the originating production record; used as a
	// fallback key when resolving tokens for an ambiguous confirmation
	ProductionRef *string `gorm:"column:production_ref;type:text;index"`
	MfgDate       time.Time `gorm:"column:mfg_date;not null"`
	ExpDate       time.Time `gorm:"column:exp_date;not null"`
	Quantity      int64     `gorm:"column:quantity;not null"`
	Unit          string    `gorm:"column:unit;not null;type:text"`
	// Status advances forward only: minted -> transferred -> sold -> {expired|recalled}
	Status domain.TokenStatus `gorm:"column:status;not null;type:text;index:idx_tokens_owner_status,priority:2"`
	// OwnerID is the current custodian, consistent with the latest confirmed handoff
	OwnerID uint64 `gorm:"column:owner_id;not null;index:idx_tokens_owner_status,priority:1"`
	// ChainTxHash is the last confirmed on-chain transaction touching this token
	ChainTxHash *string `gorm:"column:chain_tx_hash;type:text;index"`
	// IPFSUrl points at the uploaded token metadata (upload itself is out of scope)
	IPFSUrl  *string        `gorm:"column:ipfs_url;type:text"`
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	CreatedAt time.Time     `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time     `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
