package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/domain"
)

// RegistrationRequest represents the registration_requests table - one
// onboarding request per prospective participant. The status machine is
// pending -> approved_pending_blockchain -> {approved | blockchain_failed},
// with blockchain_failed retryable by an operator and pending -> rejected
// terminal.
type RegistrationRequest struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Ref is the external UUID reference
	Ref string `gorm:"column:ref;not null;uniqueIndex;type:text"`
	// UserID is the applying user
	UserID uint64 `gorm:"column:user_id;not null;index"`
	// Role is the requested platform role
	Role   domain.Role               `gorm:"column:role;not null;type:text"`
	Status domain.RegistrationStatus `gorm:"column:status;not null;type:text;index"`
	// BlockchainRetryCount counts failed on-chain registration attempts
	BlockchainRetryCount int `gorm:"column:blockchain_retry_count;not null;default:0"`
	// BlockchainLastAttempt records when the chain was last called
	BlockchainLastAttempt *time.Time `gorm:"column:blockchain_last_attempt"`
	// ContractAddress / TransactionHash are set on successful registration;
	// approved requires a non-empty transaction hash
	ContractAddress *string `gorm:"column:contract_address;type:text"`
	TransactionHash *string `gorm:"column:transaction_hash;type:text"`
	// CompanyInfo holds the business fields validated before the chain call
	CompanyInfo  datatypes.JSONType[domain.CompanyInfo] `gorm:"column:company_info;type:jsonb"`
	RejectReason *string                                `gorm:"column:reject_reason;type:text"`
	CreatedAt    time.Time                              `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt    time.Time                              `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the RegistrationRequest model
func (RegistrationRequest) TableName() string {
	return "registration_requests"
}
