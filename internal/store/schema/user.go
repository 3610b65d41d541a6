package schema

import (
	"time"

	"github.com/pharmatrust/custody/internal/domain"
)

// User represents the users table. Account management itself is handled
// elsewhere; custody code only resolves users by wallet and flips the
// activation status at onboarding.
type User struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Ref is the external UUID reference
	Ref string `gorm:"column:ref;not null;uniqueIndex;type:text"`
	// Email is the login identity
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// Role is the platform role (admin, pharma_company, distributor, pharmacy)
	Role domain.Role `gorm:"column:role;not null;type:text;index"`
	// WalletAddress is the user's on-chain wallet (hex), unique when set
	WalletAddress *string `gorm:"column:wallet_address;type:text;uniqueIndex"`
	// Status is the activation state; non-active users cannot take part in handoffs
	Status    domain.UserStatus `gorm:"column:status;not null;type:text;default:'pending'"`
	CreatedAt time.Time         `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time         `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BusinessProfile represents the role-specific business profile materialized
// when a registration is approved on-chain. At most one profile exists per
// (user, kind) pair; retries upsert instead of duplicating.
type BusinessProfile struct {
	ID     uint64                 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID uint64                 `gorm:"column:user_id;not null;uniqueIndex:idx_profiles_user_kind,priority:1"`
	Kind   domain.ParticipantKind `gorm:"column:kind;not null;type:text;uniqueIndex:idx_profiles_user_kind,priority:2"`
	// CompanyName, TaxCode and LicenseNo mirror what was registered on-chain
	CompanyName string `gorm:"column:company_name;not null;type:text"`
	TaxCode     string `gorm:"column:tax_code;not null;type:text"`
	LicenseNo   string `gorm:"column:license_no;not null;type:text"`
	// ContractAddress is the access-control contract the participant was registered on
	ContractAddress string    `gorm:"column:contract_address;not null;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the BusinessProfile model
func (BusinessProfile) TableName() string {
	return "business_profiles"
}
