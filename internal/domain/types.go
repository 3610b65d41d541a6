package domain

import (
	"time"
)

// Role represents a platform user role
type Role string

const (
	RoleAdmin         Role = "admin"
	RolePharmaCompany Role = "pharma_company"
	RoleDistributor   Role = "distributor"
	RolePharmacy      Role = "pharmacy"
)

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	return role == RoleAdmin ||
		role == RolePharmaCompany ||
		role == RoleDistributor ||
		role == RolePharmacy
}

// UserStatus represents the activation state of a platform user
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// Hop identifies one leg of the supply chain
type Hop string

const (
	// HopManufacturerToDistributor is the first leg: tokens move from the
	// minting pharma company to a distributor.
	HopManufacturerToDistributor Hop = "manufacturer_to_distributor"
	// HopDistributorToPharmacy is the final leg: tokens move from a
	// distributor to a pharmacy and the chain completes.
	HopDistributorToPharmacy Hop = "distributor_to_pharmacy"
)

// IsValidHop checks if a hop is valid
func IsValidHop(hop Hop) bool {
	return hop == HopManufacturerToDistributor || hop == HopDistributorToPharmacy
}

// PriorTokenStatus returns the token status a token must hold before this hop starts
func (h Hop) PriorTokenStatus() TokenStatus {
	if h == HopManufacturerToDistributor {
		return TokenStatusMinted
	}
	return TokenStatusTransferred
}

// NextTokenStatus returns the token status a token advances to when this hop completes
func (h Hop) NextTokenStatus() TokenStatus {
	if h == HopManufacturerToDistributor {
		return TokenStatusTransferred
	}
	return TokenStatusSold
}

// SenderRole returns the role required to initiate this hop
func (h Hop) SenderRole() Role {
	if h == HopManufacturerToDistributor {
		return RolePharmaCompany
	}
	return RoleDistributor
}

// ReceiverRole returns the role required to confirm receipt on this hop
func (h Hop) ReceiverRole() Role {
	if h == HopManufacturerToDistributor {
		return RoleDistributor
	}
	return RolePharmacy
}

// IntentStatus represents the lifecycle of a transfer intent (invoice)
type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusSent      IntentStatus = "sent"
	IntentStatusPaid      IntentStatus = "paid"
	IntentStatusCancelled IntentStatus = "cancelled"
)

// Terminal reports whether the intent can no longer change
func (s IntentStatus) Terminal() bool {
	return s == IntentStatusPaid || s == IntentStatusCancelled
}

// TransferEvent is a normalized DistributorToPharmacy event decoded from
// the custody contract. This is the authoritative on-chain truth the
// reconciliation listener replays against the off-chain mirror.
type TransferEvent struct {
	FromWallet  string    `json:"from_wallet"`
	ToWallet    string    `json:"to_wallet"`
	TokenIDs    []string  `json:"token_ids"` // chain token ids, decimal strings
	TxHash      string    `json:"tx_hash"`
	BlockNumber uint64    `json:"block_number"`
	Timestamp   time.Time `json:"timestamp"`
}

// Valid reports whether the event carries everything the reconciler needs
func (e *TransferEvent) Valid() bool {
	return e.FromWallet != "" &&
		e.ToWallet != "" &&
		len(e.TokenIDs) > 0 &&
		e.TxHash != ""
}

// RegistrationReceipt is the result of a successful on-chain participant registration
type RegistrationReceipt struct {
	TxHash          string
	ContractAddress string
}

// CompanyInfo holds the business fields captured at self-registration and
// required before the on-chain participant call
type CompanyInfo struct {
	CompanyName   string `json:"company_name"`
	TaxCode       string `json:"tax_code"`
	LicenseNo     string `json:"license_no"`
	WalletAddress string `json:"wallet_address"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
}
