package dto

import (
	"encoding/json"
	"time"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/store/schema"
)

// MintBatchRequest creates the mirror rows for a minted production batch
type MintBatchRequest struct {
	BatchNumber   string          `json:"batch_number" binding:"required"`
	DrugRef       string          `json:"drug_ref" binding:"required"`
	ProductionRef string          `json:"production_ref"`
	TokenIDs      []string        `json:"token_ids" binding:"required"`
	ChainTxHash   string          `json:"chain_tx_hash"`
	MfgDate       time.Time       `json:"mfg_date" binding:"required"`
	ExpDate       time.Time       `json:"exp_date" binding:"required"`
	QuantityPer   int64           `json:"quantity_per"`
	Unit          string          `json:"unit"`
	IPFSUrl       string          `json:"ipfs_url"`
	Metadata      json.RawMessage `json:"metadata"`
}

// CreateIntentRequest starts a custody handoff
type CreateIntentRequest struct {
	Hop         string   `json:"hop" binding:"required"`
	ToUserRef   string   `json:"to_user_ref" binding:"required"`
	TokenIDs    []string `json:"token_ids" binding:"required"`
	BatchNumber string   `json:"batch_number" binding:"required"`
}

// SubmissionRequest reports the on-chain transfer transaction hash
type SubmissionRequest struct {
	TxHash string `json:"tx_hash" binding:"required"`
}

// ApprovalRequest counter-approves a confirmed receipt. ProductionRef is an
// optional token resolution hint.
type ApprovalRequest struct {
	ProductionRef string `json:"production_ref"`
}

// RegistrationSubmitRequest is a prospective participant's self-registration
type RegistrationSubmitRequest struct {
	Email       string             `json:"email" binding:"required"`
	Role        string             `json:"role" binding:"required"`
	CompanyInfo domain.CompanyInfo `json:"company_info" binding:"required"`
}

// RejectRequest declines a pending registration
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TokenResponse is the API view of one mirrored token
type TokenResponse struct {
	TokenID       string    `json:"token_id"`
	SerialNumber  string    `json:"serial_number"`
	BatchNumber   string    `json:"batch_number"`
	DrugRef       string    `json:"drug_ref"`
	ProductionRef *string   `json:"production_ref,omitempty"`
	MfgDate       time.Time `json:"mfg_date"`
	ExpDate       time.Time `json:"exp_date"`
	Quantity      int64     `json:"quantity"`
	Unit          string    `json:"unit"`
	Status        string    `json:"status"`
	OwnerID       uint64    `json:"owner_id"`
	ChainTxHash   *string   `json:"chain_tx_hash,omitempty"`
	IPFSUrl       *string   `json:"ipfs_url,omitempty"`
}

// IntentResponse is the API view of one transfer intent
type IntentResponse struct {
	Ref         string    `json:"ref"`
	Hop         string    `json:"hop"`
	FromUserID  uint64    `json:"from_user_id"`
	ToUserID    uint64    `json:"to_user_id"`
	TokenIDs    []string  `json:"token_ids"`
	Quantity    int64     `json:"quantity"`
	Status      string    `json:"status"`
	ChainTxHash *string   `json:"chain_tx_hash,omitempty"`
	BatchNumber string    `json:"batch_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProofResponse is the API view of one receipt proof
type ProofResponse struct {
	Ref                  string     `json:"ref"`
	Hop                  string     `json:"hop"`
	IntentID             *uint64    `json:"intent_id,omitempty"`
	TokenIDs             []string   `json:"token_ids"`
	Status               string     `json:"status"`
	ChainTxHash          *string    `json:"chain_tx_hash,omitempty"`
	VerifiedBy           *uint64    `json:"verified_by,omitempty"`
	VerifiedAt           *time.Time `json:"verified_at,omitempty"`
	SupplyChainCompleted bool       `json:"supply_chain_completed"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// RegistrationResponse is the API view of one registration request
type RegistrationResponse struct {
	Ref                  string     `json:"ref"`
	Role                 string     `json:"role"`
	Status               string     `json:"status"`
	BlockchainRetryCount int        `json:"blockchain_retry_count"`
	LastAttemptAt        *time.Time `json:"last_attempt_at,omitempty"`
	ContractAddress      *string    `json:"contract_address,omitempty"`
	TransactionHash      *string    `json:"transaction_hash,omitempty"`
	RejectReason         *string    `json:"reject_reason,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// ListResponse wraps a paginated collection
type ListResponse[T any] struct {
	Items []T    `json:"items"`
	Total uint64 `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// FromToken maps a schema token to its API view
func FromToken(t *schema.Token) TokenResponse {
	return TokenResponse{
		TokenID:       t.TokenID,
		SerialNumber:  t.SerialNumber,
		BatchNumber:   t.BatchNumber,
		DrugRef:       t.DrugRef,
		ProductionRef: t.ProductionRef,
		MfgDate:       t.MfgDate,
		ExpDate:       t.ExpDate,
		Quantity:      t.Quantity,
		Unit:          t.Unit,
		Status:        string(t.Status),
		OwnerID:       t.OwnerID,
		ChainTxHash:   t.ChainTxHash,
		IPFSUrl:       t.IPFSUrl,
	}
}

// FromIntent maps a schema intent to its API view
func FromIntent(i *schema.TransferIntent) IntentResponse {
	return IntentResponse{
		Ref:         i.Ref,
		Hop:         string(i.Hop),
		FromUserID:  i.FromUserID,
		ToUserID:    i.ToUserID,
		TokenIDs:    i.TokenIDs,
		Quantity:    i.Quantity,
		Status:      string(i.Status),
		ChainTxHash: i.ChainTxHash,
		BatchNumber: i.BatchNumber,
		CreatedAt:   i.CreatedAt,
	}
}

// FromProof maps a schema proof to its API view
func FromProof(p *schema.ReceiptProof) ProofResponse {
	return ProofResponse{
		Ref:                  p.Ref,
		Hop:                  string(p.Hop),
		IntentID:             p.IntentID,
		TokenIDs:             p.TokenIDs,
		Status:               p.Status,
		ChainTxHash:          p.ChainTxHash,
		VerifiedBy:           p.VerifiedBy,
		VerifiedAt:           p.VerifiedAt,
		SupplyChainCompleted: p.SupplyChainCompleted,
		CompletedAt:          p.CompletedAt,
		CreatedAt:            p.CreatedAt,
	}
}

// FromRegistration maps a schema registration request to its API view
func FromRegistration(r *schema.RegistrationRequest) RegistrationResponse {
	return RegistrationResponse{
		Ref:                  r.Ref,
		Role:                 string(r.Role),
		Status:               string(r.Status),
		BlockchainRetryCount: r.BlockchainRetryCount,
		LastAttemptAt:        r.BlockchainLastAttempt,
		ContractAddress:      r.ContractAddress,
		TransactionHash:      r.TransactionHash,
		RejectReason:         r.RejectReason,
		CreatedAt:            r.CreatedAt,
	}
}
