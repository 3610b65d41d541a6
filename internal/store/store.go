package store

import (
	"context"
	"time"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/store/schema"
)

// ConditionalTokenUpdate bulk-advances tokens that still match an expected
// prior state. Tokens that moved on (e.g. already finalized by the
// reconciliation listener) are left alone; the caller sees the mismatch in
// the matched count.
type ConditionalTokenUpdate struct {
	TokenIDs       []string
	ExpectedStatus domain.TokenStatus
	ExpectedOwner  uint64
	NewStatus      domain.TokenStatus
	NewOwner       uint64
	ChainTxHash    string
}

// UncheckedTokenUpdate bulk-sets status/owner/hash with no precondition on
// current token state. This is the authoritative path: the phase-4 trust
// anchor and the listener's on-chain-sourced finalization.
type UncheckedTokenUpdate struct {
	TokenIDs    []string
	NewStatus   domain.TokenStatus
	NewOwner    uint64
	ChainTxHash string
}

// UpsertProofInput creates or updates the single proof linked to an intent
type UpsertProofInput struct {
	IntentID    uint64
	Hop         domain.Hop
	FromUserID  uint64
	ToUserID    uint64
	TokenIDs    []string
	Status      string
	ChainTxHash *string
}

// FinalizeHopInput is applied in one transaction when an on-chain event
// closes the distributor->pharmacy hop: the intent (if linked) is marked
// sent, the proof advances to its terminal state, and every affected token
// becomes sold and owned by the pharmacy.
type FinalizeHopInput struct {
	Intent     *schema.TransferIntent // nil when no intent could be linked
	FromUserID uint64
	ToUserID   uint64
	TokenIDs   []string
	TxHash     string
	Timestamp  time.Time
}

// RegistrationSuccessInput is applied in one transaction when the on-chain
// participant registration succeeds: the request is approved, the business
// profile materialized (idempotently) and the user activated.
type RegistrationSuccessInput struct {
	RegistrationID  uint64
	UserID          uint64
	Profile         *schema.BusinessProfile
	TransactionHash string
	ContractAddress string
	AttemptedAt     time.Time
}

// TokenFilter narrows token listings; zero values are ignored
type TokenFilter struct {
	OwnerID     uint64
	Status      domain.TokenStatus
	BatchNumber string
	Page        int
	Limit       int
}

// IntentFilter narrows intent listings; zero values are ignored
type IntentFilter struct {
	FromUserID uint64
	ToUserID   uint64
	Hop        domain.Hop
	Status     domain.IntentStatus
	Page       int
	Limit      int
}

// ProofFilter narrows proof listings; zero values are ignored
type ProofFilter struct {
	Hop    domain.Hop
	Status string
	Page   int
	Limit  int
}

// RegistrationFilter narrows registration listings; zero values are ignored
type RegistrationFilter struct {
	Status domain.RegistrationStatus
	Role   domain.Role
	Page   int
	Limit  int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateTokens inserts the mirror rows for a freshly minted batch
	CreateTokens(ctx context.Context, tokens []*schema.Token) error
	// GetTokensByTokenIDs retrieves tokens by their chain-assigned ids
	GetTokensByTokenIDs(ctx context.Context, tokenIDs []string) ([]*schema.Token, error)
	// GetTokensByChainTxHash retrieves tokens whose last confirmed tx matches
	GetTokensByChainTxHash(ctx context.Context, txHash string) ([]*schema.Token, error)
	// GetTokensByProductionRef retrieves tokens by originating production record
	GetTokensByProductionRef(ctx context.Context, productionRef string) ([]*schema.Token, error)
	// GetTokensByOwnerAndStatus retrieves up to limit tokens held by an owner in a status
	GetTokensByOwnerAndStatus(ctx context.Context, ownerID uint64, status domain.TokenStatus, limit int) ([]*schema.Token, error)
	// ListTokens retrieves tokens matching the filter with a total count
	ListTokens(ctx context.Context, filter TokenFilter) ([]*schema.Token, uint64, error)
	// UpdateTokensConditional advances tokens matching the expected prior
	// state; returns how many rows matched
	UpdateTokensConditional(ctx context.Context, input ConditionalTokenUpdate) (int64, error)
	// UpdateTokensUnchecked sets status/owner/hash unconditionally
	UpdateTokensUnchecked(ctx context.Context, input UncheckedTokenUpdate) error
	// MarkTokenTerminal moves a token into expired or recalled
	MarkTokenTerminal(ctx context.Context, tokenID string, status domain.TokenStatus) error

	// CreateIntent persists a new transfer intent
	CreateIntent(ctx context.Context, intent *schema.TransferIntent) error
	// GetIntentByRef retrieves an intent by its external reference
	GetIntentByRef(ctx context.Context, ref string) (*schema.TransferIntent, error)
	// MarkIntentSent sets status=sent and the chain hash; only pending or
	// sent intents match (a hop may be retried with a different hash)
	MarkIntentSent(ctx context.Context, intentID uint64, txHash string) (bool, error)
	// GetLatestOpenIntentBetween retrieves the most recent non-terminal
	// intent from one user to another
	GetLatestOpenIntentBetween(ctx context.Context, fromUserID, toUserID uint64) (*schema.TransferIntent, error)
	// ListIntents retrieves intents matching the filter with a total count
	ListIntents(ctx context.Context, filter IntentFilter) ([]*schema.TransferIntent, uint64, error)

	// UpsertProofForIntent creates or updates the single proof keyed by intent id
	UpsertProofForIntent(ctx context.Context, input UpsertProofInput) (*schema.ReceiptProof, error)
	// GetProofByIntentID retrieves the proof linked to an intent, nil if none
	GetProofByIntentID(ctx context.Context, intentID uint64) (*schema.ReceiptProof, error)
	// ProofExistsByChainTxHash checks whether any proof already carries the hash
	ProofExistsByChainTxHash(ctx context.Context, txHash string) (bool, error)
	// MarkProofVerified records the sender's counter-approval
	MarkProofVerified(ctx context.Context, proofID uint64, verifiedBy uint64, verifiedAt time.Time) error
	// ListProofs retrieves proofs matching the filter with a total count
	ListProofs(ctx context.Context, filter ProofFilter) ([]*schema.ReceiptProof, uint64, error)

	// FinalizeHop applies an authoritative on-chain finalization in one transaction
	FinalizeHop(ctx context.Context, input FinalizeHopInput) error

	// GetUserByID retrieves a user by primary key
	GetUserByID(ctx context.Context, id uint64) (*schema.User, error)
	// GetUserByRef retrieves a user by external reference
	GetUserByRef(ctx context.Context, ref string) (*schema.User, error)
	// GetUserByWallet resolves a wallet address to a user with the given role
	GetUserByWallet(ctx context.Context, wallet string, role domain.Role) (*schema.User, error)

	// CreateRegistration persists a user and their registration request together
	CreateRegistration(ctx context.Context, user *schema.User, req *schema.RegistrationRequest) error
	// GetRegistrationByRef retrieves a registration request by external reference
	GetRegistrationByRef(ctx context.Context, ref string) (*schema.RegistrationRequest, error)
	// TransitionRegistration conditionally moves a request from one status to
	// another; returns false when the request is not in the expected status
	TransitionRegistration(ctx context.Context, id uint64, from, to domain.RegistrationStatus) (bool, error)
	// RecordRegistrationSuccess applies the approved outcome in one transaction
	RecordRegistrationSuccess(ctx context.Context, input RegistrationSuccessInput) error
	// RecordRegistrationFailure absorbs a failed chain call into durable state
	RecordRegistrationFailure(ctx context.Context, registrationID uint64, attemptedAt time.Time) error
	// RejectRegistration moves a pending request to rejected
	RejectRegistration(ctx context.Context, id uint64, reason string) (bool, error)
	// ListRegistrations retrieves registration requests matching the filter
	ListRegistrations(ctx context.Context, filter RegistrationFilter) ([]*schema.RegistrationRequest, uint64, error)

	// GetBlockCursor retrieves the last processed block number
	GetBlockCursor(ctx context.Context, key string) (uint64, error)
	// SetBlockCursor stores the last processed block number
	SetBlockCursor(ctx context.Context, key string, blockNumber uint64) error
}
