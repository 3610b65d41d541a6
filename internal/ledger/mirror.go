package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/store"
	"github.com/pharmatrust/custody/internal/store/schema"
)

// Mirror maintains the off-chain view of the token ledger. It never talks to
// the chain itself; callers feed it either optimistic client reports or
// authoritative on-chain events, and it keeps the tokens table consistent
// with forward-only status transitions.
type Mirror struct {
	store store.Store
}

// NewMirror creates a token ledger mirror backed by the given store
func NewMirror(s store.Store) *Mirror {
	return &Mirror{store: s}
}

// MintBatchInput describes one production batch whose NFTs were just minted
// on-chain. TokenIDs are the chain-assigned ids from the mint transaction.
type MintBatchInput struct {
	ManufacturerID uint64
	BatchNumber    string
	DrugRef        string
	ProductionRef  string
	TokenIDs       []string
	ChainTxHash    string
	MfgDate        time.Time
	ExpDate        time.Time
	QuantityPer    int64
	Unit           string
	IPFSUrl        string
	Metadata       datatypes.JSON
}

// MintBatch creates the mirror rows for a freshly minted batch. Every token
// starts minted and owned by the manufacturer, with a serial derived from
// the batch number and a ULID.
func (m *Mirror) MintBatch(ctx context.Context, input MintBatchInput) ([]*schema.Token, error) {
	if input.ManufacturerID == 0 {
		return nil, domain.NewValidationError("manufacturer is required")
	}
	if input.BatchNumber == "" {
		return nil, domain.NewValidationError("batch number is required")
	}
	if input.DrugRef == "" {
		return nil, domain.NewValidationError("drug reference is required")
	}
	if len(input.TokenIDs) == 0 {
		return nil, domain.NewValidationError("token ids are required")
	}
	if !input.ExpDate.After(input.MfgDate) {
		return nil, domain.NewValidationError("expiry date must be after manufacturing date")
	}

	tokens := make([]*schema.Token, 0, len(input.TokenIDs))
	for _, tokenID := range input.TokenIDs {
		token := &schema.Token{
			TokenID:      tokenID,
			SerialNumber: fmt.Sprintf("%s-%s", input.BatchNumber, ulid.Make().String()),
			BatchNumber:  input.BatchNumber,
			DrugRef:      input.DrugRef,
			MfgDate:      input.MfgDate,
			ExpDate:      input.ExpDate,
			Quantity:     input.QuantityPer,
			Unit:         input.Unit,
			Status:       domain.TokenStatusMinted,
			OwnerID:      input.ManufacturerID,
			Metadata:     input.Metadata,
		}
		if input.ProductionRef != "" {
			ref := input.ProductionRef
			token.ProductionRef = &ref
		}
		if input.ChainTxHash != "" {
			hash := input.ChainTxHash
			token.ChainTxHash = &hash
		}
		if input.IPFSUrl != "" {
			url := input.IPFSUrl
			token.IPFSUrl = &url
		}
		tokens = append(tokens, token)
	}

	if err := m.store.CreateTokens(ctx, tokens); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "minted token batch",
		zap.String("batchNumber", input.BatchNumber),
		zap.Int("count", len(tokens)),
		zap.Uint64("manufacturerID", input.ManufacturerID))

	return tokens, nil
}

// ApplyStatusOwnerUpdate advances tokens optimistically: only tokens still
// in the expected prior state move. Returns how many tokens matched; a
// count below len(TokenIDs) means some tokens were already advanced
// elsewhere, which is not an error.
func (m *Mirror) ApplyStatusOwnerUpdate(ctx context.Context, input store.ConditionalTokenUpdate) (int64, error) {
	if !input.ExpectedStatus.CanTransitionTo(input.NewStatus) {
		return 0, domain.NewValidationError("token status cannot move from %s to %s",
			input.ExpectedStatus, input.NewStatus)
	}

	matched, err := m.store.UpdateTokensConditional(ctx, input)
	if err != nil {
		return 0, err
	}

	if matched < int64(len(input.TokenIDs)) {
		logger.WarnCtx(ctx, "partial token update, some tokens no longer in expected state",
			zap.Int64("matched", matched),
			zap.Int("requested", len(input.TokenIDs)),
			zap.String("expectedStatus", string(input.ExpectedStatus)),
			zap.String("newStatus", string(input.NewStatus)))
	}

	return matched, nil
}

// ApplyStatusOwnerUpdateUnchecked applies an update with no precondition on
// current token state. Reserved for the trusted paths, the sender's phase-4
// approval and the reconciliation listener, where the caller's view is
// authoritative and must win over any optimistic state.
func (m *Mirror) ApplyStatusOwnerUpdateUnchecked(ctx context.Context, input store.UncheckedTokenUpdate) error {
	return m.store.UpdateTokensUnchecked(ctx, input)
}

// MarkExpired moves a token into the absorbing expired state
func (m *Mirror) MarkExpired(ctx context.Context, tokenID string) error {
	return m.store.MarkTokenTerminal(ctx, tokenID, domain.TokenStatusExpired)
}

// MarkRecalled moves a token into the absorbing recalled state
func (m *Mirror) MarkRecalled(ctx context.Context, tokenID string) error {
	return m.store.MarkTokenTerminal(ctx, tokenID, domain.TokenStatusRecalled)
}

// ResolutionHints are the lookup keys available when resolving which tokens
// a confirmation refers to. Empty fields disable the corresponding strategy.
type ResolutionHints struct {
	// ChainTxHash matches tokens already stamped with the reported hash
	ChainTxHash string
	// ProductionRef matches tokens of the originating production record
	ProductionRef string
	// OwnerID + OwnerStatus + Quantity select tokens the sender still holds
	OwnerID     uint64
	OwnerStatus domain.TokenStatus
	Quantity    int
	// IntentTokenIDs is the intent's immutable snapshot, the last resort
	IntentTokenIDs []string
}

type resolutionStrategy struct {
	name    string
	resolve func(ctx context.Context) ([]*schema.Token, error)
}

// strategies builds the ordered attempt list for the given hints. Order is
// most-specific first; the first strategy returning tokens wins and later
// strategies are not evaluated.
func (m *Mirror) strategies(hints ResolutionHints) []resolutionStrategy {
	var list []resolutionStrategy

	if hints.ChainTxHash != "" {
		list = append(list, resolutionStrategy{
			name: "chain_tx_hash",
			resolve: func(ctx context.Context) ([]*schema.Token, error) {
				return m.store.GetTokensByChainTxHash(ctx, hints.ChainTxHash)
			},
		})
	}
	if hints.ProductionRef != "" {
		list = append(list, resolutionStrategy{
			name: "production_ref",
			resolve: func(ctx context.Context) ([]*schema.Token, error) {
				return m.store.GetTokensByProductionRef(ctx, hints.ProductionRef)
			},
		})
	}
	if hints.OwnerID != 0 && hints.OwnerStatus != "" {
		list = append(list, resolutionStrategy{
			name: "owner_status",
			resolve: func(ctx context.Context) ([]*schema.Token, error) {
				return m.store.GetTokensByOwnerAndStatus(ctx, hints.OwnerID, hints.OwnerStatus, hints.Quantity)
			},
		})
	}
	if len(hints.IntentTokenIDs) > 0 {
		list = append(list, resolutionStrategy{
			name: "intent_snapshot",
			resolve: func(ctx context.Context) ([]*schema.Token, error) {
				return m.store.GetTokensByTokenIDs(ctx, hints.IntentTokenIDs)
			},
		})
	}

	return list
}

// ResolveTokensForHandoff finds the tokens a confirmation refers to by
// walking the hint-derived strategies in order. Returns the tokens, the
// name of the winning strategy, and a ResolutionError listing every
// attempted strategy when nothing matched.
func (m *Mirror) ResolveTokensForHandoff(ctx context.Context, hints ResolutionHints) ([]*schema.Token, string, error) {
	attempted := []string{}
	for _, strategy := range m.strategies(hints) {
		attempted = append(attempted, strategy.name)

		tokens, err := strategy.resolve(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("resolution strategy %s failed: %w", strategy.name, err)
		}
		if len(tokens) > 0 {
			logger.DebugCtx(ctx, "resolved tokens for handoff",
				zap.String("strategy", strategy.name),
				zap.Int("count", len(tokens)))
			return tokens, strategy.name, nil
		}
	}

	return nil, "", &domain.ResolutionError{Attempted: attempted}
}
