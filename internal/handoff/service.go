package handoff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/adapter"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/ledger"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/messaging"
	"github.com/pharmatrust/custody/internal/store"
	"github.com/pharmatrust/custody/internal/store/schema"
)

// Service drives the four-phase custody handshake for both hops:
//
//	1. sender creates a transfer intent (invoice)
//	2. sender reports the on-chain submission hash
//	3. receiver confirms physical receipt
//	4. sender counter-approves (manufacturer hop only; the pharmacy hop is
//	   closed by the reconciliation listener instead)
//
// Phases 1-3 only ever move the mirror optimistically; phase 4 is the
// sender-side trust anchor and writes authoritatively.
type Service struct {
	store     store.Store
	mirror    *ledger.Mirror
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService creates a handoff protocol service
func NewService(s store.Store, mirror *ledger.Mirror, publisher messaging.Publisher, clock adapter.Clock) *Service {
	return &Service{
		store:     s,
		mirror:    mirror,
		publisher: publisher,
		clock:     clock,
	}
}

// CreateIntentInput starts a handoff: the sender names the hop, the
// receiver, and the exact tokens to move
type CreateIntentInput struct {
	ActorID     uint64
	Hop         domain.Hop
	ToUserRef   string
	TokenIDs    []string
	BatchNumber string
}

// CreateIntent validates and persists a pending transfer intent. The token
// list is snapshotted into the intent and is immutable from here on.
func (s *Service) CreateIntent(ctx context.Context, input CreateIntentInput) (*schema.TransferIntent, error) {
	if !domain.IsValidHop(input.Hop) {
		return nil, domain.NewValidationError("unknown hop %q", input.Hop)
	}
	if len(input.TokenIDs) == 0 {
		return nil, domain.NewValidationError("token ids are required")
	}
	if input.BatchNumber == "" {
		return nil, domain.NewValidationError("batch number is required")
	}

	sender, err := s.store.GetUserByID(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, domain.ErrUserNotFound
	}
	if sender.Role != input.Hop.SenderRole() {
		return nil, domain.NewAuthorizationError("role %s cannot initiate hop %s", sender.Role, input.Hop)
	}
	if sender.Status != domain.UserStatusActive {
		return nil, domain.NewValidationError("sender is not active")
	}
	if sender.WalletAddress == nil || *sender.WalletAddress == "" {
		return nil, domain.NewValidationError("sender has no wallet address")
	}

	receiver, err := s.store.GetUserByRef(ctx, input.ToUserRef)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domain.ErrUserNotFound
	}
	if receiver.Role != input.Hop.ReceiverRole() {
		return nil, domain.NewValidationError("receiver role %s cannot accept hop %s", receiver.Role, input.Hop)
	}
	if receiver.Status != domain.UserStatusActive {
		return nil, domain.NewValidationError("receiver is not active")
	}
	if receiver.WalletAddress == nil || *receiver.WalletAddress == "" {
		return nil, domain.NewValidationError("receiver has no wallet address")
	}

	tokens, err := s.store.GetTokensByTokenIDs(ctx, input.TokenIDs)
	if err != nil {
		return nil, err
	}
	if len(tokens) != len(input.TokenIDs) {
		return nil, domain.NewValidationError("%d of %d tokens not found", len(input.TokenIDs)-len(tokens), len(input.TokenIDs))
	}

	priorStatus := input.Hop.PriorTokenStatus()
	for _, token := range tokens {
		if token.OwnerID != sender.ID {
			return nil, domain.NewAuthorizationError("token %s is not held by the sender", token.TokenID)
		}
		if token.Status != priorStatus {
			return nil, domain.NewValidationError("token %s is %s, expected %s", token.TokenID, token.Status, priorStatus)
		}
	}

	intent := &schema.TransferIntent{
		Ref:         uuid.New().String(),
		Hop:         input.Hop,
		FromUserID:  sender.ID,
		ToUserID:    receiver.ID,
		TokenIDs:    datatypes.NewJSONSlice(input.TokenIDs),
		Quantity:    int64(len(input.TokenIDs)),
		Status:      domain.IntentStatusPending,
		BatchNumber: input.BatchNumber,
	}
	if err := s.store.CreateIntent(ctx, intent); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "transfer intent created",
		zap.String("ref", intent.Ref),
		zap.String("hop", string(intent.Hop)),
		zap.Int("tokens", len(input.TokenIDs)))

	return intent, nil
}

// RecordSubmission handles phase 2: the sender reports the hash of the
// on-chain transfer transaction. The mirror moves optimistically; tokens
// already advanced elsewhere are skipped, not clobbered.
func (s *Service) RecordSubmission(ctx context.Context, intentRef string, actorID uint64, txHash string) error {
	if txHash == "" {
		return domain.NewValidationError("transaction hash is required")
	}

	intent, err := s.store.GetIntentByRef(ctx, intentRef)
	if err != nil {
		return err
	}
	if intent == nil {
		return domain.ErrIntentNotFound
	}
	if intent.FromUserID != actorID {
		return domain.NewAuthorizationError("only the sender can report a submission")
	}

	ok, err := s.store.MarkIntentSent(ctx, intent.ID, txHash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewValidationError("intent %s is %s and cannot be submitted", intent.Ref, intent.Status)
	}

	_, err = s.mirror.ApplyStatusOwnerUpdate(ctx, store.ConditionalTokenUpdate{
		TokenIDs:       intent.TokenIDs,
		ExpectedStatus: intent.Hop.PriorTokenStatus(),
		ExpectedOwner:  intent.FromUserID,
		NewStatus:      intent.Hop.NextTokenStatus(),
		NewOwner:       intent.ToUserID,
		ChainTxHash:    txHash,
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "handoff submission recorded",
		zap.String("ref", intent.Ref),
		zap.String("txHash", txHash))

	return nil
}

// ConfirmReceipt handles phase 3: the receiver confirms physical arrival.
// The resulting proof is upserted; a repeated confirmation lands on the
// same row instead of creating a second proof.
func (s *Service) ConfirmReceipt(ctx context.Context, intentRef string, actorID uint64) (*schema.ReceiptProof, error) {
	intent, err := s.store.GetIntentByRef(ctx, intentRef)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, domain.ErrIntentNotFound
	}
	if intent.ToUserID != actorID {
		return nil, domain.NewAuthorizationError("only the receiver can confirm receipt")
	}
	if intent.Status == domain.IntentStatusPending {
		return nil, domain.NewValidationError("intent %s has not been submitted on-chain yet", intent.Ref)
	}
	if intent.Status.Terminal() {
		return nil, domain.NewValidationError("intent %s is already %s", intent.Ref, intent.Status)
	}

	status := domain.InitialProofStatus(intent.Hop)

	// The proof may already sit past the confirmation state, either from the
	// sender's counter-approval or because the reconciliation listener saw the
	// on-chain event first. Those writes are authoritative; a late or repeated
	// confirmation must not pull the proof backwards.
	existing, err := s.store.GetProofByIntentID(ctx, intent.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !domain.ProofCanTransition(intent.Hop, existing.Status, status) {
		logger.InfoCtx(ctx, "receipt confirmation superseded",
			zap.String("intentRef", intent.Ref),
			zap.String("proofRef", existing.Ref),
			zap.String("status", existing.Status))
		return existing, nil
	}

	proof, err := s.store.UpsertProofForIntent(ctx, store.UpsertProofInput{
		IntentID:    intent.ID,
		Hop:         intent.Hop,
		FromUserID:  intent.FromUserID,
		ToUserID:    intent.ToUserID,
		TokenIDs:    intent.TokenIDs,
		Status:      status,
		ChainTxHash: intent.ChainTxHash,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "receipt confirmed",
		zap.String("intentRef", intent.Ref),
		zap.String("proofRef", proof.Ref),
		zap.String("status", proof.Status))

	return proof, nil
}

// ApproveInput finishes the manufacturer hop: the sender counter-approves
// the receiver's confirmation. ProductionRef is an optional resolution hint.
type ApproveInput struct {
	IntentRef     string
	ActorID       uint64
	ProductionRef string
}

// ApproveHandoff handles phase 4 on the manufacturer hop. The sender's
// approval is the trust anchor: the tokens the resolution strategies find
// are moved unconditionally, superseding any optimistic state.
func (s *Service) ApproveHandoff(ctx context.Context, input ApproveInput) error {
	intent, err := s.store.GetIntentByRef(ctx, input.IntentRef)
	if err != nil {
		return err
	}
	if intent == nil {
		return domain.ErrIntentNotFound
	}
	if intent.Hop != domain.HopManufacturerToDistributor {
		return domain.NewValidationError("hop %s has no counter-approval phase", intent.Hop)
	}
	if intent.FromUserID != input.ActorID {
		return domain.NewAuthorizationError("only the sender can approve a handoff")
	}
	if intent.Status != domain.IntentStatusSent {
		return domain.NewValidationError("intent %s is %s, expected %s", intent.Ref, intent.Status, domain.IntentStatusSent)
	}
	if intent.ChainTxHash == nil || *intent.ChainTxHash == "" {
		return domain.NewValidationError("intent %s has no chain transaction hash", intent.Ref)
	}

	proof, err := s.store.GetProofByIntentID(ctx, intent.ID)
	if err != nil {
		return err
	}
	if proof == nil {
		return domain.ErrProofNotFound
	}
	if domain.DistributionProofStatus(proof.Status) != domain.DistributionProofConfirmed {
		return domain.NewValidationError("proof %s is %s, expected %s", proof.Ref, proof.Status, domain.DistributionProofConfirmed)
	}

	tokens, winner, err := s.mirror.ResolveTokensForHandoff(ctx, ledger.ResolutionHints{
		ChainTxHash:    *intent.ChainTxHash,
		ProductionRef:  input.ProductionRef,
		OwnerID:        intent.FromUserID,
		OwnerStatus:    intent.Hop.PriorTokenStatus(),
		Quantity:       len(intent.TokenIDs),
		IntentTokenIDs: intent.TokenIDs,
	})
	if err != nil {
		return err
	}

	tokenIDs := make([]string, 0, len(tokens))
	for _, token := range tokens {
		tokenIDs = append(tokenIDs, token.TokenID)
	}

	if err := s.mirror.ApplyStatusOwnerUpdateUnchecked(ctx, store.UncheckedTokenUpdate{
		TokenIDs:    tokenIDs,
		NewStatus:   intent.Hop.NextTokenStatus(),
		NewOwner:    intent.ToUserID,
		ChainTxHash: *intent.ChainTxHash,
	}); err != nil {
		return err
	}

	now := s.clock.Now()
	if err := s.store.MarkProofVerified(ctx, proof.ID, input.ActorID, now); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "handoff approved",
		zap.String("intentRef", intent.Ref),
		zap.String("strategy", winner),
		zap.Int("tokens", len(tokenIDs)))

	s.publishEvent(ctx, &messaging.CustodyEvent{
		Hop:        intent.Hop,
		Type:       messaging.CustodyEventApproved,
		IntentRef:  intent.Ref,
		ProofRef:   proof.Ref,
		TokenIDs:   tokenIDs,
		FromUserID: intent.FromUserID,
		ToUserID:   intent.ToUserID,
		TxHash:     *intent.ChainTxHash,
		Timestamp:  now,
	})

	return nil
}

// publishEvent emits a custody event; broker failures never fail the handoff
func (s *Service) publishEvent(ctx context.Context, event *messaging.CustodyEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishCustodyEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish custody event: %w", err),
			zap.String("subject", event.Subject()))
	}
}
