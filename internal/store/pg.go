package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// newRef mints an external reference for rows the store creates itself
func newRef() string {
	return uuid.New().String()
}

// paginate converts (page, limit) into an offset with sane defaults
func paginate(page, limit int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	return (page - 1) * limit, limit
}

// CreateTokens inserts the mirror rows for a freshly minted batch
func (s *pgStore) CreateTokens(ctx context.Context, tokens []*schema.Token) error {
	if len(tokens) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Create(&tokens).Error
	if err != nil {
		return fmt.Errorf("failed to create tokens: %w", err)
	}

	return nil
}

// GetTokensByTokenIDs retrieves tokens by their chain-assigned ids
func (s *pgStore) GetTokensByTokenIDs(ctx context.Context, tokenIDs []string) ([]*schema.Token, error) {
	if len(tokenIDs) == 0 {
		return []*schema.Token{}, nil
	}

	var tokens []*schema.Token
	err := s.db.WithContext(ctx).
		Where("token_id IN ?", tokenIDs).
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens by ids: %w", err)
	}

	return tokens, nil
}

// GetTokensByChainTxHash retrieves tokens whose last confirmed tx matches
func (s *pgStore) GetTokensByChainTxHash(ctx context.Context, txHash string) ([]*schema.Token, error) {
	var tokens []*schema.Token
	err := s.db.WithContext(ctx).
		Where("chain_tx_hash = ?", txHash).
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens by chain tx hash: %w", err)
	}

	return tokens, nil
}

// GetTokensByProductionRef retrieves tokens by originating production record
func (s *pgStore) GetTokensByProductionRef(ctx context.Context, productionRef string) ([]*schema.Token, error) {
	var tokens []*schema.Token
	err := s.db.WithContext(ctx).
		Where("production_ref = ?", productionRef).
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens by production ref: %w", err)
	}

	return tokens, nil
}

// GetTokensByOwnerAndStatus retrieves up to limit tokens held by an owner in a status
func (s *pgStore) GetTokensByOwnerAndStatus(ctx context.Context, ownerID uint64, status domain.TokenStatus, limit int) ([]*schema.Token, error) {
	var tokens []*schema.Token
	query := s.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, status).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to get tokens by owner and status: %w", err)
	}

	return tokens, nil
}

// ListTokens retrieves tokens matching the filter with a total count
func (s *pgStore) ListTokens(ctx context.Context, filter TokenFilter) ([]*schema.Token, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Token{})

	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BatchNumber != "" {
		query = query.Where("batch_number = ?", filter.BatchNumber)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tokens: %w", err)
	}

	offset, limit := paginate(filter.Page, filter.Limit)

	var tokens []*schema.Token
	if err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&tokens).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tokens: %w", err)
	}

	return tokens, uint64(total), nil //nolint:gosec,G115
}

// UpdateTokensConditional advances tokens matching the expected prior state.
// The WHERE clause is the concurrency guard: a token already advanced by the
// reconciliation listener no longer matches and is not clobbered.
func (s *pgStore) UpdateTokensConditional(ctx context.Context, input ConditionalTokenUpdate) (int64, error) {
	if len(input.TokenIDs) == 0 {
		return 0, nil
	}

	tx := s.db.WithContext(ctx).Model(&schema.Token{}).
		Where("token_id IN ? AND status = ? AND owner_id = ?",
			input.TokenIDs, input.ExpectedStatus, input.ExpectedOwner).
		Updates(map[string]interface{}{
			"status":        input.NewStatus,
			"owner_id":      input.NewOwner,
			"chain_tx_hash": input.ChainTxHash,
			"updated_at":    time.Now(),
		})
	if tx.Error != nil {
		return 0, fmt.Errorf("failed to update tokens: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

// UpdateTokensUnchecked sets status/owner/hash unconditionally
func (s *pgStore) UpdateTokensUnchecked(ctx context.Context, input UncheckedTokenUpdate) error {
	return updateTokensUnchecked(s.db.WithContext(ctx), input)
}

// updateTokensUnchecked is shared with FinalizeHop's transaction
func updateTokensUnchecked(db *gorm.DB, input UncheckedTokenUpdate) error {
	if len(input.TokenIDs) == 0 {
		return nil
	}

	err := db.Model(&schema.Token{}).
		Where("token_id IN ?", input.TokenIDs).
		Updates(map[string]interface{}{
			"status":        input.NewStatus,
			"owner_id":      input.NewOwner,
			"chain_tx_hash": input.ChainTxHash,
			"updated_at":    time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update tokens: %w", err)
	}

	return nil
}

// MarkTokenTerminal moves a token into expired or recalled
func (s *pgStore) MarkTokenTerminal(ctx context.Context, tokenID string, status domain.TokenStatus) error {
	if !status.Terminal() {
		return fmt.Errorf("status %s is not terminal", status)
	}

	tx := s.db.WithContext(ctx).Model(&schema.Token{}).
		Where("token_id = ? AND status NOT IN ?", tokenID,
			[]domain.TokenStatus{domain.TokenStatusExpired, domain.TokenStatusRecalled}).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return fmt.Errorf("failed to mark token terminal: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}

	return nil
}

// CreateIntent persists a new transfer intent
func (s *pgStore) CreateIntent(ctx context.Context, intent *schema.TransferIntent) error {
	if err := s.db.WithContext(ctx).Create(intent).Error; err != nil {
		return fmt.Errorf("failed to create intent: %w", err)
	}

	return nil
}

// GetIntentByRef retrieves an intent by its external reference
func (s *pgStore) GetIntentByRef(ctx context.Context, ref string) (*schema.TransferIntent, error) {
	var intent schema.TransferIntent
	err := s.db.WithContext(ctx).Where("ref = ?", ref).First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intent: %w", err)
	}

	return &intent, nil
}

// MarkIntentSent sets status=sent and the chain hash. Pending and sent
// intents both match: a hop may be retried with a different hash when the
// first submission failed on-chain.
func (s *pgStore) MarkIntentSent(ctx context.Context, intentID uint64, txHash string) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&schema.TransferIntent{}).
		Where("id = ? AND status IN ?", intentID,
			[]domain.IntentStatus{domain.IntentStatusPending, domain.IntentStatusSent}).
		Updates(map[string]interface{}{
			"status":        domain.IntentStatusSent,
			"chain_tx_hash": txHash,
			"updated_at":    time.Now(),
		})
	if tx.Error != nil {
		return false, fmt.Errorf("failed to mark intent sent: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// GetLatestOpenIntentBetween retrieves the most recent non-terminal intent
// from one user to another
func (s *pgStore) GetLatestOpenIntentBetween(ctx context.Context, fromUserID, toUserID uint64) (*schema.TransferIntent, error) {
	var intent schema.TransferIntent
	err := s.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ? AND status IN ?", fromUserID, toUserID,
			[]domain.IntentStatus{domain.IntentStatusPending, domain.IntentStatusSent}).
		Order("created_at DESC").
		First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest intent: %w", err)
	}

	return &intent, nil
}

// ListIntents retrieves intents matching the filter with a total count
func (s *pgStore) ListIntents(ctx context.Context, filter IntentFilter) ([]*schema.TransferIntent, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.TransferIntent{})

	if filter.FromUserID != 0 {
		query = query.Where("from_user_id = ?", filter.FromUserID)
	}
	if filter.ToUserID != 0 {
		query = query.Where("to_user_id = ?", filter.ToUserID)
	}
	if filter.Hop != "" {
		query = query.Where("hop = ?", filter.Hop)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count intents: %w", err)
	}

	offset, limit := paginate(filter.Page, filter.Limit)

	var intents []*schema.TransferIntent
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&intents).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list intents: %w", err)
	}

	return intents, uint64(total), nil //nolint:gosec,G115
}

// UpsertProofForIntent creates or updates the single proof keyed by intent
// id. Repeated phase-3 confirmations land on the same row.
func (s *pgStore) UpsertProofForIntent(ctx context.Context, input UpsertProofInput) (*schema.ReceiptProof, error) {
	var result *schema.ReceiptProof
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertProofForIntent(tx, input, &result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// upsertProofForIntent is shared with FinalizeHop's transaction
func upsertProofForIntent(tx *gorm.DB, input UpsertProofInput, result **schema.ReceiptProof) error {
	var existing schema.ReceiptProof
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("intent_id = ?", input.IntentID).
		First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to lock proof: %w", err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		intentID := input.IntentID
		fromID := input.FromUserID
		toID := input.ToUserID
		proof := schema.ReceiptProof{
			Ref:         newRef(),
			Hop:         input.Hop,
			IntentID:    &intentID,
			FromUserID:  &fromID,
			ToUserID:    &toID,
			TokenIDs:    input.TokenIDs,
			Status:      input.Status,
			ChainTxHash: input.ChainTxHash,
		}
		if err := tx.Create(&proof).Error; err != nil {
			return fmt.Errorf("failed to create proof: %w", err)
		}
		*result = &proof
		return nil
	}

	// The proof machines only move forward. A late optimistic write against
	// a row the listener already finalized is a no-op; the stored state wins.
	if !domain.ProofCanTransition(input.Hop, existing.Status, input.Status) {
		*result = &existing
		return nil
	}

	updates := map[string]interface{}{
		"status":     input.Status,
		"updated_at": time.Now(),
	}
	if len(input.TokenIDs) > 0 {
		existing.TokenIDs = input.TokenIDs
		updates["token_ids"] = existing.TokenIDs
	}
	if input.ChainTxHash != nil {
		updates["chain_tx_hash"] = *input.ChainTxHash
	}
	if err := tx.Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update proof: %w", err)
	}
	*result = &existing

	return nil
}

// GetProofByIntentID retrieves the proof linked to an intent, nil if none
func (s *pgStore) GetProofByIntentID(ctx context.Context, intentID uint64) (*schema.ReceiptProof, error) {
	var proof schema.ReceiptProof
	err := s.db.WithContext(ctx).Where("intent_id = ?", intentID).First(&proof).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proof: %w", err)
	}

	return &proof, nil
}

// ProofExistsByChainTxHash checks whether any proof already carries the hash
func (s *pgStore) ProofExistsByChainTxHash(ctx context.Context, txHash string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.ReceiptProof{}).
		Where("chain_tx_hash = ?", txHash).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check proof by chain tx hash: %w", err)
	}

	return count > 0, nil
}

// MarkProofVerified records the sender's counter-approval
func (s *pgStore) MarkProofVerified(ctx context.Context, proofID uint64, verifiedBy uint64, verifiedAt time.Time) error {
	tx := s.db.WithContext(ctx).Model(&schema.ReceiptProof{}).
		Where("id = ?", proofID).
		Updates(map[string]interface{}{
			"status":      string(domain.DistributionProofVerified),
			"verified_by": verifiedBy,
			"verified_at": verifiedAt,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return fmt.Errorf("failed to mark proof verified: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrProofNotFound
	}

	return nil
}

// ListProofs retrieves proofs matching the filter with a total count
func (s *pgStore) ListProofs(ctx context.Context, filter ProofFilter) ([]*schema.ReceiptProof, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.ReceiptProof{})

	if filter.Hop != "" {
		query = query.Where("hop = ?", filter.Hop)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proofs: %w", err)
	}

	offset, limit := paginate(filter.Page, filter.Limit)

	var proofs []*schema.ReceiptProof
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&proofs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list proofs: %w", err)
	}

	return proofs, uint64(total), nil //nolint:gosec,G115
}

// FinalizeHop applies an authoritative on-chain finalization in one
// transaction: intent marked sent (hash attached if absent), proof advanced
// to its terminal pharmacy state, tokens sold and owned by the pharmacy.
// The token update is unconditional: on-chain truth supersedes any
// optimistic phase-2 state.
func (s *pgStore) FinalizeHop(ctx context.Context, input FinalizeHopInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completedAt := input.Timestamp

		if input.Intent != nil {
			updates := map[string]interface{}{
				"status":     domain.IntentStatusSent,
				"updated_at": time.Now(),
			}
			if input.Intent.ChainTxHash == nil || *input.Intent.ChainTxHash == "" {
				updates["chain_tx_hash"] = input.TxHash
			}
			if err := tx.Model(&schema.TransferIntent{}).
				Where("id = ?", input.Intent.ID).
				Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to finalize intent: %w", err)
			}

			txHash := input.TxHash
			var proof *schema.ReceiptProof
			if err := upsertProofForIntent(tx, UpsertProofInput{
				IntentID:    input.Intent.ID,
				Hop:         domain.HopDistributorToPharmacy,
				FromUserID:  input.FromUserID,
				ToUserID:    input.ToUserID,
				TokenIDs:    input.TokenIDs,
				Status:      string(domain.PharmacyProofCompleted),
				ChainTxHash: &txHash,
			}, &proof); err != nil {
				return err
			}

			if err := tx.Model(proof).Updates(map[string]interface{}{
				"supply_chain_completed": true,
				"completed_at":           completedAt,
			}).Error; err != nil {
				return fmt.Errorf("failed to complete proof: %w", err)
			}
		} else {
			txHash := input.TxHash
			fromID := input.FromUserID
			toID := input.ToUserID
			proof := schema.ReceiptProof{
				Ref:                  newRef(),
				Hop:                  domain.HopDistributorToPharmacy,
				TokenIDs:             input.TokenIDs,
				Status:               string(domain.PharmacyProofCompleted),
				ChainTxHash:          &txHash,
				SupplyChainCompleted: true,
				CompletedAt:          &completedAt,
			}
			if fromID != 0 {
				proof.FromUserID = &fromID
			}
			if toID != 0 {
				proof.ToUserID = &toID
			}
			if err := tx.Create(&proof).Error; err != nil {
				return fmt.Errorf("failed to create standalone proof: %w", err)
			}
		}

		if input.ToUserID != 0 {
			return updateTokensUnchecked(tx, UncheckedTokenUpdate{
				TokenIDs:    input.TokenIDs,
				NewStatus:   domain.TokenStatusSold,
				NewOwner:    input.ToUserID,
				ChainTxHash: input.TxHash,
			})
		}

		return nil
	})
}

// GetUserByID retrieves a user by primary key
func (s *pgStore) GetUserByID(ctx context.Context, id uint64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByRef retrieves a user by external reference
func (s *pgStore) GetUserByRef(ctx context.Context, ref string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("ref = ?", ref).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByWallet resolves a wallet address to a user with the given role.
// Wallets are compared case-insensitively; hex casing differs between
// client submissions and event logs.
func (s *pgStore) GetUserByWallet(ctx context.Context, wallet string, role domain.Role) (*schema.User, error) {
	var user schema.User
	query := s.db.WithContext(ctx).Where("LOWER(wallet_address) = LOWER(?)", wallet)
	if role != "" {
		query = query.Where("role = ?", role)
	}

	err := query.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}

	return &user, nil
}

// CreateRegistration persists a user and their registration request together
func (s *pgStore) CreateRegistration(ctx context.Context, user *schema.User, req *schema.RegistrationRequest) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		req.UserID = user.ID
		if err := tx.Create(req).Error; err != nil {
			return fmt.Errorf("failed to create registration request: %w", err)
		}

		return nil
	})
}

// GetRegistrationByRef retrieves a registration request by external reference
func (s *pgStore) GetRegistrationByRef(ctx context.Context, ref string) (*schema.RegistrationRequest, error) {
	var req schema.RegistrationRequest
	err := s.db.WithContext(ctx).Where("ref = ?", ref).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get registration request: %w", err)
	}

	return &req, nil
}

// TransitionRegistration conditionally moves a request between statuses.
// The WHERE clause makes concurrent approvals race-safe: only one caller
// observes a row change.
func (s *pgStore) TransitionRegistration(ctx context.Context, id uint64, from, to domain.RegistrationStatus) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&schema.RegistrationRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, fmt.Errorf("failed to transition registration: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// RecordRegistrationSuccess applies the approved outcome in one transaction.
// The profile insert uses ON CONFLICT DO NOTHING so a retry after a partial
// failure cannot duplicate it.
func (s *pgStore) RecordRegistrationSuccess(ctx context.Context, input RegistrationSuccessInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.RegistrationRequest{}).
			Where("id = ?", input.RegistrationID).
			Updates(map[string]interface{}{
				"status":                  domain.RegistrationApproved,
				"transaction_hash":        input.TransactionHash,
				"contract_address":        input.ContractAddress,
				"blockchain_last_attempt": input.AttemptedAt,
				"updated_at":              time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to approve registration: %w", err)
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "kind"}},
			DoNothing: true,
		}).Create(input.Profile).Error; err != nil {
			return fmt.Errorf("failed to create business profile: %w", err)
		}

		if err := tx.Model(&schema.User{}).
			Where("id = ?", input.UserID).
			Updates(map[string]interface{}{
				"status":     domain.UserStatusActive,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to activate user: %w", err)
		}

		return nil
	})
}

// RecordRegistrationFailure absorbs a failed chain call into durable state:
// status blockchain_failed, retry count incremented, attempt time recorded.
// The user stays non-active.
func (s *pgStore) RecordRegistrationFailure(ctx context.Context, registrationID uint64, attemptedAt time.Time) error {
	err := s.db.WithContext(ctx).Model(&schema.RegistrationRequest{}).
		Where("id = ?", registrationID).
		Updates(map[string]interface{}{
			"status":                  domain.RegistrationBlockchainFailed,
			"blockchain_retry_count":  gorm.Expr("blockchain_retry_count + 1"),
			"blockchain_last_attempt": attemptedAt,
			"updated_at":              time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to record registration failure: %w", err)
	}

	return nil
}

// RejectRegistration moves a pending request to rejected
func (s *pgStore) RejectRegistration(ctx context.Context, id uint64, reason string) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&schema.RegistrationRequest{}).
		Where("id = ? AND status = ?", id, domain.RegistrationPending).
		Updates(map[string]interface{}{
			"status":        domain.RegistrationRejected,
			"reject_reason": reason,
			"updated_at":    time.Now(),
		})
	if tx.Error != nil {
		return false, fmt.Errorf("failed to reject registration: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// ListRegistrations retrieves registration requests matching the filter
func (s *pgStore) ListRegistrations(ctx context.Context, filter RegistrationFilter) ([]*schema.RegistrationRequest, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.RegistrationRequest{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	offset, limit := paginate(filter.Page, filter.Limit)

	var requests []*schema.RegistrationRequest
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list registrations: %w", err)
	}

	return requests, uint64(total), nil //nolint:gosec,G115
}

// GetBlockCursor retrieves the last processed block number
func (s *pgStore) GetBlockCursor(ctx context.Context, key string) (uint64, error) {
	cursorKey := fmt.Sprintf("block_cursor:%s", key)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", cursorKey).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number
func (s *pgStore) SetBlockCursor(ctx context.Context, key string, blockNumber uint64) error {
	kv := schema.KeyValueStore{
		Key:   fmt.Sprintf("block_cursor:%s", key),
		Value: strconv.FormatUint(blockNumber, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
