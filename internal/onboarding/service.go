package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/adapter"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/store"
	"github.com/pharmatrust/custody/internal/store/schema"
)

// transientRetryWindow bounds RPC-level retries within one registration
// attempt. The state machine counts the whole window as a single attempt.
const transientRetryWindow = 15 * time.Second

// Service drives the registration state machine:
//
//	pending -> approved_pending_blockchain -> approved
//	                                       -> blockchain_failed (operator may retry)
//	pending -> rejected
//
// A failed chain call is absorbed into blockchain_failed with an incremented
// retry counter; nothing retries automatically.
type Service struct {
	store      store.Store
	registrar  Registrar
	onboarders map[domain.ParticipantKind]Onboarder
	clock      adapter.Clock
}

// NewService creates an onboarding service
func NewService(s store.Store, registrar Registrar, onboarders map[domain.ParticipantKind]Onboarder, clock adapter.Clock) *Service {
	return &Service{
		store:      s,
		registrar:  registrar,
		onboarders: onboarders,
		clock:      clock,
	}
}

// SubmitInput is a prospective participant's self-registration
type SubmitInput struct {
	Email string
	Role  domain.Role
	Info  domain.CompanyInfo
}

// Submit validates and persists a registration request together with its
// pending user. The user stays non-active until the chain call succeeds.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*schema.RegistrationRequest, error) {
	if input.Email == "" {
		return nil, domain.NewValidationError("email is required")
	}

	kind, ok := domain.ParticipantKindForRole(input.Role)
	if !ok {
		return nil, domain.NewValidationError("role %q cannot register as a participant", input.Role)
	}

	onboarder, ok := s.onboarders[kind]
	if !ok {
		return nil, fmt.Errorf("no onboarder for participant kind %s", kind)
	}
	if err := onboarder.ValidateInfo(input.Info); err != nil {
		return nil, err
	}

	wallet := input.Info.WalletAddress
	user := &schema.User{
		Ref:           uuid.New().String(),
		Email:         input.Email,
		Role:          input.Role,
		WalletAddress: &wallet,
		Status:        domain.UserStatusPending,
	}
	req := &schema.RegistrationRequest{
		Ref:         uuid.New().String(),
		Role:        input.Role,
		Status:      domain.RegistrationPending,
		CompanyInfo: datatypes.NewJSONType(input.Info),
	}

	if err := s.store.CreateRegistration(ctx, user, req); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "registration submitted",
		zap.String("ref", req.Ref),
		zap.String("role", string(input.Role)))

	return req, nil
}

// Approve moves a pending request to approved_pending_blockchain and makes
// the first on-chain attempt
func (s *Service) Approve(ctx context.Context, ref string) (*schema.RegistrationRequest, error) {
	return s.advance(ctx, ref, domain.RegistrationPending)
}

// Retry re-attempts the chain call for a request stuck in blockchain_failed.
// Only an explicit operator action reaches here.
func (s *Service) Retry(ctx context.Context, ref string) (*schema.RegistrationRequest, error) {
	return s.advance(ctx, ref, domain.RegistrationBlockchainFailed)
}

// advance transitions the request into approved_pending_blockchain from the
// expected prior status and runs one registration attempt
func (s *Service) advance(ctx context.Context, ref string, from domain.RegistrationStatus) (*schema.RegistrationRequest, error) {
	req, err := s.store.GetRegistrationByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrRegistrationNotFound
	}

	if from == domain.RegistrationBlockchainFailed && !req.Status.Retryable() {
		return nil, domain.NewValidationError("registration %s is %s and cannot be retried", req.Ref, req.Status)
	}

	kind, ok := domain.ParticipantKindForRole(req.Role)
	if !ok {
		return nil, domain.NewValidationError("role %q cannot register as a participant", req.Role)
	}
	onboarder, ok := s.onboarders[kind]
	if !ok {
		return nil, fmt.Errorf("no onboarder for participant kind %s", kind)
	}

	// Malformed company info must surface to the operator before any state
	// moves or the chain is called; it would otherwise come back as a chain
	// failure and invite pointless retries.
	if err := onboarder.ValidateInfo(req.CompanyInfo.Data()); err != nil {
		return nil, err
	}

	transitioned, err := s.store.TransitionRegistration(ctx, req.ID, from, domain.RegistrationApprovedPendingBC)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, domain.NewValidationError("registration %s is not %s", req.Ref, from)
	}

	if err := s.attempt(ctx, req, kind, onboarder); err != nil {
		return nil, err
	}

	return s.store.GetRegistrationByRef(ctx, ref)
}

// Reject declines a pending request. Terminal; the chain is never called.
func (s *Service) Reject(ctx context.Context, ref, reason string) error {
	if reason == "" {
		return domain.NewValidationError("reject reason is required")
	}

	req, err := s.store.GetRegistrationByRef(ctx, ref)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrRegistrationNotFound
	}

	ok, err := s.store.RejectRegistration(ctx, req.ID, reason)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewValidationError("registration %s is %s and cannot be rejected", req.Ref, req.Status)
	}

	logger.InfoCtx(ctx, "registration rejected",
		zap.String("ref", req.Ref),
		zap.String("reason", reason))

	return nil
}

// attempt performs exactly one on-chain registration attempt and records its
// outcome. Transient RPC errors are retried briefly inside the attempt; only
// a failed attempt moves the retry counter, success never touches it.
//
// The request row already sits in approved_pending_blockchain here, so every
// failure path must land it in blockchain_failed before returning; bailing
// out early would strand the row in a state neither approve nor retry
// accepts.
func (s *Service) attempt(ctx context.Context, req *schema.RegistrationRequest, kind domain.ParticipantKind, onboarder Onboarder) error {
	attemptedAt := s.clock.Now()

	user, err := s.store.GetUserByID(ctx, req.UserID)
	if err == nil && user == nil {
		err = domain.ErrUserNotFound
	}
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("registration user lookup failed: %w", err),
			zap.String("ref", req.Ref))

		if recordErr := s.store.RecordRegistrationFailure(ctx, req.ID, attemptedAt); recordErr != nil {
			return fmt.Errorf("failed to record registration failure: %w", recordErr)
		}
		return err
	}

	info := req.CompanyInfo.Data()

	var receipt *domain.RegistrationReceipt
	operation := func() error {
		var opErr error
		receipt, opErr = onboarder.Register(ctx, s.registrar, info)
		if opErr != nil {
			var validationErr *domain.ValidationError
			if errors.As(opErr, &validationErr) {
				return backoff.Permanent(opErr)
			}
		}
		return opErr
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = transientRetryWindow

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("on-chain registration failed: %w", err),
			zap.String("ref", req.Ref),
			zap.String("kind", string(kind)))

		if recordErr := s.store.RecordRegistrationFailure(ctx, req.ID, attemptedAt); recordErr != nil {
			return fmt.Errorf("failed to record registration failure: %w", recordErr)
		}
		return nil
	}

	profile := &schema.BusinessProfile{
		UserID:          user.ID,
		Kind:            kind,
		CompanyName:     info.CompanyName,
		TaxCode:         info.TaxCode,
		LicenseNo:       info.LicenseNo,
		ContractAddress: receipt.ContractAddress,
	}

	if err := s.store.RecordRegistrationSuccess(ctx, store.RegistrationSuccessInput{
		RegistrationID:  req.ID,
		UserID:          user.ID,
		Profile:         profile,
		TransactionHash: receipt.TxHash,
		ContractAddress: receipt.ContractAddress,
		AttemptedAt:     attemptedAt,
	}); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "participant registered on-chain",
		zap.String("ref", req.Ref),
		zap.String("kind", string(kind)),
		zap.String("txHash", receipt.TxHash))

	return nil
}
