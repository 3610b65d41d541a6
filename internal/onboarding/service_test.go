package onboarding_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/mocks"
	"github.com/pharmatrust/custody/internal/onboarding"
	"github.com/pharmatrust/custody/internal/store"
	"github.com/pharmatrust/custody/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testOnboardingMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	registrar *mocks.MockRegistrar
	clock     *mocks.MockClock
	service   *onboarding.Service
}

func setupTestOnboarding(t *testing.T) *testOnboardingMocks {
	ctrl := gomock.NewController(t)

	tm := &testOnboardingMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		registrar: mocks.NewMockRegistrar(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.service = onboarding.NewService(tm.store, tm.registrar, onboarding.Onboarders(), tm.clock)

	return tm
}

func tearDownTestOnboarding(tm *testOnboardingMocks) {
	tm.ctrl.Finish()
}

func companyInfo() domain.CompanyInfo {
	return domain.CompanyInfo{
		CompanyName:   "Acme Pharma",
		TaxCode:       "TAX-123",
		LicenseNo:     "LIC-456",
		WalletAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
	}
}

func pendingRequest() *schema.RegistrationRequest {
	return &schema.RegistrationRequest{
		ID:          31,
		Ref:         "reg-ref",
		UserID:      41,
		Role:        domain.RolePharmaCompany,
		Status:      domain.RegistrationPending,
		CompanyInfo: datatypes.NewJSONType(companyInfo()),
	}
}

func TestService_Submit(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	tm.store.EXPECT().
		CreateRegistration(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *schema.User, req *schema.RegistrationRequest) error {
			assert.Equal(t, domain.UserStatusPending, user.Status)
			assert.Equal(t, domain.RolePharmaCompany, user.Role)
			require.NotNil(t, user.WalletAddress)
			assert.Equal(t, companyInfo().WalletAddress, *user.WalletAddress)
			assert.Equal(t, domain.RegistrationPending, req.Status)
			return nil
		})

	req, err := tm.service.Submit(context.Background(), onboarding.SubmitInput{
		Email: "contact@acme.example",
		Role:  domain.RolePharmaCompany,
		Info:  companyInfo(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationPending, req.Status)
}

func TestService_Submit_Validation(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	tests := []struct {
		name   string
		mutate func(*onboarding.SubmitInput)
	}{
		{"missing email", func(in *onboarding.SubmitInput) { in.Email = "" }},
		{"admin cannot register", func(in *onboarding.SubmitInput) { in.Role = domain.RoleAdmin }},
		{"missing company name", func(in *onboarding.SubmitInput) { in.Info.CompanyName = "" }},
		{"missing tax code", func(in *onboarding.SubmitInput) { in.Info.TaxCode = "" }},
		{"bad wallet address", func(in *onboarding.SubmitInput) { in.Info.WalletAddress = "not-hex" }},
		{"pharma company needs license", func(in *onboarding.SubmitInput) { in.Info.LicenseNo = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := onboarding.SubmitInput{
				Email: "contact@acme.example",
				Role:  domain.RolePharmaCompany,
				Info:  companyInfo(),
			}
			tc.mutate(&input)

			_, err := tm.service.Submit(context.Background(), input)

			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestService_Submit_DistributorLicenseOptional(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	info := companyInfo()
	info.LicenseNo = ""

	tm.store.EXPECT().CreateRegistration(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := tm.service.Submit(context.Background(), onboarding.SubmitInput{
		Email: "ops@dist.example",
		Role:  domain.RoleDistributor,
		Info:  info,
	})
	assert.NoError(t, err)
}

func TestService_Approve_Success(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	req := pendingRequest()
	user := &schema.User{ID: 41, Ref: "user-ref", Role: domain.RolePharmaCompany, Status: domain.UserStatusPending}
	receipt := &domain.RegistrationReceipt{TxHash: "0xreg", ContractAddress: "0xcontract"}
	approved := pendingRequest()
	approved.Status = domain.RegistrationApproved

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().
		TransitionRegistration(gomock.Any(), uint64(31), domain.RegistrationPending, domain.RegistrationApprovedPendingBC).
		Return(true, nil)
	tm.store.EXPECT().GetUserByID(gomock.Any(), uint64(41)).Return(user, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.registrar.EXPECT().
		RegisterParticipant(gomock.Any(), companyInfo().WalletAddress, "TAX-123", "LIC-456").
		Return(receipt, nil)
	tm.store.EXPECT().
		RecordRegistrationSuccess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.RegistrationSuccessInput) error {
			assert.Equal(t, uint64(31), input.RegistrationID)
			assert.Equal(t, uint64(41), input.UserID)
			assert.Equal(t, "0xreg", input.TransactionHash)
			assert.Equal(t, now, input.AttemptedAt)
			require.NotNil(t, input.Profile)
			assert.Equal(t, domain.ParticipantPharmaCompany, input.Profile.Kind)
			assert.Equal(t, "Acme Pharma", input.Profile.CompanyName)
			return nil
		})
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(approved, nil)

	result, err := tm.service.Approve(context.Background(), "reg-ref")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationApproved, result.Status)
}

func TestService_Approve_ChainFailureAbsorbed(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	req := pendingRequest()
	user := &schema.User{ID: 41, Role: domain.RolePharmaCompany}
	failed := pendingRequest()
	failed.Status = domain.RegistrationBlockchainFailed
	failed.BlockchainRetryCount = 1

	// A rejection from the contract is permanent; the attempt records the
	// failure exactly once and the call itself succeeds
	permanentErr := domain.NewValidationError("wallet already registered")

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().
		TransitionRegistration(gomock.Any(), uint64(31), domain.RegistrationPending, domain.RegistrationApprovedPendingBC).
		Return(true, nil)
	tm.store.EXPECT().GetUserByID(gomock.Any(), uint64(41)).Return(user, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.registrar.EXPECT().
		RegisterParticipant(gomock.Any(), companyInfo().WalletAddress, "TAX-123", "LIC-456").
		Return(nil, permanentErr)
	tm.store.EXPECT().RecordRegistrationFailure(gomock.Any(), uint64(31), now).Return(nil)
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(failed, nil)

	result, err := tm.service.Approve(context.Background(), "reg-ref")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationBlockchainFailed, result.Status)
	assert.Equal(t, 1, result.BlockchainRetryCount)
}

func TestService_Approve_MalformedInfoRejectedBeforeChain(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	info := companyInfo()
	info.WalletAddress = "not-hex"
	req := pendingRequest()
	req.CompanyInfo = datatypes.NewJSONType(info)

	// Malformed company info surfaces as a validation error before any
	// status moves; the registrar is never called and nothing is retried
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)

	_, err := tm.service.Approve(context.Background(), "reg-ref")

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Approve_UserLookupFailureLandsRetryable(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	req := pendingRequest()

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().
		TransitionRegistration(gomock.Any(), uint64(31), domain.RegistrationPending, domain.RegistrationApprovedPendingBC).
		Return(true, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetUserByID(gomock.Any(), uint64(41)).Return(nil, errors.New("connection reset"))

	// The failure is absorbed into blockchain_failed so the request stays
	// reachable through retry instead of stranding in approved_pending_blockchain
	tm.store.EXPECT().RecordRegistrationFailure(gomock.Any(), uint64(31), now).Return(nil)

	_, err := tm.service.Approve(context.Background(), "reg-ref")
	assert.Error(t, err)
}

func TestService_Approve_TransientErrorRetriedWithinAttempt(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	req := pendingRequest()
	user := &schema.User{ID: 41, Role: domain.RolePharmaCompany}
	approved := pendingRequest()
	approved.Status = domain.RegistrationApproved
	receipt := &domain.RegistrationReceipt{TxHash: "0xreg", ContractAddress: "0xcontract"}

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().
		TransitionRegistration(gomock.Any(), uint64(31), domain.RegistrationPending, domain.RegistrationApprovedPendingBC).
		Return(true, nil)
	tm.store.EXPECT().GetUserByID(gomock.Any(), uint64(41)).Return(user, nil)
	tm.clock.EXPECT().Now().Return(now)

	// First call hits a transient RPC error, the in-attempt retry succeeds.
	// The retry counter never moves: no failure is recorded.
	gomock.InOrder(
		tm.registrar.EXPECT().
			RegisterParticipant(gomock.Any(), companyInfo().WalletAddress, "TAX-123", "LIC-456").
			Return(nil, errors.New("connection refused")),
		tm.registrar.EXPECT().
			RegisterParticipant(gomock.Any(), companyInfo().WalletAddress, "TAX-123", "LIC-456").
			Return(receipt, nil),
	)
	tm.store.EXPECT().RecordRegistrationSuccess(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(approved, nil)

	result, err := tm.service.Approve(context.Background(), "reg-ref")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationApproved, result.Status)
}

func TestService_Approve_NotPending(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	req := pendingRequest()
	req.Status = domain.RegistrationApproved

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().
		TransitionRegistration(gomock.Any(), uint64(31), domain.RegistrationPending, domain.RegistrationApprovedPendingBC).
		Return(false, nil)

	_, err := tm.service.Approve(context.Background(), "reg-ref")

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Retry_OnlyFromBlockchainFailed(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	req := pendingRequest()
	req.Status = domain.RegistrationApproved

	// An approved registration is terminal; retry must refuse before any
	// state transition happens
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)

	_, err := tm.service.Retry(context.Background(), "reg-ref")

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Retry_FromBlockchainFailed(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	now := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	req := pendingRequest()
	req.Status = domain.RegistrationBlockchainFailed
	req.BlockchainRetryCount = 1
	user := &schema.User{ID: 41, Role: domain.RolePharmaCompany}
	approved := pendingRequest()
	approved.Status = domain.RegistrationApproved
	receipt := &domain.RegistrationReceipt{TxHash: "0xreg2", ContractAddress: "0xcontract"}

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().
		TransitionRegistration(gomock.Any(), uint64(31), domain.RegistrationBlockchainFailed, domain.RegistrationApprovedPendingBC).
		Return(true, nil)
	tm.store.EXPECT().GetUserByID(gomock.Any(), uint64(41)).Return(user, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.registrar.EXPECT().
		RegisterParticipant(gomock.Any(), companyInfo().WalletAddress, "TAX-123", "LIC-456").
		Return(receipt, nil)
	tm.store.EXPECT().RecordRegistrationSuccess(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(approved, nil)

	result, err := tm.service.Retry(context.Background(), "reg-ref")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationApproved, result.Status)
}

func TestService_Reject(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	req := pendingRequest()
	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().RejectRegistration(gomock.Any(), uint64(31), "incomplete documents").Return(true, nil)

	err := tm.service.Reject(context.Background(), "reg-ref", "incomplete documents")
	assert.NoError(t, err)
}

func TestService_Reject_RequiresReason(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	err := tm.service.Reject(context.Background(), "reg-ref", "")

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestService_Reject_NotPending(t *testing.T) {
	tm := setupTestOnboarding(t)
	defer tearDownTestOnboarding(tm)

	req := pendingRequest()
	req.Status = domain.RegistrationApproved

	tm.store.EXPECT().GetRegistrationByRef(gomock.Any(), "reg-ref").Return(req, nil)
	tm.store.EXPECT().RejectRegistration(gomock.Any(), uint64(31), "too late").Return(false, nil)

	err := tm.service.Reject(context.Background(), "reg-ref", "too late")

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
