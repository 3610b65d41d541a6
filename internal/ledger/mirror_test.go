package ledger_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/ledger"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/mocks"
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

type testMirrorMocks struct {
	ctrl   *gomock.Controller
	store  *mocks.MockStore
	mirror *ledger.Mirror
}

func setupTestMirror(t *testing.T) *testMirrorMocks {
	ctrl := gomock.NewController(t)

	tm := &testMirrorMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
	}
	tm.mirror = ledger.NewMirror(tm.store)

	return tm
}

func tearDownTestMirror(tm *testMirrorMocks) {
	tm.ctrl.Finish()
}

func mintInput() ledger.MintBatchInput {
	return ledger.MintBatchInput{
		ManufacturerID: 7,
		BatchNumber:    "BATCH-001",
		DrugRef:        "DRUG-42",
		ProductionRef:  "PROD-9",
		TokenIDs:       []string{"101", "102", "103"},
		ChainTxHash:    "0xmint",
		MfgDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpDate:        time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
		QuantityPer:    30,
		Unit:           "tablet",
	}
}

func TestMirror_MintBatch(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	input := mintInput()

	tm.store.EXPECT().
		CreateTokens(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tokens []*schema.Token) error {
			require.Len(t, tokens, 3)
			for i, token := range tokens {
				assert.Equal(t, input.TokenIDs[i], token.TokenID)
				assert.Equal(t, domain.TokenStatusMinted, token.Status)
				assert.Equal(t, input.ManufacturerID, token.OwnerID)
				assert.Contains(t, token.SerialNumber, input.BatchNumber)
				require.NotNil(t, token.ProductionRef)
				assert.Equal(t, input.ProductionRef, *token.ProductionRef)
				require.NotNil(t, token.ChainTxHash)
				assert.Equal(t, input.ChainTxHash, *token.ChainTxHash)
			}
			return nil
		})

	tokens, err := tm.mirror.MintBatch(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, tokens, 3)

	// Serials must be unique even within one batch
	assert.NotEqual(t, tokens[0].SerialNumber, tokens[1].SerialNumber)
}

func TestMirror_MintBatch_Validation(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	tests := []struct {
		name   string
		mutate func(*ledger.MintBatchInput)
	}{
		{"missing manufacturer", func(in *ledger.MintBatchInput) { in.ManufacturerID = 0 }},
		{"missing batch number", func(in *ledger.MintBatchInput) { in.BatchNumber = "" }},
		{"missing drug ref", func(in *ledger.MintBatchInput) { in.DrugRef = "" }},
		{"no token ids", func(in *ledger.MintBatchInput) { in.TokenIDs = nil }},
		{"expiry before manufacture", func(in *ledger.MintBatchInput) { in.ExpDate = in.MfgDate.AddDate(-1, 0, 0) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := mintInput()
			tc.mutate(&input)

			_, err := tm.mirror.MintBatch(context.Background(), input)

			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestMirror_ApplyStatusOwnerUpdate_RejectsBackwardTransition(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	// Transferred -> minted is backwards; the store must never be touched
	_, err := tm.mirror.ApplyStatusOwnerUpdate(context.Background(), store.ConditionalTokenUpdate{
		TokenIDs:       []string{"101"},
		ExpectedStatus: domain.TokenStatusTransferred,
		NewStatus:      domain.TokenStatusMinted,
	})

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMirror_ApplyStatusOwnerUpdate_PartialMatch(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	input := store.ConditionalTokenUpdate{
		TokenIDs:       []string{"101", "102", "103"},
		ExpectedStatus: domain.TokenStatusMinted,
		ExpectedOwner:  7,
		NewStatus:      domain.TokenStatusTransferred,
		NewOwner:       8,
		ChainTxHash:    "0xabc",
	}

	// One token already advanced elsewhere; two match
	tm.store.EXPECT().UpdateTokensConditional(gomock.Any(), input).Return(int64(2), nil)

	matched, err := tm.mirror.ApplyStatusOwnerUpdate(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), matched)
}

func TestMirror_ResolveTokensForHandoff_FirstStrategyWins(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	hints := ledger.ResolutionHints{
		ChainTxHash:    "0xabc",
		ProductionRef:  "PROD-9",
		OwnerID:        7,
		OwnerStatus:    domain.TokenStatusMinted,
		Quantity:       2,
		IntentTokenIDs: []string{"101", "102"},
	}

	found := []*schema.Token{{TokenID: "101"}, {TokenID: "102"}}

	// Only the first strategy may run; the later lookups are never issued
	tm.store.EXPECT().GetTokensByChainTxHash(gomock.Any(), "0xabc").Return(found, nil)

	tokens, winner, err := tm.mirror.ResolveTokensForHandoff(context.Background(), hints)
	require.NoError(t, err)
	assert.Equal(t, "chain_tx_hash", winner)
	assert.Len(t, tokens, 2)
}

func TestMirror_ResolveTokensForHandoff_FallsThroughInOrder(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	hints := ledger.ResolutionHints{
		ChainTxHash:    "0xabc",
		ProductionRef:  "PROD-9",
		OwnerID:        7,
		OwnerStatus:    domain.TokenStatusMinted,
		Quantity:       1,
		IntentTokenIDs: []string{"101"},
	}

	found := []*schema.Token{{TokenID: "101"}}

	gomock.InOrder(
		tm.store.EXPECT().GetTokensByChainTxHash(gomock.Any(), "0xabc").Return(nil, nil),
		tm.store.EXPECT().GetTokensByProductionRef(gomock.Any(), "PROD-9").Return(nil, nil),
		tm.store.EXPECT().GetTokensByOwnerAndStatus(gomock.Any(), uint64(7), domain.TokenStatusMinted, 1).Return(found, nil),
	)

	tokens, winner, err := tm.mirror.ResolveTokensForHandoff(context.Background(), hints)
	require.NoError(t, err)
	assert.Equal(t, "owner_status", winner)
	assert.Len(t, tokens, 1)
}

func TestMirror_ResolveTokensForHandoff_NothingMatches(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	hints := ledger.ResolutionHints{
		ChainTxHash:    "0xabc",
		IntentTokenIDs: []string{"101"},
	}

	gomock.InOrder(
		tm.store.EXPECT().GetTokensByChainTxHash(gomock.Any(), "0xabc").Return(nil, nil),
		tm.store.EXPECT().GetTokensByTokenIDs(gomock.Any(), []string{"101"}).Return(nil, nil),
	)

	_, _, err := tm.mirror.ResolveTokensForHandoff(context.Background(), hints)

	var resolutionErr *domain.ResolutionError
	require.ErrorAs(t, err, &resolutionErr)
	// Disabled strategies (no hints) never appear in the attempted list
	assert.Equal(t, []string{"chain_tx_hash", "intent_snapshot"}, resolutionErr.Attempted)
}

func TestMirror_ResolveTokensForHandoff_StrategyError(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	dbErr := errors.New("connection reset")
	tm.store.EXPECT().GetTokensByChainTxHash(gomock.Any(), "0xabc").Return(nil, dbErr)

	_, _, err := tm.mirror.ResolveTokensForHandoff(context.Background(), ledger.ResolutionHints{ChainTxHash: "0xabc"})
	assert.ErrorIs(t, err, dbErr)
}

func TestMirror_MarkExpiredAndRecalled(t *testing.T) {
	tm := setupTestMirror(t)
	defer tearDownTestMirror(tm)

	tm.store.EXPECT().MarkTokenTerminal(gomock.Any(), "101", domain.TokenStatusExpired).Return(nil)
	tm.store.EXPECT().MarkTokenTerminal(gomock.Any(), "102", domain.TokenStatusRecalled).Return(domain.ErrTokenNotFound)

	assert.NoError(t, tm.mirror.MarkExpired(context.Background(), "101"))
	assert.ErrorIs(t, tm.mirror.MarkRecalled(context.Background(), "102"), domain.ErrTokenNotFound)
}
