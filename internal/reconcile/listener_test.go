package reconcile_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/messaging"
	"github.com/pharmatrust/custody/internal/mocks"
	"github.com/pharmatrust/custody/internal/reconcile"
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

type testListenerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	listener   *reconcile.Listener
}

func setupTestListener(t *testing.T, cfg reconcile.Config) *testListenerMocks {
	ctrl := gomock.NewController(t)

	tm := &testListenerMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
	}
	tm.listener = reconcile.NewListener(cfg, tm.store, tm.subscriber, tm.publisher)

	return tm
}

func tearDownTestListener(tm *testListenerMocks) {
	tm.ctrl.Finish()
}

func transferEvent() *domain.TransferEvent {
	return &domain.TransferEvent{
		FromWallet:  "0xDist",
		ToWallet:    "0xPharm",
		TokenIDs:    []string{"101", "102"},
		TxHash:      "0xfinal",
		BlockNumber: 500,
		Timestamp:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestListener_SyncPastEvents_FinalizesLinkedIntent(t *testing.T) {
	tm := setupTestListener(t, reconcile.Config{CursorKey: "test", WorkerPoolSize: 1})
	defer tearDownTestListener(tm)

	event := transferEvent()
	dist := &schema.User{ID: 2, Role: domain.RoleDistributor}
	pharm := &schema.User{ID: 3, Role: domain.RolePharmacy}
	intent := &schema.TransferIntent{ID: 12, Ref: "intent-ref", FromUserID: 2, ToUserID: 3, Status: domain.IntentStatusSent}

	tm.subscriber.EXPECT().FilterTransferEvents(gomock.Any(), uint64(100), uint64(500)).Return([]*domain.TransferEvent{event}, nil)
	tm.store.EXPECT().ProofExistsByChainTxHash(gomock.Any(), "0xfinal").Return(false, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xDist", domain.RoleDistributor).Return(dist, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xPharm", domain.RolePharmacy).Return(pharm, nil)
	tm.store.EXPECT().GetLatestOpenIntentBetween(gomock.Any(), uint64(2), uint64(3)).Return(intent, nil)
	tm.store.EXPECT().
		FinalizeHop(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeHopInput) error {
			assert.Equal(t, intent, input.Intent)
			assert.Equal(t, uint64(2), input.FromUserID)
			assert.Equal(t, uint64(3), input.ToUserID)
			assert.Equal(t, event.TokenIDs, input.TokenIDs)
			assert.Equal(t, event.TxHash, input.TxHash)
			return nil
		})
	tm.publisher.EXPECT().
		PublishCustodyEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *messaging.CustodyEvent) error {
			assert.Equal(t, messaging.CustodyEventFinalized, ev.Type)
			assert.Equal(t, "intent-ref", ev.IntentRef)
			assert.Equal(t, domain.HopDistributorToPharmacy, ev.Hop)
			return nil
		})
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), "test", uint64(500)).Return(nil)

	err := tm.listener.SyncPastEvents(context.Background(), 100, 500)
	require.NoError(t, err)
}

func TestListener_SyncPastEvents_SkipsAlreadyReconciled(t *testing.T) {
	tm := setupTestListener(t, reconcile.Config{CursorKey: "test", WorkerPoolSize: 1})
	defer tearDownTestListener(tm)

	event := transferEvent()

	// The hash already sits on a proof; the event must not be reapplied
	tm.subscriber.EXPECT().FilterTransferEvents(gomock.Any(), uint64(100), uint64(500)).Return([]*domain.TransferEvent{event}, nil)
	tm.store.EXPECT().ProofExistsByChainTxHash(gomock.Any(), "0xfinal").Return(true, nil)
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), "test", uint64(500)).Return(nil)

	err := tm.listener.SyncPastEvents(context.Background(), 100, 500)
	require.NoError(t, err)
}

func TestListener_SyncPastEvents_StandaloneProofWhenNoIntent(t *testing.T) {
	tm := setupTestListener(t, reconcile.Config{CursorKey: "test", WorkerPoolSize: 1})
	defer tearDownTestListener(tm)

	event := transferEvent()
	dist := &schema.User{ID: 2, Role: domain.RoleDistributor}
	pharm := &schema.User{ID: 3, Role: domain.RolePharmacy}

	tm.subscriber.EXPECT().FilterTransferEvents(gomock.Any(), uint64(100), uint64(500)).Return([]*domain.TransferEvent{event}, nil)
	tm.store.EXPECT().ProofExistsByChainTxHash(gomock.Any(), "0xfinal").Return(false, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xDist", domain.RoleDistributor).Return(dist, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xPharm", domain.RolePharmacy).Return(pharm, nil)
	tm.store.EXPECT().GetLatestOpenIntentBetween(gomock.Any(), uint64(2), uint64(3)).Return(nil, nil)
	tm.store.EXPECT().
		FinalizeHop(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeHopInput) error {
			assert.Nil(t, input.Intent)
			assert.Equal(t, uint64(2), input.FromUserID)
			assert.Equal(t, uint64(3), input.ToUserID)
			return nil
		})
	tm.publisher.EXPECT().
		PublishCustodyEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *messaging.CustodyEvent) error {
			assert.Empty(t, ev.IntentRef)
			return nil
		})
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), "test", uint64(500)).Return(nil)

	err := tm.listener.SyncPastEvents(context.Background(), 100, 500)
	require.NoError(t, err)
}

func TestListener_SyncPastEvents_UnresolvedWallets(t *testing.T) {
	tm := setupTestListener(t, reconcile.Config{CursorKey: "test", WorkerPoolSize: 1})
	defer tearDownTestListener(tm)

	event := transferEvent()

	// Neither wallet maps to a known participant; the event is still
	// preserved as a standalone proof so chain truth is never dropped
	tm.subscriber.EXPECT().FilterTransferEvents(gomock.Any(), uint64(100), uint64(500)).Return([]*domain.TransferEvent{event}, nil)
	tm.store.EXPECT().ProofExistsByChainTxHash(gomock.Any(), "0xfinal").Return(false, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xDist", domain.RoleDistributor).Return(nil, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xPharm", domain.RolePharmacy).Return(nil, nil)
	tm.store.EXPECT().
		FinalizeHop(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeHopInput) error {
			assert.Nil(t, input.Intent)
			assert.Zero(t, input.FromUserID)
			assert.Zero(t, input.ToUserID)
			return nil
		})
	tm.publisher.EXPECT().PublishCustodyEvent(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), "test", uint64(500)).Return(nil)

	err := tm.listener.SyncPastEvents(context.Background(), 100, 500)
	require.NoError(t, err)
}

func TestListener_SyncPastEvents_MalformedEventSkipped(t *testing.T) {
	tm := setupTestListener(t, reconcile.Config{CursorKey: "test", WorkerPoolSize: 1})
	defer tearDownTestListener(tm)

	malformed := &domain.TransferEvent{TxHash: "0xbad", BlockNumber: 400}

	tm.subscriber.EXPECT().FilterTransferEvents(gomock.Any(), uint64(100), uint64(500)).Return([]*domain.TransferEvent{malformed}, nil)
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), "test", uint64(500)).Return(nil)

	err := tm.listener.SyncPastEvents(context.Background(), 100, 500)
	require.NoError(t, err)
}

func TestListener_Run_BackfillsThenSubscribes(t *testing.T) {
	tm := setupTestListener(t, reconcile.Config{CursorKey: "test", WorkerPoolSize: 1, StartBlock: 50})
	defer tearDownTestListener(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := transferEvent()
	dist := &schema.User{ID: 2, Role: domain.RoleDistributor}
	pharm := &schema.User{ID: 3, Role: domain.RolePharmacy}
	intent := &schema.TransferIntent{ID: 12, Ref: "intent-ref", FromUserID: 2, ToUserID: 3, Status: domain.IntentStatusSent}

	// Cursor is ahead of the start block; backfill resumes at cursor+1
	tm.store.EXPECT().GetBlockCursor(gomock.Any(), "test").Return(uint64(99), nil)
	tm.subscriber.EXPECT().LatestBlock(gomock.Any()).Return(uint64(99), nil)

	// Nothing to backfill, so the listener goes straight to the live stream.
	// The live path has no seen-check: the delivered event is applied directly.
	tm.subscriber.EXPECT().
		SubscribeTransferEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, handler func(*domain.TransferEvent)) error {
			handler(event)
			cancel()
			return context.Canceled
		})
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xDist", domain.RoleDistributor).Return(dist, nil)
	tm.store.EXPECT().GetUserByWallet(gomock.Any(), "0xPharm", domain.RolePharmacy).Return(pharm, nil)
	tm.store.EXPECT().GetLatestOpenIntentBetween(gomock.Any(), uint64(2), uint64(3)).Return(intent, nil)
	tm.store.EXPECT().FinalizeHop(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishCustodyEvent(gomock.Any(), gomock.Any()).Return(nil)
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), "test", uint64(500)).Return(nil)

	err := tm.listener.Run(ctx)
	assert.NoError(t, err)
}
