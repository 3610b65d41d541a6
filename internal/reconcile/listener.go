package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/messaging"
	"github.com/pharmatrust/custody/internal/store"
	"github.com/pharmatrust/custody/internal/store/schema"
)

const (
	defaultWorkerPoolSize = 8
	defaultCursorKey      = "distributor_to_pharmacy"
)

// Config tunes the reconciliation listener
type Config struct {
	// CursorKey namespaces the persisted block cursor
	CursorKey string
	// WorkerPoolSize bounds concurrent backfill event processing
	WorkerPoolSize int
	// StartBlock is the backfill floor when no cursor exists yet
	StartBlock uint64
}

// Listener replays on-chain DistributorToPharmacy events against the
// off-chain mirror. Chain truth is authoritative: every event finalizes its
// hop regardless of what the optimistic handshake recorded. Event failures
// are isolated; one bad event never halts the stream.
type Listener struct {
	cfg        Config
	store      store.Store
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
}

// NewListener creates a reconciliation listener
func NewListener(cfg Config, s store.Store, subscriber messaging.Subscriber, publisher messaging.Publisher) *Listener {
	if cfg.CursorKey == "" {
		cfg.CursorKey = defaultCursorKey
	}
	if cfg.WorkerPoolSize == 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	return &Listener{
		cfg:        cfg,
		store:      s,
		subscriber: subscriber,
		publisher:  publisher,
	}
}

// Run resumes from the persisted cursor, backfills the gap up to the chain
// head, then subscribes live. Subscription errors trigger a backoff-wrapped
// resubscribe that first backfills whatever was missed while disconnected.
// Returns when the context is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	operation := func() error {
		if err := l.catchUp(ctx); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("backfill failed: %w", err))
			return err
		}

		err := l.subscriber.SubscribeTransferEvents(ctx, func(event *domain.TransferEvent) {
			l.handleLiveEvent(ctx, event)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, fmt.Errorf("subscription dropped: %w", err))
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0 // resubscribe forever

	err := backoff.Retry(operation, backoff.WithContext(b, ctx))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// catchUp backfills from the cursor (or configured start block) to the
// current chain head
func (l *Listener) catchUp(ctx context.Context) error {
	cursor, err := l.store.GetBlockCursor(ctx, l.cfg.CursorKey)
	if err != nil {
		return err
	}

	fromBlock := l.cfg.StartBlock
	if cursor >= fromBlock {
		fromBlock = cursor + 1
	}

	latest, err := l.subscriber.LatestBlock(ctx)
	if err != nil {
		return err
	}
	if fromBlock > latest {
		return nil
	}

	return l.SyncPastEvents(ctx, fromBlock, latest)
}

// SyncPastEvents replays the inclusive block range. Already reconciled
// events are detected by their transaction hash on an existing proof and
// skipped, so replaying a range is safe.
func (l *Listener) SyncPastEvents(ctx context.Context, fromBlock, toBlock uint64) error {
	events, err := l.subscriber.FilterTransferEvents(ctx, fromBlock, toBlock)
	if err != nil {
		return fmt.Errorf("failed to fetch past events: %w", err)
	}

	logger.InfoCtx(ctx, "backfilling transfer events",
		zap.Uint64("fromBlock", fromBlock),
		zap.Uint64("toBlock", toBlock),
		zap.Int("events", len(events)))

	pool := pond.NewPool(l.cfg.WorkerPoolSize, pond.WithContext(ctx))
	for _, event := range events {
		ev := event
		pool.Submit(func() {
			if err := l.handleEvent(ctx, ev, true); err != nil {
				logger.ErrorCtx(ctx, &domain.ReconciliationError{TxHash: ev.TxHash, Err: err})
			}
		})
	}
	pool.StopAndWait()

	if err := l.store.SetBlockCursor(ctx, l.cfg.CursorKey, toBlock); err != nil {
		return fmt.Errorf("failed to persist block cursor: %w", err)
	}

	return nil
}

// handleLiveEvent processes one live event and advances the cursor
func (l *Listener) handleLiveEvent(ctx context.Context, event *domain.TransferEvent) {
	if err := l.handleEvent(ctx, event, false); err != nil {
		logger.ErrorCtx(ctx, &domain.ReconciliationError{TxHash: event.TxHash, Err: err})
		return
	}

	if err := l.store.SetBlockCursor(ctx, l.cfg.CursorKey, event.BlockNumber); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to persist block cursor: %w", err),
			zap.Uint64("blockNumber", event.BlockNumber))
	}
}

// handleEvent reconciles one transfer event. checkSeen enables the
// hash-based skip used during backfill; the live path processes every event
// as delivered.
func (l *Listener) handleEvent(ctx context.Context, event *domain.TransferEvent, checkSeen bool) error {
	if !event.Valid() {
		logger.WarnCtx(ctx, "skipping malformed transfer event",
			zap.String("txHash", event.TxHash),
			zap.String("from", event.FromWallet),
			zap.String("to", event.ToWallet))
		return nil
	}

	if checkSeen {
		seen, err := l.store.ProofExistsByChainTxHash(ctx, event.TxHash)
		if err != nil {
			return err
		}
		if seen {
			logger.DebugCtx(ctx, "transfer event already reconciled",
				zap.String("txHash", event.TxHash))
			return nil
		}
	}

	fromUser, err := l.store.GetUserByWallet(ctx, event.FromWallet, domain.RoleDistributor)
	if err != nil {
		return err
	}
	toUser, err := l.store.GetUserByWallet(ctx, event.ToWallet, domain.RolePharmacy)
	if err != nil {
		return err
	}

	input := store.FinalizeHopInput{
		TokenIDs:  event.TokenIDs,
		TxHash:    event.TxHash,
		Timestamp: event.Timestamp,
	}

	var intent *schema.TransferIntent
	if fromUser != nil && toUser != nil {
		input.FromUserID = fromUser.ID
		input.ToUserID = toUser.ID

		intent, err = l.store.GetLatestOpenIntentBetween(ctx, fromUser.ID, toUser.ID)
		if err != nil {
			return err
		}
		input.Intent = intent

		if intent == nil {
			logger.WarnCtx(ctx, "no open intent for transfer event, recording standalone proof",
				zap.String("txHash", event.TxHash),
				zap.Uint64("fromUserID", fromUser.ID),
				zap.Uint64("toUserID", toUser.ID))
		}
	} else {
		logger.WarnCtx(ctx, "wallets in transfer event do not resolve to known participants",
			zap.String("txHash", event.TxHash),
			zap.String("fromWallet", event.FromWallet),
			zap.String("toWallet", event.ToWallet),
			zap.Bool("fromResolved", fromUser != nil),
			zap.Bool("toResolved", toUser != nil))
		if fromUser != nil {
			input.FromUserID = fromUser.ID
		}
		if toUser != nil {
			input.ToUserID = toUser.ID
		}
	}

	if err := l.store.FinalizeHop(ctx, input); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "hop finalized from chain event",
		zap.String("txHash", event.TxHash),
		zap.Uint64("blockNumber", event.BlockNumber),
		zap.Int("tokens", len(event.TokenIDs)),
		zap.Bool("intentLinked", intent != nil))

	custodyEvent := &messaging.CustodyEvent{
		Hop:        domain.HopDistributorToPharmacy,
		Type:       messaging.CustodyEventFinalized,
		TokenIDs:   event.TokenIDs,
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		TxHash:     event.TxHash,
		Timestamp:  event.Timestamp,
	}
	if intent != nil {
		custodyEvent.IntentRef = intent.Ref
	}
	if l.publisher != nil {
		if err := l.publisher.PublishCustodyEvent(ctx, custodyEvent); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to publish custody event: %w", err),
				zap.String("subject", custodyEvent.Subject()))
		}
	}

	return nil
}
