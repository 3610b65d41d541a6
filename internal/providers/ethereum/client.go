package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/pharmatrust/custody/internal/adapter"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/messaging"
)

// Config holds the configuration for the custody contract connection
type Config struct {
	// WebSocketURL is the node endpoint (e.g. wss://sepolia.infura.io/ws/v3/KEY)
	WebSocketURL string
	// ContractAddress is the deployed custody contract
	ContractAddress string
	// PrivateKey signs participant registration transactions (hex, no 0x)
	PrivateKey string
}

// DistributorToPharmacy(address indexed from, address indexed to,
// uint256[] tokenIds, uint256 timestamp)
var distributorToPharmacySignature = crypto.Keccak256Hash(
	[]byte("DistributorToPharmacy(address,address,uint256[],uint256)"))

// transferEventData unpacks the non-indexed event payload
var transferEventData = abi.Arguments{
	{Name: "tokenIds", Type: mustNewType("uint256[]")},
	{Name: "timestamp", Type: mustNewType("uint256")},
}

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

type ledgerClient struct {
	client   adapter.EthClient
	contract common.Address
}

// NewLedgerClient creates a chain event source for the custody contract
func NewLedgerClient(cfg Config, client adapter.EthClient) (messaging.Subscriber, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	return &ledgerClient{
		client:   client,
		contract: common.HexToAddress(cfg.ContractAddress),
	}, nil
}

// SubscribeTransferEvents subscribes to DistributorToPharmacy logs and feeds
// each decoded event to the handler. Returns when the context is cancelled
// or the underlying subscription errors out; the caller owns resubscription.
func (c *ledgerClient) SubscribeTransferEvents(ctx context.Context, handler func(*domain.TransferEvent)) error {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{c.contract},
		Topics: [][]common.Hash{
			{distributorToPharmacySignature},
		},
	}

	logs := make(chan types.Log)
	sub, err := c.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "unsubscribed from custody contract logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := parseTransferLog(vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err,
					zap.String("message", "error parsing transfer log"),
					zap.String("txHash", vLog.TxHash.Hex()))
				continue
			}
			if event == nil {
				continue
			}

			handler(event)
		}
	}
}

// FilterTransferEvents retrieves historical DistributorToPharmacy events in
// the inclusive block range. The range is walked in chunks; when the node
// rejects a chunk for returning too many results, the chunk size is halved
// and the same range retried.
func (c *ledgerClient) FilterTransferEvents(ctx context.Context, fromBlock, toBlock uint64) ([]*domain.TransferEvent, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	const initialStep = uint64(10000)
	step := initialStep

	var events []*domain.TransferEvent
	current := fromBlock
	for current <= toBlock {
		end := current + step - 1
		if end > toBlock {
			end = toBlock
		}

		query := ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(current),
			ToBlock:   new(big.Int).SetUint64(end),
			Addresses: []common.Address{c.contract},
			Topics: [][]common.Hash{
				{distributorToPharmacySignature},
			},
		}

		logs, err := c.client.FilterLogs(timeoutCtx, query)
		if err != nil {
			if !isTooManyResultsError(err) {
				return nil, fmt.Errorf("failed to filter logs for range %d-%d: %w", current, end, err)
			}
			if step == 1 {
				return nil, fmt.Errorf("failed to filter logs at block %d: %w", current, err)
			}

			step = step / 2
			logger.WarnCtx(ctx, "too many results, reducing block step",
				zap.Uint64("newStep", step),
				zap.Uint64("fromBlock", current),
				zap.Uint64("toBlock", end))
			continue
		}

		for _, vLog := range logs {
			event, err := parseTransferLog(vLog)
			if err != nil {
				logger.WarnCtx(ctx, "skipping unparseable transfer log",
					zap.Error(err),
					zap.String("txHash", vLog.TxHash.Hex()))
				continue
			}
			if event != nil {
				events = append(events, event)
			}
		}

		current = end + 1
	}

	return events, nil
}

// isTooManyResultsError checks if the error is a node-side result cap
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// LatestBlock returns the current chain head block number
func (c *ledgerClient) LatestBlock(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (c *ledgerClient) Close() {
	if c.client == nil {
		return
	}

	c.client.Close()
	logger.Info("custody contract connection closed")
}

// parseTransferLog decodes a DistributorToPharmacy log into a TransferEvent.
// Returns (nil, nil) for logs with a different signature.
func parseTransferLog(vLog types.Log) (*domain.TransferEvent, error) {
	if len(vLog.Topics) == 0 || vLog.Topics[0] != distributorToPharmacySignature {
		return nil, nil
	}
	if len(vLog.Topics) != 3 {
		return nil, fmt.Errorf("invalid DistributorToPharmacy event: expected 3 topics, got %d", len(vLog.Topics))
	}

	values, err := transferEventData.Unpack(vLog.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack event data: %w", err)
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("invalid DistributorToPharmacy event: expected 2 data values, got %d", len(values))
	}

	rawTokenIDs, ok := values[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("invalid tokenIds value in event data")
	}
	rawTimestamp, ok := values[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("invalid timestamp value in event data")
	}

	tokenIDs := make([]string, 0, len(rawTokenIDs))
	for _, id := range rawTokenIDs {
		tokenIDs = append(tokenIDs, id.String())
	}

	return &domain.TransferEvent{
		FromWallet:  common.BytesToAddress(vLog.Topics[1].Bytes()).Hex(),
		ToWallet:    common.BytesToAddress(vLog.Topics[2].Bytes()).Hex(),
		TokenIDs:    tokenIDs,
		TxHash:      vLog.TxHash.Hex(),
		BlockNumber: vLog.BlockNumber,
		Timestamp:   time.Unix(rawTimestamp.Int64(), 0).UTC(),
	}, nil
}
