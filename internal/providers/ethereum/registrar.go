package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/pharmatrust/custody/internal/adapter"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/onboarding"
)

// addParticipant(address wallet, string taxCode, string licenseNo)
const participantRegistryABI = `[{"inputs":[{"name":"wallet","type":"address"},{"name":"taxCode","type":"string"},{"name":"licenseNo","type":"string"}],"name":"addParticipant","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

const registerGasLimit = uint64(300000)

type participantRegistrar struct {
	client     adapter.EthClient
	contract   common.Address
	privateKey *ecdsa.PrivateKey
	abi        abi.ABI
}

// NewRegistrar creates the on-chain participant registrar. The configured
// private key must belong to the platform operator account authorized to
// call addParticipant on the custody contract.
func NewRegistrar(cfg Config, client adapter.EthClient) (onboarding.Registrar, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(participantRegistryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &participantRegistrar{
		client:     client,
		contract:   common.HexToAddress(cfg.ContractAddress),
		privateKey: privateKey,
		abi:        parsedABI,
	}, nil
}

// RegisterParticipant submits one addParticipant transaction and returns its
// hash. One call is one attempt; the caller decides whether and when to retry.
func (r *participantRegistrar) RegisterParticipant(ctx context.Context, wallet, taxCode, licenseNo string) (*domain.RegistrationReceipt, error) {
	if !common.IsHexAddress(wallet) {
		return nil, &domain.LedgerCallError{
			Op:  "addParticipant",
			Err: fmt.Errorf("invalid wallet address: %s", wallet),
		}
	}

	data, err := r.abi.Pack("addParticipant", common.HexToAddress(wallet), taxCode, licenseNo)
	if err != nil {
		return nil, &domain.LedgerCallError{Op: "addParticipant", Err: fmt.Errorf("failed to pack call data: %w", err)}
	}

	from := crypto.PubkeyToAddress(r.privateKey.PublicKey)

	nonce, err := r.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, &domain.LedgerCallError{Op: "addParticipant", Err: fmt.Errorf("failed to get nonce: %w", err)}
	}

	gasPrice, err := r.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, &domain.LedgerCallError{Op: "addParticipant", Err: fmt.Errorf("failed to get gas price: %w", err)}
	}

	chainID, err := r.client.NetworkID(ctx)
	if err != nil {
		return nil, &domain.LedgerCallError{Op: "addParticipant", Err: fmt.Errorf("failed to get network id: %w", err)}
	}

	tx := types.NewTransaction(nonce, r.contract, big.NewInt(0), registerGasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(chainID), r.privateKey)
	if err != nil {
		return nil, &domain.LedgerCallError{Op: "addParticipant", Err: fmt.Errorf("failed to sign transaction: %w", err)}
	}

	if err := r.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, &domain.LedgerCallError{Op: "addParticipant", Err: fmt.Errorf("failed to send transaction: %w", err)}
	}

	logger.InfoCtx(ctx, "submitted participant registration",
		zap.String("wallet", wallet),
		zap.String("txHash", signedTx.Hash().Hex()))

	return &domain.RegistrationReceipt{
		TxHash:          signedTx.Hash().Hex(),
		ContractAddress: r.contract.Hex(),
	}, nil
}
