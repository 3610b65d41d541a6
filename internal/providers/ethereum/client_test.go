package ethereum

import (
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatrust/custody/internal/logger"
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

func packedTransferData(t *testing.T, tokenIDs []*big.Int, timestamp *big.Int) []byte {
	t.Helper()
	data, err := transferEventData.Pack(tokenIDs, timestamp)
	require.NoError(t, err)
	return data
}

func TestParseTransferLog(t *testing.T) {
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	ts := big.NewInt(1_754_400_000)

	vLog := types.Log{
		Topics: []common.Hash{
			distributorToPharmacySignature,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data:        packedTransferData(t, []*big.Int{big.NewInt(101), big.NewInt(102)}, ts),
		TxHash:      common.HexToHash("0xabc"),
		BlockNumber: 500,
	}

	event, err := parseTransferLog(vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, from.Hex(), event.FromWallet)
	assert.Equal(t, to.Hex(), event.ToWallet)
	assert.Equal(t, []string{"101", "102"}, event.TokenIDs)
	assert.Equal(t, vLog.TxHash.Hex(), event.TxHash)
	assert.Equal(t, uint64(500), event.BlockNumber)
	assert.Equal(t, time.Unix(ts.Int64(), 0).UTC(), event.Timestamp)
	assert.True(t, event.Valid())
}

func TestParseTransferLog_OtherSignatureIgnored(t *testing.T) {
	otherSig := crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	vLog := types.Log{
		Topics: []common.Hash{otherSig, {}, {}},
	}

	event, err := parseTransferLog(vLog)
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseTransferLog_WrongTopicCount(t *testing.T) {
	vLog := types.Log{
		Topics: []common.Hash{distributorToPharmacySignature},
	}

	event, err := parseTransferLog(vLog)
	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestParseTransferLog_MalformedData(t *testing.T) {
	vLog := types.Log{
		Topics: []common.Hash{
			distributorToPharmacySignature,
			common.BytesToHash(common.HexToAddress("0x1111111111111111111111111111111111111111").Bytes()),
			common.BytesToHash(common.HexToAddress("0x2222222222222222222222222222222222222222").Bytes()),
		},
		Data: []byte{0x01, 0x02},
	}

	event, err := parseTransferLog(vLog)
	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestNewLedgerClient_ValidatesContractAddress(t *testing.T) {
	_, err := NewLedgerClient(Config{ContractAddress: "not-an-address"}, nil)
	assert.Error(t, err)

	client, err := NewLedgerClient(Config{ContractAddress: "0x3333333333333333333333333333333333333333"}, nil)
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestIsTooManyResultsError(t *testing.T) {
	assert.False(t, isTooManyResultsError(nil))
	assert.False(t, isTooManyResultsError(assert.AnError))

	tests := []struct {
		msg  string
		want bool
	}{
		{"query returned more than 10000 results", true},
		{"too many results", true},
		{"query timeout exceeded", true},
		{"connection refused", false},
	}
	for _, tc := range tests {
		err := errString(tc.msg)
		assert.Equal(t, tc.want, isTooManyResultsError(err), tc.msg)
	}
}

type errString string

func (e errString) Error() string {
	return string(e)
}
