package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmatrust/custody/internal/domain"
)

func TestTokenStatus_CanTransitionTo_ForwardOnly(t *testing.T) {
	assert.True(t, domain.TokenStatusMinted.CanTransitionTo(domain.TokenStatusTransferred))
	assert.True(t, domain.TokenStatusMinted.CanTransitionTo(domain.TokenStatusSold))
	assert.True(t, domain.TokenStatusTransferred.CanTransitionTo(domain.TokenStatusSold))

	// No backwards movement
	assert.False(t, domain.TokenStatusTransferred.CanTransitionTo(domain.TokenStatusMinted))
	assert.False(t, domain.TokenStatusSold.CanTransitionTo(domain.TokenStatusTransferred))
	assert.False(t, domain.TokenStatusSold.CanTransitionTo(domain.TokenStatusMinted))

	// No self-transition
	assert.False(t, domain.TokenStatusMinted.CanTransitionTo(domain.TokenStatusMinted))
	assert.False(t, domain.TokenStatusSold.CanTransitionTo(domain.TokenStatusSold))
}

func TestTokenStatus_AbsorbingStates(t *testing.T) {
	// Expired and recalled are reachable from any live state
	for _, from := range []domain.TokenStatus{
		domain.TokenStatusMinted,
		domain.TokenStatusTransferred,
		domain.TokenStatusSold,
	} {
		assert.True(t, from.CanTransitionTo(domain.TokenStatusExpired), "from %s", from)
		assert.True(t, from.CanTransitionTo(domain.TokenStatusRecalled), "from %s", from)
	}

	// Once absorbed, nothing moves, not even expired <-> recalled
	for _, from := range []domain.TokenStatus{domain.TokenStatusExpired, domain.TokenStatusRecalled} {
		assert.True(t, from.Terminal())
		for _, to := range []domain.TokenStatus{
			domain.TokenStatusMinted,
			domain.TokenStatusTransferred,
			domain.TokenStatusSold,
			domain.TokenStatusExpired,
			domain.TokenStatusRecalled,
		} {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTokenStatus_UnknownStatus(t *testing.T) {
	unknown := domain.TokenStatus("melted")
	assert.False(t, domain.IsValidTokenStatus(unknown))
	assert.False(t, unknown.CanTransitionTo(domain.TokenStatusSold))
	assert.False(t, domain.TokenStatusMinted.CanTransitionTo(unknown))
}

func TestHop_StatusAndRoles(t *testing.T) {
	assert.Equal(t, domain.TokenStatusMinted, domain.HopManufacturerToDistributor.PriorTokenStatus())
	assert.Equal(t, domain.TokenStatusTransferred, domain.HopManufacturerToDistributor.NextTokenStatus())
	assert.Equal(t, domain.RolePharmaCompany, domain.HopManufacturerToDistributor.SenderRole())
	assert.Equal(t, domain.RoleDistributor, domain.HopManufacturerToDistributor.ReceiverRole())

	assert.Equal(t, domain.TokenStatusTransferred, domain.HopDistributorToPharmacy.PriorTokenStatus())
	assert.Equal(t, domain.TokenStatusSold, domain.HopDistributorToPharmacy.NextTokenStatus())
	assert.Equal(t, domain.RoleDistributor, domain.HopDistributorToPharmacy.SenderRole())
	assert.Equal(t, domain.RolePharmacy, domain.HopDistributorToPharmacy.ReceiverRole())
}

func TestTransferEvent_Valid(t *testing.T) {
	event := domain.TransferEvent{
		FromWallet: "0xabc",
		ToWallet:   "0xdef",
		TokenIDs:   []string{"1"},
		TxHash:     "0x123",
	}
	assert.True(t, event.Valid())

	missingTokens := event
	missingTokens.TokenIDs = nil
	assert.False(t, missingTokens.Valid())

	missingHash := event
	missingHash.TxHash = ""
	assert.False(t, missingHash.Valid())

	missingFrom := event
	missingFrom.FromWallet = ""
	assert.False(t, missingFrom.Valid())
}
