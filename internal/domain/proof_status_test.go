package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmatrust/custody/internal/domain"
)

func TestDistributionProofStatus_ForwardOnly(t *testing.T) {
	assert.True(t, domain.DistributionProofPending.CanTransitionTo(domain.DistributionProofInTransit))
	assert.True(t, domain.DistributionProofInTransit.CanTransitionTo(domain.DistributionProofDelivered))
	assert.True(t, domain.DistributionProofDelivered.CanTransitionTo(domain.DistributionProofConfirmed))
	assert.True(t, domain.DistributionProofConfirmed.CanTransitionTo(domain.DistributionProofVerified))

	// Skipping intermediate states forward is allowed
	assert.True(t, domain.DistributionProofPending.CanTransitionTo(domain.DistributionProofConfirmed))

	assert.False(t, domain.DistributionProofConfirmed.CanTransitionTo(domain.DistributionProofDelivered))
	assert.False(t, domain.DistributionProofVerified.CanTransitionTo(domain.DistributionProofConfirmed))
}

func TestDistributionProofStatus_RejectedFromAnyLiveState(t *testing.T) {
	for _, from := range []domain.DistributionProofStatus{
		domain.DistributionProofPending,
		domain.DistributionProofInTransit,
		domain.DistributionProofDelivered,
		domain.DistributionProofConfirmed,
	} {
		assert.True(t, from.CanTransitionTo(domain.DistributionProofRejected), "from %s", from)
	}

	assert.True(t, domain.DistributionProofVerified.Terminal())
	assert.True(t, domain.DistributionProofRejected.Terminal())
	assert.False(t, domain.DistributionProofVerified.CanTransitionTo(domain.DistributionProofRejected))
	assert.False(t, domain.DistributionProofRejected.CanTransitionTo(domain.DistributionProofPending))
}

func TestPharmacyProofStatus_ForwardOnly(t *testing.T) {
	assert.True(t, domain.PharmacyProofPending.CanTransitionTo(domain.PharmacyProofReceived))
	assert.True(t, domain.PharmacyProofReceived.CanTransitionTo(domain.PharmacyProofVerified))
	assert.True(t, domain.PharmacyProofVerified.CanTransitionTo(domain.PharmacyProofCompleted))
	assert.True(t, domain.PharmacyProofPending.CanTransitionTo(domain.PharmacyProofCompleted))

	assert.False(t, domain.PharmacyProofVerified.CanTransitionTo(domain.PharmacyProofReceived))

	assert.True(t, domain.PharmacyProofCompleted.Terminal())
	assert.True(t, domain.PharmacyProofRejected.Terminal())
	assert.False(t, domain.PharmacyProofCompleted.CanTransitionTo(domain.PharmacyProofRejected))
}

func TestProofCanTransition(t *testing.T) {
	// Re-writing the same status is an idempotent no-op on both machines
	assert.True(t, domain.ProofCanTransition(domain.HopManufacturerToDistributor,
		string(domain.DistributionProofConfirmed), string(domain.DistributionProofConfirmed)))
	assert.True(t, domain.ProofCanTransition(domain.HopDistributorToPharmacy,
		string(domain.PharmacyProofCompleted), string(domain.PharmacyProofCompleted)))

	assert.True(t, domain.ProofCanTransition(domain.HopManufacturerToDistributor,
		string(domain.DistributionProofConfirmed), string(domain.DistributionProofVerified)))
	assert.True(t, domain.ProofCanTransition(domain.HopDistributorToPharmacy,
		string(domain.PharmacyProofPending), string(domain.PharmacyProofCompleted)))

	// Finalized proofs never move backwards
	assert.False(t, domain.ProofCanTransition(domain.HopDistributorToPharmacy,
		string(domain.PharmacyProofCompleted), string(domain.PharmacyProofPending)))
	assert.False(t, domain.ProofCanTransition(domain.HopManufacturerToDistributor,
		string(domain.DistributionProofVerified), string(domain.DistributionProofConfirmed)))
}

// The two machines deliberately start phase-3 confirmations in different
// places: the distribution hop waits for the sender's counter-approval,
// the pharmacy hop waits for the on-chain event.
func TestInitialProofStatus(t *testing.T) {
	assert.Equal(t, string(domain.DistributionProofConfirmed), domain.InitialProofStatus(domain.HopManufacturerToDistributor))
	assert.Equal(t, string(domain.PharmacyProofPending), domain.InitialProofStatus(domain.HopDistributorToPharmacy))
}

func TestRegistrationStatus_Retryable(t *testing.T) {
	assert.True(t, domain.RegistrationBlockchainFailed.Retryable())

	assert.False(t, domain.RegistrationPending.Retryable())
	assert.False(t, domain.RegistrationApprovedPendingBC.Retryable())
	assert.False(t, domain.RegistrationApproved.Retryable())
	assert.False(t, domain.RegistrationRejected.Retryable())
}
