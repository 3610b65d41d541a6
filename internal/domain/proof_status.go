package domain

// The two hops use deliberately distinct proof vocabularies. "pending" on
// the distribution machine means the receiver has not acted yet; "pending"
// on the pharmacy machine means the receiver HAS confirmed and the hop is
// waiting for the on-chain event. Keeping two machines instead of one
// shared enum stops code written for one hop from silently misreading the
// other's states.

// DistributionProofStatus is the proof machine for the manufacturer->distributor hop
type DistributionProofStatus string

const (
	DistributionProofPending   DistributionProofStatus = "pending"
	DistributionProofInTransit DistributionProofStatus = "in_transit"
	DistributionProofDelivered DistributionProofStatus = "delivered"
	DistributionProofConfirmed DistributionProofStatus = "confirmed"
	DistributionProofVerified  DistributionProofStatus = "verified"
	DistributionProofRejected  DistributionProofStatus = "rejected"
)

var distributionRank = map[DistributionProofStatus]int{
	DistributionProofPending:   0,
	DistributionProofInTransit: 1,
	DistributionProofDelivered: 2,
	DistributionProofConfirmed: 3,
	DistributionProofVerified:  4,
}

// Terminal reports whether the distribution proof can no longer change
func (s DistributionProofStatus) Terminal() bool {
	return s == DistributionProofVerified || s == DistributionProofRejected
}

// CanTransitionTo reports whether the distribution machine permits advancing to next
func (s DistributionProofStatus) CanTransitionTo(next DistributionProofStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == DistributionProofRejected {
		return true
	}
	from, ok := distributionRank[s]
	if !ok {
		return false
	}
	to, ok := distributionRank[next]
	if !ok {
		return false
	}
	return to > from
}

// PharmacyProofStatus is the proof machine for the distributor->pharmacy hop
type PharmacyProofStatus string

const (
	PharmacyProofPending   PharmacyProofStatus = "pending"
	PharmacyProofReceived  PharmacyProofStatus = "received"
	PharmacyProofVerified  PharmacyProofStatus = "verified"
	PharmacyProofCompleted PharmacyProofStatus = "completed"
	PharmacyProofRejected  PharmacyProofStatus = "rejected"
)

var pharmacyRank = map[PharmacyProofStatus]int{
	PharmacyProofPending:   0,
	PharmacyProofReceived:  1,
	PharmacyProofVerified:  2,
	PharmacyProofCompleted: 3,
}

// Terminal reports whether the pharmacy proof can no longer change
func (s PharmacyProofStatus) Terminal() bool {
	return s == PharmacyProofCompleted || s == PharmacyProofRejected
}

// CanTransitionTo reports whether the pharmacy machine permits advancing to next
func (s PharmacyProofStatus) CanTransitionTo(next PharmacyProofStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == PharmacyProofRejected {
		return true
	}
	from, ok := pharmacyRank[s]
	if !ok {
		return false
	}
	to, ok := pharmacyRank[next]
	if !ok {
		return false
	}
	return to > from
}

// ProofCanTransition reports whether a stored proof may move from current
// to next under the owning hop's machine. Re-writing the same status is
// allowed so a repeated confirmation stays idempotent; anything else must
// be a forward transition of that hop's machine.
func ProofCanTransition(hop Hop, current, next string) bool {
	if current == next {
		return true
	}
	if hop == HopManufacturerToDistributor {
		return DistributionProofStatus(current).CanTransitionTo(DistributionProofStatus(next))
	}
	return PharmacyProofStatus(current).CanTransitionTo(PharmacyProofStatus(next))
}

// InitialProofStatus returns the proof status the receiver's phase-3
// confirmation writes for the given hop. The asymmetry is intentional:
// the distribution hop still needs the sender's counter-approval, while
// the pharmacy hop is closed by the reconciliation listener instead.
func InitialProofStatus(hop Hop) string {
	if hop == HopManufacturerToDistributor {
		return string(DistributionProofConfirmed)
	}
	return string(PharmacyProofPending)
}
