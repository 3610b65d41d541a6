package domain

// RegistrationStatus represents the lifecycle of an onboarding registration request
type RegistrationStatus string

const (
	RegistrationPending           RegistrationStatus = "pending"
	RegistrationApprovedPendingBC RegistrationStatus = "approved_pending_blockchain"
	RegistrationApproved          RegistrationStatus = "approved"
	RegistrationBlockchainFailed  RegistrationStatus = "blockchain_failed"
	RegistrationRejected          RegistrationStatus = "rejected"
)

// Retryable reports whether an operator may re-attempt the on-chain call.
// Only blockchain_failed is retryable; approved and rejected are terminal.
func (s RegistrationStatus) Retryable() bool {
	return s == RegistrationBlockchainFailed
}

// ParticipantKind is the tagged variant for on-chain participant onboarding.
// Each kind has exactly one Onboarder implementation; there is no role-string
// branching anywhere in the registration flow.
type ParticipantKind string

const (
	ParticipantPharmaCompany ParticipantKind = "pharma_company"
	ParticipantDistributor   ParticipantKind = "distributor"
	ParticipantPharmacy      ParticipantKind = "pharmacy"
)

// ParticipantKindForRole maps a registration role to its participant variant
func ParticipantKindForRole(role Role) (ParticipantKind, bool) {
	switch role {
	case RolePharmaCompany:
		return ParticipantPharmaCompany, true
	case RoleDistributor:
		return ParticipantDistributor, true
	case RolePharmacy:
		return ParticipantPharmacy, true
	default:
		return "", false
	}
}
