package domain

// TokenStatus represents the custody lifecycle state of a drug token
type TokenStatus string

const (
	TokenStatusMinted      TokenStatus = "minted"
	TokenStatusTransferred TokenStatus = "transferred"
	TokenStatusSold        TokenStatus = "sold"
	TokenStatusExpired     TokenStatus = "expired"
	TokenStatusRecalled    TokenStatus = "recalled"
)

// statusRank orders the forward-only lifecycle. Expired and recalled share
// the terminal rank: both absorb, neither can be left.
var statusRank = map[TokenStatus]int{
	TokenStatusMinted:      0,
	TokenStatusTransferred: 1,
	TokenStatusSold:        2,
	TokenStatusExpired:     3,
	TokenStatusRecalled:    3,
}

// IsValidTokenStatus checks if a token status is valid
func IsValidTokenStatus(s TokenStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether the status is absorbing
func (s TokenStatus) Terminal() bool {
	return s == TokenStatusExpired || s == TokenStatusRecalled
}

// CanTransitionTo reports whether the status machine permits advancing to next.
// Transitions only move forward along minted -> transferred -> sold -> {expired|recalled}.
func (s TokenStatus) CanTransitionTo(next TokenStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	if s.Terminal() {
		return false
	}
	return to > from
}
