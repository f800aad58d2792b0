package entity

// PassStatus is the lifecycle state of a loyalty pass.
type PassStatus string

const (
	// PassStatusActive passes can be redeemed.
	PassStatusActive PassStatus = "active"
	// PassStatusSuspended passes are temporarily blocked and may be reinstated.
	PassStatusSuspended PassStatus = "suspended"
	// PassStatusRevoked passes are permanently blocked. Terminal.
	PassStatusRevoked PassStatus = "revoked"
)

// String returns the string representation of the PassStatus.
func (s PassStatus) String() string {
	return string(s)
}

// IsValid checks if the PassStatus is a valid value.
func (s PassStatus) IsValid() bool {
	switch s {
	case PassStatusActive, PassStatusSuspended, PassStatusRevoked:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition can leave this status.
func (s PassStatus) IsTerminal() bool {
	return s == PassStatusRevoked
}

// CanTransitionTo reports whether moving from s to next is allowed.
// The base machine is active to suspended and active to revoked. Suspended
// to active (reinstatement) and suspended to revoked extend it. Revoked is terminal.
// Self transitions are not transitions and are rejected.
func (s PassStatus) CanTransitionTo(next PassStatus) bool {
	switch s {
	case PassStatusActive:
		return next == PassStatusSuspended || next == PassStatusRevoked
	case PassStatusSuspended:
		return next == PassStatusActive || next == PassStatusRevoked
	default:
		return false
	}
}
