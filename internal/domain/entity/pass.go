package entity

import (
	"time"

	"truefans/internal/errors"
)

// Errors raised by Pass mutations. Store adapters surface them unchanged.
var (
	// ErrInvalidStatusTransition is returned when the state machine forbids a status change.
	ErrInvalidStatusTransition = errors.New("invalid pass status transition")
	// ErrNegativeCounter is returned when a mutation would make points or visits negative.
	ErrNegativeCounter = errors.New("pass counters must not be negative")
)

// Pass is a loyalty credential bound to one diner and one restaurant location.
type Pass struct {
	PassID       string     `json:"pass_id"`       // Opaque unique identifier, never reused.
	UserID       *string    `json:"user_id"`       // Owning diner; nil for anonymously issued passes.
	RestaurantID string     `json:"restaurant_id"` // Bound restaurant, immutable.
	LocationID   string     `json:"location_id"`   // Bound restaurant location, immutable.
	Status       PassStatus `json:"status"`
	IsActive     bool       `json:"is_active"` // Always equal to Status == PassStatusActive.
	Points       int64      `json:"points"`
	Visits       int64      `json:"visits"`
	LastUsed     *time.Time `json:"last_used"`  // Last successful redemption.
	CreatedAt    time.Time  `json:"created_at"` // Issuance time, immutable.
	UpdatedAt    time.Time  `json:"-"`
}

// NewPass builds a freshly issued, active pass with zeroed counters.
func NewPass(passID string, userID *string, restaurantID, locationID string, now time.Time) *Pass {
	return &Pass{
		PassID:       passID,
		UserID:       userID,
		RestaurantID: restaurantID,
		LocationID:   locationID,
		Status:       PassStatusActive,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsOwnedBy reports whether the pass belongs to the given diner.
func (p *Pass) IsOwnedBy(userID string) bool {
	return p.UserID != nil && userID != "" && *p.UserID == userID
}

// Clone returns a deep copy so callers never share mutable state with a store.
func (p *Pass) Clone() *Pass {
	if p == nil {
		return nil
	}

	cloned := *p
	if p.UserID != nil {
		userID := *p.UserID
		cloned.UserID = &userID
	}
	if p.LastUsed != nil {
		lastUsed := *p.LastUsed
		cloned.LastUsed = &lastUsed
	}

	return &cloned
}

// TransitionTo moves the pass to next, keeping IsActive consistent with Status.
func (p *Pass) TransitionTo(next PassStatus, now time.Time) error {
	if !p.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidStatusTransition, "%s -> %s", p.Status, next)
	}

	p.Status = next
	p.IsActive = next == PassStatusActive
	p.UpdatedAt = now

	return nil
}

// ApplyRedemption adds delta to the counters and stamps LastUsed.
// The pass is left untouched when an error is returned.
func (p *Pass) ApplyRedemption(delta RedemptionDelta) error {
	visits := p.Visits + delta.Visits
	points := p.Points + delta.Points
	if visits < 0 || points < 0 {
		return ErrNegativeCounter
	}

	at := delta.At
	p.Visits = visits
	p.Points = points
	p.LastUsed = &at
	p.UpdatedAt = at

	return nil
}

// ApplyCounters overwrites the counters present in update.
func (p *Pass) ApplyCounters(update CounterUpdate, now time.Time) error {
	if err := update.Validate(); err != nil {
		return err
	}

	if update.Points != nil {
		p.Points = *update.Points
	}
	if update.Visits != nil {
		p.Visits = *update.Visits
	}
	p.UpdatedAt = now

	return nil
}

// PassPredicate decides whether a pass may be redeemed.
type PassPredicate func(pass *Pass) bool

// RedeemableAt returns the predicate every redemption must satisfy: the pass is bound to
// restaurantID and is active.
func RedeemableAt(restaurantID string) PassPredicate {
	return func(pass *Pass) bool {
		return pass.RestaurantID == restaurantID &&
			pass.IsActive &&
			pass.Status == PassStatusActive
	}
}

// RedemptionDelta is the counter change applied by a successful redemption.
type RedemptionDelta struct {
	Visits int64
	Points int64
	At     time.Time
}

// CounterUpdate is an administrative override; nil fields are left unchanged.
type CounterUpdate struct {
	Points *int64
	Visits *int64
}

// IsEmpty reports whether the update changes nothing.
func (u CounterUpdate) IsEmpty() bool {
	return u.Points == nil && u.Visits == nil
}

// Validate rejects negative counter values.
func (u CounterUpdate) Validate() error {
	if (u.Points != nil && *u.Points < 0) || (u.Visits != nil && *u.Visits < 0) {
		return ErrNegativeCounter
	}

	return nil
}
