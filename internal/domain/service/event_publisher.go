package service

import (
	"context"
	"time"
)

// Pass event types.
const (
	PassEventIssued        = "pass.issued"
	PassEventRedeemed      = "pass.redeemed"
	PassEventStatusChanged = "pass.status_changed"
)

// PassEvent describes a pass lifecycle change for downstream workers (mailers, analytics).
type PassEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	PassID       string    `json:"pass_id"`
	RestaurantID string    `json:"restaurant_id"`
	LocationID   string    `json:"location_id"`
	UserID       string    `json:"user_id,omitempty"`
	Status       string    `json:"status"`
	Points       int64     `json:"points"`
	Visits       int64     `json:"visits"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPassEvent publishes a pass event for async processing
	PublishPassEvent(ctx context.Context, event *PassEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
