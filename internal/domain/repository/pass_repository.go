// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"truefans/internal/domain/entity"
	"truefans/internal/errors"
)

// Domain-specific errors for pass persistence.
var (
	// ErrPassNotFound is returned when no pass has the requested identifier.
	ErrPassNotFound = errors.New("pass not found")
	// ErrPassAlreadyExists is returned when creating a pass whose identifier is taken.
	ErrPassAlreadyExists = errors.New("pass already exists")
	// ErrPredicateFailed is returned by ApplyRedemption when the predicate rejects the pass.
	ErrPredicateFailed = errors.New("pass predicate failed")
)

// PassRepository is the durable store of issued passes.
//
// Implementations must make ApplyRedemption and UpdateStatus behave as single-record
// transactions: concurrent calls against the same pass are serialized and never
// lose an update. No implementation deletes records.
type PassRepository interface {
	// Create persists a newly issued pass. Returns ErrPassAlreadyExists on identifier collision.
	Create(ctx context.Context, pass *entity.Pass) error

	// FindByID retrieves a pass by identifier. Returns ErrPassNotFound when absent.
	FindByID(ctx context.Context, passID string) (*entity.Pass, error)

	// FindByOwner retrieves every pass owned by userID in issuance order.
	FindByOwner(ctx context.Context, userID string) ([]*entity.Pass, error)

	// ApplyRedemption atomically reads the pass, evaluates predicate and, when it holds,
	// applies delta and persists the result. Nothing is written on any error.
	ApplyRedemption(ctx context.Context, passID string, predicate entity.PassPredicate, delta entity.RedemptionDelta) (*entity.Pass, error)

	// UpdateCounters overwrites points and/or visits. Last writer wins.
	UpdateCounters(ctx context.Context, passID string, update entity.CounterUpdate) (*entity.Pass, error)

	// UpdateStatus atomically moves the pass to status following the pass state machine.
	// Returns entity.ErrInvalidStatusTransition when the move is not allowed.
	UpdateStatus(ctx context.Context, passID string, status entity.PassStatus) (*entity.Pass, error)
}
