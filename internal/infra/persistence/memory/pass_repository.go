// Package memory contains in-process implementations of the persistence ports.
// They back the "memory" store driver and the use case tests.
package memory

import (
	"context"
	"sync"
	"time"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"
	"truefans/internal/errors"
)

// passRepository keeps passes in a map guarded by a RWMutex. Mutations of a single
// pass are additionally serialized by a per-pass mutex so a read-evaluate-write
// sequence never interleaves with another one on the same pass.
type passRepository struct {
	mu     sync.RWMutex
	passes map[string]*entity.Pass
	order  []string // issuance order

	locks sync.Map // passID -> *sync.Mutex
	now   func() time.Time
}

// NewPassRepository creates an empty in-memory pass store.
func NewPassRepository() repository.PassRepository {
	return newPassRepository(time.Now)
}

func newPassRepository(now func() time.Time) *passRepository {
	return &passRepository{
		passes: make(map[string]*entity.Pass),
		now:    now,
	}
}

// Create persists a newly issued pass.
func (repo *passRepository) Create(ctx context.Context, pass *entity.Pass) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.passes[pass.PassID]; exists {
		return repository.ErrPassAlreadyExists
	}
	repo.passes[pass.PassID] = pass.Clone()
	repo.order = append(repo.order, pass.PassID)

	return nil
}

// FindByID retrieves a pass by its identifier.
func (repo *passRepository) FindByID(ctx context.Context, passID string) (*entity.Pass, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return repo.get(passID)
}

// FindByOwner retrieves every pass of a diner in issuance order.
func (repo *passRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Pass, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	passes := make([]*entity.Pass, 0)
	for _, passID := range repo.order {
		pass := repo.passes[passID]
		if pass.IsOwnedBy(userID) {
			passes = append(passes, pass.Clone())
		}
	}

	return passes, nil
}

// ApplyRedemption evaluates predicate and applies delta while holding the pass lock.
func (repo *passRepository) ApplyRedemption(ctx context.Context, passID string, predicate entity.PassPredicate, delta entity.RedemptionDelta) (*entity.Pass, error) {
	return repo.mutate(ctx, passID, func(pass *entity.Pass) error {
		if !predicate(pass) {
			return repository.ErrPredicateFailed
		}

		return pass.ApplyRedemption(delta)
	})
}

// UpdateCounters overwrites the counters present in update.
func (repo *passRepository) UpdateCounters(ctx context.Context, passID string, update entity.CounterUpdate) (*entity.Pass, error) {
	return repo.mutate(ctx, passID, func(pass *entity.Pass) error {
		return pass.ApplyCounters(update, repo.now())
	})
}

// UpdateStatus moves the pass to status following the pass state machine.
func (repo *passRepository) UpdateStatus(ctx context.Context, passID string, status entity.PassStatus) (*entity.Pass, error) {
	return repo.mutate(ctx, passID, func(pass *entity.Pass) error {
		return pass.TransitionTo(status, repo.now())
	})
}

// mutate runs fn on a private copy of the pass and stores the copy only when fn succeeds.
func (repo *passRepository) mutate(ctx context.Context, passID string, fn func(pass *entity.Pass) error) (*entity.Pass, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	lock := repo.lockFor(passID)
	lock.Lock()
	defer lock.Unlock()

	pass, err := repo.get(passID)
	if err != nil {
		return nil, err
	}

	if err := fn(pass); err != nil {
		return nil, err
	}

	repo.mu.Lock()
	repo.passes[passID] = pass.Clone()
	repo.mu.Unlock()

	return pass, nil
}

func (repo *passRepository) get(passID string) (*entity.Pass, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	pass, ok := repo.passes[passID]
	if !ok {
		return nil, repository.ErrPassNotFound
	}

	return pass.Clone(), nil
}

func (repo *passRepository) lockFor(passID string) *sync.Mutex {
	lock, _ := repo.locks.LoadOrStore(passID, &sync.Mutex{})

	return lock.(*sync.Mutex)
}
