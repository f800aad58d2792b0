// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"truefans/internal/domain/entity"
	domainerrors "truefans/internal/domain/errors"
	"truefans/internal/domain/repository"
	"truefans/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// passRepository implements the repository.PassRepository interface.
// Mutations run as SELECT ... FOR UPDATE followed by UPDATE in one transaction.
type passRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPassRepository is the constructor for passRepository.
func NewPassRepository(db *gorm.DB) repository.PassRepository {
	return &passRepository{
		db:  db,
		now: time.Now,
	}
}

// Create persists a newly issued pass.
func (repo *passRepository) Create(ctx context.Context, pass *entity.Pass) error {
	passM := fromPassDomain(pass)

	if err := repo.db.WithContext(ctx).Create(passM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPassAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return entity.ErrNegativeCounter
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pass")
	}

	return nil
}

// FindByID retrieves a pass by its identifier.
func (repo *passRepository) FindByID(ctx context.Context, passID string) (*entity.Pass, error) {
	var passM model.PassModel

	if err := repo.db.WithContext(ctx).
		Where("pass_id = ?", passID).
		First(&passM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass by ID")
	}

	return toPassDomain(&passM), nil
}

// FindByOwner retrieves every pass of a diner in issuance order.
func (repo *passRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Pass, error) {
	var passModels []*model.PassModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("pass_id ASC").
		Find(&passModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find passes by owner")
	}

	passes := make([]*entity.Pass, 0, len(passModels))
	for _, passM := range passModels {
		passes = append(passes, toPassDomain(passM))
	}

	return passes, nil
}

// ApplyRedemption evaluates predicate on the locked row and applies delta.
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

// UpdateStatus moves the locked pass to status following the pass state machine.
func (repo *passRepository) UpdateStatus(ctx context.Context, passID string, status entity.PassStatus) (*entity.Pass, error) {
	return repo.mutate(ctx, passID, func(pass *entity.Pass) error {
		return pass.TransitionTo(status, repo.now())
	})
}

// mutate locks the row, lets fn change the domain pass and writes the mutable columns back.
// Any error returned by fn rolls the transaction back.
func (repo *passRepository) mutate(ctx context.Context, passID string, fn func(pass *entity.Pass) error) (*entity.Pass, error) {
	var result *entity.Pass

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var passM model.PassModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pass_id = ?", passID).
			First(&passM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrPassNotFound
			}
			if isLockTimeout(err) {
				return errors.Wrap(context.DeadlineExceeded, "pass row lock not acquired")
			}

			return errors.Wrap(err, "failed to lock pass")
		}

		pass := toPassDomain(&passM)
		if err := fn(pass); err != nil {
			return err
		}

		if err := tx.Model(&model.PassModel{}).
			Where("pass_id = ?", passID).
			Updates(map[string]any{
				"status":     string(pass.Status),
				"is_active":  pass.IsActive,
				"points":     pass.Points,
				"visits":     pass.Visits,
				"last_used":  pass.LastUsed,
				"updated_at": pass.UpdatedAt,
			}).Error; err != nil {
			if isCheckConstraintViolation(err) {
				return entity.ErrNegativeCounter
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to update pass")
		}

		result = pass

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// toPassDomain converts a GORM PassModel to a domain Pass entity.
func toPassDomain(data *model.PassModel) *entity.Pass {
	if data == nil {
		return nil
	}

	status := entity.PassStatus(data.Status)

	return &entity.Pass{
		PassID:       data.PassID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		LocationID:   data.LocationID,
		Status:       status,
		IsActive:     status == entity.PassStatusActive,
		Points:       data.Points,
		Visits:       data.Visits,
		LastUsed:     data.LastUsed,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPassDomain converts a domain Pass entity to a GORM PassModel.
func fromPassDomain(data *entity.Pass) *model.PassModel {
	if data == nil {
		return nil
	}

	return &model.PassModel{
		PassID:       data.PassID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		LocationID:   data.LocationID,
		Status:       string(data.Status),
		IsActive:     data.IsActive,
		Points:       data.Points,
		Visits:       data.Visits,
		LastUsed:     data.LastUsed,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
