package firestore

import (
	"context"
	"time"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"
	"truefans/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// passDocument is the stored shape of a pass; the document ID is the pass ID.
type passDocument struct {
	PassID       string     `firestore:"passId"`
	UserID       *string    `firestore:"userId"`
	RestaurantID string     `firestore:"restaurantId"`
	LocationID   string     `firestore:"locationId"`
	Status       string     `firestore:"status"`
	IsActive     bool       `firestore:"isActive"`
	Points       int64      `firestore:"points"`
	Visits       int64      `firestore:"visits"`
	LastUsed     *time.Time `firestore:"lastUsed"`
	CreatedAt    time.Time  `firestore:"createdAt"`
	UpdatedAt    time.Time  `firestore:"updatedAt"`
}

// passRepository implements the repository.PassRepository interface.
// Mutations are Firestore read-write transactions, which the client retries on contention.
type passRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewPassRepository is the constructor for passRepository.
func NewPassRepository(client *firestore.Client) repository.PassRepository {
	return &passRepository{
		client: client,
		now:    time.Now,
	}
}

func (repo *passRepository) doc(passID string) *firestore.DocumentRef {
	return repo.client.Collection(passCollection).Doc(passID)
}

// Create persists a newly issued pass. Create fails when the document already exists.
func (repo *passRepository) Create(ctx context.Context, pass *entity.Pass) error {
	if _, err := repo.doc(pass.PassID).Create(ctx, fromPassDomain(pass)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrPassAlreadyExists
		}

		return errors.Wrap(classify(err), "failed to create pass")
	}

	return nil
}

// FindByID retrieves a pass by its identifier.
func (repo *passRepository) FindByID(ctx context.Context, passID string) (*entity.Pass, error) {
	snap, err := repo.doc(passID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPassNotFound
		}

		return nil, errors.Wrap(classify(err), "failed to find pass by ID")
	}

	return decodePass(snap)
}

// FindByOwner retrieves every pass of a diner in issuance order.
func (repo *passRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Pass, error) {
	iter := repo.client.Collection(passCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	passes := make([]*entity.Pass, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(classify(err), "failed to find passes by owner")
		}

		pass, err := decodePass(snap)
		if err != nil {
			return nil, err
		}
		passes = append(passes, pass)
	}

	return passes, nil
}

// ApplyRedemption evaluates predicate inside a transaction and applies delta.
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

// mutate reads, changes and rewrites the pass in one transaction. Errors returned
// by fn abort the transaction without retrying it.
func (repo *passRepository) mutate(ctx context.Context, passID string, fn func(pass *entity.Pass) error) (*entity.Pass, error) {
	ref := repo.doc(passID)

	var result *entity.Pass
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrPassNotFound
			}

			return errors.Wrap(err, "failed to read pass in transaction")
		}

		pass, err := decodePass(snap)
		if err != nil {
			return err
		}
		if err := fn(pass); err != nil {
			return err
		}

		if err := tx.Set(ref, fromPassDomain(pass)); err != nil {
			return errors.Wrap(err, "failed to write pass in transaction")
		}
		result = pass

		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return result, nil
}

func decodePass(snap *firestore.DocumentSnapshot) (*entity.Pass, error) {
	var doc passDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode pass %s", snap.Ref.ID)
	}
	if doc.PassID == "" {
		doc.PassID = snap.Ref.ID
	}

	return toPassDomain(&doc), nil
}

func toPassDomain(doc *passDocument) *entity.Pass {
	passStatus := entity.PassStatus(doc.Status)
	if passStatus == "" {
		// Legacy documents only carry isActive.
		passStatus = entity.PassStatusSuspended
		if doc.IsActive {
			passStatus = entity.PassStatusActive
		}
	}

	return &entity.Pass{
		PassID:       doc.PassID,
		UserID:       doc.UserID,
		RestaurantID: doc.RestaurantID,
		LocationID:   doc.LocationID,
		Status:       passStatus,
		IsActive:     passStatus == entity.PassStatusActive,
		Points:       doc.Points,
		Visits:       doc.Visits,
		LastUsed:     doc.LastUsed,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromPassDomain(pass *entity.Pass) *passDocument {
	return &passDocument{
		PassID:       pass.PassID,
		UserID:       pass.UserID,
		RestaurantID: pass.RestaurantID,
		LocationID:   pass.LocationID,
		Status:       string(pass.Status),
		IsActive:     pass.IsActive,
		Points:       pass.Points,
		Visits:       pass.Visits,
		LastUsed:     pass.LastUsed,
		CreatedAt:    pass.CreatedAt,
		UpdatedAt:    pass.UpdatedAt,
	}
}
