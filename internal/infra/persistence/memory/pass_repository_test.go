package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedPass(t *testing.T, repo repository.PassRepository, passID, restaurantID string, userID *string) *entity.Pass {
	t.Helper()

	pass := entity.NewPass(passID, userID, restaurantID, "loc-1", testNow)
	require.NoError(t, repo.Create(context.Background(), pass))

	return pass
}

func redemption() entity.RedemptionDelta {
	return entity.RedemptionDelta{Visits: 1, At: testNow.Add(time.Hour)}
}

func TestPassRepository_CreateAndFind(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()
	userID := "diner-1"

	created := seedPass(t, repo, "pass-1", "rest-1", &userID)

	found, err := repo.FindByID(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	// Returned records are private copies.
	found.Points = 99
	again, err := repo.FindByID(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Points)
}

func TestPassRepository_Create_Duplicate(t *testing.T) {
	repo := NewPassRepository()
	seedPass(t, repo, "pass-1", "rest-1", nil)

	err := repo.Create(context.Background(), entity.NewPass("pass-1", nil, "rest-2", "loc-2", testNow))
	assert.ErrorIs(t, err, repository.ErrPassAlreadyExists)
}

func TestPassRepository_FindByID_NotFound(t *testing.T) {
	repo := NewPassRepository()

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrPassNotFound)
}

func TestPassRepository_FindByOwner_IssuanceOrder(t *testing.T) {
	repo := NewPassRepository()
	alice, bob := "alice", "bob"

	seedPass(t, repo, "pass-b", "rest-1", &alice)
	seedPass(t, repo, "pass-x", "rest-1", &bob)
	seedPass(t, repo, "pass-a", "rest-2", &alice)
	seedPass(t, repo, "pass-anon", "rest-2", nil)

	passes, err := repo.FindByOwner(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, passes, 2)
	assert.Equal(t, "pass-b", passes[0].PassID)
	assert.Equal(t, "pass-a", passes[1].PassID)

	none, err := repo.FindByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPassRepository_ApplyRedemption(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()
	seedPass(t, repo, "pass-1", "rest-1", nil)

	pass, err := repo.ApplyRedemption(ctx, "pass-1", entity.RedeemableAt("rest-1"), redemption())
	require.NoError(t, err)
	assert.Equal(t, int64(1), pass.Visits)
	require.NotNil(t, pass.LastUsed)
	assert.Equal(t, testNow.Add(time.Hour), *pass.LastUsed)

	stored, err := repo.FindByID(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, pass, stored)
}

func TestPassRepository_ApplyRedemption_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		restaurantID string
		status       entity.PassStatus
		passID       string
		wantErr      error
	}{
		{name: "wrong restaurant", restaurantID: "rest-2", passID: "pass-1", wantErr: repository.ErrPredicateFailed},
		{name: "suspended", restaurantID: "rest-1", status: entity.PassStatusSuspended, passID: "pass-1", wantErr: repository.ErrPredicateFailed},
		{name: "revoked", restaurantID: "rest-1", status: entity.PassStatusRevoked, passID: "pass-1", wantErr: repository.ErrPredicateFailed},
		{name: "unknown pass", restaurantID: "rest-1", passID: "missing", wantErr: repository.ErrPassNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewPassRepository()
			ctx := context.Background()
			seedPass(t, repo, "pass-1", "rest-1", nil)
			if tt.status != "" {
				_, err := repo.UpdateStatus(ctx, "pass-1", tt.status)
				require.NoError(t, err)
			}

			_, err := repo.ApplyRedemption(ctx, tt.passID, entity.RedeemableAt(tt.restaurantID), redemption())
			require.ErrorIs(t, err, tt.wantErr)

			stored, err := repo.FindByID(ctx, "pass-1")
			require.NoError(t, err)
			assert.Equal(t, int64(0), stored.Visits)
			assert.Nil(t, stored.LastUsed)
		})
	}
}

func TestPassRepository_ApplyRedemption_Concurrent(t *testing.T) {
	const redemptions = 200

	repo := NewPassRepository()
	ctx := context.Background()
	seedPass(t, repo, "pass-1", "rest-1", nil)

	var wg sync.WaitGroup
	for range redemptions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ApplyRedemption(ctx, "pass-1", entity.RedeemableAt("rest-1"),
				entity.RedemptionDelta{Visits: 1, Points: 2, At: time.Now()})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.FindByID(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, int64(redemptions), stored.Visits)
	assert.Equal(t, int64(2*redemptions), stored.Points)
}

func TestPassRepository_RedemptionRacesRevocation(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()

	for i := range 50 {
		passID := fmt.Sprintf("pass-%d", i)
		seedPass(t, repo, passID, "rest-1", nil)

		var (
			wg          sync.WaitGroup
			redeemErr   error
			redeemed    *entity.Pass
			revokedPass *entity.Pass
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			redeemed, redeemErr = repo.ApplyRedemption(ctx, passID, entity.RedeemableAt("rest-1"), redemption())
		}()
		go func() {
			defer wg.Done()
			var err error
			revokedPass, err = repo.UpdateStatus(ctx, passID, entity.PassStatusRevoked)
			assert.NoError(t, err)
		}()
		wg.Wait()

		stored, err := repo.FindByID(ctx, passID)
		require.NoError(t, err)
		assert.Equal(t, entity.PassStatusRevoked, stored.Status)

		if redeemErr == nil {
			// Redemption won the race and the revocation observed it.
			assert.Equal(t, int64(1), redeemed.Visits)
			assert.Equal(t, int64(1), revokedPass.Visits)
			assert.Equal(t, int64(1), stored.Visits)
		} else {
			require.ErrorIs(t, redeemErr, repository.ErrPredicateFailed)
			assert.Equal(t, int64(0), stored.Visits)
		}
	}
}

func TestPassRepository_UpdateCounters_ReadAfterWrite(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()
	seedPass(t, repo, "pass-1", "rest-1", nil)

	points := int64(40)
	_, err := repo.UpdateCounters(ctx, "pass-1", entity.CounterUpdate{Points: &points})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, int64(40), stored.Points)
	assert.Equal(t, int64(0), stored.Visits)
	assert.Nil(t, stored.LastUsed)

	negative := int64(-1)
	_, err = repo.UpdateCounters(ctx, "pass-1", entity.CounterUpdate{Visits: &negative})
	require.ErrorIs(t, err, entity.ErrNegativeCounter)

	_, err = repo.UpdateCounters(ctx, "missing", entity.CounterUpdate{Points: &points})
	require.ErrorIs(t, err, repository.ErrPassNotFound)
}

func TestPassRepository_UpdateStatus_StateMachine(t *testing.T) {
	repo := NewPassRepository()
	ctx := context.Background()
	seedPass(t, repo, "pass-1", "rest-1", nil)

	pass, err := repo.UpdateStatus(ctx, "pass-1", entity.PassStatusSuspended)
	require.NoError(t, err)
	assert.False(t, pass.IsActive)

	pass, err = repo.UpdateStatus(ctx, "pass-1", entity.PassStatusActive)
	require.NoError(t, err)
	assert.True(t, pass.IsActive)

	_, err = repo.UpdateStatus(ctx, "pass-1", entity.PassStatusRevoked)
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "pass-1", entity.PassStatusActive)
	require.ErrorIs(t, err, entity.ErrInvalidStatusTransition)

	stored, err := repo.FindByID(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PassStatusRevoked, stored.Status)
	assert.False(t, stored.IsActive)
}

func TestPassRepository_CanceledContext(t *testing.T) {
	repo := NewPassRepository()
	seedPass(t, repo, "pass-1", "rest-1", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ApplyRedemption(ctx, "pass-1", entity.RedeemableAt("rest-1"), redemption())
	require.ErrorIs(t, err, context.Canceled)
}
