package postgres

import (
	"testing"
	"time"

	"truefans/internal/domain/entity"
	"truefans/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
)

func TestPassMapping_RoundTrip(t *testing.T) {
	userID := "diner-1"
	lastUsed := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	pass := &entity.Pass{
		PassID:       "pass-1",
		UserID:       &userID,
		RestaurantID: "rest-1",
		LocationID:   "loc-1",
		Status:       entity.PassStatusSuspended,
		IsActive:     false,
		Points:       12,
		Visits:       3,
		LastUsed:     &lastUsed,
		CreatedAt:    lastUsed.Add(-24 * time.Hour),
		UpdatedAt:    lastUsed,
	}

	assert.Equal(t, pass, toPassDomain(fromPassDomain(pass)))
}

func TestToPassDomain_DerivesIsActiveFromStatus(t *testing.T) {
	// A stale is_active column never leaks into the domain.
	pass := toPassDomain(&model.PassModel{PassID: "pass-1", Status: "revoked", IsActive: true})

	assert.Equal(t, entity.PassStatusRevoked, pass.Status)
	assert.False(t, pass.IsActive)
	assert.Nil(t, toPassDomain(nil))
}

func TestToRestaurantDomain_PartialCoordinates(t *testing.T) {
	lat := 25.03

	withoutLon := toRestaurantDomain(&model.RestaurantModel{ID: "rest-1", Latitude: &lat})
	assert.False(t, withoutLon.HasLocation())

	lon := 121.56
	located := toLocationDomain(&model.RestaurantLocationModel{ID: "loc-1", RestaurantID: "rest-1", Latitude: &lat, Longitude: &lon})
	assert.Equal(t, &entity.GeoPoint{Latitude: lat, Longitude: lon}, located.Location)
}
