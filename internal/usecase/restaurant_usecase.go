package usecase

import (
	"context"

	"truefans/internal/domain/entity"
)

// NearbyRestaurant is a restaurant with its great-circle distance from the search origin.
type NearbyRestaurant struct {
	*entity.Restaurant
	DistanceMeters float64 `json:"distance_meters"`
}

// RestaurantUsecase covers read-only restaurant queries.
type RestaurantUsecase interface {
	// Nearby returns the restaurants within radiusMeters of origin. A radius of zero
	// selects the configured default. Result order is unspecified.
	Nearby(ctx context.Context, origin entity.GeoPoint, radiusMeters float64) ([]*NearbyRestaurant, error)
}
