package repository

import (
	"context"

	"truefans/internal/domain/entity"
	"truefans/internal/errors"
)

// Domain-specific errors for the restaurant directory.
var (
	// ErrRestaurantNotFound is returned when the restaurant does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrLocationNotFound is returned when the restaurant has no such location.
	ErrLocationNotFound = errors.New("restaurant location not found")
)

// RestaurantDirectory provides read access to restaurants and their locations.
type RestaurantDirectory interface {
	// GetRestaurant retrieves a restaurant by ID.
	GetRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error)

	// GetLocation retrieves a location of a restaurant. Used to validate a pass binding.
	GetLocation(ctx context.Context, restaurantID, locationID string) (*entity.RestaurantLocation, error)

	// ListRestaurants returns every restaurant, with or without a location.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
}
