package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"truefans/config"
	"truefans/internal/domain/entity"
	domainerrors "truefans/internal/domain/errors"
	"truefans/internal/domain/repository"
	"truefans/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type restaurantService struct {
	logger        *slog.Logger
	directory     repository.RestaurantDirectory
	defaultRadius float64
	maxRadius     float64
	storeTimeout  time.Duration
}

// NewRestaurantService creates a new restaurant service instance
func NewRestaurantService(cfg *config.Config, logger *slog.Logger, directory repository.RestaurantDirectory) usecase.RestaurantUsecase {
	return &restaurantService{
		logger:        logger,
		directory:     directory,
		defaultRadius: cfg.Nearby.DefaultRadiusMeters,
		maxRadius:     cfg.Nearby.MaxRadiusMeters,
		storeTimeout:  cfg.Store.OperationTimeout,
	}
}

// Nearby filters the directory by great-circle distance from origin.
func (s *restaurantService) Nearby(ctx context.Context, origin entity.GeoPoint, radiusMeters float64) ([]*usecase.NearbyRestaurant, error) {
	if !validCoordinate(origin) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}
	if radiusMeters < 0 || math.IsNaN(radiusMeters) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must not be negative")
	}
	if radiusMeters == 0 {
		radiusMeters = s.defaultRadius
	}
	if radiusMeters > s.maxRadius {
		return nil, domainerrors.ErrRadiusTooLarge
	}

	storeCtx := ctx
	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		storeCtx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}

	restaurants, err := s.directory.ListRestaurants(storeCtx)
	if err != nil {
		return nil, directoryError(err)
	}

	center := orb.Point{origin.Longitude, origin.Latitude}
	nearby := make([]*usecase.NearbyRestaurant, 0)
	for _, restaurant := range restaurants {
		// Restaurants without coordinates are excluded, not errors.
		if !restaurant.HasLocation() {
			continue
		}

		point := orb.Point{restaurant.Location.Longitude, restaurant.Location.Latitude}
		distance := geo.DistanceHaversine(center, point)
		if distance <= radiusMeters {
			nearby = append(nearby, &usecase.NearbyRestaurant{
				Restaurant:     restaurant,
				DistanceMeters: distance,
			})
		}
	}

	s.logger.DebugContext(ctx, "Nearby restaurants resolved",
		slog.Float64("radius_meters", radiusMeters),
		slog.Int("candidates", len(restaurants)),
		slog.Int("matches", len(nearby)),
	)

	return nearby, nil
}

func validCoordinate(p entity.GeoPoint) bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
