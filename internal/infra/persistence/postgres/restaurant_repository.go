package postgres

import (
	"context"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"
	"truefans/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantDirectory interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantDirectory {
	return &restaurantRepository{
		db: db,
	}
}

// GetRestaurant retrieves a restaurant by ID.
func (repo *restaurantRepository) GetRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", restaurantID).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// GetLocation retrieves a location of a restaurant.
func (repo *restaurantRepository) GetLocation(ctx context.Context, restaurantID, locationID string) (*entity.RestaurantLocation, error) {
	var locationM model.RestaurantLocationModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, locationID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant location")
	}

	return toLocationDomain(&locationM), nil
}

// ListRestaurants returns every restaurant.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

func toGeoPoint(lat, lon *float64) *entity.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}

	return &entity.GeoPoint{Latitude: *lat, Longitude: *lon}
}

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:       data.ID,
		Name:     data.Name,
		Address:  data.Address,
		Location: toGeoPoint(data.Latitude, data.Longitude),
		LogoRef:  data.LogoRef,
	}
}

// toLocationDomain converts a GORM RestaurantLocationModel to a domain RestaurantLocation entity.
func toLocationDomain(data *model.RestaurantLocationModel) *entity.RestaurantLocation {
	if data == nil {
		return nil
	}

	return &entity.RestaurantLocation{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Address:      data.Address,
		Location:     toGeoPoint(data.Latitude, data.Longitude),
		LogoRef:      data.LogoRef,
	}
}
