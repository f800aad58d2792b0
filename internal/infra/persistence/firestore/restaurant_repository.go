package firestore

import (
	"context"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"
	"truefans/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type geoDocument struct {
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

type restaurantDocument struct {
	Name     string       `firestore:"name"`
	Address  string       `firestore:"address"`
	Location *geoDocument `firestore:"location"`
	Logo     string       `firestore:"logo"`
}

type locationDocument struct {
	Name     string       `firestore:"name"`
	Address  string       `firestore:"address"`
	Location *geoDocument `firestore:"location"`
	Logo     string       `firestore:"logo"`
}

// restaurantRepository implements the repository.RestaurantDirectory interface.
// Restaurants live in "restaurants"; their venues in "brands/{restaurantId}/locations".
type restaurantRepository struct {
	client *firestore.Client
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(client *firestore.Client) repository.RestaurantDirectory {
	return &restaurantRepository{
		client: client,
	}
}

// GetRestaurant retrieves a restaurant by ID.
func (repo *restaurantRepository) GetRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	snap, err := repo.client.Collection(restaurantCollection).Doc(restaurantID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(classify(err), "failed to find restaurant by ID")
	}

	return decodeRestaurant(snap)
}

// GetLocation retrieves a location of a restaurant.
func (repo *restaurantRepository) GetLocation(ctx context.Context, restaurantID, locationID string) (*entity.RestaurantLocation, error) {
	snap, err := repo.client.Collection(brandCollection).Doc(restaurantID).
		Collection(locationCollection).Doc(locationID).
		Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(classify(err), "failed to find restaurant location")
	}

	var doc locationDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode location %s", locationID)
	}

	return &entity.RestaurantLocation{
		ID:           snap.Ref.ID,
		RestaurantID: restaurantID,
		Name:         doc.Name,
		Address:      doc.Address,
		Location:     toGeoPoint(doc.Location),
		LogoRef:      doc.Logo,
	}, nil
}

// ListRestaurants returns every restaurant.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	iter := repo.client.Collection(restaurantCollection).Documents(ctx)
	defer iter.Stop()

	restaurants := make([]*entity.Restaurant, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(classify(err), "failed to list restaurants")
		}

		restaurant, err := decodeRestaurant(snap)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

func decodeRestaurant(snap *firestore.DocumentSnapshot) (*entity.Restaurant, error) {
	var doc restaurantDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode restaurant %s", snap.Ref.ID)
	}

	return &entity.Restaurant{
		ID:       snap.Ref.ID,
		Name:     doc.Name,
		Address:  doc.Address,
		Location: toGeoPoint(doc.Location),
		LogoRef:  doc.Logo,
	}, nil
}

func toGeoPoint(doc *geoDocument) *entity.GeoPoint {
	if doc == nil {
		return nil
	}

	return &entity.GeoPoint{Latitude: doc.Latitude, Longitude: doc.Longitude}
}
