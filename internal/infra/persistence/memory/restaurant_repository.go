package memory

import (
	"context"
	"os"
	"sync"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/repository"
	"truefans/internal/errors"

	"gopkg.in/yaml.v3"
)

// DirectorySeed is the on-disk layout of a restaurant directory seed file.
type DirectorySeed struct {
	Restaurants []SeedRestaurant `yaml:"restaurants"`
}

// SeedRestaurant is a restaurant with its locations as written in a seed file.
type SeedRestaurant struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Address   string         `yaml:"address"`
	Latitude  *float64       `yaml:"latitude"`
	Longitude *float64       `yaml:"longitude"`
	Logo      string         `yaml:"logo"`
	Locations []SeedLocation `yaml:"locations"`
}

// SeedLocation is a restaurant venue as written in a seed file.
type SeedLocation struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Address   string   `yaml:"address"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	Logo      string   `yaml:"logo"`
}

// RestaurantDirectory is an in-memory restaurant directory.
type RestaurantDirectory struct {
	mu          sync.RWMutex
	restaurants map[string]*entity.Restaurant
	locations   map[string]map[string]*entity.RestaurantLocation
	order       []string
}

// NewRestaurantDirectory creates an empty directory.
func NewRestaurantDirectory() *RestaurantDirectory {
	return &RestaurantDirectory{
		restaurants: make(map[string]*entity.Restaurant),
		locations:   make(map[string]map[string]*entity.RestaurantLocation),
	}
}

// LoadRestaurantDirectory reads a YAML seed file into a new directory.
func LoadRestaurantDirectory(path string) (*RestaurantDirectory, error) {
	dir := NewRestaurantDirectory()
	if path == "" {
		return dir, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory seed %s", path)
	}

	var seed DirectorySeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, errors.Wrapf(err, "parse directory seed %s", path)
	}

	for _, r := range seed.Restaurants {
		dir.PutRestaurant(&entity.Restaurant{
			ID:       r.ID,
			Name:     r.Name,
			Address:  r.Address,
			Location: seedPoint(r.Latitude, r.Longitude),
			LogoRef:  r.Logo,
		})
		for _, l := range r.Locations {
			dir.PutLocation(&entity.RestaurantLocation{
				ID:           l.ID,
				RestaurantID: r.ID,
				Name:         l.Name,
				Address:      l.Address,
				Location:     seedPoint(l.Latitude, l.Longitude),
				LogoRef:      l.Logo,
			})
		}
	}

	return dir, nil
}

func seedPoint(lat, lon *float64) *entity.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}

	return &entity.GeoPoint{Latitude: *lat, Longitude: *lon}
}

// PutRestaurant adds or replaces a restaurant.
func (d *RestaurantDirectory) PutRestaurant(restaurant *entity.Restaurant) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.restaurants[restaurant.ID]; !exists {
		d.order = append(d.order, restaurant.ID)
	}
	cloned := *restaurant
	d.restaurants[restaurant.ID] = &cloned
}

// PutLocation adds or replaces a location of a restaurant.
func (d *RestaurantDirectory) PutLocation(location *entity.RestaurantLocation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	byID, ok := d.locations[location.RestaurantID]
	if !ok {
		byID = make(map[string]*entity.RestaurantLocation)
		d.locations[location.RestaurantID] = byID
	}
	cloned := *location
	byID[location.ID] = &cloned
}

// GetRestaurant retrieves a restaurant by ID.
func (d *RestaurantDirectory) GetRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	restaurant, ok := d.restaurants[restaurantID]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}
	cloned := *restaurant

	return &cloned, nil
}

// GetLocation retrieves a location of a restaurant.
func (d *RestaurantDirectory) GetLocation(ctx context.Context, restaurantID, locationID string) (*entity.RestaurantLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	location, ok := d.locations[restaurantID][locationID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	cloned := *location

	return &cloned, nil
}

// ListRestaurants returns every restaurant in insertion order.
func (d *RestaurantDirectory) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	restaurants := make([]*entity.Restaurant, 0, len(d.order))
	for _, id := range d.order {
		cloned := *d.restaurants[id]
		restaurants = append(restaurants, &cloned)
	}

	return restaurants, nil
}

var _ repository.RestaurantDirectory = (*RestaurantDirectory)(nil)
