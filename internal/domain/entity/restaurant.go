package entity

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Restaurant is a brand that issues loyalty passes.
type Restaurant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	Location *GeoPoint `json:"location,omitempty"` // Nil excludes the restaurant from proximity search.
	LogoRef  string    `json:"logo_ref,omitempty"` // Image source reference of the brand logo.
}

// HasLocation reports whether the restaurant can take part in proximity search.
func (r *Restaurant) HasLocation() bool {
	return r != nil && r.Location != nil
}

// RestaurantLocation is a physical venue of a restaurant; passes are bound to one.
type RestaurantLocation struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Location     *GeoPoint `json:"location,omitempty"`
	LogoRef      string    `json:"logo_ref,omitempty"` // Overrides the restaurant logo when set.
}
