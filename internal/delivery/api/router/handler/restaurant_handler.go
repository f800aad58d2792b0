package handler

import (
	"log/slog"
	"net/http"

	"truefans/internal/delivery/api/response"
	"truefans/internal/domain/entity"
	domainerrors "truefans/internal/domain/errors"
	"truefans/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant-related handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// Nearby lists restaurants around the lat/lon query coordinates within radius meters
func (h *RestaurantHandler) Nearby(c echo.Context) error {
	var origin entity.GeoPoint
	var radius float64

	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &origin.Latitude).
		MustFloat64("lon", &origin.Longitude).
		Float64("radius", &radius).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lon are required numbers, radius is optional")
	}

	restaurants, err := h.restaurantUC.Nearby(c.Request().Context(), origin, radius)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurants)
}
