// Package middleware holds transport-agnostic echo middlewares.
package middleware

import (
	"log/slog"
	"time"

	"truefans/config"
	deliverycontext "truefans/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs request details in debug mode, on top of the access log
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

// logRequest logs request details with the request-scoped logger
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if pathPassID := c.Param("passId"); pathPassID != "" {
		fields = append(fields, slog.String("pass_id", pathPassID))
	}

	// Authenticated caller, when the route required one
	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		fields = append(fields,
			slog.String("user_id", principal.UserID),
			slog.String("restaurant_id", principal.RestaurantID),
		)
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, slog.LevelDebug, "HTTP Request", fields...)
}
