package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/mrstm/fare-service/internal/pkg/middleware"
	"github.com/mrstm/fare-service/internal/pkg/models"
	natspkg "github.com/mrstm/fare-service/internal/pkg/nats"
	"github.com/mrstm/fare-service/services/fare"
	httpHandler "github.com/mrstm/fare-service/services/fare/handler/http"
	natsHandler "github.com/mrstm/fare-service/services/fare/handler/nats"
)

// Handler combines all handlers for the fare service
type Handler struct {
	fareHTTP *httpHandler.FareHandler
	fareNATS *natsHandler.FareHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	fareUC fare.FareUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		fareHTTP: httpHandler.NewFareHandler(fareUC, cfg),
		fareNATS: natsHandler.NewFareHandler(fareUC, natsClient, cfg, nrApp),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	apiKey := middleware.NewAPIKeyMiddleware(&h.cfg.APIKey)

	// Public estimate endpoint
	e.POST("/fare/estimate", h.fareHTTP.EstimateFare)

	// Driver analytics endpoints (JWT, driver role required)
	analytics := e.Group("/fare/analytics",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRole("DRIVER"))
	analytics.GET("", h.fareHTTP.GetDriverEarnings)
	analytics.GET("/daily", h.fareHTTP.GetDailyEarnings)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/fare")
	internal.POST("/:bookingID/calculate", h.fareHTTP.CalculateFare,
		apiKey.Handler("booking-service", "admin-service"))
	internal.POST("/rates", h.fareHTTP.AddFareRate,
		apiKey.Handler("admin-service"))
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.fareNATS.InitNATSConsumers()
}
