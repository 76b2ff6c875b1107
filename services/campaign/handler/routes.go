package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/glossylabs/campaign/internal/pkg/middleware"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/pkg/session"
	"github.com/glossylabs/campaign/services/campaign/handler/http"
	"github.com/glossylabs/campaign/services/campaign/handler/nsq"
)

// Handler coordinates all protocol handlers for the campaign service
type Handler struct {
	httpHandler     *http.HTTPHandler
	shipmentHandler *nsq.ShipmentHandler
	sessions        session.Store
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	httpHandler *http.HTTPHandler,
	shipmentHandler *nsq.ShipmentHandler,
	sessions session.Store,
	cfg *models.Config,
) *Handler {
	return &Handler{
		httpHandler:     httpHandler,
		shipmentHandler: shipmentHandler,
		sessions:        sessions,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes under /api
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public routes (no authentication required)
	api.POST("/auth/send-otp", h.httpHandler.SendOTP)
	api.POST("/auth/verify-otp", h.httpHandler.VerifyOTP)
	api.GET("/campaign/analytics", h.httpHandler.GetCampaignAnalytics)

	// Protected routes behind the session cookie
	protected := api.Group("", middleware.SessionAuthMiddleware(h.sessions, h.cfg.Session))

	protected.GET("/auth/user", h.httpHandler.GetUser)
	protected.POST("/auth/logout", h.httpHandler.Logout)

	protected.POST("/social/connect", h.httpHandler.ConnectSocialAccount)
	protected.GET("/social/accounts", h.httpHandler.GetSocialAccounts)

	protected.POST("/content/submit", h.httpHandler.SubmitContent)
	protected.GET("/content/submissions", h.httpHandler.GetContentSubmissions)

	protected.POST("/rewards/claim", h.httpHandler.ClaimReward)
	protected.GET("/rewards/claims", h.httpHandler.GetRewardClaims)

	protected.GET("/dashboard/stats", h.httpHandler.GetDashboardStats)
}

// StartConsumers connects the NSQ shipment consumer
func (h *Handler) StartConsumers(nsqAddress string) error {
	return h.shipmentHandler.Start(nsqAddress)
}

// StopConsumers stops the NSQ consumers
func (h *Handler) StopConsumers() {
	h.shipmentHandler.Stop()
}
