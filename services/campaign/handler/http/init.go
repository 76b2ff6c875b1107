package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/pkg/session"
	"github.com/glossylabs/campaign/services/campaign"
)

// HTTPHandler translates HTTP requests into campaign usecase calls
type HTTPHandler struct {
	uc       campaign.CampaignUC
	sessions session.Store
	cfg      *models.Config
}

// NewHTTPHandler creates a new HTTP handler for the campaign service
func NewHTTPHandler(uc campaign.CampaignUC, sessions session.Store, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		uc:       uc,
		sessions: sessions,
		cfg:      cfg,
	}
}

// userIDFromContext reads the user ID placed by the session middleware
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
