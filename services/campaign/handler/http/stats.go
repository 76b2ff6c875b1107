package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/utils"
)

// GetDashboardStats handles GET /api/dashboard/stats
func (h *HTTPHandler) GetDashboardStats(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	stats, err := h.uc.GetDashboardStats(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get dashboard stats", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get dashboard stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", utils.Payload{
		"stats": stats,
	})
}

// GetCampaignAnalytics handles GET /api/campaign/analytics. This endpoint is
// public; it powers the campaign landing page counters.
func (h *HTTPHandler) GetCampaignAnalytics(c echo.Context) error {
	analytics, err := h.uc.GetCampaignAnalytics(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get campaign analytics", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get campaign analytics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", utils.Payload{
		"analytics": analytics,
	})
}
