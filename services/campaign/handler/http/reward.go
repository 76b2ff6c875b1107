package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/utils"
	"github.com/glossylabs/campaign/services/campaign"
)

// ClaimReward handles POST /api/rewards/claim
func (h *HTTPHandler) ClaimReward(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req models.ClaimRewardRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	claim, err := h.uc.ClaimReward(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrNoApprovedContent),
			errors.Is(err, campaign.ErrRewardAlreadyClaimed),
			errors.Is(err, campaign.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to claim reward", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to claim reward")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reward claimed successfully", utils.Payload{
		"claim": claim,
	})
}

// GetRewardClaims handles GET /api/rewards/claims
func (h *HTTPHandler) GetRewardClaims(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	claims, err := h.uc.GetRewardClaims(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get reward claims", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get reward claims")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", utils.Payload{
		"claims": claims,
	})
}
