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

// ConnectSocialAccount handles POST /api/social/connect
func (h *HTTPHandler) ConnectSocialAccount(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req models.ConnectSocialAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	account, err := h.uc.ConnectSocialAccount(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, campaign.ErrIneligibleAccount) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to connect social account", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to connect social account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Social account connected successfully", utils.Payload{
		"account": account,
	})
}

// GetSocialAccounts handles GET /api/social/accounts
func (h *HTTPHandler) GetSocialAccounts(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	accounts, err := h.uc.GetSocialAccounts(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get social accounts", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get social accounts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", utils.Payload{
		"accounts": accounts,
	})
}
