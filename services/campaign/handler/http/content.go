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

// SubmitContent handles POST /api/content/submit
func (h *HTTPHandler) SubmitContent(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req models.SubmitContentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	submission, err := h.uc.SubmitContent(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrInvalidURL),
			errors.Is(err, campaign.ErrMissingHashtags):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to submit content", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to submit content")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Content submitted successfully", utils.Payload{
		"submission": submission,
	})
}

// GetContentSubmissions handles GET /api/content/submissions
func (h *HTTPHandler) GetContentSubmissions(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	submissions, err := h.uc.GetContentSubmissions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get content submissions", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get content submissions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", utils.Payload{
		"submissions": submissions,
	})
}
