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

// SendOTP handles POST /api/auth/send-otp
func (h *HTTPHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	code, err := h.uc.SendOTP(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrInvalidPhoneNumber),
			errors.Is(err, campaign.ErrOTPRateLimited):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to send OTP", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to send OTP")
		}
	}

	payload := utils.Payload{}
	// The code is echoed outside production so clients can be tested
	// without an SMS gateway
	if !h.cfg.App.IsProduction() {
		payload["otp"] = code
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", payload)
}

// VerifyOTP handles POST /api/auth/verify-otp. A successful verification
// issues an opaque session delivered as an HTTP cookie.
func (h *HTTPHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	user, err := h.uc.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrInvalidPhoneNumber),
			errors.Is(err, campaign.ErrInvalidOTP):
			return utils.BadRequestResponse(c, err.Error())
		default:
			logger.Error("Failed to verify OTP", logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
		}
	}

	sessionID, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		logger.Error("Failed to create session",
			logger.String("user_id", user.ID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to create session")
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", utils.Payload{
		"user": user,
	})
}

// GetUser handles GET /api/auth/user
func (h *HTTPHandler) GetUser(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, campaign.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get user", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", utils.Payload{
		"user": user,
	})
}

// Logout handles POST /api/auth/logout. The server-side session is destroyed
// and the cookie expired regardless of whether the session still existed.
func (h *HTTPHandler) Logout(c echo.Context) error {
	if sessionID, ok := c.Get("session_id").(string); ok && sessionID != "" {
		if err := h.sessions.Destroy(c.Request().Context(), sessionID); err != nil {
			logger.Warn("Failed to destroy session", logger.ErrorField(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
