package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/utils"
	"github.com/glossylabs/campaign/services/campaign"
)

// SendOTP generates and stores a one-time code for the given phone number.
// The code is returned so non-production deployments can echo it; in
// production delivery happens out of band through the SMS gateway.
func (u *CampaignUC) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	if !utils.IsValidPhoneNumber(phoneNumber) {
		return "", campaign.ErrInvalidPhoneNumber
	}

	if limit := u.cfg.Campaign.OTPSendsPerMinute; limit > 0 {
		count, err := u.repo.IncrementOTPSendCount(ctx, phoneNumber, time.Minute)
		if err != nil {
			return "", fmt.Errorf("failed to check OTP rate limit: %w", err)
		}
		if count > int64(limit) {
			return "", campaign.ErrOTPRateLimited
		}
	}

	// The designated test number always receives the fixed well-known code
	code := utils.GenerateOTP()
	if phoneNumber == u.cfg.Campaign.TestPhoneNumber {
		code = u.cfg.Campaign.TestOTPCode
	}

	if u.cfg.Campaign.InvalidatePriorOTPs {
		if err := u.repo.InvalidateOTPs(ctx, phoneNumber); err != nil {
			return "", fmt.Errorf("failed to invalidate prior OTPs: %w", err)
		}
	}

	otp := &models.OtpVerification{
		PhoneNumber: phoneNumber,
		OTP:         code,
		ExpiresAt:   time.Now().Add(time.Duration(u.cfg.Campaign.OTPExpiryMinutes) * time.Minute),
	}

	if err := u.repo.CreateOTP(ctx, otp); err != nil {
		return "", fmt.Errorf("failed to create OTP: %w", err)
	}

	// Production delivery goes through the SMS gateway; here we only log
	logger.Info("Generated OTP",
		logger.String("phone_number", phoneNumber),
		logger.String("otp_code", code))

	return code, nil
}

// VerifyOTP consumes a matching unused unexpired code and resolves it to a
// logged-in user, creating the user and their campaign participation on first
// verification. This is the only path that creates users.
func (u *CampaignUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.User, error) {
	if !utils.IsValidPhoneNumber(phoneNumber) {
		return nil, campaign.ErrInvalidPhoneNumber
	}

	otp, err := u.repo.GetValidOTP(ctx, phoneNumber, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	if otp == nil {
		return nil, campaign.ErrInvalidOTP
	}

	if err := u.repo.MarkOTPUsed(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	user, err := u.repo.GetUserByPhone(ctx, phoneNumber)
	switch {
	case err == nil:
		if err := u.repo.UpdateUserVerified(ctx, user.ID, true); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		user.IsVerified = true
	case err == campaign.ErrUserNotFound:
		user = &models.User{
			PhoneNumber: phoneNumber,
			IsVerified:  true,
		}
		if err := u.repo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		participation := &models.CampaignParticipation{
			UserID:       user.ID,
			CampaignName: u.cfg.Campaign.Name,
		}
		if err := u.repo.CreateCampaignParticipation(ctx, participation); err != nil {
			return nil, fmt.Errorf("failed to create campaign participation: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	logger.Info("OTP verified",
		logger.String("phone_number", phoneNumber),
		logger.String("user_id", user.ID.String()))

	return user, nil
}

// GetUser retrieves a user by ID
func (u *CampaignUC) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return u.repo.GetUserByID(ctx, userID)
}
