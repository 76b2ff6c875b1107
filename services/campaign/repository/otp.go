package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

// CreateOTP creates a new OTP record. Previous codes for the same number are
// left untouched; expiry and the used flag limit replay.
func (r *CampaignRepo) CreateOTP(ctx context.Context, otp *models.OtpVerification) error {
	otp.ID = uuid.New()
	otp.CreatedAt = time.Now()

	query := `
		INSERT INTO otp_verifications (id, phone_number, otp, is_used, expires_at, created_at)
		VALUES (:id, :phone_number, :otp, :is_used, :expires_at, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, otp)
	if err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	return nil
}

// GetValidOTP retrieves the most recent matching OTP that is unused and
// unexpired. Returns nil without error when no row qualifies.
func (r *CampaignRepo) GetValidOTP(ctx context.Context, phoneNumber, code string) (*models.OtpVerification, error) {
	query := `
		SELECT id, phone_number, otp, is_used, expires_at, created_at
		FROM otp_verifications
		WHERE phone_number = $1 AND otp = $2 AND is_used = false AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp models.OtpVerification
	err := r.db.GetContext(ctx, &otp, query, phoneNumber, code, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}

// MarkOTPUsed consumes an OTP so it cannot be replayed
func (r *CampaignRepo) MarkOTPUsed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE otp_verifications
		SET is_used = true
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	return nil
}

// InvalidateOTPs marks all outstanding unused codes for a phone number as used
func (r *CampaignRepo) InvalidateOTPs(ctx context.Context, phoneNumber string) error {
	query := `
		UPDATE otp_verifications
		SET is_used = true
		WHERE phone_number = $1 AND is_used = false
	`

	_, err := r.db.ExecContext(ctx, query, phoneNumber)
	if err != nil {
		return fmt.Errorf("failed to invalidate OTPs: %w", err)
	}

	return nil
}

// IncrementOTPSendCount bumps the per-phone send counter in Redis and returns
// the count within the current window. The TTL is set on first increment.
func (r *CampaignRepo) IncrementOTPSendCount(ctx context.Context, phoneNumber string, window time.Duration) (int64, error) {
	key := "otp:sends:" + phoneNumber

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP send count: %w", err)
	}

	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, fmt.Errorf("failed to set OTP send count expiry: %w", err)
		}
	}

	return count, nil
}
