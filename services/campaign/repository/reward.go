package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
)

// CreateRewardClaim creates a new reward claim record. The unique constraint
// on (user_id, campaign_name) backs the one-claim-per-user rule under
// concurrent requests.
func (r *CampaignRepo) CreateRewardClaim(ctx context.Context, claim *models.RewardClaim) error {
	claim.ID = uuid.New()
	now := time.Now()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	query := `
		INSERT INTO reward_claims (id, user_id, content_submission_id, campaign_name,
			reward_type, reward_value, delivery_address, status, tracking_id,
			carrier_name, estimated_delivery, actual_delivery, notes, created_at, updated_at
		) VALUES (:id, :user_id, :content_submission_id, :campaign_name,
			:reward_type, :reward_value, :delivery_address, :status, :tracking_id,
			:carrier_name, :estimated_delivery, :actual_delivery, :notes, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, claim)
	if err != nil {
		return fmt.Errorf("failed to insert reward claim: %w", err)
	}

	return nil
}

// GetRewardClaimsByUserID retrieves a user's reward claims, newest first
func (r *CampaignRepo) GetRewardClaimsByUserID(ctx context.Context, userID uuid.UUID) ([]models.RewardClaim, error) {
	query := `
		SELECT id, user_id, content_submission_id, campaign_name, reward_type,
			reward_value, delivery_address, status, tracking_id, carrier_name,
			estimated_delivery, actual_delivery, notes, created_at, updated_at
		FROM reward_claims
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	claims := []models.RewardClaim{}
	err := r.db.SelectContext(ctx, &claims, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reward claims: %w", err)
	}

	return claims, nil
}

// GetRewardClaimByTrackingID retrieves a claim by its tracking identifier
func (r *CampaignRepo) GetRewardClaimByTrackingID(ctx context.Context, trackingID string) (*models.RewardClaim, error) {
	query := `
		SELECT id, user_id, content_submission_id, campaign_name, reward_type,
			reward_value, delivery_address, status, tracking_id, carrier_name,
			estimated_delivery, actual_delivery, notes, created_at, updated_at
		FROM reward_claims
		WHERE tracking_id = $1
	`

	var claim models.RewardClaim
	err := r.db.GetContext(ctx, &claim, query, trackingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, campaign.ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to get reward claim: %w", err)
	}

	return &claim, nil
}

// UpdateRewardClaimStatus advances a claim's shipment status
func (r *CampaignRepo) UpdateRewardClaimStatus(ctx context.Context, id uuid.UUID, status string, actualDelivery *time.Time) error {
	query := `
		UPDATE reward_claims
		SET status = $1, actual_delivery = $2, updated_at = $3
		WHERE id = $4
	`

	_, err := r.db.ExecContext(ctx, query, status, actualDelivery, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update reward claim status: %w", err)
	}

	return nil
}

// CountRewardClaims counts a user's claims within a campaign
func (r *CampaignRepo) CountRewardClaims(ctx context.Context, userID uuid.UUID, campaignName string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reward_claims
		WHERE user_id = $1 AND campaign_name = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, campaignName)
	if err != nil {
		return 0, fmt.Errorf("failed to count reward claims: %w", err)
	}

	return count, nil
}
