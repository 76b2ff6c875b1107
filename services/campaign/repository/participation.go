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

// CreateCampaignParticipation creates the per-user participation record
func (r *CampaignRepo) CreateCampaignParticipation(ctx context.Context, participation *models.CampaignParticipation) error {
	participation.ID = uuid.New()
	now := time.Now()
	participation.CreatedAt = now
	participation.UpdatedAt = now
	if participation.ParticipationDate.IsZero() {
		participation.ParticipationDate = now
	}
	if participation.Status == "" {
		participation.Status = models.ParticipationActive
	}

	query := `
		INSERT INTO campaign_participation (id, user_id, campaign_name,
			participation_date, status, content_count, rewards_claimed,
			total_engagement, created_at, updated_at
		) VALUES (:id, :user_id, :campaign_name,
			:participation_date, :status, :content_count, :rewards_claimed,
			:total_engagement, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, participation)
	if err != nil {
		return fmt.Errorf("failed to insert campaign participation: %w", err)
	}

	return nil
}

// GetCampaignParticipationByUserID retrieves a user's participation record.
// Returns nil without error when the user has none.
func (r *CampaignRepo) GetCampaignParticipationByUserID(ctx context.Context, userID uuid.UUID) (*models.CampaignParticipation, error) {
	query := `
		SELECT id, user_id, campaign_name, participation_date, status,
			content_count, rewards_claimed, total_engagement, created_at, updated_at
		FROM campaign_participation
		WHERE user_id = $1
	`

	var participation models.CampaignParticipation
	err := r.db.GetContext(ctx, &participation, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign participation: %w", err)
	}

	return &participation, nil
}

// IncrementContentCount bumps the submitted-content counter
func (r *CampaignRepo) IncrementContentCount(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE campaign_participation
		SET content_count = content_count + 1, updated_at = $1
		WHERE user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to increment content count: %w", err)
	}

	return nil
}

// IncrementRewardsClaimed bumps the claimed-rewards counter
func (r *CampaignRepo) IncrementRewardsClaimed(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE campaign_participation
		SET rewards_claimed = rewards_claimed + 1, updated_at = $1
		WHERE user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to increment rewards claimed: %w", err)
	}

	return nil
}
