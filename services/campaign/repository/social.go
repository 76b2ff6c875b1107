package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

// CreateSocialAccount creates a new social account record
func (r *CampaignRepo) CreateSocialAccount(ctx context.Context, account *models.SocialAccount) error {
	account.ID = uuid.New()
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO social_accounts (id, user_id, platform, handle, display_name,
			profile_url, followers_count, engagement_rate, is_public, is_verified,
			verified_at, created_at, updated_at
		) VALUES (:id, :user_id, :platform, :handle, :display_name,
			:profile_url, :followers_count, :engagement_rate, :is_public, :is_verified,
			:verified_at, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		return fmt.Errorf("failed to insert social account: %w", err)
	}

	return nil
}

// GetSocialAccountsByUserID retrieves a user's social accounts, newest first
func (r *CampaignRepo) GetSocialAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]models.SocialAccount, error) {
	query := `
		SELECT id, user_id, platform, handle, display_name, profile_url,
			followers_count, engagement_rate, is_public, is_verified,
			verified_at, created_at, updated_at
		FROM social_accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	accounts := []models.SocialAccount{}
	err := r.db.SelectContext(ctx, &accounts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get social accounts: %w", err)
	}

	return accounts, nil
}
