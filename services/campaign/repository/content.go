package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

// CreateContentSubmission creates a new content submission record
func (r *CampaignRepo) CreateContentSubmission(ctx context.Context, submission *models.ContentSubmission) error {
	submission.ID = uuid.New()
	now := time.Now()
	submission.CreatedAt = now
	submission.UpdatedAt = now

	query := `
		INSERT INTO content_submissions (id, user_id, social_account_id, content_url,
			platform, content_type, title, description, hashtags, is_approved,
			approval_notes, validation_status, created_at, updated_at
		) VALUES (:id, :user_id, :social_account_id, :content_url,
			:platform, :content_type, :title, :description, :hashtags, :is_approved,
			:approval_notes, :validation_status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, submission)
	if err != nil {
		return fmt.Errorf("failed to insert content submission: %w", err)
	}

	return nil
}

// GetContentSubmissionsByUserID retrieves a user's submissions, newest first
func (r *CampaignRepo) GetContentSubmissionsByUserID(ctx context.Context, userID uuid.UUID) ([]models.ContentSubmission, error) {
	query := `
		SELECT id, user_id, social_account_id, content_url, platform, content_type,
			title, description, hashtags, is_approved, approval_notes,
			validation_status, created_at, updated_at
		FROM content_submissions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	submissions := []models.ContentSubmission{}
	err := r.db.SelectContext(ctx, &submissions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content submissions: %w", err)
	}

	return submissions, nil
}
