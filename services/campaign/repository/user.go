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

// GetUserByID retrieves a user by ID
func (r *CampaignRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, phone_number, first_name, last_name, email, is_verified, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, campaign.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByPhone retrieves a user by canonical phone number
func (r *CampaignRepo) GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	query := `
		SELECT id, phone_number, first_name, last_name, email, is_verified, created_at, updated_at
		FROM users
		WHERE phone_number = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, campaign.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// CreateUser creates a new user in the database
func (r *CampaignRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, phone_number, first_name, last_name, email,
			is_verified, created_at, updated_at
		) VALUES (:id, :phone_number, :first_name, :last_name, :email,
			:is_verified, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUserVerified updates the verified flag on re-verification
func (r *CampaignRepo) UpdateUserVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `
		UPDATE users
		SET is_verified = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, verified, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
