package campaign

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/glossylabs/campaign/services/campaign CampaignRepo

// CampaignRepo is the persistence store for all campaign entities.
// Every read goes back to the database; nothing is cached across requests.
type CampaignRepo interface {
	// User operations
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// OTP operations
	CreateOTP(ctx context.Context, otp *models.OtpVerification) error
	GetValidOTP(ctx context.Context, phoneNumber, code string) (*models.OtpVerification, error)
	MarkOTPUsed(ctx context.Context, id uuid.UUID) error
	InvalidateOTPs(ctx context.Context, phoneNumber string) error
	IncrementOTPSendCount(ctx context.Context, phoneNumber string, window time.Duration) (int64, error)

	// Social account operations
	CreateSocialAccount(ctx context.Context, account *models.SocialAccount) error
	GetSocialAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]models.SocialAccount, error)

	// Content operations
	CreateContentSubmission(ctx context.Context, submission *models.ContentSubmission) error
	GetContentSubmissionsByUserID(ctx context.Context, userID uuid.UUID) ([]models.ContentSubmission, error)

	// Reward operations
	CreateRewardClaim(ctx context.Context, claim *models.RewardClaim) error
	GetRewardClaimsByUserID(ctx context.Context, userID uuid.UUID) ([]models.RewardClaim, error)
	GetRewardClaimByTrackingID(ctx context.Context, trackingID string) (*models.RewardClaim, error)
	UpdateRewardClaimStatus(ctx context.Context, id uuid.UUID, status string, actualDelivery *time.Time) error
	CountRewardClaims(ctx context.Context, userID uuid.UUID, campaignName string) (int, error)

	// Campaign participation operations
	CreateCampaignParticipation(ctx context.Context, participation *models.CampaignParticipation) error
	GetCampaignParticipationByUserID(ctx context.Context, userID uuid.UUID) (*models.CampaignParticipation, error)
	IncrementContentCount(ctx context.Context, userID uuid.UUID) error
	IncrementRewardsClaimed(ctx context.Context, userID uuid.UUID) error

	// Analytics
	CountParticipants(ctx context.Context) (int, error)
	CountContentSubmissions(ctx context.Context) (int, error)
	CountRewardsClaimed(ctx context.Context) (int, error)
}
