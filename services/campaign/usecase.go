package campaign

import (
	"context"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/glossylabs/campaign/services/campaign CampaignUC

// CampaignUC is the campaign participation usecase interface
type CampaignUC interface {
	// OTP authentication
	SendOTP(ctx context.Context, phoneNumber string) (string, error)
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// Eligibility and submission
	ConnectSocialAccount(ctx context.Context, userID uuid.UUID, req *models.ConnectSocialAccountRequest) (*models.SocialAccount, error)
	GetSocialAccounts(ctx context.Context, userID uuid.UUID) ([]models.SocialAccount, error)
	SubmitContent(ctx context.Context, userID uuid.UUID, req *models.SubmitContentRequest) (*models.ContentSubmission, error)
	GetContentSubmissions(ctx context.Context, userID uuid.UUID) ([]models.ContentSubmission, error)

	// Reward claims
	ClaimReward(ctx context.Context, userID uuid.UUID, req *models.ClaimRewardRequest) (*models.RewardClaim, error)
	GetRewardClaims(ctx context.Context, userID uuid.UUID) ([]models.RewardClaim, error)
	UpdateShipmentStatus(ctx context.Context, event *models.ShipmentUpdateEvent) error

	// Dashboards
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error)
	GetCampaignAnalytics(ctx context.Context) (*models.CampaignAnalytics, error)
}
