package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
)

// ConnectSocialAccount records a user's social account. Eligibility thresholds
// are only enforced when the campaign is configured to do so; the default
// policy accepts every account and keeps the stats for reporting.
func (u *CampaignUC) ConnectSocialAccount(ctx context.Context, userID uuid.UUID, req *models.ConnectSocialAccountRequest) (*models.SocialAccount, error) {
	if u.cfg.Campaign.EnforceEligibility {
		if err := u.checkEligibility(req); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	account := &models.SocialAccount{
		UserID:         userID,
		Platform:       req.Platform,
		Handle:         req.Handle,
		FollowersCount: req.FollowersCount,
		EngagementRate: strconv.FormatFloat(req.EngagementRate, 'f', 2, 64),
		IsPublic:       req.IsPublic,
		IsVerified:     true,
		VerifiedAt:     &now,
	}

	if err := u.repo.CreateSocialAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create social account: %w", err)
	}

	logger.Info("Social account connected",
		logger.String("user_id", userID.String()),
		logger.String("platform", req.Platform),
		logger.String("handle", req.Handle))

	return account, nil
}

// checkEligibility applies the campaign thresholds: followers, engagement
// rate and public visibility.
func (u *CampaignUC) checkEligibility(req *models.ConnectSocialAccountRequest) error {
	if req.FollowersCount < u.cfg.Campaign.MinFollowers {
		return fmt.Errorf("%w: minimum %d followers required", campaign.ErrIneligibleAccount, u.cfg.Campaign.MinFollowers)
	}
	if req.EngagementRate < u.cfg.Campaign.MinEngagementRate {
		return fmt.Errorf("%w: minimum %.0f%% engagement rate required", campaign.ErrIneligibleAccount, u.cfg.Campaign.MinEngagementRate)
	}
	if !req.IsPublic {
		return fmt.Errorf("%w: account must be public", campaign.ErrIneligibleAccount)
	}
	return nil
}

// GetSocialAccounts retrieves all social accounts connected by a user
func (u *CampaignUC) GetSocialAccounts(ctx context.Context, userID uuid.UUID) ([]models.SocialAccount, error) {
	return u.repo.GetSocialAccountsByUserID(ctx, userID)
}
