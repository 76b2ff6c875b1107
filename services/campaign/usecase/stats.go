package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

// Campaign-wide participation targets shown alongside the live counters
const (
	targetParticipants = 500000
	targetContent      = 100000
)

// GetDashboardStats aggregates a user's campaign progress. Follower and
// engagement figures come from the primary social account: the first
// Instagram account, or the first connected account when none is Instagram.
func (u *CampaignUC) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error) {
	accounts, err := u.repo.GetSocialAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get social accounts: %w", err)
	}

	submissions, err := u.repo.GetContentSubmissionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content submissions: %w", err)
	}

	claims, err := u.repo.GetRewardClaimsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reward claims: %w", err)
	}

	participation, err := u.repo.GetCampaignParticipationByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign participation: %w", err)
	}

	stats := &models.DashboardStats{
		Engagement:       "0",
		ContentSubmitted: len(submissions),
		RewardsClaimed:   len(claims),
		CampaignStatus:   models.ParticipationActive,
	}

	var primary *models.SocialAccount
	for i := range accounts {
		if accounts[i].Platform == models.PlatformInstagram {
			primary = &accounts[i]
			break
		}
	}
	if primary == nil && len(accounts) > 0 {
		primary = &accounts[0]
	}
	if primary != nil {
		stats.Followers = primary.FollowersCount
		stats.Engagement = primary.EngagementRate
	}

	for i := range submissions {
		if submissions[i].IsApproved {
			stats.ContentApproved++
		}
	}

	if participation != nil {
		stats.CampaignStatus = participation.Status
	}

	return stats, nil
}

// GetCampaignAnalytics returns the public campaign-wide counters
func (u *CampaignUC) GetCampaignAnalytics(ctx context.Context) (*models.CampaignAnalytics, error) {
	participants, err := u.repo.CountParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	submissions, err := u.repo.CountContentSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count content submissions: %w", err)
	}

	rewards, err := u.repo.CountRewardsClaimed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rewards claimed: %w", err)
	}

	return &models.CampaignAnalytics{
		TotalParticipants:       participants,
		TotalContentSubmissions: submissions,
		TotalRewardsClaimed:     rewards,
		TargetParticipants:      targetParticipants,
		TargetContent:           targetContent,
	}, nil
}
