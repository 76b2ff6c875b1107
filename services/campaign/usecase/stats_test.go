package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign/mocks"
)

func TestGetDashboardStats_InstagramIsPrimary(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()

	mockRepo.EXPECT().
		GetSocialAccountsByUserID(gomock.Any(), userID).
		Return([]models.SocialAccount{
			{Platform: "youtube", FollowersCount: 9000, EngagementRate: "3.00"},
			{Platform: "instagram", FollowersCount: 1200, EngagementRate: "7.50"},
		}, nil)
	mockRepo.EXPECT().
		GetContentSubmissionsByUserID(gomock.Any(), userID).
		Return([]models.ContentSubmission{
			{IsApproved: true},
			{IsApproved: true},
			{IsApproved: false},
		}, nil)
	mockRepo.EXPECT().
		GetRewardClaimsByUserID(gomock.Any(), userID).
		Return([]models.RewardClaim{{Status: models.ClaimConfirmed}}, nil)
	mockRepo.EXPECT().
		GetCampaignParticipationByUserID(gomock.Any(), userID).
		Return(&models.CampaignParticipation{Status: models.ParticipationActive}, nil)

	// Act
	stats, err := uc.GetDashboardStats(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1200, stats.Followers)
	assert.Equal(t, "7.50", stats.Engagement)
	assert.Equal(t, 3, stats.ContentSubmitted)
	assert.Equal(t, 2, stats.ContentApproved)
	assert.Equal(t, 1, stats.RewardsClaimed)
	assert.Equal(t, "active", stats.CampaignStatus)
}

func TestGetDashboardStats_FallsBackToFirstAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()

	mockRepo.EXPECT().
		GetSocialAccountsByUserID(gomock.Any(), userID).
		Return([]models.SocialAccount{
			{Platform: "youtube", FollowersCount: 9000, EngagementRate: "3.00"},
			{Platform: "facebook", FollowersCount: 800, EngagementRate: "2.00"},
		}, nil)
	mockRepo.EXPECT().
		GetContentSubmissionsByUserID(gomock.Any(), userID).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetRewardClaimsByUserID(gomock.Any(), userID).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetCampaignParticipationByUserID(gomock.Any(), userID).
		Return(nil, nil)

	// Act
	stats, err := uc.GetDashboardStats(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 9000, stats.Followers)
	assert.Equal(t, "3.00", stats.Engagement)
	assert.Equal(t, "active", stats.CampaignStatus)
}

func TestGetDashboardStats_NoAccounts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()

	mockRepo.EXPECT().
		GetSocialAccountsByUserID(gomock.Any(), userID).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetContentSubmissionsByUserID(gomock.Any(), userID).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetRewardClaimsByUserID(gomock.Any(), userID).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetCampaignParticipationByUserID(gomock.Any(), userID).
		Return(nil, nil)

	// Act
	stats, err := uc.GetDashboardStats(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Followers)
	assert.Equal(t, "0", stats.Engagement)
	assert.Equal(t, 0, stats.ContentSubmitted)
}

func TestGetCampaignAnalytics(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().CountParticipants(gomock.Any()).Return(1234, nil)
	mockRepo.EXPECT().CountContentSubmissions(gomock.Any()).Return(567, nil)
	mockRepo.EXPECT().CountRewardsClaimed(gomock.Any()).Return(89, nil)

	// Act
	analytics, err := uc.GetCampaignAnalytics(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1234, analytics.TotalParticipants)
	assert.Equal(t, 567, analytics.TotalContentSubmissions)
	assert.Equal(t, 89, analytics.TotalRewardsClaimed)
	assert.Equal(t, 500000, analytics.TargetParticipants)
	assert.Equal(t, 100000, analytics.TargetContent)
}
