package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
	"github.com/glossylabs/campaign/services/campaign/mocks"
)

func validAddress() models.DeliveryAddress {
	return models.DeliveryAddress{
		Name:        "Priya Sharma",
		PhoneNumber: "+919876543210",
		Street:      "12 MG Road",
		City:        "Bengaluru",
		Pincode:     "560001",
		State:       "Karnataka",
	}
}

func TestClaimReward_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	submissionID := uuid.New()

	mockRepo.EXPECT().
		CountRewardClaims(gomock.Any(), userID, "glossy_transition").
		Return(0, nil)
	mockRepo.EXPECT().
		GetContentSubmissionsByUserID(gomock.Any(), userID).
		Return([]models.ContentSubmission{
			{ID: submissionID, UserID: userID, IsApproved: true, ValidationStatus: models.ValidationApproved},
		}, nil)
	mockRepo.EXPECT().
		CreateRewardClaim(gomock.Any(), gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		IncrementRewardsClaimed(gomock.Any(), userID).
		Return(nil)
	mockGW.EXPECT().
		PublishRewardClaimed(gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	claim, err := uc.ClaimReward(context.Background(), userID, &models.ClaimRewardRequest{
		Address: validAddress(),
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.ClaimConfirmed, claim.Status)
	assert.Regexp(t, regexp.MustCompile(`^GG[0-9]+$`), claim.TrackingID)
	assert.Equal(t, "Delhivery", claim.CarrierName)
	assert.Equal(t, "glycolic_gloss_pack", claim.RewardType)
	assert.Equal(t, &submissionID, claim.ContentSubmissionID)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), claim.EstimatedDelivery, 5*time.Second)
}

func TestClaimReward_NoApprovedContent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()

	mockRepo.EXPECT().
		CountRewardClaims(gomock.Any(), userID, "glossy_transition").
		Return(0, nil)
	mockRepo.EXPECT().
		GetContentSubmissionsByUserID(gomock.Any(), userID).
		Return([]models.ContentSubmission{
			{UserID: userID, IsApproved: false, ValidationStatus: models.ValidationPending},
		}, nil)

	// Act
	_, err := uc.ClaimReward(context.Background(), userID, &models.ClaimRewardRequest{
		Address: validAddress(),
	})

	// Assert
	assert.ErrorIs(t, err, campaign.ErrNoApprovedContent)
}

func TestClaimReward_AlreadyClaimed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()

	mockRepo.EXPECT().
		CountRewardClaims(gomock.Any(), userID, "glossy_transition").
		Return(1, nil)

	// Act
	_, err := uc.ClaimReward(context.Background(), userID, &models.ClaimRewardRequest{
		Address: validAddress(),
	})

	// Assert
	assert.ErrorIs(t, err, campaign.ErrRewardAlreadyClaimed)
}

func TestClaimReward_BadAddress(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	address := validAddress()
	address.Pincode = "56001"

	// Act
	_, err := uc.ClaimReward(context.Background(), uuid.New(), &models.ClaimRewardRequest{
		Address: address,
	})

	// Assert
	assert.Error(t, err)
}

func TestClaimReward_PublishFailureDoesNotFailClaim(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	submissionID := uuid.New()

	mockRepo.EXPECT().
		CountRewardClaims(gomock.Any(), userID, "glossy_transition").
		Return(0, nil)
	mockRepo.EXPECT().
		GetContentSubmissionsByUserID(gomock.Any(), userID).
		Return([]models.ContentSubmission{
			{ID: submissionID, IsApproved: true, ValidationStatus: models.ValidationApproved},
		}, nil)
	mockRepo.EXPECT().
		CreateRewardClaim(gomock.Any(), gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		IncrementRewardsClaimed(gomock.Any(), userID).
		Return(nil)
	mockGW.EXPECT().
		PublishRewardClaimed(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Act
	claim, err := uc.ClaimReward(context.Background(), userID, &models.ClaimRewardRequest{
		Address: validAddress(),
	})

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, claim)
}

func TestUpdateShipmentStatus_ForwardTransition(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	claimID := uuid.New()

	mockRepo.EXPECT().
		GetRewardClaimByTrackingID(gomock.Any(), "GG1700000000000123").
		Return(&models.RewardClaim{ID: claimID, Status: models.ClaimConfirmed}, nil)
	mockRepo.EXPECT().
		UpdateRewardClaimStatus(gomock.Any(), claimID, models.ClaimShipped, nil).
		Return(nil)

	// Act
	err := uc.UpdateShipmentStatus(context.Background(), &models.ShipmentUpdateEvent{
		TrackingID: "GG1700000000000123",
		Status:     models.ClaimShipped,
	})

	// Assert
	assert.NoError(t, err)
}

func TestUpdateShipmentStatus_DeliveredSetsActualDelivery(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	claimID := uuid.New()
	deliveredAt := time.Now().Add(-time.Hour)

	mockRepo.EXPECT().
		GetRewardClaimByTrackingID(gomock.Any(), "GG1700000000000123").
		Return(&models.RewardClaim{ID: claimID, Status: models.ClaimShipped}, nil)
	mockRepo.EXPECT().
		UpdateRewardClaimStatus(gomock.Any(), claimID, models.ClaimDelivered, &deliveredAt).
		Return(nil)

	// Act
	err := uc.UpdateShipmentStatus(context.Background(), &models.ShipmentUpdateEvent{
		TrackingID:  "GG1700000000000123",
		Status:      models.ClaimDelivered,
		DeliveredAt: &deliveredAt,
	})

	// Assert
	assert.NoError(t, err)
}

func TestUpdateShipmentStatus_BackwardTransitionRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetRewardClaimByTrackingID(gomock.Any(), "GG1700000000000123").
		Return(&models.RewardClaim{ID: uuid.New(), Status: models.ClaimShipped}, nil)

	// Act
	err := uc.UpdateShipmentStatus(context.Background(), &models.ShipmentUpdateEvent{
		TrackingID: "GG1700000000000123",
		Status:     models.ClaimConfirmed,
	})

	// Assert
	assert.ErrorIs(t, err, campaign.ErrInvalidStatusTransition)
}

func TestUpdateShipmentStatus_UnknownStatusRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	// Act
	err := uc.UpdateShipmentStatus(context.Background(), &models.ShipmentUpdateEvent{
		TrackingID: "GG1700000000000123",
		Status:     "lost",
	})

	// Assert
	assert.ErrorIs(t, err, campaign.ErrInvalidStatusTransition)
}

func TestUpdateShipmentStatus_ClaimNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepo(ctrl)
	mockGW := mocks.NewMockFulfillmentGW(ctrl)
	uc := NewCampaignUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetRewardClaimByTrackingID(gomock.Any(), "GG404").
		Return(nil, campaign.ErrClaimNotFound)

	// Act
	err := uc.UpdateShipmentStatus(context.Background(), &models.ShipmentUpdateEvent{
		TrackingID: "GG404",
		Status:     models.ClaimShipped,
	})

	// Assert
	assert.ErrorIs(t, err, campaign.ErrClaimNotFound)
}
