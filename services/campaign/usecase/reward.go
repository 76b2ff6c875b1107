package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/utils"
	"github.com/glossylabs/campaign/services/campaign"
)

// claimStatusOrder drives the monotonic shipment state machine
var claimStatusOrder = map[string]int{
	models.ClaimPending:   0,
	models.ClaimConfirmed: 1,
	models.ClaimShipped:   2,
	models.ClaimDelivered: 3,
}

// generateTrackingID builds an externally-facing tracking identifier:
// fixed prefix, millisecond timestamp, random 3-digit suffix.
func generateTrackingID() string {
	return fmt.Sprintf("GG%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// ClaimReward creates the single reward claim a user is entitled to once they
// have approved content. The claim starts confirmed and is handed to the
// fulfillment process for shipping.
func (u *CampaignUC) ClaimReward(ctx context.Context, userID uuid.UUID, req *models.ClaimRewardRequest) (*models.RewardClaim, error) {
	if err := validateAddress(&req.Address); err != nil {
		return nil, err
	}

	existing, err := u.repo.CountRewardClaims(ctx, userID, u.cfg.Campaign.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to count reward claims: %w", err)
	}
	if existing > 0 {
		return nil, campaign.ErrRewardAlreadyClaimed
	}

	submissions, err := u.repo.GetContentSubmissionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content submissions: %w", err)
	}

	var approved *models.ContentSubmission
	for i := range submissions {
		if submissions[i].IsApproved && submissions[i].ValidationStatus == models.ValidationApproved {
			approved = &submissions[i]
			break
		}
	}
	if approved == nil {
		return nil, campaign.ErrNoApprovedContent
	}

	submissionID := req.ContentSubmissionID
	if submissionID == nil {
		submissionID = &approved.ID
	}

	claim := &models.RewardClaim{
		UserID:              userID,
		ContentSubmissionID: submissionID,
		CampaignName:        u.cfg.Campaign.Name,
		RewardType:          u.cfg.Campaign.RewardType,
		RewardValue:         u.cfg.Campaign.RewardValue,
		DeliveryAddress:     req.Address,
		Status:              models.ClaimConfirmed,
		TrackingID:          generateTrackingID(),
		CarrierName:         u.cfg.Campaign.CarrierName,
		EstimatedDelivery:   time.Now().AddDate(0, 0, u.cfg.Campaign.DeliveryEstimateDays),
	}

	if err := u.repo.CreateRewardClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create reward claim: %w", err)
	}

	if err := u.repo.IncrementRewardsClaimed(ctx, userID); err != nil {
		logger.Warn("Failed to increment rewards claimed",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
	}

	event := &models.RewardClaimedEvent{
		ClaimID:         claim.ID,
		UserID:          userID,
		TrackingID:      claim.TrackingID,
		RewardType:      claim.RewardType,
		CarrierName:     claim.CarrierName,
		DeliveryAddress: claim.DeliveryAddress,
		ClaimedAt:       claim.CreatedAt,
	}
	if err := u.fulfillmentGW.PublishRewardClaimed(ctx, event); err != nil {
		// Fulfillment picks up stragglers from the store; the claim stands
		logger.Warn("Failed to publish reward claimed event",
			logger.String("tracking_id", claim.TrackingID),
			logger.ErrorField(err))
	}

	logger.Info("Reward claimed",
		logger.String("user_id", userID.String()),
		logger.String("tracking_id", claim.TrackingID))

	return claim, nil
}

// validateAddress applies the structural delivery-address checks
func validateAddress(address *models.DeliveryAddress) error {
	if address.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !utils.IsValidPhoneNumber(address.PhoneNumber) {
		return campaign.ErrInvalidPhoneNumber
	}
	if address.Street == "" {
		return fmt.Errorf("address is required")
	}
	if address.City == "" {
		return fmt.Errorf("city is required")
	}
	if len(address.Pincode) != 6 {
		return fmt.Errorf("invalid PIN code")
	}
	for _, r := range address.Pincode {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid PIN code")
		}
	}
	return nil
}

// GetRewardClaims retrieves all reward claims for a user
func (u *CampaignUC) GetRewardClaims(ctx context.Context, userID uuid.UUID) ([]models.RewardClaim, error) {
	return u.repo.GetRewardClaimsByUserID(ctx, userID)
}

// UpdateShipmentStatus applies a fulfillment-side status update to a claim.
// Transitions only ever move forward through
// pending -> confirmed -> shipped -> delivered.
func (u *CampaignUC) UpdateShipmentStatus(ctx context.Context, event *models.ShipmentUpdateEvent) error {
	next, ok := claimStatusOrder[event.Status]
	if !ok {
		return campaign.ErrInvalidStatusTransition
	}

	claim, err := u.repo.GetRewardClaimByTrackingID(ctx, event.TrackingID)
	if err != nil {
		return err
	}

	current := claimStatusOrder[claim.Status]
	if next <= current {
		return campaign.ErrInvalidStatusTransition
	}

	var actualDelivery *time.Time
	if event.Status == models.ClaimDelivered {
		actualDelivery = event.DeliveredAt
		if actualDelivery == nil {
			now := time.Now()
			actualDelivery = &now
		}
	}

	if err := u.repo.UpdateRewardClaimStatus(ctx, claim.ID, event.Status, actualDelivery); err != nil {
		return err
	}

	logger.Info("Shipment status updated",
		logger.String("tracking_id", event.TrackingID),
		logger.String("status", event.Status))

	return nil
}
