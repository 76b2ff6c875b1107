package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryAddress is the structured shipping address attached to a claim
type DeliveryAddress struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,inphone"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	Pincode     string `json:"pincode" validate:"required,len=6,numeric"`
	State       string `json:"state,omitempty"`
}

// RewardClaim represents a user's claim for the physical campaign reward
type RewardClaim struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	UserID              uuid.UUID       `json:"userId" db:"user_id"`
	ContentSubmissionID *uuid.UUID      `json:"contentSubmissionId,omitempty" db:"content_submission_id"`
	CampaignName        string          `json:"campaignName" db:"campaign_name"`
	RewardType          string          `json:"rewardType" db:"reward_type"`
	RewardValue         string          `json:"rewardValue" db:"reward_value"`
	DeliveryAddress     DeliveryAddress `json:"deliveryAddress" db:"delivery_address"`
	Status              string          `json:"status" db:"status"`
	TrackingID          string          `json:"trackingId" db:"tracking_id"`
	CarrierName         string          `json:"carrierName" db:"carrier_name"`
	EstimatedDelivery   time.Time       `json:"estimatedDelivery" db:"estimated_delivery"`
	ActualDelivery      *time.Time      `json:"actualDelivery,omitempty" db:"actual_delivery"`
	Notes               string          `json:"notes,omitempty" db:"notes"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// Claim statuses, ordered. Transitions only ever move forward.
const (
	ClaimPending   = "pending"
	ClaimConfirmed = "confirmed"
	ClaimShipped   = "shipped"
	ClaimDelivered = "delivered"
)

// ClaimRewardRequest represents a request to claim the campaign reward
type ClaimRewardRequest struct {
	Address             DeliveryAddress `json:"address" validate:"required"`
	ContentSubmissionID *uuid.UUID      `json:"contentSubmissionId,omitempty"`
}

// RewardClaimedEvent is published to fulfillment when a claim is created
type RewardClaimedEvent struct {
	ClaimID         uuid.UUID       `json:"claim_id"`
	UserID          uuid.UUID       `json:"user_id"`
	TrackingID      string          `json:"tracking_id"`
	RewardType      string          `json:"reward_type"`
	CarrierName     string          `json:"carrier_name"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
	ClaimedAt       time.Time       `json:"claimed_at"`
}

// ShipmentUpdateEvent is consumed from the fulfillment process to advance
// a claim through the shipping state machine.
type ShipmentUpdateEvent struct {
	TrackingID  string     `json:"tracking_id"`
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}
