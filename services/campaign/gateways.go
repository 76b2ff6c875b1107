package campaign

import (
	"context"

	"github.com/glossylabs/campaign/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/glossylabs/campaign/services/campaign FulfillmentGW

// FulfillmentGW notifies the external fulfillment process about new claims.
// Shipment progress flows back in through the NSQ shipment handler.
type FulfillmentGW interface {
	PublishRewardClaimed(ctx context.Context, event *models.RewardClaimedEvent) error
}
