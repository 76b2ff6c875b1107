package nsq

import (
	"context"
	"fmt"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/pkg/nsq"
)

// Topic published when a reward claim is created
const TopicRewardClaimed = "reward.claimed"

// Publisher sends campaign events to the fulfillment process over NSQ
type Publisher struct {
	producer *nsq.Producer
}

// NewPublisher creates a new NSQ event publisher
func NewPublisher(producer *nsq.Producer) *Publisher {
	return &Publisher{producer: producer}
}

// PublishRewardClaimed notifies fulfillment that a claim is ready to ship
func (p *Publisher) PublishRewardClaimed(_ context.Context, event *models.RewardClaimedEvent) error {
	if err := p.producer.Publish(TopicRewardClaimed, event); err != nil {
		return fmt.Errorf("failed to publish reward claimed event: %w", err)
	}

	logger.Info("Published reward claimed event",
		logger.String("topic", TopicRewardClaimed),
		logger.String("tracking_id", event.TrackingID))

	return nil
}
