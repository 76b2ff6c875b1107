package nsq

import (
	"context"
	"errors"
	"fmt"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/pkg/nsq"
	"github.com/glossylabs/campaign/services/campaign"
)

// Topic and channel for shipment progress events from fulfillment
const (
	TopicShipmentUpdates = "shipment.updates"
	ChannelCampaign      = "campaign"
)

// ShipmentHandler consumes shipment status updates and applies them to
// reward claims.
type ShipmentHandler struct {
	uc       campaign.CampaignUC
	consumer *nsq.Consumer
}

// NewShipmentHandler creates a shipment update handler
func NewShipmentHandler(uc campaign.CampaignUC) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Start connects the consumer to the NSQ daemon and begins processing
func (h *ShipmentHandler) Start(address string) error {
	consumer, err := nsq.NewConsumer(TopicShipmentUpdates, ChannelCampaign, address, h.handleShipmentUpdate)
	if err != nil {
		return fmt.Errorf("failed to start shipment consumer: %w", err)
	}

	h.consumer = consumer
	return nil
}

// Stop gracefully stops the consumer
func (h *ShipmentHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *ShipmentHandler) handleShipmentUpdate(message []byte) error {
	var event models.ShipmentUpdateEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		logger.Error("Failed to unmarshal shipment update", logger.ErrorField(err))
		// Malformed messages are dropped, not requeued
		return nil
	}

	err := h.uc.UpdateShipmentStatus(context.Background(), &event)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, campaign.ErrClaimNotFound),
		errors.Is(err, campaign.ErrInvalidStatusTransition):
		// Unknown tracking IDs and stale out-of-order updates will never
		// succeed on retry
		logger.Warn("Dropping shipment update",
			logger.String("tracking_id", event.TrackingID),
			logger.String("status", event.Status),
			logger.ErrorField(err))
		return nil
	default:
		logger.Error("Failed to apply shipment update",
			logger.String("tracking_id", event.TrackingID),
			logger.ErrorField(err))
		return err
	}
}
