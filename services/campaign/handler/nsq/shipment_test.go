package nsq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
	"github.com/glossylabs/campaign/services/campaign/mocks"
)

func TestHandleShipmentUpdate_AppliesStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCampaignUC(ctrl)
	h := NewShipmentHandler(mockUC)

	event := models.ShipmentUpdateEvent{
		TrackingID: "GG1700000000000123",
		Status:     models.ClaimShipped,
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().
		UpdateShipmentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.ShipmentUpdateEvent) error {
			assert.Equal(t, event.TrackingID, got.TrackingID)
			assert.Equal(t, event.Status, got.Status)
			return nil
		})

	// Act
	err = h.handleShipmentUpdate(body)

	// Assert
	assert.NoError(t, err)
}

func TestHandleShipmentUpdate_DropsMalformedMessage(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCampaignUC(ctrl)
	h := NewShipmentHandler(mockUC)

	// Act
	err := h.handleShipmentUpdate([]byte("not json"))

	// Assert: no requeue for garbage
	assert.NoError(t, err)
}

func TestHandleShipmentUpdate_DropsStaleTransition(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCampaignUC(ctrl)
	h := NewShipmentHandler(mockUC)

	body, err := json.Marshal(models.ShipmentUpdateEvent{
		TrackingID: "GG1700000000000123",
		Status:     models.ClaimConfirmed,
	})
	require.NoError(t, err)

	mockUC.EXPECT().
		UpdateShipmentStatus(gomock.Any(), gomock.Any()).
		Return(campaign.ErrInvalidStatusTransition)

	// Act
	err = h.handleShipmentUpdate(body)

	// Assert
	assert.NoError(t, err)
}

func TestHandleShipmentUpdate_RequeuesOnRepositoryError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCampaignUC(ctrl)
	h := NewShipmentHandler(mockUC)

	deliveredAt := time.Now()
	body, err := json.Marshal(models.ShipmentUpdateEvent{
		TrackingID:  "GG1700000000000123",
		Status:      models.ClaimDelivered,
		DeliveredAt: &deliveredAt,
	})
	require.NoError(t, err)

	mockUC.EXPECT().
		UpdateShipmentStatus(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Act
	err = h.handleShipmentUpdate(body)

	// Assert
	assert.Error(t, err)
}
