package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
)

func TestCreateRewardClaim(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO reward_claims").
		WillReturnResult(sqlmock.NewResult(1, 1))

	claim := &models.RewardClaim{
		UserID:       uuid.New(),
		CampaignName: "glossy_transition",
		RewardType:   "glycolic_gloss_pack",
		RewardValue:  "500.00",
		DeliveryAddress: models.DeliveryAddress{
			Name:        "Priya Sharma",
			PhoneNumber: "+919876543210",
			Street:      "12 MG Road",
			City:        "Bengaluru",
			Pincode:     "560001",
		},
		Status:            models.ClaimConfirmed,
		TrackingID:        "GG1700000000000123",
		CarrierName:       "Delhivery",
		EstimatedDelivery: time.Now().AddDate(0, 0, 7),
	}

	// Act
	err := repo.CreateRewardClaim(context.Background(), claim)

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, claim.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRewardClaimByTrackingID(t *testing.T) {
	testCases := []struct {
		name       string
		trackingID string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, claim *models.RewardClaim, err error)
	}{
		{
			name:       "Success",
			trackingID: "GG1700000000000123",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "user_id", "campaign_name", "status", "tracking_id", "carrier_name", "estimated_delivery", "created_at", "updated_at"}).
					AddRow(uuid.New(), uuid.New(), "glossy_transition", "confirmed", "GG1700000000000123", "Delhivery", time.Now(), time.Now(), time.Now())
				mock.ExpectQuery("SELECT (.+) FROM reward_claims").
					WithArgs("GG1700000000000123").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, claim *models.RewardClaim, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, claim)
				assert.Equal(t, "confirmed", claim.Status)
			},
		},
		{
			name:       "Claim Not Found",
			trackingID: "GG404",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM reward_claims").
					WithArgs("GG404").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, claim *models.RewardClaim, err error) {
				assert.ErrorIs(t, err, campaign.ErrClaimNotFound)
				assert.Nil(t, claim)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo, mock, cleanup := setupCampaignRepoTest(t)
			defer cleanup()

			// Apply mocks
			tc.mockSetup(mock)

			// Act
			claim, err := repo.GetRewardClaimByTrackingID(context.Background(), tc.trackingID)

			// Assert
			tc.assertFunc(t, claim, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateRewardClaimStatus(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	claimID := uuid.New()
	deliveredAt := time.Now()

	mock.ExpectExec("UPDATE reward_claims").
		WithArgs(models.ClaimDelivered, deliveredAt, sqlmock.AnyArg(), claimID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.UpdateRewardClaimStatus(context.Background(), claimID, models.ClaimDelivered, &deliveredAt)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRewardClaims(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID, "glossy_transition").
		WillReturnRows(rows)

	// Act
	count, err := repo.CountRewardClaims(context.Background(), userID, "glossy_transition")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
