package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/glossylabs/campaign/internal/pkg/database"
	"github.com/glossylabs/campaign/internal/pkg/models"
)

func TestCreateOTP(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO otp_verifications").
		WillReturnResult(sqlmock.NewResult(1, 1))

	otp := &models.OtpVerification{
		PhoneNumber: "+919876543210",
		OTP:         "654321",
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	// Act
	err := repo.CreateOTP(context.Background(), otp)

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, otp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetValidOTP(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, otp *models.OtpVerification, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "phone_number", "otp", "is_used", "expires_at", "created_at"}).
					AddRow(uuid.New(), "+919876543210", "654321", false, time.Now().Add(4*time.Minute), time.Now())
				mock.ExpectQuery("SELECT (.+) FROM otp_verifications").
					WithArgs("+919876543210", "654321", sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, otp *models.OtpVerification, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, otp)
				assert.Equal(t, "654321", otp.OTP)
			},
		},
		{
			name: "No Matching Code",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM otp_verifications").
					WithArgs("+919876543210", "654321", sqlmock.AnyArg()).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, otp *models.OtpVerification, err error) {
				assert.NoError(t, err)
				assert.Nil(t, otp)
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
			otp, err := repo.GetValidOTP(context.Background(), "+919876543210", "654321")

			// Assert
			tc.assertFunc(t, otp, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkOTPUsed(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	otpID := uuid.New()

	mock.ExpectExec("UPDATE otp_verifications").
		WithArgs(otpID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.MarkOTPUsed(context.Background(), otpID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementOTPSendCount(t *testing.T) {
	// Setup
	db, redisMock := redismock.NewClientMock()
	repo := &CampaignRepo{
		cfg:         &models.Config{},
		redisClient: &database.RedisClient{Client: db},
	}

	key := "otp:sends:+919876543210"
	redisMock.ExpectIncr(key).SetVal(1)
	redisMock.ExpectExpire(key, time.Minute).SetVal(true)

	// Act
	count, err := repo.IncrementOTPSendCount(context.Background(), "+919876543210", time.Minute)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIncrementOTPSendCount_SubsequentSendSkipsExpire(t *testing.T) {
	// Setup
	db, redisMock := redismock.NewClientMock()
	repo := &CampaignRepo{
		cfg:         &models.Config{},
		redisClient: &database.RedisClient{Client: db},
	}

	redisMock.ExpectIncr("otp:sends:+919876543210").SetVal(3)

	// Act
	count, err := repo.IncrementOTPSendCount(context.Background(), "+919876543210", time.Minute)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
