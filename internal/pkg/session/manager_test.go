package session

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/glossylabs/campaign/internal/pkg/database"
	"github.com/glossylabs/campaign/internal/pkg/models"
)

func setupManagerTest() (*Manager, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	cfg := models.SessionConfig{CookieName: "campaign_session", TTLMinutes: 60}
	return NewManager(&database.RedisClient{Client: db}, cfg), mock
}

func TestManagerCreate(t *testing.T) {
	mgr, mock := setupManagerTest()
	userID := uuid.New()

	mock.Regexp().ExpectSet(`session:.+`, userID.String(), time.Hour).SetVal("OK")

	sessionID, err := mgr.Create(context.Background(), userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	_, parseErr := uuid.Parse(sessionID)
	assert.NoError(t, parseErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerGet(t *testing.T) {
	mgr, mock := setupManagerTest()
	userID := uuid.New()
	sessionID := uuid.New().String()

	mock.ExpectGet("session:" + sessionID).SetVal(userID.String())

	got, err := mgr.Get(context.Background(), sessionID)

	assert.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerGet_NotFound(t *testing.T) {
	mgr, mock := setupManagerTest()
	sessionID := uuid.New().String()

	mock.ExpectGet("session:" + sessionID).RedisNil()

	_, err := mgr.Get(context.Background(), sessionID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerDestroy(t *testing.T) {
	mgr, mock := setupManagerTest()
	sessionID := uuid.New().String()

	mock.ExpectDel("session:" + sessionID).SetVal(1)

	err := mgr.Destroy(context.Background(), sessionID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerTTL(t *testing.T) {
	mgr, _ := setupManagerTest()
	assert.Equal(t, time.Hour, mgr.TTL())
}
