package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/pkg/session"
)

type stubStore struct {
	sessions map[string]uuid.UUID
}

func (s *stubStore) Create(_ context.Context, userID uuid.UUID) (string, error) {
	id := uuid.New().String()
	s.sessions[id] = userID
	return id, nil
}

func (s *stubStore) Get(_ context.Context, sessionID string) (uuid.UUID, error) {
	userID, ok := s.sessions[sessionID]
	if !ok {
		return uuid.Nil, session.ErrNotFound
	}
	return userID, nil
}

func (s *stubStore) Destroy(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubStore) TTL() time.Duration { return time.Hour }

func TestSessionAuthMiddleware(t *testing.T) {
	cfg := models.SessionConfig{CookieName: "campaign_session"}
	store := &stubStore{sessions: make(map[string]uuid.UUID)}

	userID := uuid.New()
	sessionID, err := store.Create(context.Background(), userID)
	require.NoError(t, err)

	next := func(c echo.Context) error {
		gotID, ok := c.Get("user_id").(uuid.UUID)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)
		return c.String(http.StatusOK, "ok")
	}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{
			name:       "valid session",
			cookie:     &http.Cookie{Name: "campaign_session", Value: sessionID},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing cookie",
			cookie:     nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown session",
			cookie:     &http.Cookie{Name: "campaign_session", Value: uuid.New().String()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty cookie value",
			cookie:     &http.Cookie{Name: "campaign_session", Value: ""},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := SessionAuthMiddleware(store, cfg)(next)
			err := handler(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
