package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/glossylabs/campaign/internal/pkg/database"
	"github.com/glossylabs/campaign/internal/pkg/models"
)

// CampaignRepo implements the campaign repository interface
type CampaignRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewCampaignRepo creates a new campaign repository instance
func NewCampaignRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *CampaignRepo {
	return &CampaignRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
