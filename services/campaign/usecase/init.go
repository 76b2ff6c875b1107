package usecase

import (
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
)

// CampaignUC implements the campaign usecase interface
type CampaignUC struct {
	repo          campaign.CampaignRepo
	fulfillmentGW campaign.FulfillmentGW
	cfg           *models.Config
}

// NewCampaignUC creates a new campaign usecase instance
func NewCampaignUC(
	repo campaign.CampaignRepo,
	fulfillmentGW campaign.FulfillmentGW,
	cfg *models.Config,
) *CampaignUC {
	return &CampaignUC{
		repo:          repo,
		fulfillmentGW: fulfillmentGW,
		cfg:           cfg,
	}
}
