package repository

import (
	"context"
	"fmt"
)

// CountParticipants returns the campaign-wide participant total
func (r *CampaignRepo) CountParticipants(ctx context.Context) (int, error) {
	return r.countRows(ctx, "campaign_participation")
}

// CountContentSubmissions returns the campaign-wide submission total
func (r *CampaignRepo) CountContentSubmissions(ctx context.Context) (int, error) {
	return r.countRows(ctx, "content_submissions")
}

// CountRewardsClaimed returns the campaign-wide claim total
func (r *CampaignRepo) CountRewardsClaimed(ctx context.Context) (int, error) {
	return r.countRows(ctx, "reward_claims")
}

func (r *CampaignRepo) countRows(ctx context.Context, table string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}

	return count, nil
}
