package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/logger"
	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/services/campaign"
)

// RequiredHashtags are the campaign tags every submission must carry,
// matched case-insensitively.
var RequiredHashtags = []string{"#GlossyTransition", "#LorealIndia", "#GlycolicGloss"}

// ValidateSocialMediaURL classifies a content URL by hostname. Instagram URLs
// additionally need an extractable handle: the first path segment, or the
// second when the first is "p" or "reel".
func ValidateSocialMediaURL(rawURL string) models.URLValidation {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return models.URLValidation{Platform: models.PlatformUnknown}
	}

	hostname := strings.ToLower(parsed.Hostname())

	switch {
	case strings.Contains(hostname, "instagram.com"):
		parts := splitPath(parsed.Path)
		handle := ""
		if len(parts) > 0 {
			if parts[0] == "p" || parts[0] == "reel" {
				if len(parts) > 1 {
					handle = parts[1]
				}
			} else {
				handle = parts[0]
			}
		}
		return models.URLValidation{
			Platform: models.PlatformInstagram,
			Handle:   handle,
			IsValid:  handle != "",
		}
	case strings.Contains(hostname, "youtube.com"), strings.Contains(hostname, "youtu.be"):
		return models.URLValidation{Platform: models.PlatformYouTube, IsValid: true}
	case strings.Contains(hostname, "facebook.com"):
		return models.URLValidation{Platform: models.PlatformFacebook, IsValid: true}
	default:
		return models.URLValidation{Platform: models.PlatformUnknown}
	}
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// ValidateHashtags reports whether every required campaign hashtag is present.
// Matching is case-insensitive and exact; substrings do not count.
func ValidateHashtags(hashtags []string) bool {
	for _, required := range RequiredHashtags {
		found := false
		for _, tag := range hashtags {
			if strings.EqualFold(tag, required) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SubmitContent validates the content URL and hashtags and records the
// submission. Under the auto-approve policy the submission is approved
// immediately; otherwise it waits in pending for moderation.
func (u *CampaignUC) SubmitContent(ctx context.Context, userID uuid.UUID, req *models.SubmitContentRequest) (*models.ContentSubmission, error) {
	validation := ValidateSocialMediaURL(req.URL)
	if !validation.IsValid {
		return nil, campaign.ErrInvalidURL
	}

	if !ValidateHashtags(req.Hashtags) {
		return nil, campaign.ErrMissingHashtags
	}

	submission := &models.ContentSubmission{
		UserID:           userID,
		ContentURL:       req.URL,
		Platform:         validation.Platform,
		Hashtags:         req.Hashtags,
		ValidationStatus: models.ValidationPending,
	}
	if u.cfg.Campaign.AutoApprove {
		submission.ValidationStatus = models.ValidationApproved
		submission.IsApproved = true
	}

	if err := u.repo.CreateContentSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create content submission: %w", err)
	}

	if err := u.repo.IncrementContentCount(ctx, userID); err != nil {
		// Participation counters are advisory; the submission itself is saved
		logger.Warn("Failed to increment content count",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
	}

	logger.Info("Content submitted",
		logger.String("user_id", userID.String()),
		logger.String("platform", validation.Platform),
		logger.Bool("approved", submission.IsApproved))

	return submission, nil
}

// GetContentSubmissions retrieves all content submitted by a user
func (u *CampaignUC) GetContentSubmissions(ctx context.Context, userID uuid.UUID) ([]models.ContentSubmission, error) {
	return u.repo.GetContentSubmissionsByUserID(ctx, userID)
}
