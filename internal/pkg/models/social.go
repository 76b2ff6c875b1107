package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialAccount represents a social media account connected by a user
type SocialAccount struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"userId" db:"user_id"`
	Platform       string     `json:"platform" db:"platform"`
	Handle         string     `json:"handle" db:"handle"`
	DisplayName    string     `json:"displayName,omitempty" db:"display_name"`
	ProfileURL     string     `json:"profileUrl,omitempty" db:"profile_url"`
	FollowersCount int        `json:"followersCount" db:"followers_count"`
	EngagementRate string     `json:"engagementRate" db:"engagement_rate"`
	IsPublic       bool       `json:"isPublic" db:"is_public"`
	IsVerified     bool       `json:"isVerified" db:"is_verified"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty" db:"verified_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Supported social platforms
const (
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
	PlatformFacebook  = "facebook"
	PlatformUnknown   = "unknown"
)

// ConnectSocialAccountRequest represents a request to connect a social account
type ConnectSocialAccountRequest struct {
	Platform       string  `json:"platform" validate:"required,oneof=instagram youtube facebook twitter"`
	Handle         string  `json:"handle" validate:"required"`
	FollowersCount int     `json:"followersCount" validate:"gte=0"`
	EngagementRate float64 `json:"engagementRate" validate:"gte=0"`
	IsPublic       bool    `json:"isPublic"`
}
