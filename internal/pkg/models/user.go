package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a campaign participant identified by a verified phone number
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	FirstName   string    `json:"firstName,omitempty" db:"first_name"`
	LastName    string    `json:"lastName,omitempty" db:"last_name"`
	Email       string    `json:"email,omitempty" db:"email"`
	IsVerified  bool      `json:"isVerified" db:"is_verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CampaignParticipation tracks one user's aggregate activity in a campaign
type CampaignParticipation struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	CampaignName      string    `json:"campaignName" db:"campaign_name"`
	ParticipationDate time.Time `json:"participationDate" db:"participation_date"`
	Status            string    `json:"status" db:"status"`
	ContentCount      int       `json:"contentCount" db:"content_count"`
	RewardsClaimed    int       `json:"rewardsClaimed" db:"rewards_claimed"`
	TotalEngagement   int       `json:"totalEngagement" db:"total_engagement"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// Participation statuses
const (
	ParticipationActive    = "active"
	ParticipationCompleted = "completed"
	ParticipationSuspended = "suspended"
)

// DashboardStats aggregates a user's campaign progress for display
type DashboardStats struct {
	Followers        int    `json:"followers"`
	Engagement       string `json:"engagement"`
	ContentSubmitted int    `json:"contentSubmitted"`
	ContentApproved  int    `json:"contentApproved"`
	RewardsClaimed   int    `json:"rewardsClaimed"`
	CampaignStatus   string `json:"campaignStatus"`
}

// CampaignAnalytics holds campaign-wide public counters
type CampaignAnalytics struct {
	TotalParticipants       int `json:"totalParticipants"`
	TotalContentSubmissions int `json:"totalContentSubmissions"`
	TotalRewardsClaimed     int `json:"totalRewardsClaimed"`
	TargetParticipants      int `json:"targetParticipants"`
	TargetContent           int `json:"targetContent"`
}
