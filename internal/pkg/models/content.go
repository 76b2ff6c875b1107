package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentSubmission represents a piece of campaign content submitted by a user
type ContentSubmission struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	UserID           uuid.UUID  `json:"userId" db:"user_id"`
	SocialAccountID  *uuid.UUID `json:"socialAccountId,omitempty" db:"social_account_id"`
	ContentURL       string     `json:"contentUrl" db:"content_url"`
	Platform         string     `json:"platform" db:"platform"`
	ContentType      string     `json:"contentType,omitempty" db:"content_type"`
	Title            string     `json:"title,omitempty" db:"title"`
	Description      string     `json:"description,omitempty" db:"description"`
	Hashtags         StringList `json:"hashtags" db:"hashtags"`
	IsApproved       bool       `json:"isApproved" db:"is_approved"`
	ApprovalNotes    string     `json:"approvalNotes,omitempty" db:"approval_notes"`
	ValidationStatus string     `json:"validationStatus" db:"validation_status"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Content validation statuses
const (
	ValidationPending  = "pending"
	ValidationApproved = "approved"
	ValidationRejected = "rejected"
)

// URLValidation holds the result of classifying a social media content URL
type URLValidation struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	IsValid  bool   `json:"isValid"`
}

// SubmitContentRequest represents a request to submit campaign content
type SubmitContentRequest struct {
	URL      string   `json:"url" validate:"required,url"`
	Hashtags []string `json:"hashtags"`
}
