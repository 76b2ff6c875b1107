package campaign

import "errors"

// Business-rule errors surfaced to API clients with specific messages.
var (
	ErrInvalidPhoneNumber      = errors.New("invalid Indian phone number format")
	ErrInvalidOTP              = errors.New("invalid or expired OTP")
	ErrOTPRateLimited          = errors.New("too many OTP requests, try again later")
	ErrUserNotFound            = errors.New("user not found")
	ErrIneligibleAccount       = errors.New("account does not meet campaign eligibility requirements")
	ErrInvalidURL              = errors.New("invalid social media URL")
	ErrMissingHashtags         = errors.New("content must include required hashtags: #GlossyTransition, #LorealIndia, #GlycolicGloss")
	ErrNoApprovedContent       = errors.New("no approved content found, submit and get content approved first")
	ErrRewardAlreadyClaimed    = errors.New("reward already claimed")
	ErrClaimNotFound           = errors.New("reward claim not found")
	ErrInvalidStatusTransition = errors.New("invalid shipment status transition")
)
