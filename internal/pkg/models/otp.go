package models

import (
	"time"

	"github.com/google/uuid"
)

// OtpVerification represents a one-time code issued for a phone number
type OtpVerification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	OTP         string    `json:"otp" db:"otp"`
	IsUsed      bool      `json:"isUsed" db:"is_used"`
	ExpiresAt   time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SendOTPRequest represents a request to send an OTP to a phone number
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,inphone"`
}

// VerifyOTPRequest represents a request to verify a previously sent OTP
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,inphone"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
}
