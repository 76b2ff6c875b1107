package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		phoneNumber string
		want        bool
	}{
		{"canonical form", "+919876543210", true},
		{"test number", "+913333333331", true},
		{"missing plus", "919876543210", false},
		{"too short", "+91987654321", false},
		{"too long", "+9198765432100", false},
		{"wrong country code", "+449876543210", false},
		{"letters", "+91987654321a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phoneNumber))
		})
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		phoneNumber string
		want        string
		wantErr     bool
	}{
		{"already canonical", "+919876543210", "+919876543210", false},
		{"country code without plus", "919876543210", "+919876543210", false},
		{"leading zero", "09876543210", "+919876543210", false},
		{"bare ten digits", "9876543210", "+919876543210", false},
		{"with separators", "+91 98765-43210", "+919876543210", false},
		{"too short", "98765", "", true},
		{"garbage", "not-a-number", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tt.phoneNumber)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9][0-9]{5}$`)

	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		assert.Regexp(t, pattern, code)
	}
}
