package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const (
	resetCodeMin  = 100000
	resetCodeSpan = 900000
)

// GenerateResetCode returns a 6-digit numeric code, uniformly random in
// [100000, 999999].
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(resetCodeSpan))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(resetCodeMin)).String(), nil
}

// GenerateConversionToken returns an opaque unguessable token string, used
// directly as the lookup key for conversion records.
func GenerateConversionToken() string {
	return uuid.NewString()
}
