package usecasecontract

import (
	"time"
)

// IConfigProvider exposes the configuration values the usecases need.
type IConfigProvider interface {
	// GetTokenExpiry returns the bearer token validity window.
	GetTokenExpiry() time.Duration
	// GetOTPTTL returns how long an issued OTP stays valid.
	GetOTPTTL() time.Duration
	// GetBcryptCost returns the credential hashing cost factor.
	GetBcryptCost() int
	// IsProduction reports whether the process runs in production.
	IsProduction() bool
}
