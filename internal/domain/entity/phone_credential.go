package entity

import (
	"time"
)

// OTP purposes recognized by the request/verify cycle.
const (
	OTPPurposeRegister = "register"
	OTPPurposeLogin    = "login"
)

// PhoneCredential holds the phone identity and OTP verification state
// shared by every phone-registered account kind.
type PhoneCredential struct {
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CountryCode  string    `bson:"country_code,omitempty" json:"countryCode,omitempty"`
	OTP          string    `bson:"otp,omitempty" json:"-"`
	OTPExpiresAt time.Time `bson:"otp_expires_at,omitempty" json:"-"`
	OTPVerified  bool      `bson:"otp_verified" json:"otpVerified"`
}

// IssueOTP stores a freshly generated code, replacing any pending one.
func (p *PhoneCredential) IssueOTP(code string, ttl time.Duration) {
	p.OTP = code
	p.OTPExpiresAt = time.Now().Add(ttl)
}

// MatchOTP reports whether the submitted code matches the pending one.
// Codes are compared as opaque strings; an empty stored code never matches.
func (p *PhoneCredential) MatchOTP(submitted string, now time.Time) bool {
	if p.OTP == "" || p.OTP != submitted {
		return false
	}
	if !p.OTPExpiresAt.IsZero() && now.After(p.OTPExpiresAt) {
		return false
	}
	return true
}

// ClearOTP consumes the pending code so it can never be replayed.
func (p *PhoneCredential) ClearOTP() {
	p.OTP = ""
	p.OTPExpiresAt = time.Time{}
	p.OTPVerified = true
}
