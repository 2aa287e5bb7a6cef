package usecase

import (
	"time"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// otpFlow is the verification state machine shared by every
// phone-registered account kind. Per-kind profile stamping stays in
// the owning usecase; this only issues and consumes codes.
type otpFlow struct {
	otpGen contract.IOTPGenerator
	ttl    time.Duration
}

func newOTPFlow(otpGen contract.IOTPGenerator, ttl time.Duration) otpFlow {
	return otpFlow{otpGen: otpGen, ttl: ttl}
}

// Issue generates a fresh code and stores it on the credential,
// replacing any pending one.
func (f otpFlow) Issue(cred *entity.PhoneCredential) (string, error) {
	code, err := f.otpGen.Generate()
	if err != nil {
		return "", apperror.Internal("failed to generate OTP", err)
	}
	cred.IssueOTP(code, f.ttl)
	return code, nil
}

// Consume verifies the submitted code against the pending one and
// clears it so a replay always fails.
func (f otpFlow) Consume(cred *entity.PhoneCredential, submitted string) error {
	if !cred.MatchOTP(submitted, time.Now()) {
		return apperror.InvalidOTP("Invalid OTP")
	}
	cred.ClearOTP()
	return nil
}
