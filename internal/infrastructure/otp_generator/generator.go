package otpgenerator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/mihretabn/taskhub/internal/domain/contract"
)

// OTPGenerator produces 4-digit one-time codes from crypto/rand.
type OTPGenerator struct{}

func NewOTPGenerator() contract.IOTPGenerator {
	return &OTPGenerator{}
}

var _ contract.IOTPGenerator = (*OTPGenerator)(nil)

// Generate returns a uniformly distributed code in [1000, 9999].
func (g *OTPGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}
