package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase
// IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("Invalid email address")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("Password must be at least 6 characters long")
	}
	return nil
}

// ValidatePhone checks that both parts of the phone identity are
// present and numeric-ish.
func (av *AppValidator) ValidatePhone(phone, countryCode string) error {
	if err := av.validate.Var(phone, "required,min=5,max=15"); err != nil {
		return fmt.Errorf("Invalid phone number")
	}
	if err := av.validate.Var(countryCode, "required,min=1,max=5"); err != nil {
		return fmt.Errorf("Invalid country code")
	}
	return nil
}
