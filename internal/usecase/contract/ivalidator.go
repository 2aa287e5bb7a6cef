package usecasecontract

// IValidator validates identity fields before any persistence mutation.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
	ValidatePhone(phone, countryCode string) error
}
