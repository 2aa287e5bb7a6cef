package usecase

// TokenService issues and verifies bearer tokens bound to an account ID.
type TokenService interface {
	// GenerateToken issues a signed token for the account.
	GenerateToken(accountID string) (string, error)
	// VerifyToken validates a token and returns the bound account ID.
	VerifyToken(tokenStr string) (string, error)
}
