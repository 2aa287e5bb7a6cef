package contract

// IHasher hashes and verifies account credentials.
type IHasher interface {
	HashPassword(password string) (string, error)
	// ComparePasswordHash verifies password against a stored digest via
	// the hashing scheme's own comparison, never raw equality.
	ComparePasswordHash(password, hashedPassword string) error
}
