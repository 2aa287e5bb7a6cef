package contract

// IOTPGenerator produces one-time codes for phone verification.
type IOTPGenerator interface {
	// Generate returns a uniformly distributed 4-digit code in
	// [1000, 9999], rendered as a string.
	Generate() (string, error)
}
