package passwordservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	passwordservice "github.com/mihretabn/taskhub/internal/infrastructure/password_service"
)

func TestHashRoundTrip(t *testing.T) {
	hasher := passwordservice.NewHasher(4)

	digest, err := hasher.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)

	assert.NoError(t, hasher.ComparePasswordHash("secret1", digest))
	assert.Error(t, hasher.ComparePasswordHash("wrong1", digest))
}

func TestHashIsSalted(t *testing.T) {
	hasher := passwordservice.NewHasher(4)

	first, err := hasher.HashPassword("secret1")
	require.NoError(t, err)
	second, err := hasher.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCompareMalformedDigest(t *testing.T) {
	hasher := passwordservice.NewHasher(4)
	assert.Error(t, hasher.ComparePasswordHash("secret1", "not-a-bcrypt-digest"))
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	// an absurd cost must not panic hashing
	hasher := passwordservice.NewHasher(99)
	digest, err := hasher.HashPassword("secret1")
	require.NoError(t, err)
	assert.NoError(t, hasher.ComparePasswordHash("secret1", digest))
}
