package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(4)

	hashed, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", hashed)

	require.True(t, hasher.Check("secret-password", hashed))
	require.False(t, hasher.Check("other-password", hashed))
	require.False(t, hasher.Check("secret-password", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(4)

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, hasher.Check("secret-password", second))
}
