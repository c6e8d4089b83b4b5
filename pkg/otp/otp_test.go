package otp

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGOTPGenerator_RandomCode(t *testing.T) {
	t.Parallel()

	generator := NewGOTPGenerator()
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	for i := 0; i < 50; i++ {
		require.Regexp(t, sixDigits, generator.RandomCode(6))
	}

	require.Regexp(t, regexp.MustCompile(`^\d{4}$`), generator.RandomCode(4))
}
