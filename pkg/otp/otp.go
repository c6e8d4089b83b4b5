package otp

import (
	"math/rand/v2"

	"github.com/xlzd/gotp"
)

// Generator issues short numeric codes for email verification and
// password reset.
type Generator interface {
	RandomCode(digits int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a numeric code with the given number of digits.
// Each code is derived from a fresh random secret and counter.
func (g *GOTPGenerator) RandomCode(digits int) string {
	hotp := gotp.NewHOTP(gotp.RandomSecret(16), digits, nil)
	return hotp.At(rand.IntN(1 << 30))
}
