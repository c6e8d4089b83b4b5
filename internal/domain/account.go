package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const DefaultRole = "user"

// Account is created unverified at registration and becomes verified (and
// gains its pin) once the verification OTP is confirmed. The pin is unique
// across all accounts and assigned exactly once; uniqueness is backed by a
// UNIQUE KEY on the pin column.
type Account struct {
	ID       uuid.UUID      `db:"id"`
	FullName string         `db:"full_name"`
	Email    string         `db:"email"`
	Password string         `db:"password"`
	Role     string         `db:"role"`
	Verified bool           `db:"verified"`
	Pin      sql.NullString `db:"pin"`

	VerifyOtp         sql.NullString `db:"verify_otp"`
	VerifyOtpExpireAt sql.NullTime   `db:"verify_otp_expire_at"`

	ResetOtp           sql.NullString `db:"reset_otp"`
	ResetOtpExpireAt   sql.NullTime   `db:"reset_otp_expire_at"`
	ResetOtpVerifiedAt sql.NullTime   `db:"reset_otp_verified_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
