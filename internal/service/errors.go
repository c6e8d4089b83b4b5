package service

import "errors"

var (
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidOtp           = errors.New("invalid otp")
	ErrOtpExpired           = errors.New("otp expired")
	ErrAlreadyVerified      = errors.New("account already verified")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrResetNotVerified     = errors.New("reset otp not verified")

	ErrWrongPin            = errors.New("pin is wrong")
	ErrCalculationNotFound = errors.New("calculation not found or not permitted")
)
