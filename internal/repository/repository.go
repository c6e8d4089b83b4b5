package repository

import (
	"context"
	"time"

	"github.com/lovematch/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Accounts     Accounts
	Calculations Calculations
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Accounts:     newAccountRepository(db),
		Calculations: newCalculationRepository(db),
	}
}

type Accounts interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByPin(ctx context.Context, pin string) (*domain.Account, error)
	// SetVerified marks the account verified, assigns its pin and clears the
	// verification OTP. Returns domain.ErrDuplicateEntry when the pin is
	// already taken, so callers can retry with a fresh one.
	SetVerified(ctx context.Context, id uuid.UUID, pin string) error
	UpdateVerifyOtp(ctx context.Context, id uuid.UUID, otp string, expireAt time.Time) error
	UpdateResetOtp(ctx context.Context, id uuid.UUID, otp string, expireAt time.Time) error
	MarkResetOtpVerified(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error
	// UpdatePassword stores the new hash and clears all reset OTP fields.
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpiredUnverified removes the account only if it is still
	// unverified and its verification OTP deadline has passed.
	DeleteExpiredUnverified(ctx context.Context, email string) error
}

type Calculations interface {
	Create(ctx context.Context, calculation *domain.Calculation) error
	ListByPin(ctx context.Context, pin string, limit int) ([]domain.Calculation, error)
	// DeleteByIDAndPin deletes the record only when it belongs to pin;
	// returns domain.ErrNotFound otherwise.
	DeleteByIDAndPin(ctx context.Context, id uuid.UUID, pin string) error
}
