package mock_repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lovematch/backend/internal/domain"
)

type Accounts struct {
	mock.Mock
}

func (m *Accounts) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *Accounts) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *Accounts) GetByPin(ctx context.Context, pin string) (*domain.Account, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *Accounts) SetVerified(ctx context.Context, id uuid.UUID, pin string) error {
	args := m.Called(ctx, id, pin)

	return args.Error(0)
}

func (m *Accounts) UpdateVerifyOtp(ctx context.Context, id uuid.UUID, otp string, expireAt time.Time) error {
	args := m.Called(ctx, id, otp, expireAt)

	return args.Error(0)
}

func (m *Accounts) UpdateResetOtp(ctx context.Context, id uuid.UUID, otp string, expireAt time.Time) error {
	args := m.Called(ctx, id, otp, expireAt)

	return args.Error(0)
}

func (m *Accounts) MarkResetOtpVerified(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error {
	args := m.Called(ctx, id, verifiedAt)

	return args.Error(0)
}

func (m *Accounts) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	args := m.Called(ctx, id, password)

	return args.Error(0)
}

func (m *Accounts) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *Accounts) DeleteExpiredUnverified(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

type Calculations struct {
	mock.Mock
}

func (m *Calculations) Create(ctx context.Context, calculation *domain.Calculation) error {
	args := m.Called(ctx, calculation)

	return args.Error(0)
}

func (m *Calculations) ListByPin(ctx context.Context, pin string, limit int) ([]domain.Calculation, error) {
	args := m.Called(ctx, pin, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Calculation), args.Error(1)
}

func (m *Calculations) DeleteByIDAndPin(ctx context.Context, id uuid.UUID, pin string) error {
	args := m.Called(ctx, id, pin)

	return args.Error(0)
}
