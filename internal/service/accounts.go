package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/lovematch/backend/internal/config"
	"github.com/lovematch/backend/internal/domain"
	"github.com/lovematch/backend/internal/queue/client"
	"github.com/lovematch/backend/internal/queue/task"
	"github.com/lovematch/backend/internal/repository"
	"github.com/lovematch/backend/pkg/auth"
	"github.com/lovematch/backend/pkg/hash"
	"github.com/lovematch/backend/pkg/logger"
	"github.com/lovematch/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// accountService owns the whole identity lifecycle: registration, OTP
// verification, login, and password reset. OTP comparison (trimmed string
// equality), expiry checks and pin assignment all live here so no handler
// duplicates the contract.
type accountService struct {
	accountRepository repository.Accounts
	hasher            hash.PasswordHasher
	tokenManager      auth.TokenManager
	otpGenerator      otp.Generator
	emails            *emailService
	authConfig        config.AuthConfig
}

func newAccountService(accountRepository repository.Accounts,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	emails *emailService,
	authConfig config.AuthConfig,
) *accountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		tokenManager:      tokenManager,
		otpGenerator:      otpGenerator,
		emails:            emails,
		authConfig:        authConfig,
	}
}

func (s *accountService) Register(ctx context.Context, input RegisterInput) error {
	_, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if err == nil {
		return ErrAccountAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get account by email failed: %w", err)
	}

	otpCode := s.otpGenerator.RandomCode(s.authConfig.OtpLength)
	otpExpireAt := time.Now().Add(s.authConfig.OtpTTL)

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	// Email goes out before the account is stored: a dispatch failure must
	// fail the whole registration.
	if err := s.emails.SendVerificationEmail(input.Email, otpCode); err != nil {
		return fmt.Errorf("send verification email failed: %w", err)
	}

	accountID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate account id failed: %w", err)
	}

	account := &domain.Account{
		ID:                accountID,
		FullName:          input.FullName,
		Email:             input.Email,
		Password:          passwordHash,
		Role:              domain.DefaultRole,
		Verified:          false,
		VerifyOtp:         sql.NullString{String: otpCode, Valid: true},
		VerifyOtpExpireAt: sql.NullTime{Time: otpExpireAt, Valid: true},
	}

	if err := s.accountRepository.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrAccountAlreadyExists
		}
		return fmt.Errorf("create account failed: %w", err)
	}

	s.schedulePurge(ctx, input.Email, otpExpireAt)

	return nil
}

func (s *accountService) VerifyAndCreate(ctx context.Context, email string, otpCode string) (*domain.Account, *Session, error) {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("get account by email failed: %w", err)
	}

	received := strings.TrimSpace(otpCode)
	stored := strings.TrimSpace(account.VerifyOtp.String)

	if !account.VerifyOtp.Valid || stored != received {
		return nil, nil, ErrInvalidOtp
	}

	if !account.VerifyOtpExpireAt.Valid || account.VerifyOtpExpireAt.Time.Before(time.Now()) {
		// An expired pending registration is gone for good; the user has to
		// register again.
		if err := s.accountRepository.Delete(ctx, account.ID); err != nil {
			return nil, nil, fmt.Errorf("delete expired account failed: %w", err)
		}
		return nil, nil, ErrOtpExpired
	}

	// Pin uniqueness is enforced by the UNIQUE KEY on account.pin; an
	// application-level existence check alone would race under concurrent
	// verifications. Collisions just draw again.
	pin := newPin()
	for {
		err = s.accountRepository.SetVerified(ctx, account.ID, pin)
		if !errors.Is(err, domain.ErrDuplicateEntry) {
			break
		}
		pin = newPin()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("set account verified failed: %w", err)
	}

	account.Verified = true
	account.Pin = sql.NullString{String: pin, Valid: true}
	account.VerifyOtp = sql.NullString{}
	account.VerifyOtpExpireAt = sql.NullTime{}

	session, err := s.createSession(account)
	if err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

func (s *accountService) SendVerifyOtp(ctx context.Context, email string) error {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}

	if account.Verified {
		return ErrAlreadyVerified
	}

	otpCode := s.otpGenerator.RandomCode(s.authConfig.OtpLength)
	otpExpireAt := time.Now().Add(s.authConfig.OtpTTL)

	if err := s.accountRepository.UpdateVerifyOtp(ctx, account.ID, otpCode, otpExpireAt); err != nil {
		return fmt.Errorf("update verify otp failed: %w", err)
	}

	if err := s.emails.SendVerificationEmail(account.Email, otpCode); err != nil {
		return fmt.Errorf("send verification email failed: %w", err)
	}

	s.schedulePurge(ctx, account.Email, otpExpireAt)

	return nil
}

func (s *accountService) Login(ctx context.Context, email string, password string) (*domain.Account, *Session, error) {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("get account by email failed: %w", err)
	}

	if !s.hasher.Check(password, account.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(account)
	if err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

func (s *accountService) SendResetOtp(ctx context.Context, email string) error {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}

	otpCode := s.otpGenerator.RandomCode(s.authConfig.OtpLength)
	otpExpireAt := time.Now().Add(s.authConfig.OtpTTL)

	if err := s.accountRepository.UpdateResetOtp(ctx, account.ID, otpCode, otpExpireAt); err != nil {
		return fmt.Errorf("update reset otp failed: %w", err)
	}

	return s.emails.SendPasswordResetEmail(account.Email, otpCode)
}

// VerifyResetOtp checks the reset code without consuming it; it stays valid
// until the password is actually changed or the expiry passes.
func (s *accountService) VerifyResetOtp(ctx context.Context, email string, otpCode string) error {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}

	if !account.ResetOtp.Valid || strings.TrimSpace(account.ResetOtp.String) != strings.TrimSpace(otpCode) {
		return ErrInvalidOtp
	}

	if !account.ResetOtpExpireAt.Valid || account.ResetOtpExpireAt.Time.Before(time.Now()) {
		return ErrOtpExpired
	}

	if err := s.accountRepository.MarkResetOtpVerified(ctx, account.ID, time.Now()); err != nil {
		return fmt.Errorf("mark reset otp verified failed: %w", err)
	}

	return nil
}

// ResetPassword requires a prior successful VerifyResetOtp inside the OTP
// validity window; a client-side claim of verification is not trusted.
func (s *accountService) ResetPassword(ctx context.Context, email string, newPassword string) error {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}

	if !account.ResetOtpVerifiedAt.Valid {
		return ErrResetNotVerified
	}

	if !account.ResetOtpExpireAt.Valid || account.ResetOtpExpireAt.Time.Before(time.Now()) {
		return ErrOtpExpired
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.accountRepository.UpdatePassword(ctx, account.ID, passwordHash); err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}

	return nil
}

func (s *accountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by email failed: %w", err)
	}

	return account, nil
}

func (s *accountService) createSession(account *domain.Account) (*Session, error) {
	token, ttl, err := s.tokenManager.NewJWT(account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("generate session token failed: %w", err)
	}

	return &Session{Token: token, TTL: ttl}, nil
}

// schedulePurge queues a delayed janitor task that removes the account if it
// is still unverified once the OTP deadline has passed. Best effort: a queue
// outage must not fail the registration itself.
func (s *accountService) schedulePurge(ctx context.Context, email string, otpExpireAt time.Time) {
	queueClient := client.GetClient(ctx)
	if queueClient == nil {
		return
	}

	purgeTask, err := task.NewPurgeUnverifiedTask(email)
	if err != nil {
		logger.Error("build purge task failed", zap.Error(err))
		return
	}

	if _, err := queueClient.Enqueue(purgeTask, asynq.ProcessAt(otpExpireAt.Add(time.Minute))); err != nil {
		logger.Error("enqueue purge task failed", zap.Error(err), zap.String("email", email))
	}
}

func newPin() string {
	return strconv.Itoa(10000 + rand.IntN(90000))
}
