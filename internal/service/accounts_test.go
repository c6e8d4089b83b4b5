package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lovematch/backend/internal/config"
	"github.com/lovematch/backend/internal/domain"
	mock_repository "github.com/lovematch/backend/internal/repository/mocks"
	"github.com/lovematch/backend/pkg/auth"
	mock_email "github.com/lovematch/backend/pkg/email/mock"
	"github.com/lovematch/backend/pkg/hash"
)

const testOtp = "123456"

// fixedOtpGenerator always returns the same code so tests can assert on it.
type fixedOtpGenerator struct{}

func (fixedOtpGenerator) RandomCode(digits int) string { return testOtp }

var testEmailConfig = config.EmailConfig{
	Templates: config.EmailTemplates{
		Verification:  "verification_email.html",
		PasswordReset: "password_reset_email.html",
	},
	Subjects: config.EmailSubjects{
		Verification:  "Verify Your Email",
		PasswordReset: "Password reset OTP",
	},
}

// writeEmailTemplates drops minimal OTP templates into ./templates, where
// SendEmailInput.GenerateBodyFromHTML expects them.
func writeEmailTemplates(t *testing.T) {
	t.Helper()

	require.NoError(t, os.MkdirAll("templates", 0o755))
	t.Cleanup(func() { _ = os.RemoveAll("templates") })

	for _, name := range []string{"verification_email.html", "password_reset_email.html"} {
		err := os.WriteFile(filepath.Join("templates", name), []byte("<p>{{.Code}}</p>"), 0o644)
		require.NoError(t, err)
	}
}

func newTestAccountService(t *testing.T, accounts *mock_repository.Accounts, sender *mock_email.EmailSender) *accountService {
	t.Helper()

	tokenManager, err := auth.NewManager(config.JWTConfig{
		SessionTTL: time.Hour,
		SigningKey: "test-signing-key",
	})
	require.NoError(t, err)

	return newAccountService(
		accounts,
		hash.NewBcryptHasher(4),
		tokenManager,
		fixedOtpGenerator{},
		newEmailService(sender, testEmailConfig),
		config.AuthConfig{OtpLength: 6, OtpTTL: 10 * time.Minute},
	)
}

func unverifiedAccount(otpExpireAt time.Time) *domain.Account {
	id, _ := uuid.NewV7()

	return &domain.Account{
		ID:                id,
		FullName:          "Anna Smith",
		Email:             "anna@example.com",
		Password:          "$2a$04$notactuallyahash",
		Role:              domain.DefaultRole,
		Verified:          false,
		VerifyOtp:         sql.NullString{String: testOtp, Valid: true},
		VerifyOtpExpireAt: sql.NullTime{Time: otpExpireAt, Valid: true},
	}
}

func TestAccountService_Register(t *testing.T) {
	writeEmailTemplates(t)

	accounts := new(mock_repository.Accounts)
	sender := new(mock_email.EmailSender)
	svc := newTestAccountService(t, accounts, sender)

	accounts.On("GetByEmail", mock.Anything, "anna@example.com").Return(nil, domain.ErrNotFound)
	sender.On("Send", mock.Anything).Return(nil)

	var created *domain.Account
	accounts.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.Account)
	}).Return(nil)

	err := svc.Register(context.Background(), RegisterInput{
		FullName: "Anna Smith",
		Email:    "anna@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	require.Equal(t, "anna@example.com", created.Email)
	require.Equal(t, domain.DefaultRole, created.Role)
	require.False(t, created.Verified)
	require.Equal(t, testOtp, created.VerifyOtp.String)
	require.True(t, created.VerifyOtpExpireAt.Valid)

	// Stored password is a hash, never the plaintext.
	require.NotEqual(t, "secret-password", created.Password)
	require.True(t, hash.NewBcryptHasher(4).Check("secret-password", created.Password))
}

func TestAccountService_Register_Conflict(t *testing.T) {
	writeEmailTemplates(t)

	accounts := new(mock_repository.Accounts)
	sender := new(mock_email.EmailSender)
	svc := newTestAccountService(t, accounts, sender)

	accounts.On("GetByEmail", mock.Anything, "anna@example.com").
		Return(unverifiedAccount(time.Now().Add(time.Minute)), nil)

	err := svc.Register(context.Background(), RegisterInput{
		FullName: "Anna Smith",
		Email:    "anna@example.com",
		Password: "secret-password",
	})
	require.ErrorIs(t, err, ErrAccountAlreadyExists)

	sender.AssertNotCalled(t, "Send", mock.Anything)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_EmailDispatchFails(t *testing.T) {
	writeEmailTemplates(t)

	accounts := new(mock_repository.Accounts)
	sender := new(mock_email.EmailSender)
	svc := newTestAccountService(t, accounts, sender)

	accounts.On("GetByEmail", mock.Anything, "anna@example.com").Return(nil, domain.ErrNotFound)
	sender.On("Send", mock.Anything).Return(errors.New("smtp down"))

	err := svc.Register(context.Background(), RegisterInput{
		FullName: "Anna Smith",
		Email:    "anna@example.com",
		Password: "secret-password",
	})
	require.Error(t, err)

	// No account may exist that never got its OTP delivered.
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_VerifyAndCreate(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	var assignedPin string
	accounts.On("SetVerified", mock.Anything, stored.ID, mock.Anything).Run(func(args mock.Arguments) {
		assignedPin = args.Get(2).(string)
	}).Return(nil)

	account, session, err := svc.VerifyAndCreate(context.Background(), stored.Email, testOtp)
	require.NoError(t, err)

	require.True(t, account.Verified)
	require.Regexp(t, regexp.MustCompile(`^\d{5}$`), assignedPin)
	require.Equal(t, assignedPin, account.Pin.String)
	require.False(t, account.VerifyOtp.Valid)

	require.NotNil(t, session)
	require.Equal(t, time.Hour, session.TTL)

	claims, err := svc.tokenManager.Parse(session.Token)
	require.NoError(t, err)
	require.Equal(t, stored.Email, claims.Email)
	require.Equal(t, domain.DefaultRole, claims.Role)
}

func TestAccountService_VerifyAndCreate_TrimsOtp(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
	accounts.On("SetVerified", mock.Anything, stored.ID, mock.Anything).Return(nil)

	_, _, err := svc.VerifyAndCreate(context.Background(), stored.Email, "  "+testOtp+"\n")
	require.NoError(t, err)
}

func TestAccountService_VerifyAndCreate_WrongOtp(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	_, _, err := svc.VerifyAndCreate(context.Background(), stored.Email, "000000")
	require.ErrorIs(t, err, ErrInvalidOtp)

	accounts.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_VerifyAndCreate_ExpiredOtpDeletesAccount(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(-time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
	accounts.On("Delete", mock.Anything, stored.ID).Return(nil)

	_, _, err := svc.VerifyAndCreate(context.Background(), stored.Email, testOtp)
	require.ErrorIs(t, err, ErrOtpExpired)

	accounts.AssertCalled(t, "Delete", mock.Anything, stored.ID)
}

func TestAccountService_VerifyAndCreate_UnknownEmail(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	accounts.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, _, err := svc.VerifyAndCreate(context.Background(), "ghost@example.com", testOtp)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountService_VerifyAndCreate_PinCollisionRetries(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	// First two draws hit the unique key, the third one lands.
	accounts.On("SetVerified", mock.Anything, stored.ID, mock.Anything).
		Return(domain.ErrDuplicateEntry).Twice()
	accounts.On("SetVerified", mock.Anything, stored.ID, mock.Anything).
		Return(nil).Once()

	account, _, err := svc.VerifyAndCreate(context.Background(), stored.Email, testOtp)
	require.NoError(t, err)
	require.True(t, account.Pin.Valid)

	accounts.AssertNumberOfCalls(t, "SetVerified", 3)
}

func TestAccountService_SendVerifyOtp_AlreadyVerified(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.Verified = true
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	err := svc.SendVerifyOtp(context.Background(), stored.Email)
	require.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestAccountService_SendVerifyOtp(t *testing.T) {
	writeEmailTemplates(t)

	accounts := new(mock_repository.Accounts)
	sender := new(mock_email.EmailSender)
	svc := newTestAccountService(t, accounts, sender)

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
	accounts.On("UpdateVerifyOtp", mock.Anything, stored.ID, testOtp, mock.Anything).Return(nil)
	sender.On("Send", mock.Anything).Return(nil)

	err := svc.SendVerifyOtp(context.Background(), stored.Email)
	require.NoError(t, err)

	accounts.AssertCalled(t, "UpdateVerifyOtp", mock.Anything, stored.ID, testOtp, mock.Anything)
	sender.AssertCalled(t, "Send", mock.Anything)
}

func TestAccountService_Login(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	passwordHash, err := hash.NewBcryptHasher(4).Hash("secret-password")
	require.NoError(t, err)

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.Password = passwordHash
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	account, session, err := svc.Login(context.Background(), stored.Email, "secret-password")
	require.NoError(t, err)
	require.Equal(t, stored.Email, account.Email)
	require.NotEmpty(t, session.Token)

	_, _, err = svc.Login(context.Background(), stored.Email, "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	accounts.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountService_SendResetOtp(t *testing.T) {
	writeEmailTemplates(t)

	accounts := new(mock_repository.Accounts)
	sender := new(mock_email.EmailSender)
	svc := newTestAccountService(t, accounts, sender)

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
	accounts.On("UpdateResetOtp", mock.Anything, stored.ID, testOtp, mock.Anything).Return(nil)
	sender.On("Send", mock.Anything).Return(nil)

	require.NoError(t, svc.SendResetOtp(context.Background(), stored.Email))

	accounts.AssertCalled(t, "UpdateResetOtp", mock.Anything, stored.ID, testOtp, mock.Anything)
}

func TestAccountService_VerifyResetOtp(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.ResetOtp = sql.NullString{String: testOtp, Valid: true}
	stored.ResetOtpExpireAt = sql.NullTime{Time: time.Now().Add(time.Minute), Valid: true}
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
	accounts.On("MarkResetOtpVerified", mock.Anything, stored.ID, mock.Anything).Return(nil)

	require.NoError(t, svc.VerifyResetOtp(context.Background(), stored.Email, testOtp))
	accounts.AssertCalled(t, "MarkResetOtpVerified", mock.Anything, stored.ID, mock.Anything)

	require.ErrorIs(t, svc.VerifyResetOtp(context.Background(), stored.Email, "999999"), ErrInvalidOtp)
}

func TestAccountService_VerifyResetOtp_Expired(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.ResetOtp = sql.NullString{String: testOtp, Valid: true}
	stored.ResetOtpExpireAt = sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true}
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	err := svc.VerifyResetOtp(context.Background(), stored.Email, testOtp)
	require.ErrorIs(t, err, ErrOtpExpired)

	accounts.AssertNotCalled(t, "MarkResetOtpVerified", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_ResetPassword_RequiresVerifiedOtp(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.ResetOtp = sql.NullString{String: testOtp, Valid: true}
	stored.ResetOtpExpireAt = sql.NullTime{Time: time.Now().Add(time.Minute), Valid: true}
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	err := svc.ResetPassword(context.Background(), stored.Email, "brand-new-password")
	require.ErrorIs(t, err, ErrResetNotVerified)

	accounts.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_ResetPassword(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.ResetOtp = sql.NullString{String: testOtp, Valid: true}
	stored.ResetOtpExpireAt = sql.NullTime{Time: time.Now().Add(time.Minute), Valid: true}
	stored.ResetOtpVerifiedAt = sql.NullTime{Time: time.Now(), Valid: true}
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	var storedHash string
	accounts.On("UpdatePassword", mock.Anything, stored.ID, mock.Anything).Run(func(args mock.Arguments) {
		storedHash = args.Get(2).(string)
	}).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), stored.Email, "brand-new-password"))
	require.True(t, hash.NewBcryptHasher(4).Check("brand-new-password", storedHash))
}

func TestAccountService_ResetPassword_VerifiedButExpired(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	svc := newTestAccountService(t, accounts, new(mock_email.EmailSender))

	stored := unverifiedAccount(time.Now().Add(time.Minute))
	stored.ResetOtp = sql.NullString{String: testOtp, Valid: true}
	stored.ResetOtpExpireAt = sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true}
	stored.ResetOtpVerifiedAt = sql.NullTime{Time: time.Now().Add(-2 * time.Minute), Valid: true}
	accounts.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	err := svc.ResetPassword(context.Background(), stored.Email, "brand-new-password")
	require.ErrorIs(t, err, ErrOtpExpired)
}
