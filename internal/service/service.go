package service

import (
	"context"
	"time"

	"github.com/lovematch/backend/internal/config"
	"github.com/lovematch/backend/internal/domain"
	"github.com/lovematch/backend/internal/repository"
	"github.com/lovematch/backend/pkg/auth"
	"github.com/lovematch/backend/pkg/email"
	"github.com/lovematch/backend/pkg/hash"
	"github.com/lovematch/backend/pkg/otp"

	"github.com/google/uuid"
)

type Services struct {
	Accounts     Accounts
	Calculations Calculations
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	EmailSender  email.Sender
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	emails := newEmailService(deps.EmailSender, deps.Config.Email)

	return &Services{
		Accounts: newAccountService(deps.Repos.Accounts,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			emails,
			deps.Config.Auth,
		),
		Calculations: newCalculationService(deps.Repos.Calculations, deps.Repos.Accounts),
	}
}

// Session is a signed credential binding {email, role}, delivered to the
// client as an HTTP-only cookie.
type Session struct {
	Token string
	TTL   time.Duration
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type CalculationInput struct {
	Pin                string
	YourName           string
	YourAge            int
	YourEducation      string
	CrushName          string
	CrushAge           int
	CrushEducation     string
	RelationshipMonths int
	RelationshipDays   int
}

type Accounts interface {
	Register(ctx context.Context, input RegisterInput) error
	VerifyAndCreate(ctx context.Context, email string, otpCode string) (*domain.Account, *Session, error)
	SendVerifyOtp(ctx context.Context, email string) error
	Login(ctx context.Context, email string, password string) (*domain.Account, *Session, error)
	SendResetOtp(ctx context.Context, email string) error
	VerifyResetOtp(ctx context.Context, email string, otpCode string) error
	ResetPassword(ctx context.Context, email string, newPassword string) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type Calculations interface {
	Save(ctx context.Context, input CalculationInput) (*domain.Calculation, error)
	History(ctx context.Context, pin string) ([]domain.Calculation, error)
	Delete(ctx context.Context, pin string, id uuid.UUID) error
}
