package service

import (
	"fmt"

	"github.com/lovematch/backend/internal/config"
	emailProvider "github.com/lovematch/backend/pkg/email"
)

// emailService delivers OTP codes synchronously: a failed dispatch must
// surface to the caller, registration never partially succeeds silently.
type emailService struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailService(sender emailProvider.Sender, config config.EmailConfig) *emailService {
	return &emailService{
		sender: sender,
		config: config,
	}
}

type otpEmailInput struct {
	Code string
}

func (s *emailService) SendVerificationEmail(to string, code string) error {
	sendInput := emailProvider.SendEmailInput{Subject: s.config.Subjects.Verification, To: to}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, otpEmailInput{code}); err != nil {
		return fmt.Errorf("generate verification email failed: %w", err)
	}

	return s.sender.Send(sendInput)
}

func (s *emailService) SendPasswordResetEmail(to string, code string) error {
	sendInput := emailProvider.SendEmailInput{Subject: s.config.Subjects.PasswordReset, To: to}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.PasswordReset, otpEmailInput{code}); err != nil {
		return fmt.Errorf("generate password reset email failed: %w", err)
	}

	return s.sender.Send(sendInput)
}
