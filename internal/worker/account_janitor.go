package worker

import (
	"context"
	"fmt"

	"github.com/lovematch/backend/internal/repository"
	"github.com/lovematch/backend/pkg/logger"

	"go.uber.org/zap"
)

type accountJanitor struct {
	accountRepository repository.Accounts
}

func newAccountJanitor(accountRepository repository.Accounts) *accountJanitor {
	return &accountJanitor{
		accountRepository: accountRepository,
	}
}

// PurgeUnverified deletes the account only if it is still unverified and its
// OTP deadline has passed; verified accounts and refreshed OTPs are left
// untouched by the repository predicate.
func (j *accountJanitor) PurgeUnverified(ctx context.Context, email string) error {
	if err := j.accountRepository.DeleteExpiredUnverified(ctx, email); err != nil {
		return fmt.Errorf("delete expired unverified failed: %w", err)
	}

	logger.Debug("purge unverified processed", zap.String("email", email))

	return nil
}
