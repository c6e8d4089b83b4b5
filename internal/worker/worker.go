package worker

import (
	"context"

	"github.com/lovematch/backend/internal/repository"
)

type Workers struct {
	AccountJanitor AccountJanitor
}

type Deps struct {
	Repos *repository.Repositories
}

// AccountJanitor cleans up registrations that never completed verification.
type AccountJanitor interface {
	PurgeUnverified(ctx context.Context, email string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		AccountJanitor: newAccountJanitor(deps.Repos.Accounts),
	}
}
