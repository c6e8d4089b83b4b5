package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mock_repository "github.com/lovematch/backend/internal/repository/mocks"
)

func TestAccountJanitor_PurgeUnverified(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	janitor := newAccountJanitor(accounts)

	accounts.On("DeleteExpiredUnverified", mock.Anything, "anna@example.com").Return(nil)

	require.NoError(t, janitor.PurgeUnverified(context.Background(), "anna@example.com"))
	accounts.AssertExpectations(t)
}

func TestAccountJanitor_PurgeUnverified_RepositoryError(t *testing.T) {
	accounts := new(mock_repository.Accounts)
	janitor := newAccountJanitor(accounts)

	accounts.On("DeleteExpiredUnverified", mock.Anything, "anna@example.com").
		Return(errors.New("db gone"))

	require.Error(t, janitor.PurgeUnverified(context.Background(), "anna@example.com"))
}
