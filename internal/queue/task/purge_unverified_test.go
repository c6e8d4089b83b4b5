package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPurgeUnverifiedTask(t *testing.T) {
	t.Parallel()

	purgeTask, err := NewPurgeUnverifiedTask("anna@example.com")
	require.NoError(t, err)
	require.Equal(t, PurgeUnverifiedTaskName, purgeTask.Type())

	var payload PurgeUnverified
	require.NoError(t, json.Unmarshal(purgeTask.Payload(), &payload))
	require.Equal(t, "anna@example.com", payload.Email)
}
