package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCleanupExpiredPurgesOnlyDeadCodes(t *testing.T) {
	repo := newFakeVerificationRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateCode(ctx, uuid.New(), "+919876543210", "111111", time.Now().Add(10*time.Minute)))
	require.NoError(t, repo.CreateCode(ctx, uuid.New(), "+919876543211", "222222", time.Now().Add(10*time.Minute)))
	repo.expire("+919876543211", time.Minute)

	svc := NewVerificationCleanupService(repo)
	require.NoError(t, svc.Cleanup(ctx))

	live, err := repo.GetCode(ctx, "+919876543210")
	require.NoError(t, err)
	require.NotNil(t, live)

	dead, err := repo.GetCode(ctx, "+919876543211")
	require.NoError(t, err)
	require.Nil(t, dead)
}
