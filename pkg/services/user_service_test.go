package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/rainzero1960/paperscout/test/database"
)

func TestUserService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, "")
	assert.Error(t, err)

	first, err := svc.GetOrCreate(ctx, "researcher")
	require.NoError(t, err)
	assert.Equal(t, "researcher", first.Username)
	assert.Equal(t, "none", string(first.SelectedCharacter))

	again, err := svc.GetOrCreate(ctx, "researcher")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestUserService_SelectCharacter(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	u, err := svc.GetOrCreate(ctx, "researcher")
	require.NoError(t, err)

	updated, err := svc.SelectCharacter(ctx, u.ID, "sakura")
	require.NoError(t, err)
	assert.Equal(t, "sakura", string(updated.SelectedCharacter))

	// Back to no persona.
	updated, err = svc.SelectCharacter(ctx, u.ID, "none")
	require.NoError(t, err)
	assert.Equal(t, "none", string(updated.SelectedCharacter))

	_, err = svc.SelectCharacter(ctx, u.ID, "raiden")
	assert.Error(t, err)
}

func TestUserService_SetAffinityClamps(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	u, err := svc.GetOrCreate(ctx, "researcher")
	require.NoError(t, err)

	updated, err := svc.SetAffinity(ctx, u.ID, "sakura", 99)
	require.NoError(t, err)
	assert.Equal(t, maxAffinity, updated.AffinitySakura)

	updated, err = svc.SetAffinity(ctx, u.ID, "miyabi", -3)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.AffinityMiyabi)

	_, err = svc.SetAffinity(ctx, u.ID, "none", 1)
	assert.Error(t, err)
}

func TestUserService_AddPoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	u, err := svc.GetOrCreate(ctx, "researcher")
	require.NoError(t, err)

	updated, err := svc.AddPoints(ctx, u.ID, 10)
	require.NoError(t, err)
	updated, err = svc.AddPoints(ctx, updated.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Points)
}

func TestUserService_UpdateDisplayName(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewUserService(client.Client)
	ctx := context.Background()

	u, err := svc.GetOrCreate(ctx, "researcher")
	require.NoError(t, err)

	updated, err := svc.UpdateDisplayName(ctx, u.ID, "田中")
	require.NoError(t, err)
	assert.Equal(t, "田中", updated.DisplayName)

	_, err = svc.Get(ctx, "missing-user")
	assert.ErrorIs(t, err, ErrNotFound)
}
