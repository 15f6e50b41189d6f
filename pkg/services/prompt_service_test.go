package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/pkg/prompt"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func TestPromptService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	_, err := svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{Type: "paper_summary", Body: "b"})
	assert.Error(t, err)

	_, err = svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{Type: "paper_summary", Name: "n"})
	assert.Error(t, err)

	_, err = svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{Type: "bogus", Name: "n", Body: "b"})
	assert.Error(t, err)

	p, err := svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{
		Type: "paper_summary", Name: "数式重視の要約", Body: "数式を中心に要約してください。",
	})
	require.NoError(t, err)
	assert.True(t, p.IsActive)
}

func TestPromptService_UpdateOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	owner := seedUser(t, client.Client)
	other := seedUser(t, client.Client)
	ctx := context.Background()

	p, err := svc.CreatePrompt(ctx, owner.ID, CreatePromptRequest{
		Type: "paper_summary", Name: "初版", Body: "本文",
	})
	require.NoError(t, err)

	name := "改訂版"
	_, err = svc.UpdatePrompt(ctx, other.ID, p.ID, UpdatePromptRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.UpdatePrompt(ctx, owner.ID, p.ID, UpdatePromptRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "改訂版", updated.Name)
	assert.Equal(t, "本文", updated.Body)

	err = svc.DeletePrompt(ctx, other.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, svc.DeletePrompt(ctx, owner.ID, p.ID))
	err = svc.DeletePrompt(ctx, owner.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromptService_ListIncludesGlobals(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	user := seedUser(t, client.Client)
	other := seedUser(t, client.Client)
	ctx := context.Background()

	_, err := svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{
		Type: "paper_summary", Name: "自分の要約", Body: "b",
	})
	require.NoError(t, err)
	_, err = svc.CreatePrompt(ctx, other.ID, CreatePromptRequest{
		Type: "paper_summary", Name: "他人の要約", Body: "b",
	})
	require.NoError(t, err)

	// A global prompt has no owner.
	_, err = client.Client.Prompt.Create().
		SetID("global-1").
		SetType("tagging").
		SetName("共通タグ付け").
		SetBody("タグを付けてください。").
		Save(ctx)
	require.NoError(t, err)

	all, err := svc.ListPrompts(ctx, user.ID, "")
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "自分の要約")
	assert.Contains(t, names, "共通タグ付け")
	assert.NotContains(t, names, "他人の要約")

	byType, err := svc.ListPrompts(ctx, user.ID, "tagging")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "共通タグ付け", byType[0].Name)

	_, err = svc.ListPrompts(ctx, user.ID, "bogus")
	assert.Error(t, err)
}

func TestPromptService_Groups(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	planner, err := svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{
		Type: "research_planner", Name: "計画役", Body: "計画を立ててください。",
	})
	require.NoError(t, err)

	_, err = svc.CreateGroup(ctx, user.ID, CreateGroupRequest{Name: "調査用", Category: "bogus"})
	assert.Error(t, err)

	g, err := svc.CreateGroup(ctx, user.ID, CreateGroupRequest{
		Name: "調査用", Category: "deepresearch", PlannerID: planner.ID,
	})
	require.NoError(t, err)

	stored, err := svc.Group(ctx, user.ID, g.ID)
	require.NoError(t, err)
	assert.Equal(t, planner.ID, stored.PlannerID)
	assert.Empty(t, stored.CoordinatorID)

	groups, err := svc.ListGroups(ctx, user.ID, "deepresearch")
	require.NoError(t, err)
	require.Len(t, groups, 1)

	require.NoError(t, svc.DeleteGroup(ctx, user.ID, g.ID))
	_, err = svc.Group(ctx, user.ID, g.ID)
	assert.ErrorIs(t, err, prompt.ErrNotFound)
}

func TestPromptService_StoreSurface(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	p, err := svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{
		Type: "paper_summary", Name: "要約", Body: "要約してください。",
	})
	require.NoError(t, err)

	stored, err := svc.CustomPrompt(ctx, user.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prompt.TypePaperSummary, stored.Type)

	// A deactivated prompt stops resolving.
	inactive := false
	_, err = svc.UpdatePrompt(ctx, user.ID, p.ID, UpdatePromptRequest{IsActive: &inactive})
	require.NoError(t, err)
	_, err = svc.CustomPrompt(ctx, user.ID, p.ID)
	assert.ErrorIs(t, err, prompt.ErrNotFound)

	_, err = svc.PersonaPrompt(ctx, user.ID)
	assert.ErrorIs(t, err, prompt.ErrNotFound)
	persona, err := svc.CreatePrompt(ctx, user.ID, CreatePromptRequest{
		Type: "character_persona", Name: "さくら調", Body: "さくらとして話してください。",
	})
	require.NoError(t, err)
	got, err := svc.PersonaPrompt(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, persona.ID, got.ID)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, profile.Name)
	assert.Equal(t, prompt.CharacterNone, profile.Character)
}
