package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/summary"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func seedPaper(t *testing.T, client *ent.Client) *ent.PaperMetadata {
	t.Helper()
	meta, err := client.PaperMetadata.Create().
		SetID(uuid.New().String()).
		SetExternalID(uuid.New().String()).
		SetURL("https://arxiv.org/abs/2406.01234").
		SetTitle("Test Paper").
		Save(context.Background())
	require.NoError(t, err)
	return meta
}

func seedSummary(t *testing.T, client *ent.Client, paperID, model, body string, updatedAt time.Time) *ent.DefaultSummary {
	t.Helper()
	row, err := client.DefaultSummary.Create().
		SetID(uuid.New().String()).
		SetPaperID(paperID).
		SetLlmProvider("gemini").
		SetLlmModel(model).
		SetBody(body).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestRemoveStalePlaceholders(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	meta := seedPaper(t, client.Client)

	stale := seedSummary(t, client.Client, meta.ID, "model-a",
		summary.ProcessingBody(1), time.Now().Add(-2*time.Hour))
	fresh := seedSummary(t, client.Client, meta.ID, "model-b",
		summary.ProcessingBody(1), time.Now())
	ready := seedSummary(t, client.Client, meta.ID, "model-c",
		"## 結果\n本文。", time.Now().Add(-48*time.Hour))

	svc := NewService(&config.RetentionConfig{
		CleanupInterval:    time.Hour,
		StaleProcessingAge: time.Hour,
	}, client.Client)
	svc.removeStalePlaceholders(ctx)

	_, err := client.DefaultSummary.Get(ctx, stale.ID)
	require.True(t, ent.IsNotFound(err))

	// A live owner's placeholder and finished bodies survive.
	_, err = client.DefaultSummary.Get(ctx, fresh.ID)
	require.NoError(t, err)
	_, err = client.DefaultSummary.Get(ctx, ready.ID)
	require.NoError(t, err)
}

func seedSession(t *testing.T, client *ent.Client, userID string, status researchsession.ProcessingStatus, updatedAt time.Time) *ent.ResearchSession {
	t.Helper()
	row, err := client.ResearchSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCategory(researchsession.CategoryDeepresearch).
		SetProcessingStatus(status).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestPruneIdleSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	user, err := client.User.Create().
		SetID(uuid.New().String()).
		SetUsername("alice").
		Save(ctx)
	require.NoError(t, err)

	old := seedSession(t, client.Client, user.ID,
		researchsession.ProcessingStatusCompleted, time.Now().AddDate(0, 0, -10))
	running := seedSession(t, client.Client, user.ID,
		researchsession.ProcessingStatusPlanning, time.Now().AddDate(0, 0, -10))
	recent := seedSession(t, client.Client, user.ID,
		researchsession.ProcessingStatusCompleted, time.Now())

	_, err = client.ResearchMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(old.ID).
		SetRole(researchmessage.RoleUser).
		SetContent("question").
		SetSequence(1).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		CleanupInterval:      time.Hour,
		StaleProcessingAge:   time.Hour,
		SessionRetentionDays: 7,
	}, client.Client)
	svc.pruneIdleSessions(ctx)

	_, err = client.ResearchSession.Get(ctx, old.ID)
	require.True(t, ent.IsNotFound(err))
	// Messages follow the session via the FK cascade.
	n, err := client.ResearchMessage.Query().
		Where(researchmessage.SessionID(old.ID)).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	// Running and recent sessions are untouched.
	_, err = client.ResearchSession.Get(ctx, running.ID)
	require.NoError(t, err)
	_, err = client.ResearchSession.Get(ctx, recent.ID)
	require.NoError(t, err)
}

func TestPruneIdleSessionsDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	user, err := client.User.Create().
		SetID(uuid.New().String()).
		SetUsername("alice").
		Save(ctx)
	require.NoError(t, err)

	old := seedSession(t, client.Client, user.ID,
		researchsession.ProcessingStatusCompleted, time.Now().AddDate(0, 0, -100))

	svc := NewService(&config.RetentionConfig{
		CleanupInterval:    time.Hour,
		StaleProcessingAge: time.Hour,
	}, client.Client)
	svc.pruneIdleSessions(ctx)

	_, err = client.ResearchSession.Get(ctx, old.ID)
	require.NoError(t, err)
}
