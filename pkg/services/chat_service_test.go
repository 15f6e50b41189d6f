package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func newChatService(t *testing.T, client *ent.Client, script ...*llm.Result) (*PaperChatService, *scriptedProvider) {
	t.Helper()
	gw, provider := newTestGateway(t, script...)
	papers, _, _ := newPaperService(t, client)
	resolver := prompt.NewResolver(NewPromptService(client))
	return NewPaperChatService(client, papers, gw, resolver, nil), provider
}

func TestPaperChatService_CreateSessionRequiresLink(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newChatService(t, client.Client)
	user := seedUser(t, client.Client)
	paper := seedPaper(t, client.Client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, user.ID, paper.ID, "議論")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.Client.UserPaperLink.Create().
		SetID("link-1").SetUserID(user.ID).SetPaperID(paper.ID).Save(ctx)
	require.NoError(t, err)

	session, err := svc.CreateSession(ctx, user.ID, paper.ID, "議論")
	require.NoError(t, err)
	assert.Equal(t, "pending", string(session.ProcessingStatus))

	sessions, err := svc.ListSessions(ctx, user.ID, paper.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	other := seedUser(t, client.Client)
	_, err = svc.GetSession(ctx, other.ID, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaperChatService_SendMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, provider := newChatService(t, client.Client,
		&llm.Result{Text: "この論文は自己注意機構を提案しています。"},
		&llm.Result{Text: "系列変換タスクで評価しています。"},
	)
	ctx := context.Background()

	user := seedUser(t, client.Client)
	papers, _, _ := newPaperService(t, client.Client)
	_, meta, err := papers.Ingest(ctx, user.ID, "2405.00001")
	require.NoError(t, err)

	// Reuse the paper the chat service's own PaperService knows about.
	session, err := svc.CreateSession(ctx, user.ID, meta.ID, "")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, user.ID, session.ID, "", false)
	assert.Error(t, err)

	answer, err := svc.SendMessage(ctx, user.ID, session.ID, "この論文の貢献は?", false)
	require.NoError(t, err)
	assert.Equal(t, paperchatmessage.RoleAssistant, answer.Role)
	assert.Contains(t, answer.Content, "自己注意機構")

	got, err := svc.GetSession(ctx, user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, paperchatsession.ProcessingStatusCompleted, got.ProcessingStatus)

	// The second turn carries the first exchange as history.
	_, err = svc.SendMessage(ctx, user.ID, session.ID, "どう評価していますか?", false)
	require.NoError(t, err)

	provider.mu.Lock()
	secondCall := provider.gotMsgs[len(provider.gotMsgs)-1]
	provider.mu.Unlock()
	require.GreaterOrEqual(t, len(secondCall), 4)
	assert.Equal(t, llm.RoleSystem, secondCall[0].Role)
	assert.Contains(t, secondCall[0].Content, "タイトル:")
	assert.Equal(t, "この論文の貢献は?", secondCall[1].Content)
	assert.Equal(t, llm.RoleAssistant, secondCall[2].Role)

	msgs, err := svc.ListMessages(ctx, user.ID, session.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.Sequence)
	}
}

func TestPaperChatService_SendMessageFailureLeavesTrace(t *testing.T) {
	client := testdb.NewTestClient(t)
	// No scripted results: the provider errors and retries exhaust.
	svc, _ := newChatService(t, client.Client)
	ctx := context.Background()

	user := seedUser(t, client.Client)
	papers, _, _ := newPaperService(t, client.Client)
	_, meta, err := papers.Ingest(ctx, user.ID, "2405.00002")
	require.NoError(t, err)
	session, err := svc.CreateSession(ctx, user.ID, meta.ID, "")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, user.ID, session.ID, "質問", false)
	require.Error(t, err)

	got, err := svc.GetSession(ctx, user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, paperchatsession.ProcessingStatusFailed, got.ProcessingStatus)

	msgs, err := svc.ListMessages(ctx, user.ID, session.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, paperchatmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, paperchatmessage.RoleSystemError, msgs[1].Role)
}
