package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/research"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func newResearchService(t *testing.T, client *ent.Client) *ResearchService {
	t.Helper()
	gw, _ := newTestGateway(t)
	resolver := prompt.NewResolver(NewPromptService(client))
	return NewResearchService(client, gw, resolver, nil, nil, nil)
}

func TestResearchService_CreateAndListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newResearchService(t, client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, user.ID, "shallow", "t")
	assert.Error(t, err)

	dr, err := svc.CreateSession(ctx, user.ID, CategoryDeepResearch, "量子誤り訂正の動向")
	require.NoError(t, err)
	assert.Equal(t, "pending", string(dr.ProcessingStatus))

	_, err = svc.CreateSession(ctx, user.ID, CategoryDeepRAG, "")
	require.NoError(t, err)

	all, err := svc.ListSessions(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyDR, err := svc.ListSessions(ctx, user.ID, CategoryDeepResearch)
	require.NoError(t, err)
	require.Len(t, onlyDR, 1)
	assert.Equal(t, dr.ID, onlyDR[0].ID)

	// Sessions are invisible to other users.
	other := seedUser(t, client.Client)
	_, err = svc.GetSession(ctx, other.ID, dr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRecorder_RoleMappingAndSequence(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newResearchService(t, client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, user.ID, CategoryDeepResearch, "t")
	require.NoError(t, err)

	recorder := &sessionRecorder{client: client.Client}
	require.NoError(t, recorder.appendRaw(ctx, session.ID, researchmessage.RoleUser, "質問です", false, nil))
	require.NoError(t, recorder.AppendMessage(ctx, session.ID, research.Message{
		Role: research.RolePlanner, Content: "計画", IsIntermediate: true,
	}))
	require.NoError(t, recorder.AppendMessage(ctx, session.ID, research.Message{
		Role: research.RoleToolOutput, Content: "検索結果", IsIntermediate: true,
	}))
	require.NoError(t, recorder.AppendMessage(ctx, session.ID, research.Message{
		Role: research.RoleSystemError, Content: "途中失敗",
	}))
	require.NoError(t, recorder.AppendMessage(ctx, session.ID, research.Message{
		Role: research.RoleSummary, Content: "最終回答",
	}))

	msgs, err := svc.ListMessages(ctx, user.ID, session.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 5)

	for i, m := range msgs {
		assert.Equal(t, i+1, m.Sequence)
	}

	assert.Equal(t, researchmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, researchmessage.RoleSystemStep, msgs[1].Role)
	assert.Equal(t, research.RolePlanner, msgs[1].MetadataJSON["graph_role"])
	assert.Equal(t, researchmessage.RoleTool, msgs[2].Role)
	assert.Equal(t, researchmessage.RoleSystemError, msgs[3].Role)
	assert.Equal(t, researchmessage.RoleAssistant, msgs[4].Role)
	assert.False(t, msgs[4].IsIntermediate)
}

func TestSessionRecorder_SetStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newResearchService(t, client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, user.ID, CategoryDeepRAG, "t")
	require.NoError(t, err)

	recorder := &sessionRecorder{client: client.Client}
	require.NoError(t, recorder.SetStatus(ctx, session.ID, research.StatusPlanning))

	got, err := svc.GetSession(ctx, user.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, research.StatusPlanning, string(got.ProcessingStatus))
}

func TestResearchService_ConversationHistorySkipsIntermediate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newResearchService(t, client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, user.ID, CategoryDeepResearch, "t")
	require.NoError(t, err)

	recorder := &sessionRecorder{client: client.Client}
	require.NoError(t, recorder.appendRaw(ctx, session.ID, researchmessage.RoleUser, "前の質問", false, nil))
	require.NoError(t, recorder.AppendMessage(ctx, session.ID, research.Message{
		Role: research.RoleAgent, Content: "調査中", IsIntermediate: true,
	}))
	require.NoError(t, recorder.AppendMessage(ctx, session.ID, research.Message{
		Role: research.RoleSummary, Content: "前の回答",
	}))

	history, err := svc.conversationHistory(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, "前の質問", history[0].Content)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)
}

func TestPaperIDsForTags(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newPaperService(t, client.Client)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	_, transformer, err := svc.Ingest(ctx, user.ID, "2404.00001")
	require.NoError(t, err)
	_, diffusion, err := svc.Ingest(ctx, user.ID, "2404.00002")
	require.NoError(t, err)

	_, err = svc.UpdateTags(ctx, user.ID, transformer.ID, "transformer,attention")
	require.NoError(t, err)
	_, err = svc.UpdateTags(ctx, user.ID, diffusion.ID, "diffusion")
	require.NoError(t, err)

	// Empty tag list means the whole corpus.
	ids, err := paperIDsForTags(ctx, client.Client, user.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, ids)

	ids, err = paperIDsForTags(ctx, client.Client, user.ID, []string{"attention"})
	require.NoError(t, err)
	assert.Equal(t, []string{transformer.ID}, ids)

	_, err = paperIDsForTags(ctx, client.Client, user.ID, []string{"robotics"})
	assert.Error(t, err)
}
