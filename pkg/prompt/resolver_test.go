package prompt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	prompts  map[string]*StoredPrompt
	personas map[string]*StoredPrompt
	profiles map[string]*Profile
	groups   map[string]*StoredGroup
}

func (s *fakeStore) CustomPrompt(_ context.Context, _, promptID string) (*StoredPrompt, error) {
	if p, ok := s.prompts[promptID]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *fakeStore) PersonaPrompt(_ context.Context, userID string) (*StoredPrompt, error) {
	if p, ok := s.personas[userID]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *fakeStore) Profile(_ context.Context, userID string) (*Profile, error) {
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *fakeStore) Group(_ context.Context, _, groupID string) (*StoredGroup, error) {
	if g, ok := s.groups[groupID]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		prompts:  map[string]*StoredPrompt{},
		personas: map[string]*StoredPrompt{},
		profiles: map[string]*Profile{"u1": {Name: "田中", Character: CharacterNone}},
		groups:   map[string]*StoredGroup{},
	}
}

func TestResolve_DefaultTemplate(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{Type: TypePaperSummary, UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, resolved.IsCustom)
	assert.Contains(t, resolved.Body, "一言でいうと")
	// {today} and {name} are substituted.
	assert.NotContains(t, resolved.Body, "{today}")
	assert.Contains(t, resolved.Body, "田中")
}

func TestResolve_CustomPrompt(t *testing.T) {
	store := newFakeStore()
	updated := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	store.prompts["p1"] = &StoredPrompt{
		ID: "p1", Name: "詳細要約", Type: TypePaperSummary,
		Body: "カスタム: {name}さん向け {topic} の要約", UpdatedAt: updated,
	}
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypePaperSummary, UserID: "u1", PromptID: "p1",
		Placeholders: map[string]string{"topic": "拡散モデル"},
	})
	require.NoError(t, err)
	assert.True(t, resolved.IsCustom)
	assert.Equal(t, "p1", resolved.PromptID)
	assert.Equal(t, "詳細要約", resolved.PromptName)
	assert.Equal(t, updated, resolved.UpdatedAt)
	assert.Equal(t, "カスタム: 田中さん向け 拡散モデル の要約", resolved.Body)
}

func TestResolve_UnknownPromptIDFallsBackToDefault(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypePaperSummary, UserID: "u1", PromptID: "missing",
	})
	require.NoError(t, err)
	assert.False(t, resolved.IsCustom)
}

func TestResolve_WrongTypeCustomPromptFallsBack(t *testing.T) {
	store := newFakeStore()
	store.prompts["p1"] = &StoredPrompt{ID: "p1", Type: TypeTagging, Body: "tagging body"}
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypePaperSummary, UserID: "u1", PromptID: "p1",
	})
	require.NoError(t, err)
	assert.False(t, resolved.IsCustom)
	assert.NotContains(t, resolved.Body, "tagging body")
}

func TestResolve_MissingPlaceholdersStayLiteral(t *testing.T) {
	store := newFakeStore()
	store.prompts["p1"] = &StoredPrompt{ID: "p1", Type: TypePaperSummary, Body: "本文 {unknown} のまま"}
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypePaperSummary, UserID: "u1", PromptID: "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "本文 {unknown} のまま", resolved.Body)
}

func TestResolve_CharacterPrepend(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &Profile{Name: "田中", Character: CharacterSakura, Affinity: 2}
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypePaperSummary, UserID: "u1", UseCharacter: true,
		TaskInstruction: "要約ではいつもより簡潔に。",
	})
	require.NoError(t, err)
	// Persona block, then the instruction, then separator, then base.
	assert.Contains(t, resolved.Body, "さくら")
	sep := strings.Index(resolved.Body, strings.TrimSpace(Separator))
	require.Greater(t, sep, 0)
	assert.Less(t, strings.Index(resolved.Body, "さくら"), sep)
	assert.Less(t, strings.Index(resolved.Body, "要約ではいつもより簡潔に。"), sep)
	assert.Greater(t, strings.Index(resolved.Body, "一言でいうと"), sep)
}

func TestResolve_CharacterPrependSkippedWhenNoneSelected(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypePaperSummary, UserID: "u1", UseCharacter: true,
	})
	require.NoError(t, err)
	assert.NotContains(t, resolved.Body, strings.TrimSpace(Separator))
}

func TestResolve_CharacterPrependSkippedForIneligibleType(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &Profile{Name: "田中", Character: CharacterMiyabi, Affinity: 1}
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypeTagging, UserID: "u1", UseCharacter: true,
	})
	require.NoError(t, err)
	assert.NotContains(t, resolved.Body, "みやび")
}

func TestResolve_PersonaOverride(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &Profile{Name: "田中", Character: CharacterSakura, Affinity: 0}
	store.personas["u1"] = &StoredPrompt{ID: "p9", Type: TypeCharacterPersona, Body: "独自ペルソナです。"}
	r := NewResolver(store)

	resolved, err := r.Resolve(context.Background(), Request{
		Type: TypeRAGSystem, UserID: "u1", UseCharacter: true,
	})
	require.NoError(t, err)
	assert.Contains(t, resolved.Body, "独自ペルソナです。")
	assert.NotContains(t, resolved.Body, "さくら")
}

func TestResolveGroup_DefaultsAndOverrides(t *testing.T) {
	store := newFakeStore()
	store.prompts["pp"] = &StoredPrompt{ID: "pp", Type: TypeResearchPlanner, Body: "計画は必ず3件に分割すること。"}
	store.groups["g1"] = &StoredGroup{ID: "g1", Category: "deepresearch", PlannerID: "pp", AgentID: "gone"}
	r := NewResolver(store)

	group, err := r.ResolveGroup(context.Background(), "u1", "g1", false)
	require.NoError(t, err)
	assert.Equal(t, "計画は必ず3件に分割すること。", group.Planner)
	// A dangling slot id falls back to the built-in for that role.
	def, _ := DefaultTemplate(TypeResearchAgent)
	assert.Equal(t, def, group.Agent)
	assert.NotEmpty(t, group.Coordinator)
	assert.NotEmpty(t, group.Supervisor)
	assert.NotEmpty(t, group.Summary)
}

func TestResolveGroup_EmptyGroupID(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store)

	group, err := r.ResolveGroup(context.Background(), "u1", "", false)
	require.NoError(t, err)
	def, _ := DefaultTemplate(TypeResearchCoordinator)
	assert.Equal(t, def, group.Coordinator)
}

func TestResolveGroup_SummaryPersona(t *testing.T) {
	store := newFakeStore()
	store.profiles["u1"] = &Profile{Name: "花子", Character: CharacterSakura, Affinity: 2}
	r := NewResolver(store)

	group, err := r.ResolveGroup(context.Background(), "u1", "", true)
	require.NoError(t, err)
	// Only the summary role speaks to the user, so only it gets the
	// persona block.
	assert.Contains(t, group.Summary, Separator)
	assert.NotContains(t, group.Coordinator, Separator)
	assert.Contains(t, group.Summary, "花子")
	assert.NotContains(t, group.Summary, "{name}")
	assert.NotContains(t, group.Summary, "{today}")
}

func TestSubstitute_Today(t *testing.T) {
	out := Substitute("今日は{today}", "", nil)
	assert.Contains(t, out, time.Now().Format("2006年"))
}

func TestParseCharacter(t *testing.T) {
	c, err := ParseCharacter("")
	require.NoError(t, err)
	assert.Equal(t, CharacterNone, c)

	c, err = ParseCharacter("sakura")
	require.NoError(t, err)
	assert.Equal(t, CharacterSakura, c)

	_, err = ParseCharacter("rem")
	assert.Error(t, err)
}
