package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	entprompt "github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/pkg/prompt"
)

// PromptService manages custom prompts and prompt groups, and serves as
// the prompt resolver's persistence backend.
type PromptService struct {
	client *ent.Client
}

// NewPromptService creates a new PromptService
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{client: client}
}

// CreatePromptRequest carries a new prompt's fields.
type CreatePromptRequest struct {
	Type     string
	Name     string
	Body     string
	Category string
}

// CreatePrompt stores a user-owned prompt.
func (s *PromptService) CreatePrompt(httpCtx context.Context, userID string, req CreatePromptRequest) (*ent.Prompt, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Body == "" {
		return nil, NewValidationError("body", "required")
	}
	typ := entprompt.Type(req.Type)
	if err := entprompt.TypeValidator(typ); err != nil {
		return nil, NewValidationError("type", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := s.client.Prompt.Create().
		SetID(uuid.New().String()).
		SetType(typ).
		SetName(req.Name).
		SetBody(req.Body).
		SetCategory(req.Category).
		SetOwnerUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return p, nil
}

// UpdatePromptRequest carries the mutable prompt fields; nil means keep.
type UpdatePromptRequest struct {
	Name     *string
	Body     *string
	IsActive *bool
}

// UpdatePrompt updates a prompt the user owns. Bumping updated_at here
// is what later marks dependent custom summaries as stale.
func (s *PromptService) UpdatePrompt(ctx context.Context, userID, promptID string, req UpdatePromptRequest) (*ent.Prompt, error) {
	n, err := s.client.Prompt.Update().
		Where(entprompt.ID(promptID), entprompt.OwnerUserID(userID)).
		SetNillableName(req.Name).
		SetNillableBody(req.Body).
		SetNillableIsActive(req.IsActive).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.client.Prompt.Get(ctx, promptID)
}

// DeletePrompt removes a prompt the user owns. Custom summaries built
// from it are removed by the cascade; their vectors are replaced the
// next time the affected papers are re-indexed.
func (s *PromptService) DeletePrompt(ctx context.Context, userID, promptID string) error {
	n, err := s.client.Prompt.Delete().
		Where(entprompt.ID(promptID), entprompt.OwnerUserID(userID)).
		Exec(ctx)
	if err != nil {
		return wrapEntError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPrompts returns the user's prompts plus global ones, optionally
// filtered by type. Newest first.
func (s *PromptService) ListPrompts(ctx context.Context, userID, promptType string) ([]*ent.Prompt, error) {
	q := s.client.Prompt.Query().
		Where(
			entprompt.Or(
				entprompt.OwnerUserID(userID),
				entprompt.OwnerUserIDIsNil(),
			),
		).
		Order(ent.Desc(entprompt.FieldUpdatedAt))
	if promptType != "" {
		typ := entprompt.Type(promptType)
		if err := entprompt.TypeValidator(typ); err != nil {
			return nil, NewValidationError("type", err.Error())
		}
		q = q.Where(entprompt.TypeEQ(typ))
	}
	return q.All(ctx)
}

// CreateGroupRequest carries a new prompt group's fields. Slot ids may
// be empty; unset slots resolve to built-in defaults.
type CreateGroupRequest struct {
	Name          string
	Category      string
	CoordinatorID string
	PlannerID     string
	SupervisorID  string
	AgentID       string
	SummaryID     string
}

// CreateGroup stores a research prompt group.
func (s *PromptService) CreateGroup(httpCtx context.Context, userID string, req CreateGroupRequest) (*ent.PromptGroup, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	category := promptgroup.Category(req.Category)
	if err := promptgroup.CategoryValidator(category); err != nil {
		return nil, NewValidationError("category", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.PromptGroup.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetUserID(userID).
		SetCategory(category)
	if req.CoordinatorID != "" {
		create.SetCoordinatorPromptID(req.CoordinatorID)
	}
	if req.PlannerID != "" {
		create.SetPlannerPromptID(req.PlannerID)
	}
	if req.SupervisorID != "" {
		create.SetSupervisorPromptID(req.SupervisorID)
	}
	if req.AgentID != "" {
		create.SetAgentPromptID(req.AgentID)
	}
	if req.SummaryID != "" {
		create.SetSummaryPromptID(req.SummaryID)
	}

	g, err := create.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return g, nil
}

// DeleteGroup removes a prompt group the user owns.
func (s *PromptService) DeleteGroup(ctx context.Context, userID, groupID string) error {
	n, err := s.client.PromptGroup.Delete().
		Where(promptgroup.ID(groupID), promptgroup.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return wrapEntError(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListGroups returns the user's prompt groups for a category.
func (s *PromptService) ListGroups(ctx context.Context, userID, category string) ([]*ent.PromptGroup, error) {
	q := s.client.PromptGroup.Query().
		Where(promptgroup.UserID(userID)).
		Order(ent.Desc(promptgroup.FieldUpdatedAt))
	if category != "" {
		c := promptgroup.Category(category)
		if err := promptgroup.CategoryValidator(c); err != nil {
			return nil, NewValidationError("category", err.Error())
		}
		q = q.Where(promptgroup.CategoryEQ(c))
	}
	return q.All(ctx)
}

// The methods below implement prompt.Store.

// CustomPrompt returns an active prompt by id that is owned by the user
// or is a global override.
func (s *PromptService) CustomPrompt(ctx context.Context, userID, promptID string) (*prompt.StoredPrompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			entprompt.ID(promptID),
			entprompt.IsActive(true),
			entprompt.Or(
				entprompt.OwnerUserID(userID),
				entprompt.OwnerUserIDIsNil(),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, prompt.ErrNotFound
		}
		return nil, err
	}
	return storedPrompt(p), nil
}

// PersonaPrompt returns the user's newest active character_persona
// prompt, or prompt.ErrNotFound.
func (s *PromptService) PersonaPrompt(ctx context.Context, userID string) (*prompt.StoredPrompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			entprompt.TypeEQ(entprompt.TypeCharacterPersona),
			entprompt.OwnerUserID(userID),
			entprompt.IsActive(true),
		).
		Order(ent.Desc(entprompt.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, prompt.ErrNotFound
		}
		return nil, err
	}
	return storedPrompt(p), nil
}

// Profile returns the resolver's slice of the user row.
func (s *PromptService) Profile(ctx context.Context, userID string) (*prompt.Profile, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, wrapEntError(err)
	}

	name := u.DisplayName
	if name == "" {
		name = u.Username
	}
	character := prompt.Character(u.SelectedCharacter)

	affinity := 0
	switch character {
	case prompt.CharacterSakura:
		affinity = u.AffinitySakura
	case prompt.CharacterMiyabi:
		affinity = u.AffinityMiyabi
	}

	return &prompt.Profile{Name: name, Character: character, Affinity: affinity}, nil
}

// Group returns a prompt group owned by the user.
func (s *PromptService) Group(ctx context.Context, userID, groupID string) (*prompt.StoredGroup, error) {
	g, err := s.client.PromptGroup.Query().
		Where(promptgroup.ID(groupID), promptgroup.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, prompt.ErrNotFound
		}
		return nil, err
	}

	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return &prompt.StoredGroup{
		ID:            g.ID,
		Name:          g.Name,
		Category:      string(g.Category),
		CoordinatorID: deref(g.CoordinatorPromptID),
		PlannerID:     deref(g.PlannerPromptID),
		SupervisorID:  deref(g.SupervisorPromptID),
		AgentID:       deref(g.AgentPromptID),
		SummaryID:     deref(g.SummaryPromptID),
	}, nil
}

func storedPrompt(p *ent.Prompt) *prompt.StoredPrompt {
	return &prompt.StoredPrompt{
		ID:        p.ID,
		Name:      p.Name,
		Type:      prompt.Type(p.Type),
		Body:      p.Body,
		UpdatedAt: p.UpdatedAt,
	}
}

var _ prompt.Store = (*PromptService)(nil)
