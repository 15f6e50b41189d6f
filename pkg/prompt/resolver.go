package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrNotFound is returned by Store lookups when no matching row exists.
var ErrNotFound = errors.New("prompt not found")

// Separator is emitted between the persona block and the base prompt.
const Separator = "\n\n---\n\n"

// StoredPrompt is a prompt row as the resolver needs it.
type StoredPrompt struct {
	ID        string
	Name      string
	Type      Type
	Body      string
	UpdatedAt time.Time
}

// Profile is the slice of a user the resolver needs: substitution name,
// selected character, and the affinity with that character.
type Profile struct {
	Name      string
	Character Character
	Affinity  int
}

// StoredGroup is a prompt group row: per-role override prompt ids, empty
// when the slot is unset.
type StoredGroup struct {
	ID            string
	Name          string
	Category      string
	CoordinatorID string
	PlannerID     string
	SupervisorID  string
	AgentID       string
	SummaryID     string
}

// Store is the persistence surface the resolver reads from.
type Store interface {
	// CustomPrompt returns an active prompt by id that is owned by the
	// user or is a global override. ErrNotFound when absent or inactive.
	CustomPrompt(ctx context.Context, userID, promptID string) (*StoredPrompt, error)

	// PersonaPrompt returns the user's character_persona override, or
	// ErrNotFound when the user has none.
	PersonaPrompt(ctx context.Context, userID string) (*StoredPrompt, error)

	// Profile returns the user's substitution name, selected character,
	// and affinity with it.
	Profile(ctx context.Context, userID string) (*Profile, error)

	// Group returns a prompt group by id owned by the user.
	Group(ctx context.Context, userID, groupID string) (*StoredGroup, error)
}

// Resolver produces effective prompt bodies.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Request selects the prompt to resolve.
type Request struct {
	Type   Type
	UserID string
	// PromptID optionally names a custom prompt. An id that does not
	// resolve for this user falls back to the built-in default.
	PromptID string
	// Placeholders are substituted in addition to {today} and {name}.
	Placeholders map[string]string
	// UseCharacter enables persona prepending for eligible types.
	UseCharacter bool
	// TaskInstruction is an optional extra line inside the persona block.
	TaskInstruction string
}

// Resolved is the outcome of a resolution.
type Resolved struct {
	Body     string
	IsCustom bool
	// PromptID/PromptName/UpdatedAt describe the custom prompt when
	// IsCustom; zero otherwise.
	PromptID   string
	PromptName string
	UpdatedAt  time.Time
}

// Resolve returns the effective prompt body for the request.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	profile, err := r.store.Profile(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user profile: %w", err)
	}

	resolved := &Resolved{}
	if req.PromptID != "" {
		custom, err := r.store.CustomPrompt(ctx, req.UserID, req.PromptID)
		switch {
		case err == nil && custom.Type == req.Type:
			resolved.Body = custom.Body
			resolved.IsCustom = true
			resolved.PromptID = custom.ID
			resolved.PromptName = custom.Name
			resolved.UpdatedAt = custom.UpdatedAt
		case err != nil && !errors.Is(err, ErrNotFound):
			return nil, fmt.Errorf("load custom prompt: %w", err)
		default:
			slog.Debug("Custom prompt not usable, falling back to default",
				"prompt_id", req.PromptID, "type", string(req.Type))
		}
	}
	if !resolved.IsCustom {
		body, ok := DefaultTemplate(req.Type)
		if !ok {
			return nil, fmt.Errorf("no built-in template for prompt type %s", req.Type)
		}
		resolved.Body = body
	}

	if req.UseCharacter && characterPrependTypes[req.Type] && profile.Character != CharacterNone {
		persona, err := r.persona(ctx, req.UserID, profile)
		if err != nil {
			return nil, err
		}
		if persona != "" {
			var b strings.Builder
			b.WriteString(persona)
			if req.TaskInstruction != "" {
				b.WriteString("\n\n")
				b.WriteString(req.TaskInstruction)
			}
			b.WriteString(Separator)
			b.WriteString(resolved.Body)
			resolved.Body = b.String()
		}
	}

	resolved.Body = Substitute(resolved.Body, profile.Name, req.Placeholders)
	return resolved, nil
}

// persona returns the effective persona prompt: the user's
// character_persona override if present, else the built-in for the
// selected character at the current affinity.
func (r *Resolver) persona(ctx context.Context, userID string, profile *Profile) (string, error) {
	override, err := r.store.PersonaPrompt(ctx, userID)
	if err == nil {
		return override.Body, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("load persona prompt: %w", err)
	}
	return personaBody(profile.Character, profile.Affinity), nil
}

// GroupPrompts are the resolved per-role bodies for one research run.
type GroupPrompts struct {
	Coordinator string
	Planner     string
	Supervisor  string
	Agent       string
	Summary     string
}

// ResolveGroup resolves all five role prompts with {today}/{name}
// substitution. groupID may be empty, in which case every role gets its
// built-in default. A slot whose prompt id no longer resolves falls
// back to the default for that role. useCharacter enables persona
// prepending on the Summary role, the only persona-eligible one.
func (r *Resolver) ResolveGroup(ctx context.Context, userID, groupID string, useCharacter bool) (*GroupPrompts, error) {
	profile, err := r.store.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user profile: %w", err)
	}

	var group *StoredGroup
	if groupID != "" {
		g, err := r.store.Group(ctx, userID, groupID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("load prompt group: %w", err)
		}
		group = g
	}

	slot := func(id string, typ Type) (string, error) {
		if id != "" {
			custom, err := r.store.CustomPrompt(ctx, userID, id)
			if err == nil && custom.Type == typ {
				return custom.Body, nil
			}
			if err != nil && !errors.Is(err, ErrNotFound) {
				return "", fmt.Errorf("load group slot prompt: %w", err)
			}
		}
		body, ok := DefaultTemplate(typ)
		if !ok {
			return "", fmt.Errorf("no built-in template for prompt type %s", typ)
		}
		return body, nil
	}

	var ids StoredGroup
	if group != nil {
		ids = *group
	}

	out := &GroupPrompts{}
	if out.Coordinator, err = slot(ids.CoordinatorID, TypeResearchCoordinator); err != nil {
		return nil, err
	}
	if out.Planner, err = slot(ids.PlannerID, TypeResearchPlanner); err != nil {
		return nil, err
	}
	if out.Supervisor, err = slot(ids.SupervisorID, TypeResearchSupervisor); err != nil {
		return nil, err
	}
	if out.Agent, err = slot(ids.AgentID, TypeResearchAgent); err != nil {
		return nil, err
	}
	if out.Summary, err = slot(ids.SummaryID, TypeResearchSummary); err != nil {
		return nil, err
	}

	if useCharacter && characterPrependTypes[TypeResearchSummary] && profile.Character != CharacterNone {
		persona, err := r.persona(ctx, userID, profile)
		if err != nil {
			return nil, err
		}
		if persona != "" {
			out.Summary = persona + Separator + out.Summary
		}
	}

	out.Coordinator = Substitute(out.Coordinator, profile.Name, nil)
	out.Planner = Substitute(out.Planner, profile.Name, nil)
	out.Supervisor = Substitute(out.Supervisor, profile.Name, nil)
	out.Agent = Substitute(out.Agent, profile.Name, nil)
	out.Summary = Substitute(out.Summary, profile.Name, nil)
	return out, nil
}

// Substitute replaces {today}, {name}, and the caller's placeholders.
// Placeholders not present in the map are left literal.
func Substitute(body, name string, placeholders map[string]string) string {
	body = strings.ReplaceAll(body, "{today}", time.Now().Format("2006年01月02日"))
	body = strings.ReplaceAll(body, "{name}", name)
	for key, value := range placeholders {
		body = strings.ReplaceAll(body, "{"+key+"}", value)
	}
	return body
}
