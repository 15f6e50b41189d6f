package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/pkg/prompt"
)

// UserService manages user accounts and their character selection.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetOrCreate returns the user with the given username, creating it on
// first sight. Safe under concurrent first requests: the losing INSERT
// falls back to the winner's row.
func (s *UserService) GetOrCreate(httpCtx context.Context, username string) (*ent.User, error) {
	if username == "" {
		return nil, NewValidationError("username", "required")
	}

	existing, err := s.client.User.Query().Where(user.Username(username)).Only(httpCtx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetUsername(username).
		Save(ctx)
	if err == nil {
		return created, nil
	}
	if ent.IsConstraintError(err) {
		return s.client.User.Query().Where(user.Username(username)).Only(ctx)
	}
	return nil, fmt.Errorf("failed to create user: %w", err)
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return u, nil
}

// SelectCharacter switches the user's active character.
func (s *UserService) SelectCharacter(ctx context.Context, userID, character string) (*ent.User, error) {
	c, err := prompt.ParseCharacter(character)
	if err != nil {
		return nil, NewValidationError("character", err.Error())
	}

	u, err := s.client.User.UpdateOneID(userID).
		SetSelectedCharacter(user.SelectedCharacter(c)).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return u, nil
}

// maxAffinity is the top affinity level a character can reach.
const maxAffinity = 4

// SetAffinity sets the user's affinity level with a character,
// clamped to the valid range.
func (s *UserService) SetAffinity(ctx context.Context, userID, character string, level int) (*ent.User, error) {
	if level < 0 {
		level = 0
	}
	if level > maxAffinity {
		level = maxAffinity
	}

	update := s.client.User.UpdateOneID(userID)
	switch prompt.Character(character) {
	case prompt.CharacterSakura:
		update.SetAffinitySakura(level)
	case prompt.CharacterMiyabi:
		update.SetAffinityMiyabi(level)
	default:
		return nil, NewValidationError("character", "must be sakura or miyabi")
	}

	u, err := update.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return u, nil
}

// AddPoints credits activity points to the user.
func (s *UserService) AddPoints(ctx context.Context, userID string, delta int) (*ent.User, error) {
	u, err := s.client.User.UpdateOneID(userID).
		AddPoints(delta).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return u, nil
}

// UpdateDisplayName sets the name used in prompt substitution.
func (s *UserService) UpdateDisplayName(ctx context.Context, userID, displayName string) (*ent.User, error) {
	u, err := s.client.User.UpdateOneID(userID).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return u, nil
}
