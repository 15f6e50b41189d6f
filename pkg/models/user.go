// Package models holds the JSON shapes of the HTTP surface and their
// conversions from ent rows. Handlers never serialise ent types
// directly.
package models

import (
	"time"

	"github.com/rainzero1960/paperscout/ent"
)

// User is the account view returned by the auth endpoints.
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	DisplayName       string    `json:"display_name,omitempty"`
	SelectedCharacter string    `json:"selected_character"`
	AffinitySakura    int       `json:"affinity_sakura"`
	AffinityMiyabi    int       `json:"affinity_miyabi"`
	Points            int       `json:"points"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewUser converts an ent row.
func NewUser(u *ent.User) *User {
	return &User{
		ID:                u.ID,
		Username:          u.Username,
		DisplayName:       u.DisplayName,
		SelectedCharacter: string(u.SelectedCharacter),
		AffinitySakura:    u.AffinitySakura,
		AffinityMiyabi:    u.AffinityMiyabi,
		Points:            u.Points,
		CreatedAt:         u.CreatedAt,
	}
}
