package models

import (
	"strings"

	"github.com/google/uuid"
)

// User represents an account on the gamification platform. The client keeps a
// cached snapshot of this record in local storage; the backend remains the
// source of truth and the snapshot is re-synced opportunistically.
type User struct {
	// ID is the server-assigned account identifier.
	ID uuid.UUID `json:"id"`

	// FirstName and LastName are display names shown in leaderboards and
	// the profile page.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Role gates which pages are reachable and which navigation links render.
	Role Role `json:"role"`

	// TotalPoints is the running points balance inside the user's current
	// competition. Reset by the backend when the user is re-assigned.
	TotalPoints int `json:"total_points"`

	// CurrentCompetition is the competition the user is enrolled in, if any.
	// The backend exposes it as "cur_comp".
	CurrentCompetition *uuid.UUID `json:"cur_comp,omitempty"`
}

// FullName returns "First Last" with surrounding whitespace trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserPatch is a partial user update for PUT /users/me and
// PUT /admin/users/{id}. Nil fields are left untouched by the backend.
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

// CompetitionAssignment is the body of PUT /users/{id}/competition.
// A nil CompetitionID withdraws the user from their current competition.
type CompetitionAssignment struct {
	CompetitionID *uuid.UUID `json:"competition_id"`
}
