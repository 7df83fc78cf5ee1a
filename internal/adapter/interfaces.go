// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package adapter provides transport-layer abstractions for communicating with
// the gamification backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrSessionExpired] for 401) and [errors.As] to reach
// the server-provided message of an [*APIError].
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// AuthAPI covers the unauthenticated entry points.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token. The returned session
	// carries the token; the adapter also stores it via SetToken so all
	// subsequent requests are authenticated.
	Login(ctx context.Context, creds models.Credentials) (models.AuthSession, error)

	// Register creates a new account. Some backend versions do not return a
	// token here; callers should fall back to Login when
	// AuthSession.AccessToken comes back empty.
	Register(ctx context.Context, reg models.Registration) (models.AuthSession, error)
}

// IdentityAPI covers the caller's own profile and the user directory.
type IdentityAPI interface {
	// Me returns the profile of the authenticated user, including the
	// server-computed total points.
	Me(ctx context.Context) (models.User, error)

	// UpdateMe applies a partial update to the caller's own profile. Only
	// non-nil patch fields are sent.
	UpdateMe(ctx context.Context, patch models.UserPatch) (models.User, error)

	// DeleteMe permanently removes the caller's account.
	DeleteMe(ctx context.Context) error

	// Users returns the full user directory with competition membership.
	// Requires manager privileges on the server.
	Users(ctx context.Context) ([]models.User, error)

	// PlainUsers returns only users holding the basic role, the candidate
	// pool for competition assignment.
	PlainUsers(ctx context.Context) ([]models.User, error)

	// AssignCompetition moves a user into a competition, or out of any
	// competition when the assignment carries a nil competition ID.
	AssignCompetition(ctx context.Context, userID uuid.UUID, assignment models.CompetitionAssignment) (models.User, error)
}

// TaskAPI covers the caller-scoped task collection.
type TaskAPI interface {
	Tasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, spec models.TaskSpec) (models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// CompetitionAPI covers competitions and their leaderboards.
type CompetitionAPI interface {
	Competitions(ctx context.Context) ([]models.Competition, error)
	Competition(ctx context.Context, id uuid.UUID) (models.Competition, error)
	CreateCompetition(ctx context.Context, spec models.CompetitionSpec) (models.Competition, error)
	UpdateCompetition(ctx context.Context, id uuid.UUID, patch models.CompetitionPatch) (models.Competition, error)
	DeleteCompetition(ctx context.Context, id uuid.UUID) error

	// Leaderboard returns the ranked standings of a competition, ordered by
	// the server from highest score down.
	Leaderboard(ctx context.Context, competitionID uuid.UUID) ([]models.LeaderboardEntry, error)
}

// CatalogAPI covers the reference data managed from the admin panel and the
// manual reward grant operation.
type CatalogAPI interface {
	RewardTypes(ctx context.Context) ([]models.RewardType, error)
	CreateRewardType(ctx context.Context, spec models.RewardTypeSpec) (models.RewardType, error)
	UpdateRewardType(ctx context.Context, id uuid.UUID, spec models.RewardTypeSpec) (models.RewardType, error)
	DeleteRewardType(ctx context.Context, id uuid.UUID) error

	Tags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, spec models.TagSpec) (models.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, spec models.TagSpec) (models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error

	TaskStatuses(ctx context.Context) ([]models.TaskStatus, error)
	CreateTaskStatus(ctx context.Context, spec models.TaskStatusSpec) (models.TaskStatus, error)
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, spec models.TaskStatusSpec) (models.TaskStatus, error)
	DeleteTaskStatus(ctx context.Context, id uuid.UUID) error

	// GrantReward awards points to a user outside the task flow.
	GrantReward(ctx context.Context, grant models.RewardGrant) (models.Reward, error)
}

// AdminAPI covers privileged mutations of other users' accounts.
type AdminAPI interface {
	UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ChatAPI covers the natural-language task assistant.
type ChatAPI interface {
	// SendChat forwards a free-form command to the assistant. Managers may
	// target other users via ChatCommand.UserIDs.
	SendChat(ctx context.Context, cmd models.ChatCommand) (models.ChatReply, error)
}

// ServerAdapter defines transport-agnostic communication with the
// gamification backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	AuthAPI
	IdentityAPI
	TaskAPI
	CompetitionAPI
	CatalogAPI
	AdminAPI
	ChatAPI
}
