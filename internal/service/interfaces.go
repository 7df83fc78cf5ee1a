// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package service implements the client-side use cases on top of the
// transport adapter and the session store. Services own no UI concerns: they
// translate between the page-level intent ("sign in", "complete this task",
// "assign Bob to the spring sprint") and the backend operations, and they
// keep the session store in step with what the server returns.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService covers signing in, signing up, and signing out.
type AuthService interface {
	// Login authenticates against the backend and adopts the issued session.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Register creates an account and signs it in. Backends that do not
	// issue a token on registration are handled by an immediate follow-up
	// login with the same credentials.
	Register(ctx context.Context, reg models.Registration) (models.User, error)

	// Logout drops the session locally. No server call is involved; the
	// token simply stops being used.
	Logout(ctx context.Context) error
}

// ProfileService covers the caller's own account.
type ProfileService interface {
	// Refresh fetches the authoritative profile and updates the session.
	Refresh(ctx context.Context) (models.User, error)

	// Update applies a partial profile edit and merges the server's answer
	// into the session.
	Update(ctx context.Context, patch models.UserPatch) (models.User, error)

	// DeleteAccount removes the account server-side and signs out.
	DeleteAccount(ctx context.Context) error
}

// TaskService covers the caller's task list.
type TaskService interface {
	List(ctx context.Context) ([]models.Task, error)

	// Calendar groups the caller's tasks by due day; tasks without a due
	// date are returned separately.
	Calendar(ctx context.Context) (models.Calendar, []models.Task, error)

	Create(ctx context.Context, spec models.TaskSpec) (models.Task, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TaskPatch) (models.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompetitionService covers competitions, standings, and membership.
type CompetitionService interface {
	List(ctx context.Context) ([]models.Competition, error)
	Get(ctx context.Context, id uuid.UUID) (models.Competition, error)
	Create(ctx context.Context, spec models.CompetitionSpec) (models.Competition, error)
	Update(ctx context.Context, id uuid.UUID, patch models.CompetitionPatch) (models.Competition, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Leaderboard returns the ranked standings for one competition.
	Leaderboard(ctx context.Context, competitionID uuid.UUID) ([]models.LeaderboardEntry, error)

	// Users returns the full directory; PlainUsers only the assignable
	// basic-role accounts.
	Users(ctx context.Context) ([]models.User, error)
	PlainUsers(ctx context.Context) ([]models.User, error)

	// Assign moves a user into competitionID; a nil competitionID withdraws
	// them. When the change targets the signed-in user the session snapshot
	// is updated too.
	Assign(ctx context.Context, userID uuid.UUID, competitionID *uuid.UUID) (models.User, error)
}

// CatalogService covers the admin-managed reference data and manual reward
// grants.
type CatalogService interface {
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

	GrantReward(ctx context.Context, grant models.RewardGrant) (models.Reward, error)
}

// AdminService covers privileged account management.
type AdminService interface {
	UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ChatService covers the natural-language task assistant.
type ChatService interface {
	// Send forwards a free-form command; targets fans the resulting task
	// out to other users (manager feature) and may be nil.
	Send(ctx context.Context, message string, targets []uuid.UUID) (models.ChatReply, error)
}
