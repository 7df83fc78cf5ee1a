package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/internal/store"
	"github.com/pkazancev/gamideck/models"
)

// memSessionRepo is an in-memory stand-in for the SQLite session repository.
type memSessionRepo struct {
	mu    sync.Mutex
	token *string
	user  *models.User
}

func (m *memSessionRepo) SaveToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = &token
	return nil
}

func (m *memSessionRepo) LoadToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return "", store.ErrKeyNotFound
	}
	return *m.token, nil
}

func (m *memSessionRepo) SaveUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

func (m *memSessionRepo) LoadUser(context.Context) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, store.ErrKeyNotFound
	}
	return *m.user, nil
}

func (m *memSessionRepo) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	m.user = nil
	return nil
}

// fakeAdapter embeds the full interface so each test overrides only the
// methods it expects to be called; everything else panics loudly.
type fakeAdapter struct {
	adapter.ServerAdapter

	mu    sync.Mutex
	token string

	loginFunc    func(ctx context.Context, creds models.Credentials) (models.AuthSession, error)
	registerFunc func(ctx context.Context, reg models.Registration) (models.AuthSession, error)
	meFunc       func(ctx context.Context) (models.User, error)
	tasksFunc    func(ctx context.Context) ([]models.Task, error)
	assignFunc   func(ctx context.Context, userID uuid.UUID, a models.CompetitionAssignment) (models.User, error)
	chatFunc     func(ctx context.Context, cmd models.ChatCommand) (models.ChatReply, error)
	updUserFunc  func(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error)
}

func (f *fakeAdapter) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeAdapter) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthSession, error) {
	return f.loginFunc(ctx, creds)
}

func (f *fakeAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthSession, error) {
	return f.registerFunc(ctx, reg)
}

// Me is also hit by the background resync the session store starts after
// adopting a token, so a missing meFunc reports an error instead of
// panicking; the store logs it and keeps the cached user.
func (f *fakeAdapter) Me(ctx context.Context) (models.User, error) {
	if f.meFunc == nil {
		return models.User{}, errors.New("unexpected Me call")
	}
	return f.meFunc(ctx)
}

func (f *fakeAdapter) Tasks(ctx context.Context) ([]models.Task, error) {
	return f.tasksFunc(ctx)
}

func (f *fakeAdapter) AssignCompetition(ctx context.Context, userID uuid.UUID, a models.CompetitionAssignment) (models.User, error) {
	return f.assignFunc(ctx, userID, a)
}

func (f *fakeAdapter) SendChat(ctx context.Context, cmd models.ChatCommand) (models.ChatReply, error) {
	return f.chatFunc(ctx, cmd)
}

func (f *fakeAdapter) UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error) {
	return f.updUserFunc(ctx, id, patch)
}

func newTestSession(t *testing.T, a *fakeAdapter) *session.Store {
	t.Helper()
	return session.NewStore(&memSessionRepo{}, a, a, logger.Nop())
}
