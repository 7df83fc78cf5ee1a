package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

func TestLogin_AdoptsSession(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "alice@corp.dev", Role: models.RoleUser}
	a := &fakeAdapter{
		loginFunc: func(_ context.Context, creds models.Credentials) (models.AuthSession, error) {
			assert.Equal(t, "alice@corp.dev", creds.Email)
			return models.AuthSession{AccessToken: "tok-1", User: &user}, nil
		},
	}
	sess := newTestSession(t, a)
	svc := NewAuthService(a, sess, logger.Nop())

	got, err := svc.Login(context.Background(), models.Credentials{Email: "alice@corp.dev", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, user, got)

	snap := sess.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, "tok-1", snap.Token)
	assert.Equal(t, user.Email, snap.User.Email)
}

func TestLogin_FetchesProfileWhenResponseOmitsUser(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "alice@corp.dev"}
	a := &fakeAdapter{
		loginFunc: func(context.Context, models.Credentials) (models.AuthSession, error) {
			return models.AuthSession{AccessToken: "tok-1"}, nil
		},
		meFunc: func(context.Context) (models.User, error) {
			return user, nil
		},
	}
	sess := newTestSession(t, a)
	svc := NewAuthService(a, sess, logger.Nop())

	got, err := svc.Login(context.Background(), models.Credentials{Email: "alice@corp.dev", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestLogin_ServerError(t *testing.T) {
	a := &fakeAdapter{
		loginFunc: func(context.Context, models.Credentials) (models.AuthSession, error) {
			return models.AuthSession{}, errors.New("invalid credentials")
		},
	}
	sess := newTestSession(t, a)
	svc := NewAuthService(a, sess, logger.Nop())

	_, err := svc.Login(context.Background(), models.Credentials{Email: "alice@corp.dev", Password: "bad"})

	require.ErrorIs(t, err, ErrLoginOnServer)
	assert.False(t, sess.Snapshot().Authenticated)
}

func TestLogin_KeepsAdapterErrorIdentity(t *testing.T) {
	a := &fakeAdapter{
		loginFunc: func(context.Context, models.Credentials) (models.AuthSession, error) {
			return models.AuthSession{}, adapter.ErrNoConnection
		},
	}
	svc := NewAuthService(a, newTestSession(t, a), logger.Nop())

	_, err := svc.Login(context.Background(), models.Credentials{Email: "alice@corp.dev", Password: "pw"})

	// Both the service sentinel and the adapter sentinel stay matchable, so
	// callers can tell a dead backend from rejected credentials.
	require.ErrorIs(t, err, ErrLoginOnServer)
	require.ErrorIs(t, err, adapter.ErrNoConnection)
}

func TestLogin_ValidatesInput(t *testing.T) {
	svc := NewAuthService(&fakeAdapter{}, newTestSession(t, &fakeAdapter{}), logger.Nop())

	_, err := svc.Login(context.Background(), models.Credentials{Email: "  ", Password: "pw"})
	assert.ErrorIs(t, err, ErrValidationEmptyEmail)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrValidationEmptyPassword)
}

func TestRegister_WithToken(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "bob@corp.dev"}
	a := &fakeAdapter{
		registerFunc: func(context.Context, models.Registration) (models.AuthSession, error) {
			return models.AuthSession{AccessToken: "tok-2", User: &user}, nil
		},
	}
	sess := newTestSession(t, a)
	svc := NewAuthService(a, sess, logger.Nop())

	got, err := svc.Register(context.Background(), models.Registration{Email: "bob@corp.dev", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "tok-2", sess.Snapshot().Token)
}

func TestRegister_FallsBackToLoginWithoutToken(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "bob@corp.dev"}
	var loggedIn bool
	a := &fakeAdapter{
		registerFunc: func(context.Context, models.Registration) (models.AuthSession, error) {
			return models.AuthSession{}, nil // account created, no token issued
		},
		loginFunc: func(_ context.Context, creds models.Credentials) (models.AuthSession, error) {
			loggedIn = true
			assert.Equal(t, "bob@corp.dev", creds.Email)
			assert.Equal(t, "pw", creds.Password)
			return models.AuthSession{AccessToken: "tok-3", User: &user}, nil
		},
	}
	sess := newTestSession(t, a)
	svc := NewAuthService(a, sess, logger.Nop())

	got, err := svc.Register(context.Background(), models.Registration{Email: "bob@corp.dev", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, loggedIn)
	assert.Equal(t, user, got)
	assert.Equal(t, "tok-3", sess.Snapshot().Token)
}

func TestLogout_DropsSession(t *testing.T) {
	user := models.User{ID: uuid.New()}
	a := &fakeAdapter{
		loginFunc: func(context.Context, models.Credentials) (models.AuthSession, error) {
			return models.AuthSession{AccessToken: "tok-1", User: &user}, nil
		},
	}
	sess := newTestSession(t, a)
	svc := NewAuthService(a, sess, logger.Nop())
	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	assert.False(t, sess.Snapshot().Authenticated)
	assert.Empty(t, a.Token())
}
