package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

type authService struct {
	adapter adapter.ServerAdapter
	session *session.Store
	logger  *logger.Logger
}

// NewAuthService constructs an [AuthService] bound to the given transport
// adapter and session store.
func NewAuthService(serverAdapter adapter.ServerAdapter, sessionStore *session.Store, logger *logger.Logger) AuthService {
	return &authService{adapter: serverAdapter, session: sessionStore, logger: logger}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := validateCredentials(creds); err != nil {
		return models.User{}, err
	}

	authSession, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	user, err := a.resolveUser(ctx, authSession)
	if err != nil {
		return models.User{}, err
	}

	if err := a.session.SetSession(ctx, authSession.AccessToken, user); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Info().Str("email", user.Email).Msg("signed in")
	return user, nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if err := validateCredentials(models.Credentials{Email: reg.Email, Password: reg.Password}); err != nil {
		return models.User{}, err
	}

	authSession, err := a.adapter.Register(ctx, reg)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	// Not every backend build issues a token on registration; sign in with
	// the same credentials when it didn't.
	if authSession.AccessToken == "" {
		return a.Login(ctx, models.Credentials{Email: reg.Email, Password: reg.Password})
	}

	user, err := a.resolveUser(ctx, authSession)
	if err != nil {
		return models.User{}, err
	}

	if err := a.session.SetSession(ctx, authSession.AccessToken, user); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Info().Str("email", user.Email).Msg("registered and signed in")
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// resolveUser returns the user record carried in the auth response, falling
// back to GET /users/me when the backend omitted it. The adapter already
// holds the fresh token at this point.
func (a *authService) resolveUser(ctx context.Context, authSession models.AuthSession) (models.User, error) {
	if authSession.User != nil {
		return *authSession.User, nil
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile after auth: %w", err)
	}
	return user, nil
}

func validateCredentials(creds models.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" {
		return ErrValidationEmptyEmail
	}
	if creds.Password == "" {
		return ErrValidationEmptyPassword
	}
	return nil
}
