package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/config"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full url", in: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash stripped", in: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "scheme added", in: "localhost:8000", want: "http://localhost:8000"},
		{name: "empty", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@corp.dev", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	}))

	session, err := a.Login(context.Background(), models.Credentials{Email: "alice@corp.dev", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.AccessToken)
	assert.Equal(t, "tok-123", a.Token())
}

func TestRegister_WithoutToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + uuid.NewString() + `"}`))
	}))

	session, err := a.Register(context.Background(), models.Registration{Email: "bob@corp.dev", Password: "secret"})

	require.NoError(t, err)
	assert.Empty(t, session.AccessToken)
	assert.Empty(t, a.Token(), "register without a token must not overwrite the stored one")
}

func TestAuthedRequest_SendsBearerHeader(t *testing.T) {
	var gotAuth string
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"alice@corp.dev"}`))
	}))
	a.SetToken("tok-456")

	_, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-456", gotAuth)
}

func TestUnauthorized_MapsToSessionExpired(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"Could not validate credentials"}`, http.StatusUnauthorized)
	}))

	_, err := a.Me(context.Background())

	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "session expired, please sign in again", err.Error())
}

func TestTransportFailure_MapsToNoConnection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Tasks(context.Background())

	require.ErrorIs(t, err, ErrNoConnection)
	assert.Equal(t, "no connection to server", err.Error())
}

func TestAPIError_Messages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "validation detail array joined",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[{"msg":"field required"},{"msg":"value is not a valid email"}]}`,
			wantMsg: "field required, value is not a valid email",
		},
		{
			name:    "scalar detail",
			status:  http.StatusConflict,
			body:    `{"detail":"Email already registered"}`,
			wantMsg: "Email already registered",
		},
		{
			name:    "message field",
			status:  http.StatusBadRequest,
			body:    `{"message":"bad input"}`,
			wantMsg: "bad input",
		},
		{
			name:    "raw text fallback",
			status:  http.StatusBadGateway,
			body:    `upstream exploded`,
			wantMsg: "upstream exploded",
		},
		{
			name:    "empty body fallback",
			status:  http.StatusInternalServerError,
			body:    "",
			wantMsg: "error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := a.Tasks(context.Background())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
		})
	}
}

func TestNoContent_IsNotAnError(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := a.DeleteTask(context.Background(), uuid.New())

	assert.NoError(t, err)
}

func TestEndpointPaths(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		call       func(a ServerAdapter) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "update task",
			call: func(a ServerAdapter) error {
				_, err := a.UpdateTask(context.Background(), id, models.TaskPatch{})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/tasks/" + id.String(),
		},
		{
			name: "leaderboard",
			call: func(a ServerAdapter) error {
				_, err := a.Leaderboard(context.Background(), id)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/leaderboard/" + id.String(),
		},
		{
			name: "assign competition",
			call: func(a ServerAdapter) error {
				_, err := a.AssignCompetition(context.Background(), id, models.CompetitionAssignment{})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/users/" + id.String() + "/competition",
		},
		{
			name: "admin delete user",
			call: func(a ServerAdapter) error {
				return a.DeleteUser(context.Background(), id)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/admin/users/" + id.String(),
		},
		{
			name: "plain users",
			call: func(a ServerAdapter) error {
				_, err := a.PlainUsers(context.Background())
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/users/only",
		},
		{
			name: "chat",
			call: func(a ServerAdapter) error {
				_, err := a.SendChat(context.Background(), models.ChatCommand{Message: "add a task"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/chat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusNoContent)
			}))

			require.NoError(t, tt.call(a))
			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestLeaderboard_DecodesEntries(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"first_name":"Alice","last_name":"Smith","score":42},
			{"first_name":"Bob","last_name":"Jones","score":17}
		]`))
	}))

	entries, err := a.Leaderboard(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].FirstName)
	assert.Equal(t, 42, entries[0].Score)
}

func TestSend_ContextCancelled(t *testing.T) {
	started := make(chan struct{})
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := a.Tasks(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoConnection))
}
