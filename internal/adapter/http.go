// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/pkazancev/gamideck/internal/config"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests. Safe for concurrent use.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// send performs a single request against the backend and decodes the JSON
// response into out (when out is non-nil and the body is non-empty).
//
// Error mapping: a transport-level failure becomes [ErrNoConnection], an
// HTTP 401 becomes [ErrSessionExpired], and any other non-2xx status becomes
// an [*APIError]. A 204 or empty body leaves out untouched and returns nil.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, body, out any) error {
	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return ErrNoConnection
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Login implements [AuthAPI]. It POSTs the credentials to POST /login.
// On success the bearer token from the response body is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthSession, error) {
	var session models.AuthSession
	if err := h.send(ctx, "POST", "/login", creds, &session); err != nil {
		return models.AuthSession{}, err
	}

	h.SetToken(session.AccessToken)
	return session, nil
}

// Register implements [AuthAPI]. It POSTs the registration form to
// POST /register. If the backend returns a token it is stored via SetToken;
// otherwise AccessToken comes back empty and the caller is expected to
// follow up with Login.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthSession, error) {
	var session models.AuthSession
	if err := h.send(ctx, "POST", "/register", reg, &session); err != nil {
		return models.AuthSession{}, err
	}

	if session.AccessToken != "" {
		h.SetToken(session.AccessToken)
	}
	return session, nil
}
