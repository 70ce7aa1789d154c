package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/example/choreboard/internal/graphql"
	"github.com/example/choreboard/internal/models"
)

// ErrNotAdmin is returned when the session endpoint rejects the current
// session. Non-admin sessions are a normal state, not a failure.
var ErrNotAdmin = errors.New("current session is not an admin")

// SessionService resolves the current session against the cookie-based
// /auth endpoints. Login and logout are full-page browser redirects on the
// server; the client only presents the stored cookie.
type SessionService struct {
	serverURL  string
	cookie     string
	httpClient *http.Client
}

// Me returns the current Admin, or ErrNotAdmin when the session is missing
// or belongs to a non-admin.
func (s *SessionService) Me(ctx context.Context) (models.Admin, error) {
	var admin models.Admin
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(s.serverURL, "/")+"/auth/me", nil)
	if err != nil {
		return admin, fmt.Errorf("build session request: %w", err)
	}
	if s.cookie != "" {
		req.AddCookie(&http.Cookie{Name: graphql.SessionCookieName, Value: s.cookie})
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return admin, fmt.Errorf("check session: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(&admin); err != nil {
			return admin, fmt.Errorf("decode session response: %w", err)
		}
		return admin, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return admin, ErrNotAdmin
	default:
		return admin, fmt.Errorf("session check returned %s", resp.Status)
	}
}

// LoginURL is where a browser completes the login redirect flow. The
// resulting cookie is then stored with `auth login`.
func (s *SessionService) LoginURL() string {
	return strings.TrimRight(s.serverURL, "/") + "/auth/login"
}
