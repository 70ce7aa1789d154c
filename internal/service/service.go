// Package service holds the per-feature façades over the GraphQL catalog and
// the auth/image HTTP endpoints. Each façade owns the operations for one
// surface, normalizes responses into model types, and validates mutation
// inputs before dispatch. Façades hold no state; the caller owns the last
// fetched snapshot and refetches after every successful mutation.
package service

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/example/choreboard/internal/graphql"
)

// Services bundles every façade behind a single constructor.
type Services struct {
	Users       *UserService
	Chores      *ChoreService
	Completions *CompletionService
	Payouts     *PayoutService
	Session     *SessionService
	Images      *ImageService

	serverURL string
	logger    *log.Logger
}

// New wires the façades against one server. sessionCookie may be empty; the
// server rejects operations that need an admin session.
func New(serverURL, sessionCookie string, logger *log.Logger) *Services {
	gql := graphql.New(serverURL, sessionCookie, logger)
	httpClient := http.DefaultClient
	return &Services{
		serverURL: serverURL,
		logger:    logger,
		Users:       &UserService{gql: gql},
		Chores:      &ChoreService{gql: gql},
		Completions: &CompletionService{gql: gql, logger: logger},
		Payouts:     &PayoutService{gql: gql},
		Session:     &SessionService{serverURL: serverURL, cookie: sessionCookie, httpClient: httpClient},
		Images:      &ImageService{serverURL: serverURL, cookie: sessionCookie, httpClient: httpClient},
	}
}

// WithSessionCookie returns a fresh bundle bound to the same server but a
// different session cookie.
func (s *Services) WithSessionCookie(cookie string) *Services {
	return New(s.serverURL, cookie, s.logger)
}
