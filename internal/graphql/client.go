// Package graphql holds the fixed operation catalog and the thin HTTP
// transport that sends it. The server is the single source of truth; every
// call here is a plain request/response round trip with no caching, no
// retries, and no local merging.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// Client posts operations to a single /graphql endpoint, carrying the
// session cookie on every request.
type Client struct {
	endpoint      string
	sessionCookie string
	httpClient    *http.Client
	logger        *log.Logger
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type responseError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

// SessionCookieName is the cookie the auth endpoint issues.
const SessionCookieName = "session"

// New builds a client for the given server base URL. sessionCookie may be
// empty for unauthenticated use.
func New(serverURL, sessionCookie string, logger *log.Logger) *Client {
	return &Client{
		endpoint:      strings.TrimRight(serverURL, "/") + "/graphql",
		sessionCookie: sessionCookie,
		httpClient:    http.DefaultClient,
		logger:        logger,
	}
}

// Do executes one operation and decodes the named result field into out.
// GraphQL-level errors are returned as Go errors; partial data is discarded.
func (c *Client) Do(ctx context.Context, op Operation, vars map[string]any, field string, out any) error {
	body, err := json.Marshal(request{
		Query:         op.Document,
		OperationName: op.Name,
		Variables:     vars,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", op.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: c.sessionCookie})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op.Name, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("graphql request failed", "operation", op.Name, "status", resp.StatusCode)
		return fmt.Errorf("%s: server returned %s", op.Name, resp.Status)
	}

	var envelope response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%s: decode response: %w", op.Name, err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		c.logger.Error("graphql operation rejected", "operation", op.Name, "errors", strings.Join(msgs, "; "))
		return fmt.Errorf("%s: %s", op.Name, strings.Join(msgs, "; "))
	}
	if out == nil {
		return nil
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return fmt.Errorf("%s: decode data: %w", op.Name, err)
	}
	payload, ok := data[field]
	if !ok || string(payload) == "null" {
		return fmt.Errorf("%s: missing field %q in response", op.Name, field)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", op.Name, field, err)
	}
	return nil
}
