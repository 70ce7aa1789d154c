package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestClientDo_Success(t *testing.T) {
	var gotReq request
	var gotCookie string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/graphql" {
			t.Errorf("expected /graphql, got %s", r.URL.Path)
		}
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			gotCookie = cookie.Value
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"listUsers":[{"id":1,"name":"Ada"}]}}`)
	}))
	defer server.Close()

	client := New(server.URL, "cookie-value", discardLogger())

	var users []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := client.Do(context.Background(), GetAllUsers, nil, "listUsers", &users)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotReq.OperationName != "GetAllUsers" {
		t.Errorf("operation name %q sent, want GetAllUsers", gotReq.OperationName)
	}
	if gotReq.Query != GetAllUsers.Document {
		t.Error("query document not sent verbatim")
	}
	if gotCookie != "cookie-value" {
		t.Errorf("session cookie %q sent, want cookie-value", gotCookie)
	}
	if len(users) != 1 || users[0].Name != "Ada" {
		t.Errorf("unexpected decode result: %+v", users)
	}
}

func TestClientDo_SendsVariables(t *testing.T) {
	var gotReq request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		io.WriteString(w, `{"data":{"getWeeklyChoreCompletions":[]}}`)
	}))
	defer server.Close()

	client := New(server.URL, "", discardLogger())
	vars := map[string]any{"userId": 5, "weekStartDate": "2024-06-09"}

	var out []struct{}
	if err := client.Do(context.Background(), GetWeeklyChores, vars, "getWeeklyChoreCompletions", &out); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotReq.Variables["weekStartDate"] != "2024-06-09" {
		t.Errorf("variables not sent: %+v", gotReq.Variables)
	}
}

func TestClientDo_GraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":null,"errors":[{"message":"unauthorized"},{"message":"try again"}]}`)
	}))
	defer server.Close()

	client := New(server.URL, "", discardLogger())
	err := client.Do(context.Background(), GetAllUsers, nil, "listUsers", &[]struct{}{})
	if err == nil {
		t.Fatal("expected error for GraphQL errors in envelope")
	}
	if !strings.Contains(err.Error(), "unauthorized") || !strings.Contains(err.Error(), "try again") {
		t.Errorf("error must carry all messages, got: %v", err)
	}
}

func TestClientDo_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, "", discardLogger())
	if err := client.Do(context.Background(), GetAllUsers, nil, "listUsers", &[]struct{}{}); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestClientDo_MissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"somethingElse":[]}}`)
	}))
	defer server.Close()

	client := New(server.URL, "", discardLogger())
	if err := client.Do(context.Background(), GetAllUsers, nil, "listUsers", &[]struct{}{}); err == nil {
		t.Fatal("expected error for missing data field")
	}
}

func TestClientDo_NilOutSkipsDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"deleteChoreCompletion":true}}`)
	}))
	defer server.Close()

	client := New(server.URL, "", discardLogger())
	if err := client.Do(context.Background(), DeleteChoreCompletion, map[string]any{"completionUuid": "u"}, "", nil); err != nil {
		t.Fatalf("Do with nil out failed: %v", err)
	}
}

func TestClientDo_NoCookieWhenEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(SessionCookieName); err == nil {
			t.Error("cookie sent despite empty session")
		}
		io.WriteString(w, `{"data":{"listUsers":[]}}`)
	}))
	defer server.Close()

	client := New(server.URL, "", discardLogger())
	if err := client.Do(context.Background(), GetAllUsers, nil, "listUsers", &[]struct{}{}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}
