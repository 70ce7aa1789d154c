package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
)

// fakeServer is a canned GraphQL + auth endpoint. Responses are keyed by
// operation name; every request body is recorded for assertions.
type fakeServer struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
	adminJSON string // empty means /auth/me answers 401
}

type recordedRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{responses: make(map[string]string)}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/graphql":
			var req recordedRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decoding graphql request: %v", err)
			}
			fs.mu.Lock()
			fs.requests = append(fs.requests, req)
			body, ok := fs.responses[req.OperationName]
			fs.mu.Unlock()
			if !ok {
				body = `{"data":null,"errors":[{"message":"unexpected operation ` + req.OperationName + `"}]}`
			}
			io.WriteString(w, body)
		case "/auth/me":
			if fs.adminJSON == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			io.WriteString(w, fs.adminJSON)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fs.Server.Close)
	return fs
}

func (fs *fakeServer) respond(operation, body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.responses[operation] = body
}

func (fs *fakeServer) recorded() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func (fs *fakeServer) services() *Services {
	return New(fs.URL, "test-cookie", log.NewWithOptions(io.Discard, log.Options{}))
}

func TestCompletionService_Complete(t *testing.T) {
	fs := newFakeServer(t)
	fs.respond("CreateChoreCompletion",
		`{"data":{"createChoreCompletion":{"id":10,"uuid":"c-1","completedDate":"2024-06-11","approved":false,"amountCents":150}}}`)

	day, _ := dates.ParseDay("2024-06-11")
	completion, err := fs.services().Completions.Complete(context.Background(), 5, 1, day)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completion.UUID != "c-1" || completion.Approved {
		t.Errorf("unexpected completion: %+v", completion)
	}

	reqs := fs.recorded()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	input, ok := reqs[0].Variables["completion"].(map[string]any)
	if !ok {
		t.Fatalf("completion variable missing: %+v", reqs[0].Variables)
	}
	if input["completedDate"] != "2024-06-11" {
		t.Errorf("completed date sent as %v, want 2024-06-11", input["completedDate"])
	}
}

func TestCompletionService_Complete_InvalidInput(t *testing.T) {
	fs := newFakeServer(t)

	_, err := fs.services().Completions.Complete(context.Background(), 0, 1, time.Now())
	if err == nil {
		t.Fatal("expected validation error for missing user id")
	}
	if len(fs.recorded()) != 0 {
		t.Error("invalid input must not reach the server")
	}
}

func TestCompletionService_AddNote_EmptyIsNoOp(t *testing.T) {
	fs := newFakeServer(t)

	in := models.UserNote(10, "   \n ", 5)
	if err := fs.services().Completions.AddNote(context.Background(), in); err != nil {
		t.Fatalf("empty note must be a silent no-op, got: %v", err)
	}
	if len(fs.recorded()) != 0 {
		t.Error("empty note must not be dispatched")
	}
}

func TestCompletionService_AddNote(t *testing.T) {
	fs := newFakeServer(t)
	fs.respond("AddChoreNote",
		`{"data":{"createChoreCompletionNote":{"id":1,"uuid":"n-1","noteText":"redo","authorType":"ADMIN","visibleToUser":false,"createdAt":"2024-06-11T10:00:00Z"}}}`)

	in := models.AdminNote(10, "redo", 3, false)
	if err := fs.services().Completions.AddNote(context.Background(), in); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	reqs := fs.recorded()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	note, _ := reqs[0].Variables["note"].(map[string]any)
	if note["noteText"] != "redo" {
		t.Errorf("note text sent as %v", note["noteText"])
	}
	if note["visibleToUser"] != false {
		t.Error("admin-only visibility not sent")
	}
}

func TestCompletionService_Reject(t *testing.T) {
	fs := newFakeServer(t)
	fs.respond("DeleteChoreCompletion", `{"data":{"deleteChoreCompletion":true}}`)

	if err := fs.services().Completions.Reject(context.Background(), "c-1"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	reqs := fs.recorded()
	if len(reqs) != 1 || reqs[0].Variables["completionUuid"] != "c-1" {
		t.Errorf("unexpected reject request: %+v", reqs)
	}
}

func TestChoreService_Create_FillsUUIDAndAssigns(t *testing.T) {
	fs := newFakeServer(t)
	fs.respond("CreateChore",
		`{"data":{"createChore":{"id":7,"uuid":"ch-1","name":"Dishes","amountCents":150,"paymentType":"DAILY","requiredDays":36,"active":true}}}`)
	fs.respond("AssignChoreToUser", `{"data":{"assignUserToChore":true}}`)

	in := models.ChoreInput{
		Name:             "Dishes",
		PaymentType:      models.PaymentDaily,
		AmountCents:      150,
		RequiredDays:     36,
		Active:           true,
		CreatedByAdminID: 1,
	}
	chore, err := fs.services().Chores.Create(context.Background(), in, []int{5, 6})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if chore.ID != 7 {
		t.Errorf("unexpected chore: %+v", chore)
	}

	reqs := fs.recorded()
	if len(reqs) != 3 {
		t.Fatalf("expected create + 2 assigns, got %d requests", len(reqs))
	}
	sent, _ := reqs[0].Variables["chore"].(map[string]any)
	if sent["uuid"] == "" || sent["uuid"] == nil {
		t.Error("create must fill in a client-generated uuid")
	}
	if reqs[1].OperationName != "AssignChoreToUser" || reqs[2].OperationName != "AssignChoreToUser" {
		t.Error("assignments must follow the create")
	}
	if got := reqs[1].Variables["choreId"]; got != float64(7) {
		t.Errorf("assignment must use the created chore id, got %v", got)
	}
}

func TestPayoutService_MarkPaid_RejectsEmptySelection(t *testing.T) {
	fs := newFakeServer(t)

	if err := fs.services().Payouts.MarkPaid(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty selection")
	}
	if len(fs.recorded()) != 0 {
		t.Error("empty payout must not be dispatched")
	}
}

func TestPayoutService_MarkPaid(t *testing.T) {
	fs := newFakeServer(t)
	fs.respond("MarkCompletionsAsPaid", `{"data":{"markCompletionsAsPaid":2}}`)

	if err := fs.services().Payouts.MarkPaid(context.Background(), []int{5, 6}); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	reqs := fs.recorded()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	ids, _ := reqs[0].Variables["userIds"].([]any)
	if len(ids) != 2 {
		t.Errorf("user ids sent as %v", reqs[0].Variables["userIds"])
	}
}

func TestSessionService_Me(t *testing.T) {
	fs := newFakeServer(t)
	fs.adminJSON = `{"id":3,"oidcSubject":"sub-1","name":"Pat","email":"pat@example.com"}`

	admin, err := fs.services().Session.Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if admin.ID != 3 || admin.Email != "pat@example.com" {
		t.Errorf("unexpected admin: %+v", admin)
	}
}

func TestSessionService_Me_NotAdmin(t *testing.T) {
	fs := newFakeServer(t)

	_, err := fs.services().Session.Me(context.Background())
	if !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestCompletionService_WeeklyQueriesSendWeekStart(t *testing.T) {
	fs := newFakeServer(t)
	fs.respond("GetWeeklyChores", `{"data":{"getWeeklyChoreCompletions":[]}}`)
	fs.respond("GetAllWeeklyCompletions", `{"data":{"getAllWeeklyCompletions":[]}}`)

	weekStart, _ := dates.ParseDay("2024-06-09")
	svc := fs.services()
	if _, err := svc.Completions.ForUserWeek(context.Background(), 5, weekStart); err != nil {
		t.Fatalf("ForUserWeek failed: %v", err)
	}
	if _, err := svc.Completions.AllForWeek(context.Background(), weekStart); err != nil {
		t.Fatalf("AllForWeek failed: %v", err)
	}

	for _, req := range fs.recorded() {
		if req.Variables["weekStartDate"] != "2024-06-09" {
			t.Errorf("%s sent weekStartDate %v, want 2024-06-09", req.OperationName, req.Variables["weekStartDate"])
		}
	}
}
