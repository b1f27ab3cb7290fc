package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/webluciano/folio/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		msg    Message
		fields []string
	}{
		{"valid", Message{Name: "Ana", Email: "ana@example.com", Message: "Hola"}, nil},
		{"missing all", Message{}, []string{"name", "email", "message"}},
		{"bad email", Message{Name: "Ana", Email: "ana", Message: "Hola"}, []string{"email"}},
		{"display name email", Message{Name: "Ana", Email: "Ana <ana@example.com>", Message: "Hola"}, []string{"email"}},
		{"long subject", Message{Name: "Ana", Email: "ana@example.com", Subject: strings.Repeat("x", maxSubject+1), Message: "Hola"}, []string{"subject"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Errorf("fields = %v, want %v", verr.Fields, tt.fields)
			}
			for _, f := range tt.fields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestStoreCreateAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, Message{
		Name:    "  Ana  ",
		Email:   "ana@example.com",
		Subject: "Proyecto",
		Message: "Hola, me interesa tu trabajo.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an ID to be assigned")
	}
	if created.Name != "Ana" {
		t.Errorf("Name = %q, want trimmed", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	if _, err := store.Create(ctx, Message{Name: "Luis", Email: "luis@example.com", Message: "Buenas"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d messages, want 2", len(all))
	}
	found := false
	for _, m := range all {
		if m.ID == created.ID {
			found = true
			if m.Subject != "Proyecto" || m.Email != "ana@example.com" {
				t.Errorf("stored message = %+v", m)
			}
		}
	}
	if !found {
		t.Errorf("created message %s not listed", created.ID)
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d messages with limit 1", len(limited))
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestStoreCreateRejectsInvalid(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, Message{Name: "Ana"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("invalid message was stored")
	}
}

func TestCreateRoute(t *testing.T) {
	store := newTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", `{"name":"Ana","email":"ana@example.com","message":"Hola"}`, http.StatusCreated},
		{"invalid", `{"name":"Ana"}`, http.StatusUnprocessableEntity},
		{"malformed", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	n, _ := store.Count(context.Background())
	if n != 1 {
		t.Errorf("stored %d messages, want 1", n)
	}
}

func TestWebhookDelivery(t *testing.T) {
	received := make(chan webhookPayload, 1)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p webhookPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		received <- p
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	store := newTestStore(t)
	store.SetWebhook(NewWebhook(hook.URL), slog.New(slog.NewTextHandler(io.Discard, nil)))

	created, err := store.Create(context.Background(), Message{Name: "Ana", Email: "ana@example.com", Message: "Hola", RemoteAddr: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	store.Wait()

	select {
	case p := <-received:
		if p.Event != "contact.message" || p.Message.ID != created.ID {
			t.Errorf("unexpected payload %+v", p)
		}
		if p.Message.RemoteAddr != "" {
			t.Error("remote address must not leave the inbox")
		}
	default:
		t.Fatal("webhook was not called")
	}
}

func TestWebhookFailureDoesNotFailCreate(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer hook.Close()

	var logs strings.Builder
	store := newTestStore(t)
	store.SetWebhook(NewWebhook(hook.URL), slog.New(slog.NewTextHandler(&logs, nil)))

	if _, err := store.Create(context.Background(), Message{Name: "Ana", Email: "ana@example.com", Message: "Hola"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	store.Wait()
	if !strings.Contains(logs.String(), "contact webhook delivery failed") {
		t.Errorf("expected a delivery warning, got %q", logs.String())
	}
}
