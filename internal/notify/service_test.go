package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseRecipients(t *testing.T) {
	recipients := ParseRecipients("a@x.com, b@y.com")

	if len(recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(recipients))
	}
	if recipients[0].Email != "a@x.com" {
		t.Errorf("expected trimmed first address, got %q", recipients[0].Email)
	}
	if recipients[1].Email != "b@y.com" {
		t.Errorf("expected trimmed second address, got %q", recipients[1].Email)
	}
}

func TestParseRecipientsEmptyEntries(t *testing.T) {
	recipients := ParseRecipients(" a@x.com ,, ,b@y.com,")

	if len(recipients) != 2 {
		t.Fatalf("expected empty entries dropped, got %v", recipients)
	}
}

func TestService_Send(t *testing.T) {
	var got message
	var auth, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("payload is not valid JSON: %v", err)
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	service := NewService(Config{
		Enabled:    true,
		Endpoint:   server.URL,
		APIKey:     "secret-key",
		From:       "sender@example.com",
		Recipients: "a@x.com, b@y.com",
		Subject:    "change committed",
	}, zaptest.NewLogger(t))

	if err := service.Send(context.Background(), "a.txt changed"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if auth != "Bearer secret-key" {
		t.Errorf("expected bearer auth header, got %q", auth)
	}
	if contentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", contentType)
	}

	if len(got.Personalizations) != 1 {
		t.Fatalf("expected one personalization, got %d", len(got.Personalizations))
	}
	if len(got.Personalizations[0].To) != 2 {
		t.Errorf("expected two recipients, got %v", got.Personalizations[0].To)
	}
	if got.From.Email != "sender@example.com" {
		t.Errorf("unexpected from address %q", got.From.Email)
	}
	if got.Subject != "change committed" {
		t.Errorf("unexpected subject %q", got.Subject)
	}
	if len(got.Content) != 1 || got.Content[0].Type != "text/plain" {
		t.Fatalf("expected one text/plain content entry, got %v", got.Content)
	}
	if got.Content[0].Value != "a.txt changed" {
		t.Errorf("unexpected body %q", got.Content[0].Value)
	}
}

func TestService_SendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewService(Config{
		Enabled:    true,
		Endpoint:   server.URL,
		APIKey:     "wrong",
		From:       "sender@example.com",
		Recipients: "a@x.com",
		Subject:    "change committed",
	}, zaptest.NewLogger(t))

	if err := service.Send(context.Background(), "body"); err == nil {
		t.Fatal("Send should fail on a non-2xx response")
	}
}

func TestService_SendDisabled(t *testing.T) {
	service := NewService(Config{Enabled: false}, zaptest.NewLogger(t))

	if err := service.Send(context.Background(), "body"); err != nil {
		t.Fatalf("disabled Send should be a no-op, got %v", err)
	}
}

func TestService_SendNoRecipients(t *testing.T) {
	service := NewService(Config{
		Enabled:    true,
		Endpoint:   "http://localhost",
		Recipients: " , ",
	}, zaptest.NewLogger(t))

	if err := service.Send(context.Background(), "body"); err == nil {
		t.Fatal("Send should fail without recipients")
	}
}
