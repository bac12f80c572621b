package genai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deniz/campuscare/internal/pkg/apperrors"
)

func newTestClient(serverURL string, timeout time.Duration) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		Timeout: timeout,
		BaseURL: serverURL,
	})
}

func TestGenerateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"This is a joke"}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, time.Second)
	reply, err := client.Generate(context.Background(), "Tell me a joke")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if reply != "This is a joke" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestGenerateNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, time.Second)
	if _, err := client.Generate(context.Background(), "hi"); !errors.Is(err, apperrors.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, time.Second)
	if _, err := client.Generate(context.Background(), "hi"); !errors.Is(err, apperrors.ErrEmptyReply) {
		t.Fatalf("expected ErrEmptyReply, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 20*time.Millisecond)
	if _, err := client.Generate(context.Background(), "hi"); !errors.Is(err, apperrors.ErrGenerationFailed) {
		t.Fatalf("expected timeout to surface as ErrGenerationFailed, got %v", err)
	}
}
