package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deniz/campuscare/internal/pkg/apperrors"
	"github.com/deniz/campuscare/internal/pkg/querylog"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func newTestChatbotService(gen *stubGenerator) *ChatbotService {
	return NewChatbotService(nil, gen, querylog.New(), zerolog.Nop())
}

func TestAnswerKnownFAQ(t *testing.T) {
	gen := &stubGenerator{reply: "should not be used"}
	svc := newTestChatbotService(gen)

	got := svc.answer(context.Background(), "How can I clear ALL conversation history?")
	want := faqResponses["how can i clear all conversation history?"]
	if got != want {
		t.Fatalf("answer() = %q, want FAQ reply %q", got, want)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times for an FAQ prompt, want 0", gen.calls)
	}
}

func TestAnswerExternal(t *testing.T) {
	gen := &stubGenerator{reply: "This is a joke"}
	svc := newTestChatbotService(gen)

	got := svc.answer(context.Background(), "Tell me a joke")
	if got != "This is a joke" {
		t.Fatalf("answer() = %q, want generated reply", got)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
}

func TestAnswerExternalFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: apperrors.ErrGenerationFailed}
	svc := newTestChatbotService(gen)

	got := svc.answer(context.Background(), "Tell me a joke")
	if got != FallbackReply {
		t.Fatalf("answer() = %q, want fallback %q", got, FallbackReply)
	}
}

func TestAnswerUnexpectedErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection reset")}
	svc := newTestChatbotService(gen)

	got := svc.answer(context.Background(), "Hello")
	if got != FallbackReply {
		t.Fatalf("answer() = %q, want fallback %q", got, FallbackReply)
	}
}
