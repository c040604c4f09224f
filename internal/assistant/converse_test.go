package assistant

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"farmpower-chat/internal/model"
	"farmpower-chat/internal/session"
	"farmpower-chat/pkg/llmprovider"
	pkgLog "farmpower-chat/pkg/log"
)

type fakeConversation struct {
	turns []session.Turn
}

func (f *fakeConversation) ID() string { return "sess-1" }

func (f *fakeConversation) History() []session.Turn {
	return append([]session.Turn(nil), f.turns...)
}

func (f *fakeConversation) Append(turns ...session.Turn) {
	f.turns = append(f.turns, turns...)
}

type mockGenerator struct {
	lastReq  *llmprovider.Request
	response *llmprovider.Response
	err      error
	block    bool
	calls    int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.response, m.err
}

func reply(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: text}}},
		ProviderName: "gemini",
	}
}

func TestConverse_Success(t *testing.T) {
	gen := &mockGenerator{response: reply("  Test your soil pH first.  ")}
	gw := New(pkgLog.NewNop(), gen, Config{Temperature: 0.7, MaxTokens: 256})
	conv := &fakeConversation{}

	got, err := gw.Converse(context.Background(), conv, "How do I improve my soil?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Test your soil pH first." {
		t.Errorf("unexpected reply %q", got)
	}
	if len(conv.turns) != 2 {
		t.Fatalf("expected 2 turns appended, got %d", len(conv.turns))
	}
	if conv.turns[0].Role != model.RoleUser || conv.turns[0].Content != "How do I improve my soil?" {
		t.Errorf("unexpected user turn %+v", conv.turns[0])
	}
	if conv.turns[1].Role != model.RoleAssistant || conv.turns[1].Content != got {
		t.Errorf("unexpected assistant turn %+v", conv.turns[1])
	}

	req := gen.lastReq
	if req.SystemInstruction == nil || !strings.Contains(req.SystemInstruction.Text(), "FarmPower") {
		t.Error("system prompt missing")
	}
	if req.Temperature != 0.7 || req.MaxTokens != 256 {
		t.Errorf("generation settings not forwarded: %+v", req)
	}
}

func TestConverse_SendsHistoryWindow(t *testing.T) {
	gen := &mockGenerator{response: reply("ok")}
	gw := New(pkgLog.NewNop(), gen, Config{MaxHistoryTurns: 4})

	conv := &fakeConversation{}
	for i := 0; i < 5; i++ {
		conv.Append(
			session.Turn{Role: model.RoleUser, Content: "q"},
			session.Turn{Role: model.RoleAssistant, Content: "a"},
		)
	}

	if _, err := gw.Converse(context.Background(), conv, "latest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := gen.lastReq.Messages
	if len(msgs) != 5 {
		t.Fatalf("expected 4 history messages plus the new one, got %d", len(msgs))
	}
	if msgs[0].Role != llmprovider.RoleUser || msgs[1].Role != llmprovider.RoleAssistant {
		t.Errorf("unexpected roles %s, %s", msgs[0].Role, msgs[1].Role)
	}
	if last := msgs[len(msgs)-1]; last.Role != llmprovider.RoleUser || last.Text() != "latest" {
		t.Errorf("unexpected last message %+v", last)
	}
}

func TestConverse_ProviderFailureLeavesConversationUnchanged(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{"auth", &mockGenerator{err: &googleapi.Error{Code: http.StatusForbidden}}},
		{"quota", &mockGenerator{err: &googleapi.Error{Code: http.StatusTooManyRequests}}},
		{"empty reply", &mockGenerator{response: reply("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := New(pkgLog.NewNop(), tt.gen, Config{})
			conv := &fakeConversation{}

			got, err := gw.Converse(context.Background(), conv, "hello")
			if !errors.Is(err, ErrProviderFailed) {
				t.Fatalf("expected ErrProviderFailed, got %v", err)
			}
			if got != FallbackMessage {
				t.Errorf("expected fallback message, got %q", got)
			}
			if len(conv.turns) != 0 {
				t.Errorf("conversation must be unchanged, got %d turns", len(conv.turns))
			}
		})
	}
}

func TestConverse_Timeout(t *testing.T) {
	gen := &mockGenerator{block: true}
	gw := New(pkgLog.NewNop(), gen, Config{Timeout: 10 * time.Millisecond})

	_, err := gw.Converse(context.Background(), &fakeConversation{}, "hello")
	if !errors.Is(err, ErrProviderFailed) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected timeout wrapped in ErrProviderFailed, got %v", err)
	}
}

type failingProvider struct{}

func (failingProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return nil, &googleapi.Error{Code: http.StatusUnauthorized, Message: "API key not valid"}
}
func (failingProvider) Name() string  { return "gemini" }
func (failingProvider) Model() string { return "gemini-test" }

func TestConverse_WithManager(t *testing.T) {
	manager := llmprovider.NewManager([]llmprovider.Provider{failingProvider{}}, &llmprovider.Config{RetryAttempts: 1}, pkgLog.NewNop())
	gw := New(pkgLog.NewNop(), manager, Config{})

	_, err := gw.Converse(context.Background(), &fakeConversation{}, "hello")
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Fatalf("expected manager error to be wrapped, got %v", err)
	}
	if providerOf(err) != "gemini" {
		t.Errorf("expected provider name from error, got %q", providerOf(err))
	}
}
