package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"farmpower-chat/internal/assistant"
	"farmpower-chat/internal/chat"
	"farmpower-chat/internal/session"
	"farmpower-chat/pkg/llmprovider"
	pkgLog "farmpower-chat/pkg/log"
)

// mockGenerator stands in for the provider manager.
type mockGenerator struct {
	calls atomic.Int32
	err   error
	text  string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	text := m.text
	if text == "" {
		text = "Rotate crops every season."
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: text}}},
		ProviderName: "mock",
	}, nil
}

func newTestUseCase(gen *mockGenerator) (chat.UseCase, *session.Store) {
	l := pkgLog.NewNop()
	store := session.New(l, session.Config{TTL: time.Hour})
	gw := assistant.New(l, gen, assistant.Config{})
	return New(l, store, gw, 50), store
}
