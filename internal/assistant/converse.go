package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farmpower-chat/internal/model"
	"farmpower-chat/internal/session"
	"farmpower-chat/pkg/llmprovider"
)

func (g *implGateway) Converse(ctx context.Context, conv Conversation, userText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	start := time.Now()
	req := g.buildRequest(conv.History(), userText)

	resp, err := g.llm.GenerateContent(ctx, req)
	if err == nil {
		reply := strings.TrimSpace(resp.Content.Text())
		if reply != "" {
			conv.Append(
				session.Turn{Role: model.RoleUser, Content: userText},
				session.Turn{Role: model.RoleAssistant, Content: reply},
			)
			g.l.Debugf(ctx, "assistant.Converse: session=%s provider=%s elapsed=%s reply_len=%d",
				conv.ID(), resp.ProviderName, time.Since(start), len(reply))
			return reply, nil
		}
		err = llmprovider.ErrEmptyResponse
	}

	g.l.Errorf(ctx, "assistant.Converse: session=%s provider=%s elapsed=%s %s: %v",
		conv.ID(), providerOf(err), time.Since(start), g.describeQuery(userText), err)
	return FallbackMessage, fmt.Errorf("%w: %w", ErrProviderFailed, err)
}

// buildRequest maps the most recent turns plus userText onto a provider request.
func (g *implGateway) buildRequest(history []session.Turn, userText string) *llmprovider.Request {
	if len(history) > g.cfg.MaxHistoryTurns {
		history = history[len(history)-g.cfg.MaxHistoryTurns:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		messages = append(messages, textMessage(providerRole(t.Role), t.Content))
	}
	messages = append(messages, textMessage(llmprovider.RoleUser, userText))

	system := textMessage(llmprovider.RoleSystem, g.cfg.SystemPrompt)
	return &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       g.cfg.Temperature,
		MaxTokens:         g.cfg.MaxTokens,
	}
}

func (g *implGateway) describeQuery(userText string) string {
	if g.cfg.LogQueryContent {
		return fmt.Sprintf("query=%q", userText)
	}
	return fmt.Sprintf("query_len=%d", len([]rune(userText)))
}

func providerRole(r model.Role) string {
	if r == model.RoleAssistant {
		return llmprovider.RoleAssistant
	}
	return llmprovider.RoleUser
}

func textMessage(role, text string) llmprovider.Message {
	return llmprovider.Message{Role: role, Parts: []llmprovider.Part{{Text: text}}}
}

func providerOf(err error) string {
	var perr *llmprovider.ProviderError
	if errors.As(err, &perr) {
		return perr.Provider
	}
	return "unknown"
}
