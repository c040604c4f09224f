package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"farmpower-chat/internal/chat"
)

// Converse validates the query, resolves the session and runs one turn while holding its lease.
func (uc *implUseCase) Converse(ctx context.Context, input chat.ConverseInput) (chat.ConverseOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return chat.ConverseOutput{}, chat.ErrEmptyQuery
	}
	if utf8.RuneCountInString(query) > uc.maxQueryLength {
		return chat.ConverseOutput{}, chat.ErrQueryTooLong
	}

	lease := uc.store.GetOrCreate(input.SessionID)
	defer lease.Release()

	if lease.Created() {
		uc.l.Debugf(ctx, "chat.usecase.Converse: new session %s", lease.ID())
	}

	reply, err := uc.gateway.Converse(ctx, lease, query)
	out := chat.ConverseOutput{
		Response:  reply,
		SessionID: lease.ID(),
		Created:   lease.Created(),
		TurnCount: len(lease.History()),
	}
	if err != nil {
		return out, fmt.Errorf("%w: %w", chat.ErrProviderFailed, err)
	}

	return out, nil
}
