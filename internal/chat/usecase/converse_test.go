package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/googleapi"

	"farmpower-chat/internal/assistant"
	"farmpower-chat/internal/chat"
	"farmpower-chat/internal/model"
)

func TestConverse_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t"} {
		gen := &mockGenerator{}
		uc, store := newTestUseCase(gen)

		_, err := uc.Converse(context.Background(), chat.ConverseInput{Query: q})
		if !errors.Is(err, chat.ErrEmptyQuery) {
			t.Errorf("query %q: expected ErrEmptyQuery, got %v", q, err)
		}
		if gen.calls.Load() != 0 {
			t.Errorf("query %q: gateway must not be called", q)
		}
		if store.Len() != 0 {
			t.Errorf("query %q: no session should be created", q)
		}
	}
}

func TestConverse_QueryTooLong(t *testing.T) {
	gen := &mockGenerator{}
	uc, _ := newTestUseCase(gen)

	_, err := uc.Converse(context.Background(), chat.ConverseInput{Query: strings.Repeat("ü", 51)})
	if !errors.Is(err, chat.ErrQueryTooLong) {
		t.Fatalf("expected ErrQueryTooLong, got %v", err)
	}
	if gen.calls.Load() != 0 {
		t.Error("gateway must not be called")
	}

	// Length is counted in runes, not bytes.
	if _, err := uc.Converse(context.Background(), chat.ConverseInput{Query: strings.Repeat("ü", 50)}); err != nil {
		t.Errorf("50 runes must be accepted, got %v", err)
	}
}

func TestConverse_ReusesSession(t *testing.T) {
	uc, _ := newTestUseCase(&mockGenerator{})
	ctx := context.Background()

	first, err := uc.Converse(ctx, chat.ConverseInput{Query: "  What about soil?  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.SessionID == "" || !first.Created || first.TurnCount != 2 {
		t.Fatalf("unexpected first output %+v", first)
	}

	second, err := uc.Converse(ctx, chat.ConverseInput{Query: "And pests?", SessionID: first.SessionID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.SessionID != first.SessionID || second.Created {
		t.Errorf("expected session reuse, got %+v", second)
	}
	if second.TurnCount <= first.TurnCount {
		t.Errorf("turn count must increase: %d then %d", first.TurnCount, second.TurnCount)
	}

	hist, err := uc.History(ctx, first.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hist.Turns[0].Content != "What about soil?" {
		t.Errorf("expected trimmed query stored, got %q", hist.Turns[0].Content)
	}
}

func TestConverse_DistinctSessionsWithoutID(t *testing.T) {
	uc, _ := newTestUseCase(&mockGenerator{})

	a, _ := uc.Converse(context.Background(), chat.ConverseInput{Query: "hi"})
	b, _ := uc.Converse(context.Background(), chat.ConverseInput{Query: "hi"})
	if a.SessionID == b.SessionID {
		t.Fatalf("expected distinct ids, both %s", a.SessionID)
	}
}

func TestConverse_ProviderFailure(t *testing.T) {
	gen := &mockGenerator{}
	uc, store := newTestUseCase(gen)
	ctx := context.Background()

	ok, err := uc.Converse(ctx, chat.ConverseInput{Query: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen.err = &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota"}
	out, err := uc.Converse(ctx, chat.ConverseInput{Query: "again", SessionID: ok.SessionID})
	if !errors.Is(err, chat.ErrProviderFailed) || !errors.Is(err, assistant.ErrProviderFailed) {
		t.Fatalf("expected ErrProviderFailed, got %v", err)
	}
	if out.SessionID != ok.SessionID || out.Response != assistant.FallbackMessage {
		t.Errorf("unexpected output on failure %+v", out)
	}

	snap, _ := store.Snapshot(ok.SessionID)
	if len(snap.Turns) != 2 {
		t.Errorf("failed turn must not be persisted, got %d turns", len(snap.Turns))
	}
}

func TestConverse_ParallelOnOneSession(t *testing.T) {
	uc, store := newTestUseCase(&mockGenerator{})
	ctx := context.Background()

	lease := store.GetOrCreate("")
	id := lease.ID()
	lease.Release()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Converse(ctx, chat.ConverseInput{Query: "q", SessionID: id}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	hist, err := uc.History(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist.Turns) != 20 {
		t.Fatalf("expected 20 turns, got %d", len(hist.Turns))
	}
	for i, turn := range hist.Turns {
		want := model.RoleUser
		if i%2 == 1 {
			want = model.RoleAssistant
		}
		if turn.Role != want {
			t.Fatalf("turn %d: expected %s, got %s", i, want, turn.Role)
		}
		if i > 0 && turn.CreatedAt.Before(hist.Turns[i-1].CreatedAt) {
			t.Fatalf("turn %d: timestamps out of order", i)
		}
	}
}
