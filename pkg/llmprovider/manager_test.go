package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/googleapi"
)

// mockProvider is a test implementation of the Provider interface.
// errs are returned in order; once exhausted the provider succeeds (or fails forever with shouldFail).
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	errs       []error
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return nil, err
	}
	if m.shouldFail {
		return nil, &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "mock provider error"}
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return &Request{
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "Hello"}}},
		},
	}
}

func okResponse(provider string) *Response {
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: "Hello from " + provider}}},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_RetriesRetriableErrors(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		errs: []error{
			&googleapi.Error{Code: http.StatusTooManyRequests},
			&googleapi.Error{Code: http.StatusBadGateway},
		},
		response: okResponse("primary"),
	}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected success after retries, got: %v", err)
	}
	if resp.Content.Text() != "Hello from primary" {
		t.Errorf("unexpected text: %q", resp.Content.Text())
	}
	if primary.callCount != 3 {
		t.Errorf("Expected 3 calls, got: %d", primary.callCount)
	}
}

func TestGenerateContent_DoesNotRetryAuthErrors(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		errs:  []error{&googleapi.Error{Code: http.StatusForbidden, Message: "API key not valid"}},
	}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if StatusCode(err) != http.StatusForbidden {
		t.Errorf("Expected wrapped 403, got: %d", StatusCode(err))
	}
	if primary.callCount != 1 {
		t.Errorf("Expected a single attempt, got: %d", primary.callCount)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "primary" {
		t.Errorf("Expected ProviderError for primary, got: %v", err)
	}
}

func TestGenerateContent_SingleAttemptByDefault(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	manager := NewManager([]Provider{primary}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest()); err == nil {
		t.Fatal("Expected error")
	}
	if primary.callCount != 1 {
		t.Errorf("Expected 1 call with zero RetryAttempts, got: %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}

	logger := &mockLogger{}
	config := &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}
	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	// one retry warning + one failure warning for primary
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}

	config := &Config{FallbackEnabled: false, RetryAttempts: 2, RetryDelay: time.Millisecond}
	manager := NewManager([]Provider{primary, secondary}, config, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, &Config{RetryAttempts: 3}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

// slowProvider blocks until the context is done.
type slowProvider struct{ mockProvider }

func (s *slowProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	s.callCount++
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestGenerateContent_MaxTotalTimeout(t *testing.T) {
	slow := &slowProvider{mockProvider{name: "slow", model: "slow-model"}}
	config := &Config{RetryAttempts: 3, RetryDelay: time.Millisecond, MaxTotalTimeout: 20 * time.Millisecond}
	manager := NewManager([]Provider{slow}, config, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not honored, took %v", elapsed)
	}
	if slow.callCount != 1 {
		t.Errorf("Expected no retry after global timeout, got %d calls", slow.callCount)
	}
}

func TestBackoff_JitterBounds(t *testing.T) {
	m := NewManager(nil, &Config{RetryDelay: 100 * time.Millisecond}, &mockLogger{})
	for attempt := 1; attempt <= 3; attempt++ {
		base := (100 * time.Millisecond) << (attempt - 1)
		for i := 0; i < 50; i++ {
			d := m.backoff(attempt)
			if d < base/2 || d >= base/2+base {
				t.Fatalf("attempt %d: delay %v outside [%v, %v)", attempt, d, base/2, base/2+base)
			}
		}
	}
}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"quota", &googleapi.Error{Code: http.StatusTooManyRequests}, true},
		{"unavailable", &googleapi.Error{Code: http.StatusServiceUnavailable}, true},
		{"auth", &googleapi.Error{Code: http.StatusUnauthorized}, false},
		{"bad request", &googleapi.Error{Code: http.StatusBadRequest}, false},
		{"deadline", context.DeadlineExceeded, true},
		{"empty", ErrEmptyResponse, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetriable(tt.err); got != tt.want {
				t.Errorf("IsRetriable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
