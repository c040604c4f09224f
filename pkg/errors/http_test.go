package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "farmpower-chat/pkg/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", pkgErrors.NewHTTPError(http.StatusNotFound, "missing"), http.StatusNotFound},
		{"wrapped http error", fmt.Errorf("ctx: %w", pkgErrors.ErrTooManyRequests), http.StatusTooManyRequests},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusOf(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
