package http

import (
	"github.com/gin-gonic/gin"

	"farmpower-chat/internal/chat"
	"farmpower-chat/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	History(c *gin.Context)
	EndSession(c *gin.Context)
	Feedback(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         chat.UseCase
	production bool // hides provider error details
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, production bool) Handler {
	return &handler{
		l:          l,
		uc:         uc,
		production: production,
	}
}
