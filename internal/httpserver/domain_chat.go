package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "farmpower-chat/internal/chat/delivery/http"
	"farmpower-chat/internal/middleware"
)

// setupChatDomain builds the chat HTTP handler and registers its routes under /api.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC, srv.production)

	// Routes: /api/chat, /api/chat/history, /api/chat/sessions/:id, /api/feedback
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
