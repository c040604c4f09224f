package http

import (
	"github.com/gin-gonic/gin"

	"farmpower-chat/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every chat route is rate limited per client address.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := api.Group("/chat", mw.RateLimit())
	{
		chat.POST("", h.Chat)
		chat.GET("/history", h.History)
		chat.DELETE("/sessions/:id", h.EndSession)
	}

	api.POST("/feedback", mw.RateLimit(), h.Feedback)
}
