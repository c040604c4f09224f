package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farmpower-chat/internal/chat"
	"farmpower-chat/pkg/response"
)

const (
	statusDeleted  = "deleted"
	statusRecorded = "recorded"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Sends a message to the farming assistant. Omit sessionId to start a new session.
// @Description The reply may carry a different sessionId when the old one expired.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     429  {object} response.ErrorResp "Too Many Requests"
// @Failure     500  {object} response.ErrorResp "Assistant unavailable"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Debugf(ctx, "chat.http.Chat: invalid request: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Converse(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrProviderFailed) {
			body := response.ErrorResp{
				Error:     response.DefaultErrorMessage,
				SessionID: output.SessionID,
			}
			if !h.production {
				body.Details = err.Error()
			}
			response.ErrorWith(c, http.StatusInternalServerError, body)
			return
		}

		h.l.Debugf(ctx, "chat.http.Chat: uc.Converse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the turns of a live session. Reading history does not extend the session.
// @Tags        Chat
// @Produce     json
// @Param       sessionId query string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		h.l.Debugf(ctx, "chat.http.History: invalid request: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.History(ctx, req.SessionID)
	if err != nil {
		h.l.Debugf(ctx, "chat.http.History: uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// EndSession godoc
// @Summary     End a session
// @Description Discards a session and its history.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} endSessionResp
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/chat/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.EndSession(ctx, id); err != nil {
		h.l.Debugf(ctx, "chat.http.EndSession: uc.EndSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, endSessionResp{SessionID: id, Status: statusDeleted})
}

// Feedback godoc
// @Summary     Rate an assistant message
// @Description Records a 1 to 5 rating, with an optional comment, against an assistant message.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback"
// @Success     200 {object} feedbackResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		h.l.Debugf(ctx, "chat.http.Feedback: invalid request: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Feedback(ctx, req.toInput()); err != nil {
		h.l.Debugf(ctx, "chat.http.Feedback: uc.Feedback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, feedbackResp{Status: statusRecorded})
}
