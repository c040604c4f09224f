package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errEmptyBody
		}
		return req, errInvalidJSON
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFeedbackReq binds and validates the feedback request body.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errEmptyBody
		}
		return req, errInvalidJSON
	}
	return req, req.validate()
}
