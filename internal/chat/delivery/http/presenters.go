package http

import (
	"strings"
	"unicode/utf8"

	"farmpower-chat/internal/chat"
	"farmpower-chat/pkg/response"
)

const maxFeedbackLength = 2000

// --- Request DTOs ---

type chatReq struct {
	Query     string `json:"query"`
	SessionID string `json:"sessionId"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return chat.ErrEmptyQuery
	}
	return nil
}

func (r chatReq) toInput() chat.ConverseInput {
	return chat.ConverseInput{
		Query:     r.Query,
		SessionID: strings.TrimSpace(r.SessionID),
	}
}

// ---

type historyReq struct {
	SessionID string `form:"sessionId"`
}

func (r historyReq) validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return chat.ErrMissingSessionID
	}
	return nil
}

// ---

type feedbackReq struct {
	SessionID string `json:"sessionId"`
	MessageID string `json:"messageId"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback"`
}

func (r feedbackReq) validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return chat.ErrMissingSessionID
	}
	if strings.TrimSpace(r.MessageID) == "" {
		return errMissingMessageID
	}
	if utf8.RuneCountInString(r.Feedback) > maxFeedbackLength {
		return errFeedbackTooLong
	}
	return nil
}

func (r feedbackReq) toInput() chat.FeedbackInput {
	return chat.FeedbackInput{
		SessionID: strings.TrimSpace(r.SessionID),
		TurnID:    strings.TrimSpace(r.MessageID),
		Rating:    r.Rating,
		Comment:   r.Feedback,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

func (h *handler) newChatResp(out chat.ConverseOutput) chatResp {
	return chatResp{
		Response:  out.Response,
		SessionID: out.SessionID,
	}
}

type messageResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	SessionID    string            `json:"sessionId"`
	CreatedAt    response.DateTime `json:"createdAt"`
	LastActiveAt response.DateTime `json:"lastActiveAt"`
	Messages     []messageResp     `json:"messages"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	messages := make([]messageResp, len(out.Turns))
	for i, t := range out.Turns {
		messages[i] = messageResp{
			ID:        t.ID,
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: response.DateTime(t.CreatedAt),
		}
	}
	return historyResp{
		SessionID:    out.SessionID,
		CreatedAt:    response.DateTime(out.CreatedAt),
		LastActiveAt: response.DateTime(out.LastActiveAt),
		Messages:     messages,
	}
}

type endSessionResp struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
}

type feedbackResp struct {
	Status string `json:"status"`
}
