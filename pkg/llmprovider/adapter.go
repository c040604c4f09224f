package llmprovider

import (
	"context"

	"farmpower-chat/pkg/gemini"
	"farmpower-chat/pkg/qwen"
)

const providerGemini = "gemini"

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: providerGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	c := convertToGeminiMessage(*msg)
	c.Role = ""
	return &c
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = convertToGeminiMessage(msg)
	}
	return contents
}

// convertToGeminiMessage maps the assistant role to Gemini's "model".
func convertToGeminiMessage(msg Message) gemini.Content {
	role := msg.Role
	if role == RoleAssistant {
		role = gemini.RoleModel
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return gemini.Content{Role: role, Parts: parts}
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

const providerQwen = "qwen"

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		qwenReq.System = req.SystemInstruction.Text()
	}
	for i, msg := range req.Messages {
		qwenReq.Messages[i] = qwen.Message{Role: msg.Role, Content: msg.Text()}
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Content}}},
		ProviderName: providerQwen,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return providerQwen
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}
