package assistant

import "time"

const (
	// FallbackMessage is shown to the user whenever the provider cannot produce a reply.
	FallbackMessage = "I'm having some trouble processing your request. Please try again with a different question."

	// SystemPrompt is the farming-assistant persona sent with every request.
	SystemPrompt = `You are the FarmPower AI assistant, a friendly expert on agriculture.
Help farmers and gardeners with crop advice, soil health, pest control, irrigation, weather planning,
fertilizers, organic methods and farm equipment.
Keep answers practical and concise. If a question is unrelated to farming, politely steer the
conversation back to agricultural topics. Never invent product prices or order details.`

	defaultMaxHistoryTurns = 20
	defaultTimeout         = 30 * time.Second
)
