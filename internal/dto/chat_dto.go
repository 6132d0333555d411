package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	UserId         string `json:"user_id" validate:"required"`
	Context        string `json:"context,omitempty"`
	ConversationId string `json:"conversation_id,omitempty"`
}

type ChatContextMeta struct {
	ContextType string   `json:"context_type"`
	Personality string   `json:"personality"`
	Expertise   []string `json:"expertise"`
}

type ChatResponse struct {
	Response       string          `json:"response"`
	ConversationId uuid.UUID       `json:"conversation_id"`
	Suggestions    []string        `json:"suggestions"`
	Context        ChatContextMeta `json:"context"`
}

type StartConversationRequest struct {
	UserId  string `json:"user_id" validate:"required"`
	Context string `json:"context,omitempty"`
}

type StartConversationResponse struct {
	ConversationId uuid.UUID `json:"conversation_id"`
	Context        string    `json:"context"`
}

type MessageDTO struct {
	Message   string    `json:"message"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
	UserId    string    `json:"user_id"`
}

type ConversationHistoryResponse struct {
	ConversationId uuid.UUID    `json:"conversation_id"`
	Messages       []MessageDTO `json:"messages"`
}

type ChatContextDetail struct {
	Description string   `json:"description"`
	Personality string   `json:"personality"`
	Expertise   []string `json:"expertise"`
}

type ContextsResponse struct {
	Contexts   map[string]ChatContextDetail `json:"contexts"`
	TotalCount int                          `json:"total_count"`
}
