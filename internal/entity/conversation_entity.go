package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id           uuid.UUID
	UserId       string
	Context      string // fixed at creation, never mutated
	Messages     []Message
	CreatedAt    time.Time
	LastActivity time.Time
}

type Message struct {
	Message   string
	IsUser    bool
	Timestamp time.Time
	UserId    string
}
