package models

import "github.com/google/uuid"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage - сообщение в переписке с бюджетным ассистентом
type ChatMessage struct {
	ID      uuid.UUID `json:"id"`
	Role    ChatRole  `json:"role"`
	Content string    `json:"content"`
}
