package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageSenderRole identifies who wrote a message in an order conversation
type MessageSenderRole string

const (
	MessageSenderClient MessageSenderRole = "client"
	MessageSenderDriver MessageSenderRole = "driver"
	MessageSenderAdmin  MessageSenderRole = "admin"
)

// Message is one entry in an order-scoped conversation. Dashboards poll
// the list endpoint with a since cursor; there is no push channel.
type Message struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	OrderID    uuid.UUID         `json:"order_id" db:"order_id"`
	SenderID   uuid.UUID         `json:"sender_id" db:"sender_id"`
	SenderRole MessageSenderRole `json:"sender_role" db:"sender_role"`
	Body       string            `json:"body" db:"body"`
	Read       bool              `json:"read" db:"read"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
}

// MessageCreateRequest posts a message into an order conversation
type MessageCreateRequest struct {
	SenderID   string            `json:"sender_id"`
	SenderRole MessageSenderRole `json:"sender_role"`
	Body       string            `json:"body"`
}
