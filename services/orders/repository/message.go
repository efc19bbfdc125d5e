package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tapea/backoffice/internal/pkg/models"
)

// CreateMessage inserts a message into an order conversation
func (r *OrderRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO order_messages (id, order_id, sender_id, sender_role, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(
		ctx,
		query,
		msg.ID,
		msg.OrderID,
		msg.SenderID,
		msg.SenderRole,
		msg.Body,
		msg.Read,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListMessages retrieves the conversation of an order in chronological
// order. Dashboards poll with the created_at of the last message they saw.
func (r *OrderRepo) ListMessages(ctx context.Context, orderID uuid.UUID, since *time.Time) ([]*models.Message, error) {
	query := `
		SELECT id, order_id, sender_id, sender_role, body, read, created_at
		FROM order_messages
		WHERE order_id = $1
	`
	args := []interface{}{orderID}
	if since != nil {
		query += " AND created_at > $2"
		args = append(args, *since)
	}
	query += " ORDER BY created_at ASC"

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// MarkMessagesRead flags messages written by senderRole as read. A reader
// acknowledges the other side's messages, not their own.
func (r *OrderRepo) MarkMessagesRead(ctx context.Context, orderID uuid.UUID, senderRole models.MessageSenderRole) error {
	query := `
		UPDATE order_messages
		SET read = TRUE
		WHERE order_id = $1 AND sender_role = $2 AND read = FALSE
	`
	if _, err := r.db.ExecContext(ctx, query, orderID, senderRole); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}
