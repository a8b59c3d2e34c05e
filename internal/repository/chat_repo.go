package repository

import (
	"context"

	"language_connect/internal/db"
	"language_connect/internal/domain"

	"github.com/jackc/pgx/v5"
)

type ChatRepository struct {
	db db.DBTX
}

func NewChatRepository(conn db.DBTX) *ChatRepository {
	return &ChatRepository{db: conn}
}

// ListForUser returns the user's chats, newest activity first. The partner
// columns describe whichever side of the chat is not userID.
func (r *ChatRepository) ListForUser(ctx context.Context, userID int64) ([]domain.ChatSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.last_message, c.last_message_time,
		       CASE WHEN c.user1_id = $1 THEN c.unread_count_user1
		            ELSE c.unread_count_user2
		       END AS unread_count,
		       u.id AS partner_id, u.name AS partner_name, u.avatar AS partner_avatar,
		       u.is_vip AS partner_vip, u.vip_badge AS partner_badge
		FROM chats c
		JOIN users u ON (
			CASE WHEN c.user1_id = $1 THEN c.user2_id = u.id
			     ELSE c.user1_id = u.id
			END
		)
		WHERE c.user1_id = $1 OR c.user2_id = $1
		ORDER BY c.last_message_time DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.ChatSummary])
}

// FindBetween looks the pair up in either slot order.
func (r *ChatRepository) FindBetween(ctx context.Context, a, b int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM chats
		 WHERE (user1_id = $1 AND user2_id = $2) OR (user1_id = $2 AND user2_id = $1)
		 LIMIT 1`,
		a, b,
	).Scan(&id)
	return id, notFound(err)
}

func (r *ChatRepository) Create(ctx context.Context, user1ID, user2ID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO chats (user1_id, user2_id, last_message)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		user1ID, user2ID, domain.ChatGreeting,
	).Scan(&id)
	return id, constraint(err)
}

func (r *ChatRepository) Exists(ctx context.Context, chatID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM chats WHERE id = $1)`, chatID).Scan(&ok)
	return ok, err
}

// RecordMessage refreshes the preview and bumps the unread counter of the
// side that did not send the message. It returns ErrNotFound when the chat
// does not exist or senderID is not one of its two users.
func (r *ChatRepository) RecordMessage(ctx context.Context, chatID, senderID int64, text string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE chats
		SET last_message = $1, last_message_time = CURRENT_TIMESTAMP,
		    unread_count_user1 = CASE WHEN user1_id != $2 THEN unread_count_user1 + 1 ELSE unread_count_user1 END,
		    unread_count_user2 = CASE WHEN user2_id != $2 THEN unread_count_user2 + 1 ELSE unread_count_user2 END
		WHERE id = $3 AND $2 IN (user1_id, user2_id)`,
		text, senderID, chatID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
