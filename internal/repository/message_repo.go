package repository

import (
	"context"

	"language_connect/internal/db"
	"language_connect/internal/domain"

	"github.com/jackc/pgx/v5"
)

type MessageRepository struct {
	db db.DBTX
}

func NewMessageRepository(conn db.DBTX) *MessageRepository {
	return &MessageRepository{db: conn}
}

// ListRecent returns up to limit messages of a chat, newest first.
func (r *MessageRepository) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.message, m.translated_message, m.is_voice,
		       m.voice_transcription, m.created_at, m.sender_id,
		       u.name AS sender_name, u.avatar AS sender_avatar
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2`,
		chatID, limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.Message])
}

func (r *MessageRepository) Create(ctx context.Context, m domain.NewMessage) (*domain.SentMessage, error) {
	rows, err := r.db.Query(ctx,
		`INSERT INTO messages (chat_id, sender_id, message, translated_message, is_voice)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, message, translated_message, created_at`,
		m.ChatID, m.SenderID, m.Message, m.TranslatedMessage, m.IsVoice,
	)
	if err != nil {
		return nil, constraint(err)
	}
	msg, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.SentMessage])
	if err != nil {
		return nil, constraint(err)
	}
	return msg, nil
}
