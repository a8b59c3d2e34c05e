package service

import (
	"context"
	"errors"
	"fmt"

	"language_connect/internal/db"
	"language_connect/internal/domain"
	"language_connect/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageService struct {
	db *pgxpool.Pool
}

func NewMessageService(pool *pgxpool.Pool) *MessageService {
	return &MessageService{db: pool}
}

// Send stores the message, refreshes the chat preview and the recipient's
// unread counter, and counts the message for the sender. A sender outside
// the chat gets ErrChatNotFound.
func (s *MessageService) Send(ctx context.Context, m domain.NewMessage) (*domain.SentMessage, error) {
	var sent *domain.SentMessage
	err := db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := repository.NewChatRepository(tx).RecordMessage(ctx, m.ChatID, m.SenderID, m.Message); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrChatNotFound
			}
			return fmt.Errorf("update chat: %w", err)
		}

		msg, err := repository.NewMessageRepository(tx).Create(ctx, m)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return ErrUserNotFound
			}
			return fmt.Errorf("insert message: %w", err)
		}

		if err := repository.NewUserRepository(tx).IncrementTotalMessages(ctx, m.SenderID); err != nil {
			return fmt.Errorf("count message: %w", err)
		}

		sent = msg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sent, nil
}
