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

// GiftService handles gift purchases between users
type GiftService struct {
	db *pgxpool.Pool
}

func NewGiftService(pool *pgxpool.Pool) *GiftService {
	return &GiftService{db: pool}
}

// Send charges the sender the gift price, logs the transaction and credits
// the receiver's gift counter. Nothing is written when the sender cannot pay.
// The debit is conditional on the balance, so concurrent sends from one
// sender cannot overdraw it.
func (s *GiftService) Send(ctx context.Context, t *domain.GiftTransaction) error {
	return db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		users := repository.NewUserRepository(tx)
		gifts := repository.NewGiftRepository(tx)

		price, err := gifts.GetPrice(ctx, t.GiftID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrGiftNotFound
			}
			return fmt.Errorf("get gift: %w", err)
		}

		coins, err := users.GetCoins(ctx, t.SenderID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("get balance: %w", err)
		}
		if coins < price {
			return ErrInsufficientFunds
		}

		if t.ChatID != nil {
			ok, err := repository.NewChatRepository(tx).Exists(ctx, *t.ChatID)
			if err != nil {
				return fmt.Errorf("check chat: %w", err)
			}
			if !ok {
				return ErrChatNotFound
			}
		}

		// sender, gift and chat are known, so a dangling reference is the receiver
		if err := gifts.CreateTransaction(ctx, t); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return ErrUserNotFound
			}
			return fmt.Errorf("log gift: %w", err)
		}

		if _, err := users.DebitCoins(ctx, t.SenderID, price); err != nil {
			if errors.Is(err, repository.ErrInsufficientFunds) {
				return ErrInsufficientFunds
			}
			return fmt.Errorf("debit sender: %w", err)
		}

		if err := users.IncrementGiftsReceived(ctx, t.ReceiverID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("credit receiver: %w", err)
		}
		return nil
	})
}
