package service

import (
	"context"
	"errors"
	"fmt"

	"language_connect/internal/db"
	"language_connect/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FriendService struct {
	db *pgxpool.Pool
}

func NewFriendService(pool *pgxpool.Pool) *FriendService {
	return &FriendService{db: pool}
}

// AddFriend creates the accepted edge userID -> friendID and, only when that
// edge is new, the reverse edge. A repeated request leaves an existing
// one-sided friendship one-sided.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID int64) error {
	return db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		repo := repository.NewFriendshipRepository(tx)

		inserted, err := repo.Insert(ctx, userID, friendID)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return ErrUserNotFound
			}
			return fmt.Errorf("insert friendship: %w", err)
		}
		if !inserted {
			return nil
		}

		if _, err := repo.Insert(ctx, friendID, userID); err != nil {
			return fmt.Errorf("insert reverse friendship: %w", err)
		}
		return nil
	})
}
