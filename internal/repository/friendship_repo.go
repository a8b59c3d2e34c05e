package repository

import (
	"context"
	"errors"

	"language_connect/internal/db"
	"language_connect/internal/domain"

	"github.com/jackc/pgx/v5"
)

type FriendshipRepository struct {
	db db.DBTX
}

func NewFriendshipRepository(conn db.DBTX) *FriendshipRepository {
	return &FriendshipRepository{db: conn}
}

// Insert adds the directed edge userID -> friendID. It reports false when
// the edge already existed.
func (r *FriendshipRepository) Insert(ctx context.Context, userID, friendID int64) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO friendships (user_id, friend_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, friend_id) DO NOTHING
		 RETURNING id`,
		userID, friendID, domain.FriendshipAccepted,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, constraint(err)
	}
	return true, nil
}
