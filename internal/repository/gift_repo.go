package repository

import (
	"context"

	"language_connect/internal/db"
	"language_connect/internal/domain"

	"github.com/jackc/pgx/v5"
)

type GiftRepository struct {
	db db.DBTX
}

func NewGiftRepository(conn db.DBTX) *GiftRepository {
	return &GiftRepository{db: conn}
}

// List returns the catalog, cheapest first.
func (r *GiftRepository) List(ctx context.Context) ([]domain.Gift, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, icon, price FROM gifts ORDER BY price`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.Gift])
}

func (r *GiftRepository) GetPrice(ctx context.Context, giftID int64) (int64, error) {
	var price int64
	err := r.db.QueryRow(ctx, `SELECT price FROM gifts WHERE id = $1`, giftID).Scan(&price)
	return price, notFound(err)
}

// CreateTransaction logs a sent gift and fills in ID and CreatedAt.
func (r *GiftRepository) CreateTransaction(ctx context.Context, t *domain.GiftTransaction) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO gift_transactions (sender_id, receiver_id, gift_id, chat_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		t.SenderID, t.ReceiverID, t.GiftID, t.ChatID,
	).Scan(&t.ID, &t.CreatedAt)
	return constraint(err)
}
