package domain

import "time"

type Gift struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Icon  *string `db:"icon" json:"icon"`
	Price int64   `db:"price" json:"price"`
}

// GiftTransaction records one gift sent from one user to another,
// optionally inside a chat.
type GiftTransaction struct {
	ID         int64     `db:"id" json:"id"`
	SenderID   int64     `db:"sender_id" json:"sender_id"`
	ReceiverID int64     `db:"receiver_id" json:"receiver_id"`
	GiftID     int64     `db:"gift_id" json:"gift_id"`
	ChatID     *int64    `db:"chat_id" json:"chat_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
