package domain

import "time"

// ChatGreeting is the preview stored on a freshly created chat.
const ChatGreeting = "Начните общение!"

// ChatSummary is a chat as seen by one participant: the partner is the
// other side and UnreadCount is the requester's own counter.
type ChatSummary struct {
	ID              int64      `db:"id" json:"id"`
	LastMessage     *string    `db:"last_message" json:"last_message"`
	LastMessageTime *time.Time `db:"last_message_time" json:"last_message_time"`
	UnreadCount     int        `db:"unread_count" json:"unread_count"`
	PartnerID       int64      `db:"partner_id" json:"partner_id"`
	PartnerName     string     `db:"partner_name" json:"partner_name"`
	PartnerAvatar   *string    `db:"partner_avatar" json:"partner_avatar"`
	PartnerVIP      bool       `db:"partner_vip" json:"partner_vip"`
	PartnerBadge    *string    `db:"partner_badge" json:"partner_badge"`
}
