package domain

import "time"

type Message struct {
	ID                 int64     `db:"id" json:"id"`
	Message            string    `db:"message" json:"message"`
	TranslatedMessage  *string   `db:"translated_message" json:"translated_message"`
	IsVoice            bool      `db:"is_voice" json:"is_voice"`
	VoiceTranscription *string   `db:"voice_transcription" json:"voice_transcription"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	SenderID           int64     `db:"sender_id" json:"sender_id"`
	SenderName         string    `db:"sender_name" json:"sender_name"`
	SenderAvatar       *string   `db:"sender_avatar" json:"sender_avatar"`
}

// SentMessage is the row echoed back after a send.
type SentMessage struct {
	ID                int64     `db:"id" json:"id"`
	Message           string    `db:"message" json:"message"`
	TranslatedMessage *string   `db:"translated_message" json:"translated_message"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type NewMessage struct {
	ChatID            int64
	SenderID          int64
	Message           string
	TranslatedMessage *string
	IsVoice           bool
}
