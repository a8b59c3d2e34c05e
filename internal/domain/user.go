package domain

import "time"

// DefaultAvatar is assigned at registration when the client sends none.
const DefaultAvatar = "🚀"

// User is the full profile row returned by register, login and user lookups.
type User struct {
	ID               int64      `db:"id" json:"id"`
	Email            string     `db:"email" json:"email"`
	Name             string     `db:"name" json:"name"`
	Avatar           *string    `db:"avatar" json:"avatar"`
	NativeLanguage   string     `db:"native_language" json:"native_language"`
	LearningLanguage string     `db:"learning_language" json:"learning_language"`
	Level            int        `db:"level" json:"level"`
	XP               int        `db:"xp" json:"xp"`
	Country          *string    `db:"country" json:"country"`
	IsVIP            bool       `db:"is_vip" json:"is_vip"`
	VIPBadge         *string    `db:"vip_badge" json:"vip_badge"`
	AvatarFrame      *string    `db:"avatar_frame" json:"avatar_frame"`
	Coins            int64      `db:"coins" json:"coins"`
	StreakDays       int        `db:"streak_days" json:"streak_days"`
	TotalMessages    int        `db:"total_messages" json:"total_messages"`
	WordsLearned     int        `db:"words_learned" json:"words_learned"`
	GiftsReceived    int        `db:"gifts_received" json:"gifts_received"`
	Region           *string    `db:"region" json:"region"`
	City             *string    `db:"city" json:"city"`
	IsOnline         bool       `db:"is_online" json:"is_online"`
	LastSeen         *time.Time `db:"last_seen" json:"last_seen"`
}

// UserCard is the search result projection. Language columns keep the
// short aliases the web client reads.
type UserCard struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Avatar      *string    `db:"avatar" json:"avatar"`
	Language    string     `db:"language" json:"language"`
	Learning    string     `db:"learning" json:"learning"`
	Level       int        `db:"level" json:"level"`
	Country     *string    `db:"country" json:"country"`
	Region      *string    `db:"region" json:"region"`
	City        *string    `db:"city" json:"city"`
	IsVIP       bool       `db:"is_vip" json:"is_vip"`
	VIPBadge    *string    `db:"vip_badge" json:"vip_badge"`
	AvatarFrame *string    `db:"avatar_frame" json:"avatar_frame"`
	IsOnline    bool       `db:"is_online" json:"is_online"`
	LastSeen    *time.Time `db:"last_seen" json:"last_seen"`
}

// NewUser holds registration input.
type NewUser struct {
	Email            string
	Name             string
	Avatar           string
	NativeLanguage   string
	LearningLanguage string
	Country          string
}

// UserFilter narrows a user search. Zero values disable a filter.
type UserFilter struct {
	Search     string
	Region     string
	Country    string
	OnlineOnly bool
	Limit      int
}

// UserPatch is a sparse profile update; nil fields are left untouched.
type UserPatch struct {
	Name             *string
	Avatar           *string
	AvatarFrame      *string
	LearningLanguage *string
}

// Empty reports whether the patch sets nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Avatar == nil && p.AvatarFrame == nil && p.LearningLanguage == nil
}

// ProfileUpdate is returned after a sparse update.
type ProfileUpdate struct {
	ID               int64   `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Avatar           *string `db:"avatar" json:"avatar"`
	AvatarFrame      *string `db:"avatar_frame" json:"avatar_frame"`
	LearningLanguage string  `db:"learning_language" json:"learning_language"`
}
