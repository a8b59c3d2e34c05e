package handlers

import (
	"context"

	"language_connect/internal/domain"
	"language_connect/internal/repository"
	"language_connect/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	MarkOnline(ctx context.Context, id int64) (*domain.User, error)
	Search(ctx context.Context, f domain.UserFilter) ([]domain.UserCard, error)
	Update(ctx context.Context, id int64, p domain.UserPatch) (*domain.ProfileUpdate, error)
}

type ChatStore interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.ChatSummary, error)
	FindBetween(ctx context.Context, a, b int64) (int64, error)
	Create(ctx context.Context, user1ID, user2ID int64) (int64, error)
}

type MessageStore interface {
	ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Message, error)
}

type AchievementStore interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.UserAchievement, error)
}

type LessonStore interface {
	ListForUser(ctx context.Context, language string, userID int64) ([]domain.Lesson, error)
}

type GiftStore interface {
	List(ctx context.Context) ([]domain.Gift, error)
}

type Registrar interface {
	Register(ctx context.Context, nu domain.NewUser) (*domain.User, error)
}

type MessageSender interface {
	Send(ctx context.Context, m domain.NewMessage) (*domain.SentMessage, error)
}

type FriendAdder interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
}

type LessonCompleter interface {
	Complete(ctx context.Context, userID, lessonID int64, score int) (*domain.LessonResult, error)
}

type GiftSender interface {
	Send(ctx context.Context, t *domain.GiftTransaction) error
}

// Handler serves the API actions. Reads go straight to repositories,
// multi-statement writes go through services.
type Handler struct {
	Users        UserStore
	Chats        ChatStore
	Messages     MessageStore
	Achievements AchievementStore
	Lessons      LessonStore
	Gifts        GiftStore

	Registration   Registrar
	MessageService MessageSender
	FriendService  FriendAdder
	LessonService  LessonCompleter
	GiftService    GiftSender
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Users:        repository.NewUserRepository(db),
		Chats:        repository.NewChatRepository(db),
		Messages:     repository.NewMessageRepository(db),
		Achievements: repository.NewAchievementRepository(db),
		Lessons:      repository.NewLessonRepository(db),
		Gifts:        repository.NewGiftRepository(db),

		Registration:   service.NewUserService(db),
		MessageService: service.NewMessageService(db),
		FriendService:  service.NewFriendService(db),
		LessonService:  service.NewLessonService(db),
		GiftService:    service.NewGiftService(db),
	}
}
