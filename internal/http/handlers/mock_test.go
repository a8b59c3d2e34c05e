package handlers

import (
	"context"

	"language_connect/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserStore) MarkOnline(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserStore) Search(ctx context.Context, f domain.UserFilter) ([]domain.UserCard, error) {
	args := m.Called(ctx, f)
	cards, _ := args.Get(0).([]domain.UserCard)
	return cards, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, id int64, p domain.UserPatch) (*domain.ProfileUpdate, error) {
	args := m.Called(ctx, id, p)
	u, _ := args.Get(0).(*domain.ProfileUpdate)
	return u, args.Error(1)
}

// MockChatStore is a mock implementation of ChatStore
type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) ListForUser(ctx context.Context, userID int64) ([]domain.ChatSummary, error) {
	args := m.Called(ctx, userID)
	chats, _ := args.Get(0).([]domain.ChatSummary)
	return chats, args.Error(1)
}

func (m *MockChatStore) FindBetween(ctx context.Context, a, b int64) (int64, error) {
	args := m.Called(ctx, a, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatStore) Create(ctx context.Context, user1ID, user2ID int64) (int64, error) {
	args := m.Called(ctx, user1ID, user2ID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Message, error) {
	args := m.Called(ctx, chatID, limit)
	msgs, _ := args.Get(0).([]domain.Message)
	return msgs, args.Error(1)
}

type MockAchievementStore struct {
	mock.Mock
}

func (m *MockAchievementStore) ListForUser(ctx context.Context, userID int64) ([]domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]domain.UserAchievement)
	return list, args.Error(1)
}

type MockLessonStore struct {
	mock.Mock
}

func (m *MockLessonStore) ListForUser(ctx context.Context, language string, userID int64) ([]domain.Lesson, error) {
	args := m.Called(ctx, language, userID)
	lessons, _ := args.Get(0).([]domain.Lesson)
	return lessons, args.Error(1)
}

type MockGiftStore struct {
	mock.Mock
}

func (m *MockGiftStore) List(ctx context.Context) ([]domain.Gift, error) {
	args := m.Called(ctx)
	gifts, _ := args.Get(0).([]domain.Gift)
	return gifts, args.Error(1)
}

type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) Register(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	args := m.Called(ctx, nu)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, msg domain.NewMessage) (*domain.SentMessage, error) {
	args := m.Called(ctx, msg)
	sent, _ := args.Get(0).(*domain.SentMessage)
	return sent, args.Error(1)
}

type MockFriendAdder struct {
	mock.Mock
}

func (m *MockFriendAdder) AddFriend(ctx context.Context, userID, friendID int64) error {
	return m.Called(ctx, userID, friendID).Error(0)
}

type MockLessonCompleter struct {
	mock.Mock
}

func (m *MockLessonCompleter) Complete(ctx context.Context, userID, lessonID int64, score int) (*domain.LessonResult, error) {
	args := m.Called(ctx, userID, lessonID, score)
	res, _ := args.Get(0).(*domain.LessonResult)
	return res, args.Error(1)
}

type MockGiftSender struct {
	mock.Mock
}

func (m *MockGiftSender) Send(ctx context.Context, t *domain.GiftTransaction) error {
	return m.Called(ctx, t).Error(0)
}

type mocks struct {
	users        *MockUserStore
	chats        *MockChatStore
	messages     *MockMessageStore
	achievements *MockAchievementStore
	lessons      *MockLessonStore
	gifts        *MockGiftStore
	registrar    *MockRegistrar
	sender       *MockMessageSender
	friends      *MockFriendAdder
	completer    *MockLessonCompleter
	giftSender   *MockGiftSender
}

func newTestHandler() (*Handler, *mocks) {
	m := &mocks{
		users:        new(MockUserStore),
		chats:        new(MockChatStore),
		messages:     new(MockMessageStore),
		achievements: new(MockAchievementStore),
		lessons:      new(MockLessonStore),
		gifts:        new(MockGiftStore),
		registrar:    new(MockRegistrar),
		sender:       new(MockMessageSender),
		friends:      new(MockFriendAdder),
		completer:    new(MockLessonCompleter),
		giftSender:   new(MockGiftSender),
	}
	h := &Handler{
		Users:          m.users,
		Chats:          m.chats,
		Messages:       m.messages,
		Achievements:   m.achievements,
		Lessons:        m.lessons,
		Gifts:          m.gifts,
		Registration:   m.registrar,
		MessageService: m.sender,
		FriendService:  m.friends,
		LessonService:  m.completer,
		GiftService:    m.giftSender,
	}
	return h, m
}
