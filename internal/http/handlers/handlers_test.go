package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"language_connect/internal/apperr"
	"language_connect/internal/domain"
	"language_connect/internal/gateway"
	"language_connect/internal/repository"
	"language_connect/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func request(query map[string]string, body string) *gateway.Request {
	return &gateway.Request{Event: gateway.Event{QueryStringParameters: query, Body: body}}
}

func requireKind(t *testing.T, err error, kind apperr.Kind, msg string) {
	t.Helper()
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kind, e.Kind)
	if msg != "" {
		assert.Equal(t, msg, e.Message)
	}
}

func strPtr(s string) *string { return &s }

func TestRegister(t *testing.T) {
	h, m := newTestHandler()
	ctx := context.Background()
	want := domain.NewUser{
		Email: "anna@example.com", Name: "Anna",
		NativeLanguage: "Russian", LearningLanguage: "English", Country: "Russia",
	}
	m.registrar.On("Register", ctx, want).Return(&domain.User{ID: 1, Email: want.Email}, nil)

	resp, err := h.Register(ctx, request(nil,
		`{"email":"anna@example.com","name":"Anna","nativeLanguage":"Russian","learningLanguage":"English","country":"Russia"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, int64(1), resp.Body.(*domain.User).ID)
	m.registrar.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	h, m := newTestHandler()

	_, err := h.Register(context.Background(), request(nil, `{"email":"not-an-email"}`))

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Contains(t, e.Fields, "email")
	assert.Contains(t, e.Fields, "name")
	m.registrar.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_EmailTaken(t *testing.T) {
	h, m := newTestHandler()
	m.registrar.On("Register", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("create user: %w", service.ErrEmailTaken))

	_, err := h.Register(context.Background(), request(nil,
		`{"email":"a@b.co","name":"A","nativeLanguage":"x","learningLanguage":"y"}`))

	requireKind(t, err, apperr.KindBadRequest, "Email already registered")
}

func TestLogin(t *testing.T) {
	h, m := newTestHandler()
	ctx := context.Background()
	m.users.On("GetByEmail", ctx, "a@b.co").Return(&domain.User{ID: 3}, nil)
	m.users.On("MarkOnline", ctx, int64(3)).Return(&domain.User{ID: 3, IsOnline: true}, nil)

	resp, err := h.Login(ctx, request(nil, `{"email":"a@b.co"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.True(t, resp.Body.(*domain.User).IsOnline)
}

func TestLogin_UnknownEmail(t *testing.T) {
	h, m := newTestHandler()
	m.users.On("GetByEmail", mock.Anything, "x@y.z").Return(nil, repository.ErrNotFound)

	_, err := h.Login(context.Background(), request(nil, `{"email":"x@y.z"}`))

	requireKind(t, err, apperr.KindNotFound, "User not found")
	m.users.AssertNotCalled(t, "MarkOnline", mock.Anything, mock.Anything)
}

func TestSearchUsers_Filters(t *testing.T) {
	h, m := newTestHandler()
	want := domain.UserFilter{Search: "span", Region: "EU", OnlineOnly: true, Limit: 5}
	m.users.On("Search", mock.Anything, want).Return(nil, nil)

	resp, err := h.SearchUsers(context.Background(), request(map[string]string{
		"search": "span", "region": "EU", "onlineOnly": "true", "limit": "5",
	}, ""))

	require.NoError(t, err)
	assert.Equal(t, []domain.UserCard{}, resp.Body)
	m.users.AssertExpectations(t)
}

func TestSearchUsers_DefaultLimit(t *testing.T) {
	h, m := newTestHandler()
	m.users.On("Search", mock.Anything, domain.UserFilter{Limit: defaultSearchLimit}).Return([]domain.UserCard{{ID: 1}}, nil)

	resp, err := h.SearchUsers(context.Background(), request(nil, ""))

	require.NoError(t, err)
	assert.Len(t, resp.Body, 1)
}

func TestSearchUsers_NonPositiveLimit(t *testing.T) {
	h, m := newTestHandler()
	m.users.On("Search", mock.Anything, domain.UserFilter{Limit: defaultSearchLimit}).Return(nil, nil)

	_, err := h.SearchUsers(context.Background(), request(map[string]string{"limit": "-1"}, ""))

	require.NoError(t, err)
	m.users.AssertExpectations(t)
}

func TestGetUser(t *testing.T) {
	h, m := newTestHandler()
	m.users.On("GetByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)

	req := &gateway.Request{Event: gateway.Event{PathParameters: map[string]string{"id": "9"}}}
	_, err := h.GetUser(context.Background(), req)

	requireKind(t, err, apperr.KindNotFound, "User not found")
}

func TestUpdateUser_EmptyPatchSkipsDatabase(t *testing.T) {
	h, m := newTestHandler()

	resp, err := h.UpdateUser(context.Background(), request(map[string]string{"id": "4"}, `{"country":"Spain"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, map[string]any{}, resp.Body)
	m.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUser_IDSources(t *testing.T) {
	patch := domain.UserPatch{Name: strPtr("Bob")}

	t.Run("query", func(t *testing.T) {
		h, m := newTestHandler()
		m.users.On("Update", mock.Anything, int64(4), patch).Return(&domain.ProfileUpdate{ID: 4, Name: "Bob"}, nil)

		resp, err := h.UpdateUser(context.Background(), request(map[string]string{"id": "4"}, `{"name":"Bob"}`))

		require.NoError(t, err)
		assert.Equal(t, "Bob", resp.Body.(*domain.ProfileUpdate).Name)
	})

	t.Run("body", func(t *testing.T) {
		h, m := newTestHandler()
		m.users.On("Update", mock.Anything, int64(6), patch).Return(&domain.ProfileUpdate{ID: 6}, nil)

		_, err := h.UpdateUser(context.Background(), request(nil, `{"id":6,"name":"Bob"}`))

		require.NoError(t, err)
		m.users.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		h, _ := newTestHandler()

		_, err := h.UpdateUser(context.Background(), request(nil, `{"name":"Bob"}`))

		requireKind(t, err, apperr.KindValidation, "")
	})

	t.Run("unknown user", func(t *testing.T) {
		h, m := newTestHandler()
		m.users.On("Update", mock.Anything, int64(8), patch).Return(nil, repository.ErrNotFound)

		_, err := h.UpdateUser(context.Background(), request(map[string]string{"id": "8"}, `{"name":"Bob"}`))

		requireKind(t, err, apperr.KindNotFound, "User not found")
	})
}

func TestCreateChat_ReusesExisting(t *testing.T) {
	h, m := newTestHandler()
	m.chats.On("FindBetween", mock.Anything, int64(2), int64(1)).Return(int64(11), nil)

	resp, err := h.CreateChat(context.Background(), request(nil, `{"user1Id":2,"user2Id":1}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, map[string]int64{"chatId": 11}, resp.Body)
	m.chats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateChat_OpensNew(t *testing.T) {
	h, m := newTestHandler()
	m.chats.On("FindBetween", mock.Anything, int64(1), int64(2)).Return(int64(0), repository.ErrNotFound)
	m.chats.On("Create", mock.Anything, int64(1), int64(2)).Return(int64(12), nil)

	resp, err := h.CreateChat(context.Background(), request(nil, `{"user1Id":1,"user2Id":2}`))

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"chatId": 12}, resp.Body)
}

func TestListMessages_Chronological(t *testing.T) {
	h, m := newTestHandler()
	newestFirst := []domain.Message{{ID: 3}, {ID: 2}, {ID: 1}}
	m.messages.On("ListRecent", mock.Anything, int64(5), defaultMessageLimit).Return(newestFirst, nil)

	resp, err := h.ListMessages(context.Background(), request(map[string]string{"chatId": "5"}, ""))

	require.NoError(t, err)
	got := resp.Body.([]domain.Message)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestSendMessage(t *testing.T) {
	h, m := newTestHandler()
	want := domain.NewMessage{ChatID: 5, SenderID: 1, Message: "Hola", TranslatedMessage: strPtr("Hello")}
	m.sender.On("Send", mock.Anything, want).Return(&domain.SentMessage{ID: 40, Message: "Hola"}, nil)

	resp, err := h.SendMessage(context.Background(), request(nil,
		`{"chatId":5,"senderId":1,"message":"Hola","translatedMessage":"Hello"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, int64(40), resp.Body.(*domain.SentMessage).ID)
}

func TestSendMessage_UnknownChat(t *testing.T) {
	h, m := newTestHandler()
	m.sender.On("Send", mock.Anything, mock.Anything).Return(nil, service.ErrChatNotFound)

	_, err := h.SendMessage(context.Background(), request(nil, `{"chatId":99,"senderId":1,"message":"hi"}`))

	requireKind(t, err, apperr.KindNotFound, "Chat not found")
}

func TestAddFriend(t *testing.T) {
	h, m := newTestHandler()
	m.friends.On("AddFriend", mock.Anything, int64(1), int64(2)).Return(nil)

	resp, err := h.AddFriend(context.Background(), request(nil, `{"userId":1,"friendId":2}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, map[string]bool{"success": true}, resp.Body)
}

func TestAddFriend_Self(t *testing.T) {
	h, _ := newTestHandler()

	_, err := h.AddFriend(context.Background(), request(nil, `{"userId":1,"friendId":1}`))

	requireKind(t, err, apperr.KindValidation, "")
}

func TestListLessons_Defaults(t *testing.T) {
	h, m := newTestHandler()
	m.lessons.On("ListForUser", mock.Anything, domain.DefaultLessonLanguage, int64(0)).Return(nil, nil)

	resp, err := h.ListLessons(context.Background(), request(nil, ""))

	require.NoError(t, err)
	assert.Equal(t, []domain.Lesson{}, resp.Body)
}

func TestCompleteLesson(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		score int
	}{
		{"explicit score", `{"userId":1,"lessonId":2,"score":80}`, 80},
		{"default score", `{"userId":1,"lessonId":2}`, domain.DefaultLessonScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			res := &domain.LessonResult{XP: 50, Level: 2, TotalXP: 150}
			m.completer.On("Complete", mock.Anything, int64(1), int64(2), tt.score).Return(res, nil)

			resp, err := h.CompleteLesson(context.Background(), request(nil, tt.body))

			require.NoError(t, err)
			assert.Equal(t, res, resp.Body)
		})
	}
}

func TestCompleteLesson_UnknownLesson(t *testing.T) {
	h, m := newTestHandler()
	m.completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrLessonNotFound)

	_, err := h.CompleteLesson(context.Background(), request(nil, `{"userId":1,"lessonId":404}`))

	requireKind(t, err, apperr.KindNotFound, "Lesson not found")
}

func TestSendGift_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind apperr.Kind
		msg  string
	}{
		{"unknown gift", service.ErrGiftNotFound, apperr.KindNotFound, "Gift not found"},
		{"poor sender", service.ErrInsufficientFunds, apperr.KindBadRequest, "Not enough coins"},
		{"unknown sender", service.ErrUserNotFound, apperr.KindNotFound, "User not found"},
		{"unknown chat", service.ErrChatNotFound, apperr.KindNotFound, "Chat not found"},
		{"database down", errors.New("conn reset"), apperr.KindInternal, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.giftSender.On("Send", mock.Anything, mock.Anything).Return(tt.err)

			_, err := h.SendGift(context.Background(), request(nil, `{"giftId":1,"senderId":2,"receiverId":3}`))

			requireKind(t, apperr.From(err), tt.kind, tt.msg)
		})
	}
}

func TestSendGift_PassesChat(t *testing.T) {
	h, m := newTestHandler()
	m.giftSender.On("Send", mock.Anything, mock.MatchedBy(func(tx *domain.GiftTransaction) bool {
		return tx.GiftID == 1 && tx.SenderID == 2 && tx.ReceiverID == 3 && tx.ChatID != nil && *tx.ChatID == 7
	})).Return(nil)

	resp, err := h.SendGift(context.Background(), request(nil, `{"giftId":1,"senderId":2,"receiverId":3,"chatId":7}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	m.giftSender.AssertExpectations(t)
}

func TestListGifts(t *testing.T) {
	h, m := newTestHandler()
	m.gifts.On("List", mock.Anything).Return([]domain.Gift{{ID: 1, Price: 10}}, nil)

	resp, err := h.ListGifts(context.Background(), request(nil, ""))

	require.NoError(t, err)
	assert.Equal(t, []domain.Gift{{ID: 1, Price: 10}}, resp.Body)
}

func TestListAchievements_RequiresUser(t *testing.T) {
	h, _ := newTestHandler()

	_, err := h.ListAchievements(context.Background(), request(nil, ""))

	requireKind(t, err, apperr.KindValidation, "")
}
