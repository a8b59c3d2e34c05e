package handlers

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"language_connect/internal/domain"
	"language_connect/internal/gateway"
	"language_connect/internal/repository"
)

const defaultMessageLimit = 50

func (h *Handler) ListChats(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	userID, err := req.QueryID("userId")
	if err != nil {
		return nil, err
	}

	chats, err := h.Chats.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if chats == nil {
		chats = []domain.ChatSummary{}
	}
	return gateway.JSON(http.StatusOK, chats), nil
}

type createChatRequest struct {
	User1ID int64 `json:"user1Id" validate:"required,gt=0"`
	User2ID int64 `json:"user2Id" validate:"required,gt=0"`
}

// CreateChat returns the existing chat for the pair, in either order, or
// opens a new one.
func (h *Handler) CreateChat(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body createChatRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	chatID, err := h.Chats.FindBetween(ctx, body.User1ID, body.User2ID)
	if errors.Is(err, repository.ErrNotFound) {
		chatID, err = h.Chats.Create(ctx, body.User1ID, body.User2ID)
	}
	if err != nil {
		return nil, mapError(err, "Chat not found")
	}
	return gateway.JSON(http.StatusCreated, map[string]int64{"chatId": chatID}), nil
}

// ListMessages returns the newest messages of a chat in chronological order.
func (h *Handler) ListMessages(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	chatID, err := req.QueryID("chatId")
	if err != nil {
		return nil, err
	}

	msgs, err := h.Messages.ListRecent(ctx, chatID, limitParam(req, defaultMessageLimit))
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	slices.Reverse(msgs)
	return gateway.JSON(http.StatusOK, msgs), nil
}

type sendMessageRequest struct {
	ChatID            int64   `json:"chatId" validate:"required,gt=0"`
	SenderID          int64   `json:"senderId" validate:"required,gt=0"`
	Message           string  `json:"message" validate:"required"`
	TranslatedMessage *string `json:"translatedMessage"`
	IsVoice           bool    `json:"isVoice"`
}

func (h *Handler) SendMessage(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body sendMessageRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	msg, err := h.MessageService.Send(ctx, domain.NewMessage{
		ChatID:            body.ChatID,
		SenderID:          body.SenderID,
		Message:           body.Message,
		TranslatedMessage: body.TranslatedMessage,
		IsVoice:           body.IsVoice,
	})
	if err != nil {
		return nil, mapError(err, "Chat not found")
	}
	return gateway.JSON(http.StatusCreated, msg), nil
}
