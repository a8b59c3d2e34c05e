package handlers

import (
	"context"
	"net/http"

	"language_connect/internal/domain"
	"language_connect/internal/gateway"
)

func (h *Handler) ListGifts(ctx context.Context, _ *gateway.Request) (*gateway.Response, error) {
	gifts, err := h.Gifts.List(ctx)
	if err != nil {
		return nil, err
	}
	if gifts == nil {
		gifts = []domain.Gift{}
	}
	return gateway.JSON(http.StatusOK, gifts), nil
}

type sendGiftRequest struct {
	GiftID     int64  `json:"giftId" validate:"required,gt=0"`
	SenderID   int64  `json:"senderId" validate:"required,gt=0"`
	ReceiverID int64  `json:"receiverId" validate:"required,gt=0"`
	ChatID     *int64 `json:"chatId" validate:"omitempty,gt=0"`
}

// SendGift charges the sender the gift price and credits the receiver.
// Insufficient coins is a 400 with nothing written.
func (h *Handler) SendGift(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body sendGiftRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	err := h.GiftService.Send(ctx, &domain.GiftTransaction{
		SenderID:   body.SenderID,
		ReceiverID: body.ReceiverID,
		GiftID:     body.GiftID,
		ChatID:     body.ChatID,
	})
	if err != nil {
		return nil, mapError(err, "Gift not found")
	}
	return gateway.JSON(http.StatusCreated, map[string]bool{"success": true}), nil
}
