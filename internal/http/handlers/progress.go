package handlers

import (
	"context"
	"net/http"

	"language_connect/internal/domain"
	"language_connect/internal/gateway"
)

func (h *Handler) ListAchievements(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	userID, err := req.QueryID("userId")
	if err != nil {
		return nil, err
	}

	list, err := h.Achievements.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.UserAchievement{}
	}
	return gateway.JSON(http.StatusOK, list), nil
}

type addFriendRequest struct {
	UserID   int64 `json:"userId" validate:"required,gt=0"`
	FriendID int64 `json:"friendId" validate:"required,gt=0,nefield=UserID"`
}

func (h *Handler) AddFriend(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body addFriendRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.FriendService.AddFriend(ctx, body.UserID, body.FriendID); err != nil {
		return nil, mapError(err, "User not found")
	}
	return gateway.JSON(http.StatusCreated, map[string]bool{"success": true}), nil
}

// ListLessons lists the lessons of a language with the user's completion
// flags. userId is optional; without it every lesson is uncompleted.
func (h *Handler) ListLessons(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	language := req.Query("language")
	if language == "" {
		language = domain.DefaultLessonLanguage
	}
	var userID int64
	if req.Query("userId") != "" {
		id, err := req.QueryID("userId")
		if err != nil {
			return nil, err
		}
		userID = id
	}

	lessons, err := h.Lessons.ListForUser(ctx, language, userID)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []domain.Lesson{}
	}
	return gateway.JSON(http.StatusOK, lessons), nil
}

type completeLessonRequest struct {
	UserID   int64 `json:"userId" validate:"required,gt=0"`
	LessonID int64 `json:"lessonId" validate:"required,gt=0"`
	Score    *int  `json:"score" validate:"omitempty,min=0"`
}

func (h *Handler) CompleteLesson(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body completeLessonRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	score := domain.DefaultLessonScore
	if body.Score != nil {
		score = *body.Score
	}

	res, err := h.LessonService.Complete(ctx, body.UserID, body.LessonID, score)
	if err != nil {
		return nil, mapError(err, "Lesson not found")
	}
	return gateway.JSON(http.StatusOK, res), nil
}
