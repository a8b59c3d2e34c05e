package handlers

import (
	"context"
	"net/http"

	"language_connect/internal/domain"
	"language_connect/internal/gateway"
)

const defaultSearchLimit = 20

// limitParam reads the "limit" query parameter. Anything but a positive
// integer falls back to def.
func limitParam(req *gateway.Request, def int) int {
	if n := req.QueryInt("limit", def); n > 0 {
		return n
	}
	return def
}

type registerRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Name             string `json:"name" validate:"required,max=100"`
	Avatar           string `json:"avatar"`
	NativeLanguage   string `json:"nativeLanguage" validate:"required"`
	LearningLanguage string `json:"learningLanguage" validate:"required"`
	Country          string `json:"country"`
}

func (h *Handler) Register(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body registerRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	user, err := h.Registration.Register(ctx, domain.NewUser{
		Email:            body.Email,
		Name:             body.Name,
		Avatar:           body.Avatar,
		NativeLanguage:   body.NativeLanguage,
		LearningLanguage: body.LearningLanguage,
		Country:          body.Country,
	})
	if err != nil {
		return nil, mapError(err, "User not found")
	}
	return gateway.JSON(http.StatusCreated, user), nil
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
}

func (h *Handler) Login(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body loginRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	user, err := h.Users.GetByEmail(ctx, body.Email)
	if err != nil {
		return nil, mapError(err, "User not found")
	}
	user, err = h.Users.MarkOnline(ctx, user.ID)
	if err != nil {
		return nil, mapError(err, "User not found")
	}
	return gateway.JSON(http.StatusOK, user), nil
}

func (h *Handler) SearchUsers(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	users, err := h.Users.Search(ctx, domain.UserFilter{
		Search:     req.Query("search"),
		Region:     req.Query("region"),
		Country:    req.Query("country"),
		OnlineOnly: req.QueryBool("onlineOnly"),
		Limit:      limitParam(req, defaultSearchLimit),
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.UserCard{}
	}
	return gateway.JSON(http.StatusOK, users), nil
}

func (h *Handler) GetUser(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	id, err := req.ID("id")
	if err != nil {
		return nil, err
	}

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "User not found")
	}
	return gateway.JSON(http.StatusOK, user), nil
}

type updateUserRequest struct {
	ID               int64   `json:"id"`
	Name             *string `json:"name" validate:"omitempty,max=100"`
	Avatar           *string `json:"avatar"`
	AvatarFrame      *string `json:"avatarFrame"`
	LearningLanguage *string `json:"learningLanguage"`
}

// UpdateUser applies a sparse profile update. A body with none of the
// recognized fields is answered with {} and no database access.
func (h *Handler) UpdateUser(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	var body updateUserRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{
		Name:             body.Name,
		Avatar:           body.Avatar,
		AvatarFrame:      body.AvatarFrame,
		LearningLanguage: body.LearningLanguage,
	}
	if patch.Empty() {
		return gateway.JSON(http.StatusOK, map[string]any{}), nil
	}

	id := body.ID
	if pathOrQuery, err := req.ID("id"); err == nil {
		id = pathOrQuery
	} else if id <= 0 {
		return nil, err
	}

	updated, err := h.Users.Update(ctx, id, patch)
	if err != nil {
		return nil, mapError(err, "User not found")
	}
	return gateway.JSON(http.StatusOK, updated), nil
}
