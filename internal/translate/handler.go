package translate

import (
	"context"
	"errors"
	"net/http"

	"language_connect/internal/apperr"
	"language_connect/internal/gateway"
	"language_connect/internal/http/middleware"
	"language_connect/internal/logger"
)

const (
	ActionTranslate gateway.Action = "translate"

	defaultTarget = "en"
)

// Headers are sent with every translation response.
func Headers() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, X-User-Id",
		"Access-Control-Max-Age":       "86400",
	}
}

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

// NewDispatcher serves the proxy as a single-action endpoint.
func NewDispatcher(h *Handler, limiter gateway.Limiter) *gateway.Dispatcher {
	return gateway.NewDispatcher("translate",
		gateway.Routes{{Action: ActionTranslate}: h.Translate},
		gateway.WithAction(ActionTranslate),
		gateway.WithHeaders(Headers()),
		gateway.WithLimiter(limiter),
	)
}

type request struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
	SourceLang string `json:"sourceLang"`
}

type Response struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// Translate answers with the original text whenever the vendor cannot be
// used, so a chat never shows an error for a failed translation.
func (h *Handler) Translate(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	if req.Method != http.MethodPost {
		return nil, apperr.MethodNotAllowed()
	}

	var body request
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	if body.Text == "" {
		return nil, apperr.BadRequest("Text is required")
	}
	if body.TargetLang == "" {
		body.TargetLang = defaultTarget
	}
	if body.SourceLang == "" {
		body.SourceLang = AutoDetect
	}

	translated, err := h.client.Translate(ctx, body.Text, body.TargetLang, body.SourceLang)
	if err != nil {
		reason := "upstream_error"
		if errors.Is(err, ErrNoKey) {
			reason = "no_key"
		}
		middleware.TranslateFallbacks.WithLabelValues(reason).Inc()
		logger.WithContext(ctx).Warn("translation fell back to original", "reason", reason, "error", err)
		translated = body.Text
	}

	return gateway.JSON(http.StatusOK, Response{
		Original:   body.Text,
		Translated: translated,
		SourceLang: body.SourceLang,
		TargetLang: body.TargetLang,
	}), nil
}
