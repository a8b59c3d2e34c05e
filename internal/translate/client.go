package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// AutoDetect lets the vendor detect the source language.
const AutoDetect = "auto"

var ErrNoKey = errors.New("translation api key not configured")

// Client translates text into target. source may be AutoDetect.
type Client interface {
	Translate(ctx context.Context, text, target, source string) (string, error)
}

// GoogleClient calls the Google Cloud Translation v2 REST API.
type GoogleClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func NewGoogleClient(apiKey, endpoint string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (c *GoogleClient) Translate(ctx context.Context, text, target, source string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoKey
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("q", text)
	form.Set("target", canonical(target))
	form.Set("format", "text")
	if source != "" && source != AutoDetect {
		form.Set("source", canonical(source))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translate api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate api status %d: %s", resp.StatusCode, string(b))
	}

	var out googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(out.Data.Translations) == 0 {
		return "", errors.New("translate api returned no translations")
	}
	return out.Data.Translations[0].TranslatedText, nil
}

// canonical normalizes a BCP 47 code such as "EN" or "pt_br". Codes that
// do not parse are passed through for the vendor to judge.
func canonical(code string) string {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return code
	}
	return tag.String()
}
