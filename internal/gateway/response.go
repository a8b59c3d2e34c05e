package gateway

import (
	"bytes"
	"encoding/json"
)

// Response is what a HandlerFunc returns. A nil Body is sent as an empty
// string.
type Response struct {
	Status int
	Body   any
}

func JSON(status int, body any) *Response {
	return &Response{Status: status, Body: body}
}

func Empty(status int) *Response {
	return &Response{Status: status}
}

func encode(body any) (string, error) {
	if body == nil {
		return "", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
