package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInternal, http.StatusInternalServerError},
		{KindBadRequest, http.StatusBadRequest},
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindMethodNotAllowed, http.StatusMethodNotAllowed},
		{KindTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Status())
		})
	}
}

func TestFrom_HidesUnclassifiedCause(t *testing.T) {
	cause := errors.New(`pq: relation "users" does not exist`)

	e := From(fmt.Errorf("get user: %w", cause))

	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, map[string]any{"error": "Internal server error"}, e.Body())
	assert.ErrorIs(t, e, cause)
}

func TestFrom_KeepsClassifiedError(t *testing.T) {
	orig := NotFound("User not found")

	e := From(fmt.Errorf("login: %w", orig))

	assert.Same(t, orig, e)
	assert.Equal(t, http.StatusNotFound, e.Kind.Status())
}

func TestValidationBody(t *testing.T) {
	e := Validation(map[string]string{"email": "required"})

	assert.Equal(t, map[string]any{
		"error":  "Invalid request",
		"fields": map[string]string{"email": "required"},
	}, e.Body())
}
