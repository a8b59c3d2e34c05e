package gateway

import (
	"encoding/base64"
	"testing"

	"language_connect/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Email  string `json:"email" validate:"required,email"`
	UserID int64  `json:"userId" validate:"required,gt=0"`
	Note   string `json:"note"`
}

func TestBind_Valid(t *testing.T) {
	req := &Request{Event: Event{Body: `{"email":"a@b.co","userId":7}`}}

	var v bindTarget
	require.NoError(t, req.Bind(&v))
	assert.Equal(t, bindTarget{Email: "a@b.co", UserID: 7}, v)
}

func TestBind_Base64(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte(`{"email":"a@b.co","userId":1}`))
	req := &Request{Event: Event{Body: body, IsBase64Encoded: true}}

	var v bindTarget
	require.NoError(t, req.Bind(&v))
	assert.Equal(t, int64(1), v.UserID)
}

func TestBind_EmptyBodyReportsMissingFields(t *testing.T) {
	req := &Request{Event: Event{}}

	var v bindTarget
	err := req.Bind(&v)

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Equal(t, map[string]string{"email": "required", "userId": "required"}, e.Fields)
}

func TestBind_WrongType(t *testing.T) {
	req := &Request{Event: Event{Body: `{"email":"a@b.co","userId":"seven"}`}}

	var v bindTarget
	err := req.Bind(&v)

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Contains(t, e.Fields, "userId")
}

func TestBind_Malformed(t *testing.T) {
	req := &Request{Event: Event{Body: `{"email":`}}

	var v bindTarget
	err := req.Bind(&v)

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindBadRequest, e.Kind)
}

func TestID_PathThenQuery(t *testing.T) {
	req := &Request{Event: Event{
		PathParameters:        map[string]string{"id": "5"},
		QueryStringParameters: map[string]string{"id": "9"},
	}}
	id, err := req.ID("id")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	req = &Request{Event: Event{QueryStringParameters: map[string]string{"id": "9"}}}
	id, err = req.ID("id")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)

	_, err = (&Request{}).ID("id")
	assert.Error(t, err)

	_, err = (&Request{Event: Event{QueryStringParameters: map[string]string{"id": "-3"}}}).ID("id")
	assert.Error(t, err)
}

func TestQueryHelpers(t *testing.T) {
	req := &Request{Event: Event{QueryStringParameters: map[string]string{
		"limit": "10", "bad": "x", "onlineOnly": "True",
	}}}

	assert.Equal(t, 10, req.QueryInt("limit", 20))
	assert.Equal(t, 20, req.QueryInt("bad", 20))
	assert.Equal(t, 20, req.QueryInt("missing", 20))
	assert.True(t, req.QueryBool("onlineOnly"))
	assert.False(t, req.QueryBool("missing"))
}
