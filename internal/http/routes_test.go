package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"language_connect/internal/gateway"
	"language_connect/internal/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIRoutesCoverEveryAction(t *testing.T) {
	routes := APIRoutes(&handlers.Handler{})

	assert.Empty(t, routes.Missing(gateway.AllActions()))
	for route, h := range routes {
		assert.NotNil(t, h, "route %v", route)
	}
}

func TestAPIRoutesIgnoreMethod(t *testing.T) {
	d := gateway.NewDispatcher("api", APIRoutes(&handlers.Handler{}))

	for _, action := range gateway.AllActions() {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
			ev := gateway.Event{
				HTTPMethod:            method,
				QueryStringParameters: map[string]string{"action": string(action)},
			}
			res, err := d.Handle(context.Background(), ev)
			require.NoError(t, err)
			assert.NotEqual(t, http.StatusNotFound, res.StatusCode, "%s %s", method, action)
		}
	}
}

type nopPinger struct{}

func (nopPinger) Ping(context.Context) error { return nil }

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var apiCalls, translateCalls int
	api := func(context.Context, gateway.Event) (gateway.Result, error) {
		apiCalls++
		return gateway.Result{StatusCode: http.StatusOK}, nil
	}
	translate := func(context.Context, gateway.Event) (gateway.Result, error) {
		translateCalls++
		return gateway.Result{StatusCode: http.StatusOK}, nil
	}

	r := gin.New()
	RegisterRoutes(r, api, translate, handlers.NewHealthHandler(nopPinger{}, "test"))

	for _, path := range []string{"/?action=gifts", "/users/1?action=user", "/translate", "/healthz", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, 2, apiCalls)
	assert.Equal(t, 1, translateCalls)
}
