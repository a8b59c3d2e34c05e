package gateway

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tomasen/realip"
)

// Gin serves an EventHandler on a gin route, for running locally without
// the Lambda runtime.
func Gin(h EventHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		ev := Event{
			HTTPMethod:            c.Request.Method,
			Path:                  c.Request.URL.Path,
			Headers:               map[string]string{},
			QueryStringParameters: map[string]string{},
			PathParameters:        map[string]string{},
			Body:                  string(body),
		}
		for k := range c.Request.Header {
			ev.Headers[k] = c.Request.Header.Get(k)
		}
		for k, v := range c.Request.URL.Query() {
			if len(v) > 0 {
				ev.QueryStringParameters[k] = v[0]
			}
		}
		for _, p := range c.Params {
			ev.PathParameters[p.Key] = p.Value
		}
		ev.RequestContext.RequestID = uuid.NewString()
		// honours X-Real-Ip and X-Forwarded-For like API Gateway does
		ev.RequestContext.Identity.SourceIP = realip.FromRequest(c.Request)

		res, err := h(c.Request.Context(), ev)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		for k, v := range res.Headers {
			c.Header(k, v)
		}
		if res.Body == "" {
			c.Status(res.StatusCode)
			return
		}
		c.Data(res.StatusCode, res.Headers["Content-Type"], []byte(res.Body))
	}
}
